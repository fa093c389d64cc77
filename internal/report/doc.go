// Package report renders loaded models for people: a text summary, the
// state vector as text or YAML, a Go-syntax dump and the input reference
// generated from the field tables.
package report
