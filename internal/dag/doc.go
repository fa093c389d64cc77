// Package dag holds the dependency graph between object kinds. A kind
// depends on another when one of its fields, directly or through an
// embedded enum, refers to objects of that kind.
//
// The loader uses the graph for two things: to reject cyclic kind
// dependencies, and to derive an assembly order in which every reference
// can be written by name.
package dag
