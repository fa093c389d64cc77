//go:build !release

package simstate

// checkShapes enables the per-element variant check on zone copies.
const checkShapes = true
