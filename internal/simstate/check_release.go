//go:build release

package simstate

const checkShapes = false
