// Package simstate holds the numeric simulation state of a model.
//
// A State is a flat vector of Elements split into three contiguous zones:
// personal, then operational, then physical. The zones are fixed by the
// order of Push calls during loading, so each zone is addressed by an
// offset range instead of per-element tags. Domain objects keep only the
// index of their elements, which lets a simulation driver clone a State
// cheaply and copy single zones between clones.
//
// A State is not safe for concurrent use. Clones are independent.
package simstate
