// Package field resolves the bodies of SIMPLE objects.
//
// Every object type is described by a Type: a static table of field
// Descriptors for struct-like objects, or a list of Variants for enums.
// A single Resolver walks any body against its table, turning value tokens
// into Go values, following references into previously built objects and
// building nested objects inline. Domain types plug in through Context;
// the package knows nothing about buildings.
package field
