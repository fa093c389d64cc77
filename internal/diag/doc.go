// Package diag defines the error taxonomy used while loading SIMPLE models.
//
// Lexical, structural and semantic problems found in the input are reported
// as *Error values carrying a Code and the line they were found on. A load
// collects them into a List so one malformed object never hides the rest of
// the file. Lists can be rendered through the HCL diagnostic writer, which
// prints the offending source line under each message.
//
// Invariant violations are not part of this package: they panic where they
// are detected.
package diag
