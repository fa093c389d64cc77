// Package loader turns a model source into a Model and its simulation
// state.
//
// Loading runs in two phases. Split makes one pass over the source and
// records, per top-level keyword, the span of every object body without
// looking inside it. Assemble then walks the keywords in assembly order,
// resolves each span into a domain object and inserts it into the Model.
// Once every span has been processed, the state requested by the objects is
// allocated, personal values first, then operational, then physical.
//
// A malformed object is reported and skipped; it never stops the rest of the
// source from loading.
package loader
