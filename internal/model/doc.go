// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a SIMPLE building model.
// Its core purpose is to hold the strongly-typed, in-memory object graph that
// the loader builds from a model source, and to connect every object that
// owns simulation values to its elements in a simstate.State.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Model: The root container. It owns one collection per object kind
//     (substances, materials, constructions, surfaces, spaces, fenestrations,
//     HVACs, luminaires and buildings). Objects are shared by pointer: a
//     Material referenced by three Constructions is one *Material.
//
//   - Types: The field table of every object kind, expressed with the field
//     package. The same table drives parsing, verification and the generated
//     input reference.
//
//   - Builder: The bridge between the field resolver and the Model. It
//     looks objects up by name, constructs domain values from parsed bodies,
//     inserts them into their collections and, once loading is done,
//     allocates their state elements.
//
// Why deferred state allocation?
//
// A State requires personal, operational and physical elements to be pushed
// in that order, but objects are built kind by kind: surfaces (physical
// state) come before fenestrations (operational state). The Builder records
// the state fields of every object as it is inserted and pushes them in
// three category passes at the end, so the zone layout holds regardless of
// the kind order.
package model
