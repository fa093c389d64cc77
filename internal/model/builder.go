// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"fmt"

	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// Builder turns parsed objects into Model values and records which objects
// still need simulation state. It is the field.Context of the loader.
type Builder struct {
	model     *Model
	pending   []stateful
	warnings  []*diag.Error
	allocated bool
}

var _ field.Context = (*Builder)(nil)

// NewBuilder returns a Builder adding objects to m.
func NewBuilder(m *Model) *Builder {
	return &Builder{model: m}
}

// Model returns the model being built.
func (b *Builder) Model() *Model { return b.model }

// Warnings returns the non-fatal findings recorded while building.
func (b *Builder) Warnings() []*diag.Error { return b.warnings }

// Type implements field.Context.
func (b *Builder) Type(name string) (*field.Type, bool) { return TypeOf(name) }

// Find implements field.Context.
func (b *Builder) Find(kind, name string) (any, bool) {
	obj, ok := b.model.Find(kind, name)
	if !ok {
		return nil, false
	}
	return obj, true
}

// Names implements field.Context.
func (b *Builder) Names(kind string) []string { return b.model.Names(kind) }

// Construct builds the value of p. Collection objects, whether written at
// the top level or inline, are inserted into their collection.
func (b *Builder) Construct(p *field.Parsed) (any, error) {
	m := b.model
	switch p.Type.Name {
	case KindSubstance:
		return add(b, p, buildSubstance, m.AddSubstance)
	case KindMaterial:
		return add(b, p, buildMaterial, m.AddMaterial)
	case KindConstruction:
		return add(b, p, buildConstruction, m.AddConstruction)
	case KindSurface:
		return add(b, p, buildSurface, m.AddSurface)
	case KindSpace:
		return add(b, p, buildSpace, m.AddSpace)
	case KindFenestration:
		return add(b, p, buildFenestration, m.AddFenestration)
	case KindHVAC:
		return add(b, p, buildHVAC, m.AddHVAC)
	case KindLuminaire:
		return add(b, p, buildLuminaire, m.AddLuminaire)
	case KindBuilding:
		return add(b, p, buildBuilding, m.AddBuilding)

	case KindBoundary:
		return embed(p, buildBoundary)
	case KindInfiltration:
		return embed(p, buildInfiltration)
	case KindStandardGas:
		return embed(p, buildStandardGas)
	case KindFenestrationPositions:
		return embed(p, buildFenestrationPositions)
	case KindFenestrationType:
		return embed(p, buildFenestrationType)
	}
	return nil, fmt.Errorf("model: no constructor for %s", p.Type.Name)
}

func add[T Named](b *Builder, p *field.Parsed, build func(*field.Parsed) (T, error), insertFn func(T) T) (any, error) {
	obj, err := build(p)
	if err != nil {
		return nil, err
	}
	name := obj.ObjectName()
	if _, exists := b.model.Find(p.Type.Name, name); exists {
		b.warnings = append(b.warnings, diag.Errorf(diag.CodeDuplicate, p.Line,
			"%s called '%s' is defined more than once; references resolve to the first one", p.Type.Name, name))
	}
	obj = insertFn(obj)
	if s, ok := any(obj).(stateful); ok {
		b.pending = append(b.pending, s)
	}
	return obj, nil
}

func embed[T any](p *field.Parsed, build func(*field.Parsed) (T, error)) (any, error) {
	v, err := build(p)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Checkpoint is the extent of a Builder at one moment. Rolling back to it
// removes everything constructed since, inline objects included.
type Checkpoint struct {
	counts   map[string]int
	pending  int
	warnings int
}

// Checkpoint records the current collection sizes, pending state requests
// and warnings.
func (b *Builder) Checkpoint() Checkpoint {
	cp := Checkpoint{
		counts:   make(map[string]int, len(Keywords)),
		pending:  len(b.pending),
		warnings: len(b.warnings),
	}
	for _, kind := range Keywords {
		cp.counts[kind] = b.model.Count(kind)
	}
	return cp
}

// Rollback undoes every insertion made after cp was taken. It must run
// before Allocate.
func (b *Builder) Rollback(cp Checkpoint) {
	if b.allocated {
		panic("model: rollback after state allocation")
	}
	for _, kind := range Keywords {
		b.model.truncate(kind, cp.counts[kind])
	}
	clear(b.pending[cp.pending:])
	b.pending = b.pending[:cp.pending]
	b.warnings = b.warnings[:cp.warnings]
}

// Allocate pushes one element per requested state value into st, personal
// values first, then operational, then physical, each walked in insertion
// order, and points the owning slots at them. Values default to zero
// unless defaults names the element kind. Allocate runs once per Builder.
func (b *Builder) Allocate(st *simstate.State, defaults map[simstate.Kind]float64) {
	if b.allocated {
		panic("model: state allocated twice")
	}
	b.allocated = true

	for _, c := range []simstate.Category{simstate.Personal, simstate.Operational, simstate.Physical} {
		for _, obj := range b.pending {
			for _, sf := range obj.stateFields() {
				e := sf.element
				if e.Category() != c {
					continue
				}
				if v, ok := defaults[e.Kind]; ok {
					e.Value = v
				}
				sf.slot.Set(st.Push(e))
			}
		}
	}
}

// Pending is the number of objects waiting for state.
func (b *Builder) Pending() int { return len(b.pending) }
