// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// FenestrationPositions describes how a fenestration can be operated.
type FenestrationPositions int

const (
	FixedClosed FenestrationPositions = iota
	FixedOpen
	Continuous
	Binary
)

var positionNames = []string{
	FixedClosed: "FixedClosed",
	FixedOpen:   "FixedOpen",
	Continuous:  "Continuous",
	Binary:      "Binary",
}

func (p FenestrationPositions) String() string { return positionNames[p] }

// FenestrationType is the kind of opening.
type FenestrationType int

const (
	Window FenestrationType = iota
	Door
)

func (t FenestrationType) String() string {
	if t == Door {
		return "Door"
	}
	return "Window"
}

// Fenestration is a window or door.
type Fenestration struct {
	Base
	Polygon          Polygon
	Construction     *Construction
	OperationType    FenestrationPositions
	FenestrationType FenestrationType
	FrontBoundary    *Boundary
	BackBoundary     *Boundary

	OpenFraction         simstate.Slot
	FirstNodeTemperature simstate.Slot
	LastNodeTemperature  simstate.Slot
}

// IsOperable reports whether a controller may change the open fraction.
func (f *Fenestration) IsOperable() bool {
	return f.OperationType == Continuous || f.OperationType == Binary
}

// Area of the fenestration polygon.
func (f *Fenestration) Area() float64 { return f.Polygon.Area() }

func (f *Fenestration) stateFields() []stateField {
	last := len(f.Construction.Layers)
	return []stateField{
		{&f.OpenFraction, simstate.New(simstate.FenestrationOpenFraction, 0, f.Index)},
		{&f.FirstNodeTemperature, simstate.New(simstate.FenestrationNodeTemperature, 0, f.Index, 0)},
		{&f.LastNodeTemperature, simstate.New(simstate.FenestrationNodeTemperature, 0, f.Index, last)},
	}
}

var fenestrationPositionsType = &field.Type{
	Name: KindFenestrationPositions,
	Doc:  "How a window or door can be operated.",
	Variants: []field.Variant{
		{Name: "FixedClosed", Doc: "Always closed."},
		{Name: "FixedOpen", Doc: "Always open."},
		{Name: "Continuous", Doc: "Any open fraction between 0 and 1."},
		{Name: "Binary", Doc: "Either open or closed."},
	},
}

var fenestrationTypeType = &field.Type{
	Name: KindFenestrationType,
	Doc:  "The kind of opening.",
	Variants: []field.Variant{
		{Name: "Window"}, {Name: "Door"},
	},
}

var fenestrationType = &field.Type{
	Name: KindFenestration,
	Doc:  "A window or door.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the fenestration."},
		{Name: "polygon", Kind: field.Polygon, Doc: "Vertices as a flat list of x, y, z coordinates."},
		{Name: "construction", Kind: field.Ref, Target: KindConstruction, Doc: "The construction of the fenestration."},
		{Name: "operation_type", Kind: field.Object, Target: KindFenestrationPositions, Doc: "How it can be operated."},
		{Name: "fenestration_type", Kind: field.Object, Target: KindFenestrationType, Doc: "Window or door."},
		{Name: "front_boundary", Kind: field.Object, Target: KindBoundary, Optional: true, Doc: "What the front faces. Outdoors if empty."},
		{Name: "back_boundary", Kind: field.Object, Target: KindBoundary, Optional: true, Doc: "What the back faces. Outdoors if empty."},
	},
}

func buildFenestration(p *field.Parsed) (*Fenestration, error) {
	f := p.Fields
	return &Fenestration{
		Base:             Base{Name: f.String("name")},
		Polygon:          Polygon(f.Polygon("polygon")),
		Construction:     f.Get("construction").(*Construction),
		OperationType:    f.Get("operation_type").(FenestrationPositions),
		FenestrationType: f.Get("fenestration_type").(FenestrationType),
		FrontBoundary:    optBoundary(f, "front_boundary"),
		BackBoundary:     optBoundary(f, "back_boundary"),
	}, nil
}

func buildFenestrationPositions(p *field.Parsed) (FenestrationPositions, error) {
	for i, name := range positionNames {
		if name == p.Variant {
			return FenestrationPositions(i), nil
		}
	}
	panic("model: unhandled FenestrationPositions variant " + p.Variant)
}

func buildFenestrationType(p *field.Parsed) (FenestrationType, error) {
	if p.Variant == "Door" {
		return Door, nil
	}
	return Window, nil
}
