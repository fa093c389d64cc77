// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// Surface is an opaque wall, floor or roof.
type Surface struct {
	Base
	Polygon       Polygon
	Construction  *Construction
	FrontBoundary *Boundary
	BackBoundary  *Boundary

	FirstNodeTemperature simstate.Slot
	LastNodeTemperature  simstate.Slot
}

// Area of the surface polygon.
func (s *Surface) Area() float64 { return s.Polygon.Area() }

func (s *Surface) stateFields() []stateField {
	last := len(s.Construction.Layers)
	return []stateField{
		{&s.FirstNodeTemperature, simstate.New(simstate.SurfaceNodeTemperature, 0, s.Index, 0)},
		{&s.LastNodeTemperature, simstate.New(simstate.SurfaceNodeTemperature, 0, s.Index, last)},
	}
}

var surfaceType = &field.Type{
	Name: KindSurface,
	Doc:  "An opaque wall, floor or roof.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the surface."},
		{Name: "polygon", Kind: field.Polygon, Doc: "Vertices as a flat list of x, y, z coordinates."},
		{Name: "construction", Kind: field.Ref, Target: KindConstruction, Doc: "The construction of the surface."},
		{Name: "front_boundary", Kind: field.Object, Target: KindBoundary, Optional: true, Doc: "What the front faces. Outdoors if empty."},
		{Name: "back_boundary", Kind: field.Object, Target: KindBoundary, Optional: true, Doc: "What the back faces. Outdoors if empty."},
	},
}

func buildSurface(p *field.Parsed) (*Surface, error) {
	f := p.Fields
	return &Surface{
		Base:          Base{Name: f.String("name")},
		Polygon:       Polygon(f.Polygon("polygon")),
		Construction:  f.Get("construction").(*Construction),
		FrontBoundary: optBoundary(f, "front_boundary"),
		BackBoundary:  optBoundary(f, "back_boundary"),
	}, nil
}
