// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
)

// BoundaryKind says what lies on one side of a surface.
type BoundaryKind int

const (
	BoundaryGround BoundaryKind = iota
	BoundarySpace
)

// Boundary is the environment on one side of a surface or fenestration.
// A side without a Boundary faces the outdoors.
type Boundary struct {
	Kind BoundaryKind
	// Space is set for BoundarySpace.
	Space *Space
}

func (b Boundary) String() string {
	if b.Kind == BoundarySpace {
		return "Space(" + b.Space.Name + ")"
	}
	return "Ground"
}

var boundaryType = &field.Type{
	Name: KindBoundary,
	Doc:  "What lies on one side of a surface. Sides without a boundary face the outdoors.",
	Variants: []field.Variant{
		{Name: "Ground", Doc: "The surface is in contact with the ground."},
		{
			Name: "Space",
			Doc:  "The surface faces a space.",
			Args: []field.Descriptor{{Name: "space", Kind: field.Ref, Target: KindSpace}},
		},
	},
}

func buildBoundary(p *field.Parsed) (Boundary, error) {
	if p.Variant == "Space" {
		return Boundary{Kind: BoundarySpace, Space: p.Args[0].(*Space)}, nil
	}
	return Boundary{Kind: BoundaryGround}, nil
}

func optBoundary(f field.Values, name string) *Boundary {
	b, ok := f.Get(name).(Boundary)
	if !ok {
		return nil
	}
	return &b
}
