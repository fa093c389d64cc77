// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
)

// Construction is an ordered stack of materials, from front to back.
type Construction struct {
	Base
	Layers []*Material
}

// RValue is the sum of the thermal resistances of the layers whose
// conductivity is known, in m2.K/W.
func (c *Construction) RValue() float64 {
	r := 0.0
	for _, m := range c.Layers {
		if g, ok := m.Conductance(); ok {
			r += 1 / g
		}
	}
	return r
}

var constructionType = &field.Type{
	Name: KindConstruction,
	Doc:  "An ordered stack of materials, from front to back.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the construction."},
		{Name: "layers", Kind: field.List, Elem: field.Ref, Target: KindMaterial, NonEmpty: true, Doc: "The materials, front to back."},
	},
}

func buildConstruction(p *field.Parsed) (*Construction, error) {
	f := p.Fields
	raw := f.List("layers")
	layers := make([]*Material, len(raw))
	for i, v := range raw {
		layers[i] = v.(*Material)
	}
	return &Construction{Base: Base{Name: f.String("name")}, Layers: layers}, nil
}
