// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/field"
)

// Material is a layer of a Substance with a given thickness.
type Material struct {
	Base
	Substance Substance
	// Thickness in metres.
	Thickness float64
}

// Conductance returns k/thickness, and false when the substance has no known
// conductivity.
func (m *Material) Conductance() (float64, bool) {
	n, ok := m.Substance.(*NormalSubstance)
	if !ok || n.ThermalConductivity == nil {
		return 0, false
	}
	return *n.ThermalConductivity / m.Thickness, true
}

var materialType = &field.Type{
	Name: KindMaterial,
	Doc:  "A layer of a substance with a given thickness.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the material."},
		{Name: "substance", Kind: field.Ref, Target: KindSubstance, Doc: "The substance the layer is made of."},
		{Name: "thickness", Kind: field.Float, Doc: "The thickness of the layer, in m."},
	},
}

func buildMaterial(p *field.Parsed) (*Material, error) {
	f := p.Fields
	thickness, _ := f.Float("thickness")
	if thickness <= 0 {
		return nil, diag.Errorf(diag.CodeInvalidValue, p.Line, "thickness of Material '%s' must be positive", f.String("name"))
	}
	return &Material{
		Base:      Base{Name: f.String("name")},
		Substance: f.Get("substance").(Substance),
		Thickness: thickness,
	}, nil
}
