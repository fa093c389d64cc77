// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// Luminaire is a light source.
type Luminaire struct {
	Base
	// MaxPower in W.
	MaxPower *float64
	// TargetSpace receives the heat the luminaire dissipates. Exterior
	// luminaires have none.
	TargetSpace *Space

	PowerConsumption simstate.Slot
}

func (l *Luminaire) stateFields() []stateField {
	return []stateField{
		{&l.PowerConsumption, simstate.New(simstate.LuminairePowerConsumption, 0, l.Index)},
	}
}

var luminaireType = &field.Type{
	Name: KindLuminaire,
	Doc:  "A light source.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the luminaire."},
		{Name: "max_power", Kind: field.Float, Optional: true, Doc: "Maximum power consumption, in W."},
		{Name: "target_space", Kind: field.Ref, Target: KindSpace, Optional: true, Doc: "The space that receives its heat."},
	},
}

func buildLuminaire(p *field.Parsed) (*Luminaire, error) {
	f := p.Fields
	l := &Luminaire{
		Base:     Base{Name: f.String("name")},
		MaxPower: optFloat(f.Float("max_power")),
	}
	if s, ok := f.Get("target_space").(*Space); ok {
		l.TargetSpace = s
	}
	return l, nil
}
