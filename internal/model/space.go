// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// Space is a volume of air within a building, often a room.
type Space struct {
	Base
	// Volume in m3, nil when unknown.
	Volume       *float64
	Infiltration *Infiltration
	Building     *Building

	DryBulbTemperature      simstate.Slot
	Brightness              simstate.Slot
	Loudness                simstate.Slot
	InfiltrationVolume      simstate.Slot
	InfiltrationTemperature simstate.Slot
	VentilationVolume       simstate.Slot
	VentilationTemperature  simstate.Slot
}

func (s *Space) stateFields() []stateField {
	i := s.Index
	return []stateField{
		{&s.DryBulbTemperature, simstate.New(simstate.SpaceDryBulbTemperature, 0, i)},
		{&s.Brightness, simstate.New(simstate.SpaceBrightness, 0, i)},
		{&s.Loudness, simstate.New(simstate.SpaceLoudness, 0, i)},
		{&s.InfiltrationVolume, simstate.New(simstate.SpaceInfiltrationVolume, 0, i)},
		{&s.InfiltrationTemperature, simstate.New(simstate.SpaceInfiltrationTemperature, 0, i)},
		{&s.VentilationVolume, simstate.New(simstate.SpaceVentilationVolume, 0, i)},
		{&s.VentilationTemperature, simstate.New(simstate.SpaceVentilationTemperature, 0, i)},
	}
}

var spaceType = &field.Type{
	Name: KindSpace,
	Doc:  "A volume of air within a building, often a room.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the space."},
		{Name: "volume", Kind: field.Float, Optional: true, Doc: "The volume of the space, in m3."},
		{Name: "infiltration", Kind: field.Object, Target: KindInfiltration, Optional: true, Doc: "The infiltration model."},
		{Name: "building", Kind: field.Ref, Target: KindBuilding, Optional: true, Doc: "The building the space belongs to."},
	},
}

func buildSpace(p *field.Parsed) (*Space, error) {
	f := p.Fields
	s := &Space{
		Base:   Base{Name: f.String("name")},
		Volume: optFloat(f.Float("volume")),
	}
	if inf, ok := f.Get("infiltration").(Infiltration); ok {
		s.Infiltration = &inf
	}
	if b, ok := f.Get("building").(*Building); ok {
		s.Building = b
	}
	return s, nil
}
