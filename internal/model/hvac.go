// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// HVAC systems are written as an enum, one variant per kind of system.
// Every system owns one operational value: its heating or cooling power
// consumption, which a controller sets on each step.

package model

import (
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/simstate"
)

// HVAC is a heating or cooling system.
type HVAC interface {
	Named
	// Variant is the name the system is written with, e.g. "ElectricHeater".
	Variant() string
	CanHeat() bool
	CanCool() bool
	// Consumption is the slot of the heating/cooling power consumption.
	Consumption() *simstate.Slot
	stateful
}

// ElectricHeater heats a single space.
type ElectricHeater struct {
	Base
	TargetSpace     *Space
	MaxHeatingPower *float64

	HeatingCoolingConsumption simstate.Slot
}

func (*ElectricHeater) Variant() string               { return "ElectricHeater" }
func (*ElectricHeater) CanHeat() bool                 { return true }
func (*ElectricHeater) CanCool() bool                 { return false }
func (h *ElectricHeater) Consumption() *simstate.Slot { return &h.HeatingCoolingConsumption }
func (h *ElectricHeater) stateFields() []stateField   { return consumption(h.Index, &h.HeatingCoolingConsumption) }

// IdealHeaterCooler delivers exactly the heating or cooling its spaces need.
type IdealHeaterCooler struct {
	Base
	TargetSpaces    []*Space
	MaxHeatingPower *float64
	MaxCoolingPower *float64

	HeatingCoolingConsumption simstate.Slot
}

func (*IdealHeaterCooler) Variant() string               { return "IdealHeaterCooler" }
func (*IdealHeaterCooler) CanHeat() bool                 { return true }
func (*IdealHeaterCooler) CanCool() bool                 { return true }
func (h *IdealHeaterCooler) Consumption() *simstate.Slot { return &h.HeatingCoolingConsumption }
func (h *IdealHeaterCooler) stateFields() []stateField   { return consumption(h.Index, &h.HeatingCoolingConsumption) }

func consumption(index int, slot *simstate.Slot) []stateField {
	return []stateField{{slot, simstate.New(simstate.HeatingCoolingPowerConsumption, 0, index)}}
}

var hvacType = &field.Type{
	Name: KindHVAC,
	Doc:  "A heating or cooling system.",
	Variants: []field.Variant{
		{
			Name: "ElectricHeater",
			Doc:  "An electric heater serving one space.",
			Fields: []field.Descriptor{
				{Name: "name", Kind: field.String, Doc: "The name of the system."},
				{Name: "target_space", Kind: field.Ref, Target: KindSpace, Optional: true, Doc: "The space it heats."},
				{Name: "max_heating_power", Kind: field.Float, Optional: true, Doc: "Maximum heating power, in W."},
			},
		},
		{
			Name: "IdealHeaterCooler",
			Doc:  "A system that meets any heating or cooling demand of its spaces.",
			Fields: []field.Descriptor{
				{Name: "name", Kind: field.String, Doc: "The name of the system."},
				{Name: "target_spaces", Kind: field.List, Elem: field.Ref, Target: KindSpace, Doc: "The spaces it serves."},
				{Name: "max_heating_power", Kind: field.Float, Optional: true, Doc: "Maximum heating power, in W."},
				{Name: "max_cooling_power", Kind: field.Float, Optional: true, Doc: "Maximum cooling power, in W."},
			},
		},
	},
}

func buildHVAC(p *field.Parsed) (HVAC, error) {
	f := p.Fields
	switch p.Variant {
	case "ElectricHeater":
		h := &ElectricHeater{
			Base:            Base{Name: f.String("name")},
			MaxHeatingPower: optFloat(f.Float("max_heating_power")),
		}
		if s, ok := f.Get("target_space").(*Space); ok {
			h.TargetSpace = s
		}
		return h, nil
	case "IdealHeaterCooler":
		h := &IdealHeaterCooler{
			Base:            Base{Name: f.String("name")},
			MaxHeatingPower: optFloat(f.Float("max_heating_power")),
			MaxCoolingPower: optFloat(f.Float("max_cooling_power")),
		}
		for _, s := range f.List("target_spaces") {
			h.TargetSpaces = append(h.TargetSpaces, s.(*Space))
		}
		return h, nil
	}
	panic("model: unhandled HVAC variant " + p.Variant)
}
