// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines substances, the physical matter materials are made of.
// A substance is written as an enum: `Substance::Normal { ... }` for solids
// and liquids described by their properties, or `Substance::Gas { ... }`
// for gases that may name one of the standard gases.

package model

import (
	"fmt"

	"github.com/vk/simplemodel/internal/field"
)

// Substance is either a *NormalSubstance or a *GasSubstance.
type Substance interface {
	Named
	isSubstance()
}

// NormalSubstance is a substance described by its thermal properties.
// Unset properties are nil.
type NormalSubstance struct {
	Base
	ThermalConductivity  *float64
	SpecificHeatCapacity *float64
	Density              *float64
	SolarAbsorbtance     *float64
	ThermalAbsorbtance   *float64
}

func (*NormalSubstance) isSubstance() {}

// GasSubstance is a gas, optionally one of the standard gases.
type GasSubstance struct {
	Base
	Gas StandardGas
}

func (*GasSubstance) isSubstance() {}

// StandardGas enumerates the gases with tabulated properties.
type StandardGas int

const (
	GasUnspecified StandardGas = iota
	GasAir
	GasArgon
	GasKrypton
	GasXenon
)

var standardGasNames = map[StandardGas]string{
	GasUnspecified: "Unspecified",
	GasAir:         "Air",
	GasArgon:       "Argon",
	GasKrypton:     "Krypton",
	GasXenon:       "Xenon",
}

func (g StandardGas) String() string {
	if s, ok := standardGasNames[g]; ok {
		return s
	}
	return fmt.Sprintf("StandardGas(%d)", int(g))
}

var substanceType = &field.Type{
	Name: KindSubstance,
	Doc:  "The physical matter materials are made of.",
	Variants: []field.Variant{
		{
			Name: "Normal",
			Doc:  "A solid or liquid described by its properties.",
			Fields: []field.Descriptor{
				{Name: "name", Kind: field.String, Doc: "The name of the substance."},
				{Name: "thermal_conductivity", Kind: field.Float, Optional: true, Doc: "Thermal conductivity, in W/m.K."},
				{Name: "specific_heat_capacity", Kind: field.Float, Optional: true, Doc: "Specific heat capacity, in J/kg.K."},
				{Name: "density", Kind: field.Float, Optional: true, Doc: "Density, in kg/m3."},
				{Name: "solar_absorbtance", Kind: field.Float, Optional: true, Doc: "Fraction of solar radiation absorbed."},
				{Name: "thermal_absorbtance", Kind: field.Float, Optional: true, Doc: "Fraction of infrared radiation absorbed."},
			},
		},
		{
			Name: "Gas",
			Doc:  "A gas filling, e.g. between window panes.",
			Fields: []field.Descriptor{
				{Name: "name", Kind: field.String, Doc: "The name of the substance."},
				{Name: "kind", Kind: field.Object, Target: KindStandardGas, Optional: true, Doc: "The standard gas this substance is."},
			},
		},
	},
}

var standardGasType = &field.Type{
	Name: KindStandardGas,
	Doc:  "Gases with tabulated properties.",
	Variants: []field.Variant{
		{Name: "Air"}, {Name: "Argon"}, {Name: "Krypton"}, {Name: "Xenon"},
	},
}

func buildSubstance(p *field.Parsed) (Substance, error) {
	f := p.Fields
	switch p.Variant {
	case "Normal":
		return &NormalSubstance{
			Base:                 Base{Name: f.String("name")},
			ThermalConductivity:  optFloat(f.Float("thermal_conductivity")),
			SpecificHeatCapacity: optFloat(f.Float("specific_heat_capacity")),
			Density:              optFloat(f.Float("density")),
			SolarAbsorbtance:     optFloat(f.Float("solar_absorbtance")),
			ThermalAbsorbtance:   optFloat(f.Float("thermal_absorbtance")),
		}, nil
	case "Gas":
		g := &GasSubstance{Base: Base{Name: f.String("name")}}
		if kind, ok := f.Get("kind").(StandardGas); ok {
			g.Gas = kind
		}
		return g, nil
	}
	panic("model: unhandled Substance variant " + p.Variant)
}

func buildStandardGas(p *field.Parsed) (StandardGas, error) {
	for g, name := range standardGasNames {
		if name == p.Variant {
			return g, nil
		}
	}
	panic("model: unhandled StandardGas variant " + p.Variant)
}
