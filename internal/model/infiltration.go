// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
)

// InfiltrationKind selects the infiltration model of a space.
type InfiltrationKind int

const (
	InfiltrationConstant InfiltrationKind = iota
	InfiltrationBlast
	InfiltrationDoe2
	InfiltrationDesignFlowRate
	InfiltrationEffectiveAirLeakageArea
)

var infiltrationNames = []string{
	InfiltrationConstant:                "Constant",
	InfiltrationBlast:                   "Blast",
	InfiltrationDoe2:                    "Doe2",
	InfiltrationDesignFlowRate:          "DesignFlowRate",
	InfiltrationEffectiveAirLeakageArea: "EffectiveAirLeakageArea",
}

func (k InfiltrationKind) String() string { return infiltrationNames[k] }

// Infiltration is an infiltration model and its coefficients, in the order
// they are written.
type Infiltration struct {
	Kind   InfiltrationKind
	Params []float64
}

var infiltrationType = &field.Type{
	Name: KindInfiltration,
	Doc:  "Air leaking into a space from outdoors.",
	Variants: []field.Variant{
		{
			Name: "Constant",
			Doc:  "A constant flow, in m3/s.",
			Args: []field.Descriptor{{Name: "flow", Kind: field.Float}},
		},
		{
			Name: "Blast",
			Doc:  "BLAST model with the given design flow, in m3/s.",
			Args: []field.Descriptor{{Name: "flow", Kind: field.Float}},
		},
		{
			Name: "Doe2",
			Doc:  "DOE-2 model with the given design flow, in m3/s.",
			Args: []field.Descriptor{{Name: "flow", Kind: field.Float}},
		},
		{
			Name: "DesignFlowRate",
			Doc:  "Design flow rate model: A, B, C, D coefficients and the design flow.",
			Args: []field.Descriptor{
				{Name: "a", Kind: field.Float},
				{Name: "b", Kind: field.Float},
				{Name: "c", Kind: field.Float},
				{Name: "d", Kind: field.Float},
				{Name: "flow", Kind: field.Float},
			},
		},
		{
			Name: "EffectiveAirLeakageArea",
			Doc:  "Effective leakage area model, area in m2.",
			Args: []field.Descriptor{{Name: "area", Kind: field.Float}},
		},
	},
}

func buildInfiltration(p *field.Parsed) (Infiltration, error) {
	inf := Infiltration{Params: make([]float64, len(p.Args))}
	for i, a := range p.Args {
		inf.Params[i] = a.(float64)
	}
	for k, name := range infiltrationNames {
		if name == p.Variant {
			inf.Kind = InfiltrationKind(k)
			return inf, nil
		}
	}
	panic("model: unhandled Infiltration variant " + p.Variant)
}
