// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
)

// Building groups spaces and carries site data used by infiltration models.
type Building struct {
	Base
	NStoreys         *int
	ShelterClass     string
	WeatherShielding string
}

var buildingType = &field.Type{
	Name: KindBuilding,
	Doc:  "A building, grouping spaces.",
	Fields: []field.Descriptor{
		{Name: "name", Kind: field.String, Doc: "The name of the building."},
		{Name: "n_storeys", Kind: field.Integer, Optional: true, Doc: "Number of storeys above ground."},
		{Name: "shelter_class", Kind: field.String, Optional: true, Doc: "Shelter class of the site, e.g. \"Urban\"."},
		{Name: "weather_shielding", Kind: field.String, Optional: true, Doc: "Weather shielding of the site, e.g. \"Normal\"."},
	},
}

func buildBuilding(p *field.Parsed) (*Building, error) {
	f := p.Fields
	b := &Building{
		Base:             Base{Name: f.String("name")},
		ShelterClass:     f.String("shelter_class"),
		WeatherShielding: f.String("weather_shielding"),
	}
	if n, ok := f.Int("n_storeys"); ok {
		b.NStoreys = &n
	}
	return b, nil
}
