// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// Model is the object graph of one building model. Collections keep
// insertion order and every object's Index is its position in them.
type Model struct {
	Substances    []Substance
	Materials     []*Material
	Constructions []*Construction
	Surfaces      []*Surface
	Spaces        []*Space
	Fenestrations []*Fenestration
	HVACs         []HVAC
	Luminaires    []*Luminaire
	Buildings     []*Building
}

// New returns an empty Model.
func New() *Model {
	return &Model{}
}

func (m *Model) AddSubstance(s Substance) Substance            { return insert(&m.Substances, s) }
func (m *Model) AddMaterial(x *Material) *Material             { return insert(&m.Materials, x) }
func (m *Model) AddConstruction(x *Construction) *Construction { return insert(&m.Constructions, x) }
func (m *Model) AddSurface(x *Surface) *Surface                { return insert(&m.Surfaces, x) }
func (m *Model) AddSpace(x *Space) *Space                      { return insert(&m.Spaces, x) }
func (m *Model) AddFenestration(x *Fenestration) *Fenestration { return insert(&m.Fenestrations, x) }
func (m *Model) AddHVAC(x HVAC) HVAC                           { return insert(&m.HVACs, x) }
func (m *Model) AddLuminaire(x *Luminaire) *Luminaire          { return insert(&m.Luminaires, x) }
func (m *Model) AddBuilding(x *Building) *Building             { return insert(&m.Buildings, x) }

// truncate drops every object of the collection of kind from position n on.
func (m *Model) truncate(kind string, n int) {
	switch kind {
	case KindSubstance:
		truncate(&m.Substances, n)
	case KindMaterial:
		truncate(&m.Materials, n)
	case KindConstruction:
		truncate(&m.Constructions, n)
	case KindSurface:
		truncate(&m.Surfaces, n)
	case KindSpace:
		truncate(&m.Spaces, n)
	case KindFenestration:
		truncate(&m.Fenestrations, n)
	case KindHVAC:
		truncate(&m.HVACs, n)
	case KindLuminaire:
		truncate(&m.Luminaires, n)
	case KindBuilding:
		truncate(&m.Buildings, n)
	}
}

// Find searches the collection of kind for the first object called name.
func (m *Model) Find(kind, name string) (Named, bool) {
	switch kind {
	case KindSubstance:
		return lookup(m.Substances, name)
	case KindMaterial:
		return lookup(m.Materials, name)
	case KindConstruction:
		return lookup(m.Constructions, name)
	case KindSurface:
		return lookup(m.Surfaces, name)
	case KindSpace:
		return lookup(m.Spaces, name)
	case KindFenestration:
		return lookup(m.Fenestrations, name)
	case KindHVAC:
		return lookup(m.HVACs, name)
	case KindLuminaire:
		return lookup(m.Luminaires, name)
	case KindBuilding:
		return lookup(m.Buildings, name)
	}
	return nil, false
}

// Names lists the object names of the collection of kind.
func (m *Model) Names(kind string) []string {
	switch kind {
	case KindSubstance:
		return namesOf(m.Substances)
	case KindMaterial:
		return namesOf(m.Materials)
	case KindConstruction:
		return namesOf(m.Constructions)
	case KindSurface:
		return namesOf(m.Surfaces)
	case KindSpace:
		return namesOf(m.Spaces)
	case KindFenestration:
		return namesOf(m.Fenestrations)
	case KindHVAC:
		return namesOf(m.HVACs)
	case KindLuminaire:
		return namesOf(m.Luminaires)
	case KindBuilding:
		return namesOf(m.Buildings)
	}
	return nil
}

// Count is the size of the collection of kind.
func (m *Model) Count(kind string) int {
	return len(m.Names(kind))
}
