// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/vk/simplemodel/internal/field"
)

// Names of the object kinds. Collection kinds double as top-level keywords.
const (
	KindSubstance    = "Substance"
	KindMaterial     = "Material"
	KindConstruction = "Construction"
	KindSurface      = "Surface"
	KindSpace        = "Space"
	KindFenestration = "Fenestration"
	KindHVAC         = "HVAC"
	KindLuminaire    = "Luminaire"
	KindBuilding     = "Building"

	KindBoundary              = "Boundary"
	KindInfiltration          = "Infiltration"
	KindStandardGas           = "StandardGas"
	KindFenestrationPositions = "FenestrationPositions"
	KindFenestrationType      = "FenestrationType"
)

// Keywords lists the top-level object kinds in their fixed assembly order.
var Keywords = []string{
	KindSubstance,
	KindMaterial,
	KindConstruction,
	KindSurface,
	KindSpace,
	KindFenestration,
	KindHVAC,
	KindLuminaire,
	KindBuilding,
}

// allTypes holds every field table, collection kinds first.
var allTypes = []*field.Type{
	substanceType,
	materialType,
	constructionType,
	surfaceType,
	spaceType,
	fenestrationType,
	hvacType,
	luminaireType,
	buildingType,
	boundaryType,
	infiltrationType,
	standardGasType,
	fenestrationPositionsType,
	fenestrationTypeType,
}

var typesByName = func() map[string]*field.Type {
	m := make(map[string]*field.Type, len(allTypes))
	for _, t := range allTypes {
		m[t.Name] = t
	}
	return m
}()

// Types returns every field table: the collection kinds in keyword order,
// then the embedded kinds.
func Types() []*field.Type {
	out := make([]*field.Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// TypeOf returns the field table of a kind.
func TypeOf(name string) (*field.Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// IsKeyword reports whether name is a top-level object kind.
func IsKeyword(name string) bool {
	for _, k := range Keywords {
		if k == name {
			return true
		}
	}
	return false
}

// References returns, for each keyword, the other keywords its fields refer
// to directly or through embedded kinds.
func References() map[string][]string {
	out := make(map[string][]string, len(Keywords))
	for _, k := range Keywords {
		seen := map[string]bool{}
		collectRefs(typesByName[k], k, seen, map[string]bool{})
		for _, other := range Keywords {
			if seen[other] {
				out[k] = append(out[k], other)
			}
		}
	}
	return out
}

func collectRefs(t *field.Type, self string, seen, visited map[string]bool) {
	if visited[t.Name] {
		return
	}
	visited[t.Name] = true

	var descs []field.Descriptor
	descs = append(descs, t.Fields...)
	for _, v := range t.Variants {
		descs = append(descs, v.Args...)
		descs = append(descs, v.Fields...)
	}
	for _, d := range descs {
		if d.Target == "" {
			continue
		}
		if IsKeyword(d.Target) {
			if d.Target != self {
				seen[d.Target] = true
			}
			continue
		}
		if nested, ok := typesByName[d.Target]; ok {
			collectRefs(nested, self, seen, visited)
		}
	}
}
