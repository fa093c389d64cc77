package simstate

import (
	"fmt"
	"strings"
)

// Category is the zone an Element lives in.
type Category uint8

const (
	// Personal values describe occupants, not physical processes.
	Personal Category = iota
	// Operational values are read and written by controllers.
	Operational
	// Physical values are produced by simulated physics only.
	Physical
)

func (c Category) String() string {
	switch c {
	case Personal:
		return "personal"
	case Operational:
		return "operational"
	case Physical:
		return "physical"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "personal":
		return Personal, nil
	case "operational":
		return Operational, nil
	case "physical":
		return Physical, nil
	}
	return 0, fmt.Errorf("unknown state category %q", s)
}

// Kind is the variant tag of an Element.
type Kind uint8

const (
	Clothing Kind = iota
	FenestrationOpenFraction
	HeatingCoolingPowerConsumption
	LuminairePowerConsumption
	SpaceLightingPowerConsumption
	SpaceBrightness
	SpaceDryBulbTemperature
	SpaceInfiltrationVolume
	SpaceInfiltrationTemperature
	SpaceVentilationVolume
	SpaceVentilationTemperature
	SpaceAirExchangeVolume
	SpaceLoudness
	SurfaceNodeTemperature
	FenestrationNodeTemperature

	numKinds
)

type kindInfo struct {
	name     string
	category Category
	arity    int
}

var kinds = [numKinds]kindInfo{
	Clothing:                       {"Clothing", Personal, 0},
	FenestrationOpenFraction:       {"FenestrationOpenFraction", Operational, 1},
	HeatingCoolingPowerConsumption: {"HeatingCoolingPowerConsumption", Operational, 1},
	LuminairePowerConsumption:      {"LuminairePowerConsumption", Operational, 1},
	SpaceLightingPowerConsumption:  {"SpaceLightingPowerConsumption", Operational, 1},
	SpaceBrightness:                {"SpaceBrightness", Physical, 1},
	SpaceDryBulbTemperature:        {"SpaceDryBulbTemperature", Physical, 1},
	SpaceInfiltrationVolume:        {"SpaceInfiltrationVolume", Physical, 1},
	SpaceInfiltrationTemperature:   {"SpaceInfiltrationTemperature", Physical, 1},
	SpaceVentilationVolume:         {"SpaceVentilationVolume", Physical, 1},
	SpaceVentilationTemperature:    {"SpaceVentilationTemperature", Physical, 1},
	SpaceAirExchangeVolume:         {"SpaceAirExchangeVolume", Physical, 2},
	SpaceLoudness:                  {"SpaceLoudness", Physical, 1},
	SurfaceNodeTemperature:         {"SurfaceNodeTemperature", Physical, 2},
	FenestrationNodeTemperature:    {"FenestrationNodeTemperature", Physical, 2},
}

func (k Kind) info() kindInfo {
	if k >= numKinds {
		panic(fmt.Sprintf("simstate: invalid element kind %d", uint8(k)))
	}
	return kinds[k]
}

func (k Kind) String() string { return k.info().name }

// Category is fixed per kind.
func (k Kind) Category() Category { return k.info().category }

// Arity is the number of identifying indices the kind carries.
func (k Kind) Arity() int { return k.info().arity }

// ParseKind looks a kind up by its name.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// KindNames lists every kind name in declaration order.
func KindNames() []string {
	out := make([]string, numKinds)
	for k := range kinds {
		out[k] = kinds[k].name
	}
	return out
}

// Element is one tagged value. It is a plain value type so that a State is
// a single contiguous slice.
type Element struct {
	Kind Kind
	// I and J are the identifying indices, e.g. surface and node. Unused
	// indices are zero.
	I, J  int
	Value float64
}

// New builds an element of kind. It panics when the number of indices does
// not match the kind.
func New(kind Kind, value float64, indices ...int) Element {
	if len(indices) != kind.Arity() {
		panic(fmt.Sprintf("simstate: %s takes %d indices, got %d", kind, kind.Arity(), len(indices)))
	}
	e := Element{Kind: kind, Value: value}
	if len(indices) > 0 {
		e.I = indices[0]
	}
	if len(indices) > 1 {
		e.J = indices[1]
	}
	return e
}

// Category of the element.
func (e Element) Category() Category { return e.Kind.Category() }

// SameShape reports whether o is the same variant with the same indices.
func (e Element) SameShape(o Element) bool {
	return e.Kind == o.Kind && e.I == o.I && e.J == o.J
}

// Name identifies the element without its value, e.g.
// "SurfaceNodeTemperature(3,0)".
func (e Element) Name() string {
	switch e.Kind.Arity() {
	case 0:
		return e.Kind.String()
	case 1:
		return fmt.Sprintf("%s(%d)", e.Kind, e.I)
	default:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.I, e.J)
	}
}

func (e Element) String() string {
	return fmt.Sprintf("%s = %g", e.Name(), e.Value)
}
