package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/scanner"
	"github.com/vk/simplemodel/internal/simstate"
)

// build parses body as an object of kind and constructs it.
func build(t *testing.T, b *Builder, kind, body string) (any, error) {
	t.Helper()
	typ, ok := TypeOf(kind)
	require.True(t, ok, "unknown kind %s", kind)
	p, err := field.NewResolver(b).Parse(typ, scanner.New([]byte(body), 1))
	if err != nil {
		return nil, err
	}
	return b.Construct(p)
}

func mustBuild(t *testing.T, b *Builder, kind, body string) any {
	t.Helper()
	v, err := build(t, b, kind, body)
	require.NoError(t, err)
	return v
}

func TestBuilder_ReferencesKeepIdentity(t *testing.T) {
	b := NewBuilder(New())
	sub := mustBuild(t, b, KindSubstance, `::Normal { name: "brick", thermal_conductivity: 0.8 }`)
	mat := mustBuild(t, b, KindMaterial, `{ name: "layer", substance: "brick", thickness: 0.1 }`)
	con := mustBuild(t, b, KindConstruction, `{ name: "wall", layers: ["layer", "layer"] }`)

	m := b.Model()
	require.Len(t, m.Materials, 1)
	assert.Same(t, sub.(*NormalSubstance), m.Materials[0].Substance.(*NormalSubstance))
	c := con.(*Construction)
	require.Len(t, c.Layers, 2)
	assert.Same(t, mat.(*Material), c.Layers[0])
	assert.Same(t, c.Layers[0], c.Layers[1])
	assert.InDelta(t, 0.25, c.RValue(), 1e-9)
}

func TestBuilder_InlineObjectsJoinCollections(t *testing.T) {
	b := NewBuilder(New())
	mustBuild(t, b, KindMaterial, `{
		name: "layer",
		substance: Substance::Normal { name: "concrete", density: 2400 },
		thickness: 0.2,
	}`)

	m := b.Model()
	require.Len(t, m.Substances, 1)
	assert.Equal(t, "concrete", m.Substances[0].ObjectName())
	assert.Equal(t, 0, m.Substances[0].ObjectIndex())

	found, ok := b.Find(KindSubstance, "concrete")
	require.True(t, ok)
	assert.Same(t, m.Substances[0].(*NormalSubstance), found.(*NormalSubstance))
}

func TestBuilder_IndexesFollowInsertion(t *testing.T) {
	b := NewBuilder(New())
	for _, name := range []string{"a", "b", "c"} {
		mustBuild(t, b, KindBuilding, `{ name: "`+name+`" }`)
	}
	for i, bld := range b.Model().Buildings {
		assert.Equal(t, i, bld.Index)
	}
	assert.Equal(t, []string{"a", "b", "c"}, b.Names(KindBuilding))
	assert.Equal(t, 3, b.Model().Count(KindBuilding))
}

func TestBuilder_DuplicateNameWarns(t *testing.T) {
	b := NewBuilder(New())
	first := mustBuild(t, b, KindBuilding, `{ name: "home" }`)
	mustBuild(t, b, KindBuilding, `{ name: "home", n_storeys: 2 }`)

	require.Len(t, b.Warnings(), 1)
	assert.Equal(t, diag.CodeDuplicate, b.Warnings()[0].Code)

	found, ok := b.Find(KindBuilding, "home")
	require.True(t, ok)
	assert.Same(t, first.(*Building), found.(*Building))
}

func TestBuilder_Enums(t *testing.T) {
	b := NewBuilder(New())
	gas := mustBuild(t, b, KindSubstance, `::Gas { name: "fill", kind: StandardGas::Argon }`)
	assert.Equal(t, GasArgon, gas.(*GasSubstance).Gas)

	space := mustBuild(t, b, KindSpace, `{
		name: "kitchen",
		volume: 30,
		infiltration: Infiltration::DesignFlowRate(1, 0, 0, 0, 0.1),
	}`).(*Space)
	require.NotNil(t, space.Infiltration)
	assert.Equal(t, InfiltrationDesignFlowRate, space.Infiltration.Kind)
	assert.Equal(t, []float64{1, 0, 0, 0, 0.1}, space.Infiltration.Params)
	require.NotNil(t, space.Volume)
	assert.Equal(t, 30.0, *space.Volume)

	hvac := mustBuild(t, b, KindHVAC, `::IdealHeaterCooler { name: "ideal", target_spaces: ["kitchen"] }`).(HVAC)
	assert.Equal(t, "IdealHeaterCooler", hvac.Variant())
	assert.True(t, hvac.CanCool())
	assert.Same(t, space, hvac.(*IdealHeaterCooler).TargetSpaces[0])
}

func TestBuilder_Errors(t *testing.T) {
	b := NewBuilder(New())

	_, err := build(t, b, KindMaterial, `{ name: "m", substance: "nothing", thickness: 0.1 }`)
	require.Error(t, err)
	assert.Equal(t, diag.CodeUnknownReference, diag.CodeOf(err))

	mustBuild(t, b, KindSubstance, `::Normal { name: "s" }`)
	_, err = build(t, b, KindMaterial, `{ name: "m", substance: "s", thickness: 0 }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thickness of Material 'm' must be positive")
	assert.Empty(t, b.Model().Materials)
}

func TestBuilder_Rollback(t *testing.T) {
	b := NewBuilder(New())
	mustBuild(t, b, KindBuilding, `{ name: "home" }`)
	cp := b.Checkpoint()

	mustBuild(t, b, KindMaterial, `{
		name: "layer",
		substance: Substance::Normal { name: "concrete" },
		thickness: 0.2,
	}`)
	mustBuild(t, b, KindSpace, `{ name: "room", building: "home" }`)
	mustBuild(t, b, KindBuilding, `{ name: "home" }`)
	require.Len(t, b.Warnings(), 1)
	require.Equal(t, 1, b.Pending())

	b.Rollback(cp)

	m := b.Model()
	assert.Empty(t, m.Substances)
	assert.Empty(t, m.Materials)
	assert.Empty(t, m.Spaces)
	assert.Equal(t, []string{"home"}, b.Names(KindBuilding))
	assert.Empty(t, b.Warnings())
	assert.Equal(t, 0, b.Pending())

	st := simstate.NewState(0)
	b.Allocate(st, nil)
	assert.Equal(t, 0, st.Len())
	assert.Panics(t, func() { b.Rollback(cp) })
}

func TestBuilder_Allocate(t *testing.T) {
	b := NewBuilder(New())
	mustBuild(t, b, KindSubstance, `::Normal { name: "glass" }`)
	mustBuild(t, b, KindMaterial, `{ name: "pane", substance: "glass", thickness: 0.004 }`)
	mustBuild(t, b, KindConstruction, `{ name: "single", layers: ["pane"] }`)
	mustBuild(t, b, KindSpace, `{ name: "room" }`)
	surf := mustBuild(t, b, KindSurface, `{
		name: "wall", construction: "single",
		polygon: [0,0,0, 1,0,0, 1,0,1, 0,0,1],
		front_boundary: Boundary::Space("room"),
	}`).(*Surface)
	win := mustBuild(t, b, KindFenestration, `{
		name: "window", construction: "single",
		polygon: [0,0,0, 1,0,0, 1,0,1, 0,0,1],
		operation_type: FenestrationPositions::Binary,
		fenestration_type: FenestrationType::Window,
	}`).(*Fenestration)
	lum := mustBuild(t, b, KindLuminaire, `{ name: "lamp", target_space: "room" }`).(*Luminaire)

	st := simstate.NewState(0)
	b.Allocate(st, map[simstate.Kind]float64{simstate.SpaceDryBulbTemperature: 22})

	// window open fraction and lamp are operational; 7 space values and
	// two node temperatures for each of wall and window are physical.
	assert.Equal(t, 0, st.NPersonal())
	assert.Equal(t, 2, st.NOperational())
	assert.Equal(t, 11, st.NPhysical())

	assert.Equal(t, 0, win.OpenFraction.Index())
	assert.Equal(t, 1, lum.PowerConsumption.Index())
	assert.Equal(t, simstate.New(simstate.SurfaceNodeTemperature, 0, 0, 1), st.At(surf.LastNodeTemperature.Index()))

	room := b.Model().Spaces[0]
	assert.Equal(t, 22.0, room.DryBulbTemperature.Read(st))
	assert.Equal(t, 0.0, room.Loudness.Read(st))
	assert.Equal(t, BoundarySpace, surf.FrontBoundary.Kind)
	assert.Same(t, room, surf.FrontBoundary.Space)
	assert.Nil(t, surf.BackBoundary)

	assert.Panics(t, func() { b.Allocate(st, nil) })
}

func TestPolygon_Area(t *testing.T) {
	square := Polygon{0, 0, 0, 2, 0, 0, 2, 0, 3, 0, 0, 3}
	assert.Equal(t, 4, square.Vertices())
	assert.InDelta(t, 6.0, square.Area(), 1e-9)
}
