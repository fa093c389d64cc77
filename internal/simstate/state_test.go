package simstate

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(value float64, index int) *State {
	s := NewState(6)
	s.Push(New(Clothing, value))
	s.Push(New(Clothing, value))
	s.Push(New(SpaceLightingPowerConsumption, value, index))
	s.Push(New(SpaceLightingPowerConsumption, value, index))
	s.Push(New(SpaceDryBulbTemperature, value, index))
	s.Push(New(SpaceDryBulbTemperature, value, index))
	return s
}

func TestPush_Counts(t *testing.T) {
	s := sample(1, 1)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 2, s.NPersonal())
	assert.Equal(t, 2, s.NOperational())
	assert.Equal(t, 2, s.NPhysical())

	lo, hi := s.Range(Operational)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 4, hi)
}

func TestPush_ReturnsPositions(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, 0, s.Push(New(FenestrationOpenFraction, 0, 0)))
	assert.Equal(t, 1, s.Push(New(SurfaceNodeTemperature, 0, 3, 1)))
	assert.Equal(t, 2, s.Push(New(SpaceLoudness, 0, 3)))
}

func TestPush_CategoryOrder(t *testing.T) {
	t.Run("personal after operational panics", func(t *testing.T) {
		s := NewState(0)
		s.Push(New(LuminairePowerConsumption, 0, 0))
		assert.PanicsWithValue(t, "simstate: personal element Clothing pushed after operational or physical elements", func() {
			s.Push(New(Clothing, 1))
		})
	})

	t.Run("personal after physical panics", func(t *testing.T) {
		s := NewState(0)
		s.Push(New(SpaceBrightness, 0, 0))
		assert.Panics(t, func() { s.Push(New(Clothing, 1)) })
	})

	t.Run("operational after physical panics", func(t *testing.T) {
		s := NewState(0)
		s.Push(New(SpaceBrightness, 0, 0))
		assert.PanicsWithValue(t, "simstate: operational element FenestrationOpenFraction(2) pushed after physical elements", func() {
			s.Push(New(FenestrationOpenFraction, 0, 2))
		})
	})

	t.Run("skipping zones is allowed", func(t *testing.T) {
		s := NewState(0)
		assert.NotPanics(t, func() {
			s.Push(New(Clothing, 1))
			s.Push(New(SpaceBrightness, 0, 0))
			s.Push(New(SpaceBrightness, 0, 1))
		})
		assert.Equal(t, 1, s.NPersonal())
		assert.Equal(t, 0, s.NOperational())
		assert.Equal(t, 2, s.NPhysical())
	})
}

func TestCopyOperationalStateFrom(t *testing.T) {
	a := sample(1, 1)
	b := sample(2, 2)

	b.CopyOperationalStateFrom(a)

	assert.Equal(t, New(Clothing, 2), b.At(0))
	assert.Equal(t, New(Clothing, 2), b.At(1))
	assert.Equal(t, New(SpaceLightingPowerConsumption, 1, 1), b.At(2))
	assert.Equal(t, New(SpaceLightingPowerConsumption, 1, 1), b.At(3))
	assert.Equal(t, New(SpaceDryBulbTemperature, 2, 2), b.At(4))
	assert.Equal(t, New(SpaceDryBulbTemperature, 2, 2), b.At(5))
}

func TestCopyZone_VariantMismatchPanics(t *testing.T) {
	if !checkShapes {
		t.Skip("variant checks are compiled out")
	}
	a := NewState(0)
	a.Push(New(SpaceBrightness, 1, 0))
	b := NewState(0)
	b.Push(New(SpaceLoudness, 1, 0))

	assert.PanicsWithValue(t, "simstate: physical zone mismatch at 0: SpaceLoudness vs SpaceBrightness", func() {
		b.CopyPhysicalStateFrom(a)
	})
}

func TestSelectiveCopyIsolation(t *testing.T) {
	zones := []struct {
		name string
		copy func(dst, src *State)
		zone Category
	}{
		{"personal", (*State).CopyPersonalStateFrom, Personal},
		{"operational", (*State).CopyOperationalStateFrom, Operational},
		{"physical", (*State).CopyPhysicalStateFrom, Physical},
	}

	for _, z := range zones {
		t.Run(z.name, func(t *testing.T) {
			src := sample(1, 1)
			dst := sample(2, 1)
			before := dst.Clone()

			z.copy(dst, src)

			lo, hi := dst.Range(z.zone)
			for i := 0; i < dst.Len(); i++ {
				if i >= lo && i < hi {
					assert.Equal(t, src.At(i), dst.At(i), "element %d should come from the source", i)
				} else {
					assert.Equal(t, before.At(i), dst.At(i), "element %d should be untouched", i)
				}
			}
		})
	}
}

func TestCopyFrom(t *testing.T) {
	src := sample(1, 1)
	dst := sample(2, 1)
	dst.CopyFrom(src)
	if diff := cmp.Diff(src.Elements(), dst.Elements()); diff != "" {
		t.Errorf("CopyFrom mismatch (-want +got):\n%s", diff)
	}

	want := fmt.Sprintf("simstate: copying 0 elements into a state of %d", dst.Len())
	assert.PanicsWithValue(t, want, func() { dst.CopyFrom(NewState(0)) })
	assert.PanicsWithValue(t, want, func() { dst.CopyPhysicalStateFrom(NewState(0)) })
}

func TestClone_IsIndependent(t *testing.T) {
	s := sample(1, 1)
	c := s.Clone()
	c.SetValue(0, 42)

	assert.Equal(t, 1.0, s.Value(0))
	assert.Equal(t, 42.0, c.Value(0))
	assert.Equal(t, s.NPersonal(), c.NPersonal())
	assert.Equal(t, s.NOperational(), c.NOperational())

	// Clones keep the push rules of the original.
	assert.Panics(t, func() { c.Push(New(Clothing, 0)) })
}

func TestFind(t *testing.T) {
	s := sample(1, 7)
	i, ok := s.Find(New(SpaceDryBulbTemperature, 0, 7))
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = s.Find(New(SpaceDryBulbTemperature, 0, 8))
	assert.False(t, ok)
}

func TestElement(t *testing.T) {
	assert.Equal(t, "SurfaceNodeTemperature(3,0)", New(SurfaceNodeTemperature, 1, 3, 0).Name())
	assert.Equal(t, "Clothing = 0.5", New(Clothing, 0.5).String())
	assert.Equal(t, Operational, New(HeatingCoolingPowerConsumption, 0, 1).Category())
	assert.Panics(t, func() { New(SpaceBrightness, 0) })

	k, ok := ParseKind("SpaceLoudness")
	require.True(t, ok)
	assert.Equal(t, SpaceLoudness, k)
	assert.Len(t, KindNames(), int(numKinds))
}

func TestSlot(t *testing.T) {
	var s Slot
	assert.False(t, s.IsSet())
	assert.PanicsWithValue(t, "simstate: slot read before assignment", func() { s.Index() })

	s.Set(4)
	assert.Equal(t, 4, s.Index())
	assert.PanicsWithValue(t, "simstate: slot assigned twice", func() { s.Set(5) })
}

func TestSnapshot_RoundTripAndApply(t *testing.T) {
	src := sample(1, 1)
	var buf bytes.Buffer
	require.NoError(t, src.Snapshot().Encode(&buf))
	assert.Contains(t, buf.String(), "name: SpaceDryBulbTemperature(1)")

	snap, err := DecodeSnapshot(&buf)
	require.NoError(t, err)
	require.Len(t, snap.Elements, 6)

	dst := sample(2, 1)
	require.NoError(t, snap.Apply(dst, Physical))
	assert.Equal(t, 2.0, dst.Value(0))
	assert.Equal(t, 2.0, dst.Value(2))
	assert.Equal(t, 1.0, dst.Value(4))

	require.NoError(t, snap.Apply(dst))
	assert.Equal(t, 1.0, dst.Value(0))

	other := sample(2, 9)
	assert.ErrorContains(t, snap.Apply(other, Physical), "state has SpaceDryBulbTemperature(9)")
	assert.ErrorContains(t, snap.Apply(NewState(0)), "snapshot has 6 elements, state has 0")
}
