package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes_EveryKeywordHasATable(t *testing.T) {
	for _, k := range Keywords {
		typ, ok := TypeOf(k)
		require.True(t, ok, k)
		assert.Equal(t, k, typ.Name)
		assert.True(t, IsKeyword(k))
	}
	assert.False(t, IsKeyword(KindBoundary))
	assert.Len(t, Types(), len(Keywords)+5)
}

func TestReferences(t *testing.T) {
	want := map[string][]string{
		KindMaterial:     {KindSubstance},
		KindConstruction: {KindMaterial},
		KindSurface:      {KindConstruction, KindSpace},
		KindSpace:        {KindBuilding},
		KindFenestration: {KindConstruction, KindSpace},
		KindHVAC:         {KindSpace},
		KindLuminaire:    {KindSpace},
	}
	if diff := cmp.Diff(want, References()); diff != "" {
		t.Errorf("References() mismatch (-want +got):\n%s", diff)
	}
}
