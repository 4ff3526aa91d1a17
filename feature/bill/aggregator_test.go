package bill_test

import (
	"testing"

	"craft-calculator/feature/bill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateSumsByID(t *testing.T) {
	in := []bill.ResolvedComponent{
		{ID: "1", Name: "Oak Wood", Quantity: 8, IsRaw: true, SourceSkill: "Woodcutting"},
		{ID: "2", Name: "Rabbit Hide", Quantity: 2, IsRaw: true},
		{ID: "1", Name: "Oak Wood", Quantity: 16, IsRaw: true, SourceSkill: "Woodcutting"},
	}

	out := bill.Consolidate(in)

	require.Len(t, out, 2)
	assert.Equal(t, "Oak Wood", out[0].Name)
	assert.Equal(t, 24, out[0].Quantity)
	assert.Equal(t, "Rabbit Hide", out[1].Name)
	assert.Equal(t, 2, out[1].Quantity)
}

func TestConsolidateOrdersByName(t *testing.T) {
	in := []bill.ResolvedComponent{
		{ID: "7", Name: "Snowdrop", Quantity: 1},
		{ID: "6", Name: "Essence Crystal", Quantity: 1},
		{ID: "8", Name: "Daffodil", Quantity: 1},
	}

	out := bill.Consolidate(in)

	require.Len(t, out, 3)
	assert.Equal(t, "Daffodil", out[0].Name)
	assert.Equal(t, "Essence Crystal", out[1].Name)
	assert.Equal(t, "Snowdrop", out[2].Name)
}

func TestConsolidateIdempotent(t *testing.T) {
	in := []bill.ResolvedComponent{
		{ID: "1", Name: "Oak Wood", Quantity: 3},
		{ID: "1", Name: "Oak Wood", Quantity: 5},
		{ID: "2", Name: "Rabbit Hide", Quantity: 1},
	}

	once := bill.Consolidate(in)
	twice := bill.Consolidate(once)

	assert.Equal(t, once, twice)

	seen := map[string]bool{}
	for _, comp := range once {
		assert.False(t, seen[comp.ID], "no two entries may share an id")
		seen[comp.ID] = true
	}
}

func TestConsolidateKeepsFirstSeenMetadata(t *testing.T) {
	in := []bill.ResolvedComponent{
		{ID: "1", Name: "Oak Wood", Quantity: 1, IsRaw: true, SourceSkill: "Woodcutting"},
		{ID: "1", Name: "Oak Wood", Quantity: 2, IsRaw: true, SourceSkill: "Woodcutting"},
	}

	out := bill.Consolidate(in)

	require.Len(t, out, 1)
	assert.True(t, out[0].IsRaw)
	assert.Equal(t, "Woodcutting", out[0].SourceSkill)
	assert.Equal(t, 3, out[0].Quantity)
}

func TestConsolidateEmpty(t *testing.T) {
	assert.Empty(t, bill.Consolidate(nil))
}
