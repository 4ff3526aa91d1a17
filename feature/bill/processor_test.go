package bill_test

import (
	"context"
	"testing"

	"craft-calculator/feature/bill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProcessor(t *testing.T) *bill.Processor {
	t.Helper()
	resolver := bill.NewResolver(newCache(t, huntingSnapshot()), zap.NewNop())
	return bill.NewProcessor(resolver)
}

func TestProcessNoviceHuntingBow(t *testing.T) {
	p := newProcessor(t)

	out := p.Process(context.Background(), []bill.Entry{
		{Identifier: "Novice Hunting Bow", Quantity: 1},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "Oak Wood", out[0].Name)
	assert.Equal(t, 8, out[0].Quantity)
	assert.True(t, out[0].IsRaw)
	assert.Equal(t, "Rabbit Hide", out[1].Name)
	assert.Equal(t, 2, out[1].Quantity)
	assert.True(t, out[1].IsRaw)
}

func TestProcessMagicPowder(t *testing.T) {
	p := newProcessor(t)

	out := p.Process(context.Background(), []bill.Entry{
		{Identifier: "Magic Powder", Quantity: 1},
	})

	require.Len(t, out, 3)
	assert.Equal(t, "Daffodil", out[0].Name)
	assert.Equal(t, "Essence Crystal", out[1].Name)
	assert.Equal(t, "Snowdrop", out[2].Name)
	for _, comp := range out {
		assert.Equal(t, 1, comp.Quantity)
		assert.True(t, comp.IsRaw)
	}
}

func TestProcessMultiLineBillConsolidates(t *testing.T) {
	p := newProcessor(t)

	// Two bows plus loose timber share the Oak Wood leaf.
	out := p.Process(context.Background(), []bill.Entry{
		{Identifier: "Novice Hunting Bow", Quantity: 2},
		{Identifier: "Oak Timber", Quantity: 4},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "Oak Wood", out[0].Name)
	assert.Equal(t, 20, out[0].Quantity) // 2*8 + 4
	assert.Equal(t, "Rabbit Hide", out[1].Name)
	assert.Equal(t, 4, out[1].Quantity)
}

func TestProcessEmptyBill(t *testing.T) {
	p := newProcessor(t)

	out := p.Process(context.Background(), nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestProcessSkipsMalformedEntries(t *testing.T) {
	p := newProcessor(t)

	out := p.Process(context.Background(), []bill.Entry{
		{Identifier: "", Quantity: 3},
		{Identifier: "Oak Wood", Quantity: 0},
		{Identifier: "Oak Wood", Quantity: -2},
		{Identifier: "Oak Wood", Quantity: 5},
	})

	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Quantity)
}

func TestProcessUnknownItemDegrades(t *testing.T) {
	p := newProcessor(t)

	out := p.Process(context.Background(), []bill.Entry{
		{Identifier: "Novice Hunting Bow", Quantity: 1},
		{Identifier: "Dragon Scale", Quantity: 2},
	})

	require.Len(t, out, 3)
	var unknown *bill.ResolvedComponent
	for i := range out {
		if out[i].IsUnknown {
			unknown = &out[i]
		}
	}
	require.NotNil(t, unknown, "bill with an unknown line still yields a flagged partial result")
	assert.Equal(t, "Dragon Scale", unknown.Name)
	assert.Equal(t, 2, unknown.Quantity)
}
