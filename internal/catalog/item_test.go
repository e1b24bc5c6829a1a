package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComputesFinalPrice(t *testing.T) {
	item, err := New(1, "Leather Bag", 100, 10)
	require.NoError(t, err)
	assert.Equal(t, 90.00, item.FinalPrice)
	assert.True(t, item.HasDiscount())
}

func TestMutatorsRecomputeEagerly(t *testing.T) {
	item, err := New(1, "Leather Bag", 100, 10)
	require.NoError(t, err)

	require.NoError(t, item.SetBasePrice(200))
	assert.Equal(t, 180.00, item.FinalPrice)

	require.NoError(t, item.SetDiscount(25))
	assert.Equal(t, 150.00, item.FinalPrice)

	require.NoError(t, item.SetDiscount(0))
	assert.Equal(t, 200.00, item.FinalPrice)
	assert.False(t, item.HasDiscount())
}

func TestMutatorsRejectInvalidInputsWithoutSideEffects(t *testing.T) {
	item, err := New(1, "Leather Bag", 100, 10)
	require.NoError(t, err)

	assert.Error(t, item.SetBasePrice(-5))
	assert.Error(t, item.SetDiscount(150))

	// failed mutations leave both inputs and the derived price untouched
	assert.Equal(t, 100.00, item.BasePrice)
	assert.Equal(t, 10.00, item.DiscountPct)
	assert.Equal(t, 90.00, item.FinalPrice)
}

func TestCurrencyViews(t *testing.T) {
	item, err := New(2, "Scarf", 100, 10)
	require.NoError(t, err)

	assert.Equal(t, 90*58.5, item.FinalPriceIn("ETB"))
	assert.Equal(t, 100*58.5, item.BasePriceIn("ETB"))
	assert.Equal(t, 90.00, item.FinalPriceIn("ZZZ"), "unknown currency converts as identity")
}

func TestDisplayPriceFollowsSelectedCurrency(t *testing.T) {
	item, err := New(3, "Hat", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, "$20.00", item.DisplayPrice())

	item.SetDisplayCurrency("ETB")
	assert.Equal(t, "Br 1170.00", item.DisplayPrice())

	// price changes show up on the next read with no extra wiring
	require.NoError(t, item.SetBasePrice(10))
	assert.Equal(t, "Br 585.00", item.DisplayPrice())
}
