package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalPrice(t *testing.T) {
	got, err := FinalPrice(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 90.00, got)

	got, err = FinalPrice(19.99, 0)
	require.NoError(t, err)
	assert.Equal(t, 19.99, got, "no discount should be identity")

	got, err = FinalPrice(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestFinalPriceRoundsHalfUpOnCents(t *testing.T) {
	// 9.99 * 0.85 = 8.4915 -> 8.49
	got, err := FinalPrice(9.99, 15)
	require.NoError(t, err)
	assert.Equal(t, 8.49, got)

	// 10 * 0.875 = 8.75 exactly; 7.37 * 0.5 = 3.685 -> 3.69
	got, err = FinalPrice(7.37, 50)
	require.NoError(t, err)
	assert.Equal(t, 3.69, got)
}

func TestFinalPriceValidation(t *testing.T) {
	_, err := FinalPrice(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = FinalPrice(10, -5)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = FinalPrice(10, 101)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestConvertIsLinearOverRates(t *testing.T) {
	final, err := FinalPrice(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 90*58.5, Convert(final, "ETB"))
	assert.Equal(t, final, Convert(final, "USD"))
}

func TestUnknownCurrencyFallsBackToBase(t *testing.T) {
	assert.Equal(t, 42.5, Convert(42.5, "ZZZ"))
	assert.Equal(t, 1.0, Rate("ZZZ"))
	assert.Equal(t, "$", Symbol("ZZZ"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$19.99", Format(19.99, "USD"))
	assert.Equal(t, "Br 1170.00", Format(1170, "ETB"))
	assert.Equal(t, "€9.20", Format(9.2, "EUR"))
	// unknown code formats with the base symbol
	assert.Equal(t, "$5.00", Format(5, "XXX"))
}
