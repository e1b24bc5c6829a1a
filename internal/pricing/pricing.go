package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice    = errors.New("pricing: base price must not be negative")
	ErrInvalidDiscount = errors.New("pricing: discount percent must be between 0 and 100")
)

// FinalPrice applies a percentage discount to a base-currency price and
// rounds the result half-up on the cent value.
func FinalPrice(basePrice, discountPct float64) (float64, error) {
	if basePrice < 0 {
		return 0, ErrInvalidPrice
	}
	if discountPct < 0 || discountPct > 100 {
		return 0, ErrInvalidDiscount
	}
	return RoundCents(basePrice * (1 - discountPct/100)), nil
}

// RoundCents rounds an amount to two decimal places, half-up.
func RoundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// Convert expresses a base-currency amount in the target currency.
// No rounding happens here; rounding belongs to FinalPrice and Format.
func Convert(amountInBase float64, code string) float64 {
	return amountInBase * Rate(code)
}

// Format renders an amount with the currency's symbol and two decimals.
func Format(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", Symbol(code), amount)
}
