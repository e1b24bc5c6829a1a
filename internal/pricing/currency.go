package pricing

// BaseCurrency is the currency every catalog price is stored in. All
// conversion rates are expressed relative to it.
const BaseCurrency = "USD"

var rates = map[string]float64{
	"USD": 1.0,
	"ETB": 58.5,
	"EUR": 0.92,
	"GBP": 0.79,
}

var symbols = map[string]string{
	"USD": "$",
	"ETB": "Br ",
	"EUR": "€",
	"GBP": "£",
}

// Rate returns the conversion rate from the base currency to code.
// Unknown codes fall back to the base rate (1.0) so conversion degrades
// to a no-op instead of failing.
func Rate(code string) float64 {
	if r, ok := rates[code]; ok {
		return r
	}
	return 1.0
}

// Symbol returns the display prefix for code, falling back to the base
// currency symbol for unknown codes.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return symbols[BaseCurrency]
}

// Supported returns the currency codes the storefront can display,
// base currency first.
func Supported() []string {
	return []string{"USD", "ETB", "EUR", "GBP"}
}
