package catalog

import (
	"time"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/pricing"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is a catalog product. BasePrice and DiscountPct are the inputs;
// FinalPrice is derived from them and is only ever written by the
// constructor and the Set* mutators, which recompute it before returning.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price"`
	DiscountPct float64  `json:"discount_pct"`
	FinalPrice  float64  `json:"final_price"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	displayCurrency string
}

func New(id int, name string, basePrice, discountPct float64) (*Item, error) {
	final, err := pricing.FinalPrice(basePrice, discountPct)
	if err != nil {
		return nil, err
	}
	return &Item{
		ID:          id,
		Name:        name,
		BasePrice:   basePrice,
		DiscountPct: discountPct,
		FinalPrice:  final,
		CreatedAt:   time.Now(),
	}, nil
}

// Recalculate refreshes FinalPrice from the current inputs. The store
// layer calls it after scanning a row so persisted items honor the same
// derivation as freshly built ones.
func (i *Item) Recalculate() error {
	final, err := pricing.FinalPrice(i.BasePrice, i.DiscountPct)
	if err != nil {
		return err
	}
	i.FinalPrice = final
	return nil
}

func (i *Item) SetBasePrice(price float64) error {
	final, err := pricing.FinalPrice(price, i.DiscountPct)
	if err != nil {
		return err
	}
	i.BasePrice = price
	i.FinalPrice = final
	return nil
}

func (i *Item) SetDiscount(pct float64) error {
	final, err := pricing.FinalPrice(i.BasePrice, pct)
	if err != nil {
		return err
	}
	i.DiscountPct = pct
	i.FinalPrice = final
	return nil
}

func (i *Item) HasDiscount() bool {
	return i.DiscountPct > 0
}

// FinalPriceIn expresses the discounted price in the target currency.
func (i *Item) FinalPriceIn(code string) float64 {
	return pricing.Convert(i.FinalPrice, code)
}

// BasePriceIn expresses the pre-discount price in the target currency.
func (i *Item) BasePriceIn(code string) float64 {
	return pricing.Convert(i.BasePrice, code)
}

// SetDisplayCurrency selects the currency DisplayPrice renders in.
func (i *Item) SetDisplayCurrency(code string) {
	i.displayCurrency = code
}

func (i *Item) DisplayCurrency() string {
	if i.displayCurrency == "" {
		return pricing.BaseCurrency
	}
	return i.displayCurrency
}

// DisplayPrice formats the final price in the selected display currency.
// It is computed on every read, so it always reflects the latest price
// and currency selection.
func (i *Item) DisplayPrice() string {
	code := i.DisplayCurrency()
	return pricing.Format(i.FinalPriceIn(code), code)
}

// DisplayBasePrice formats the pre-discount price in the display
// currency, for strikethrough rendering next to a discounted price.
func (i *Item) DisplayBasePrice() string {
	code := i.DisplayCurrency()
	return pricing.Format(i.BasePriceIn(code), code)
}
