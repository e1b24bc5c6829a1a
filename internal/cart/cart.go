package cart

import (
	"errors"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
)

var (
	ErrInvalidQuantity  = errors.New("cart: quantity must be at least 1")
	ErrUnidentifiedItem = errors.New("cart: item has no id assigned")
	ErrLineNotFound     = errors.New("cart: no line for that product")
)

// Line is a snapshot of a catalog item at the moment it was added, plus
// a quantity. Identity is the product id alone: a cart never holds two
// lines for the same product.
type Line struct {
	ProductID  int     `json:"product_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	FinalPrice float64 `json:"final_price"`
	Quantity   int     `json:"quantity"`
}

// Subtotal is the discounted price times quantity.
func (l Line) Subtotal() float64 {
	return l.FinalPrice * float64(l.Quantity)
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// FromLines rebuilds a cart from previously snapshotted lines, e.g. ones
// stored in a cookie session between requests.
func FromLines(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, len(lines))}
	copy(c.lines, lines)
	return c
}

// Add merges the item into the cart. If a line for the same product id
// already exists its quantity is bumped by one and its price snapshot is
// kept as-is; otherwise a new line with quantity 1 is appended. Items
// without an assigned id are rejected so that two uninitialized items
// can never merge into one line.
func (c *Cart) Add(item *catalog.Item) error {
	if item.ID == 0 {
		return ErrUnidentifiedItem
	}
	for i := range c.lines {
		if c.lines[i].ProductID == item.ID {
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID:  item.ID,
		Name:       item.Name,
		UnitPrice:  item.BasePrice,
		FinalPrice: item.FinalPrice,
		Quantity:   1,
	})
	return nil
}

func (c *Cart) Remove(productID int) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) SetQuantity(productID, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return nil
		}
	}
	return ErrLineNotFound
}

// GrandTotal sums the line subtotals. It is recomputed on every call and
// never cached across mutations.
func (c *Cart) GrandTotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; callers cannot mutate cart state through it.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Clear() {
	c.lines = nil
}
