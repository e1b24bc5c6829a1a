package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/cart"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
)

func buildCart(t *testing.T) (*cart.Cart, *catalog.Item) {
	t.Helper()
	item, err := catalog.New(5, "Woven Rug", 100, 10)
	require.NoError(t, err)

	c := cart.New()
	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item)) // qty 2
	return c, item
}

func TestAssemble(t *testing.T) {
	c, _ := buildCart(t)
	o, err := Assemble(c, CustomerInfo{Name: "Bob", Email: "bob@example.com", Address: "12 Main St"}, "cash_on_delivery", "")
	require.NoError(t, err)

	assert.Len(t, o.OrderRef, 8)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, "USD", o.Currency, "empty currency selects the base currency")
	require.Len(t, o.Lines, 1)

	line := o.Lines[0]
	assert.Equal(t, o.OrderRef, line.OrderRef)
	assert.Equal(t, 5, line.ProductID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 90.00, line.UnitPrice)
	assert.Equal(t, 180.00, line.Subtotal)
	assert.Equal(t, 180.00, o.TotalAmount)
	assert.WithinDuration(t, time.Now(), o.CreatedAt, time.Minute)
}

func TestAssembleFreezesPrices(t *testing.T) {
	c, item := buildCart(t)
	o, err := Assemble(c, CustomerInfo{Name: "Bob"}, "card", "ETB")
	require.NoError(t, err)

	// catalog edits after checkout must not reach the order
	require.NoError(t, item.SetBasePrice(999))
	require.NoError(t, item.SetDiscount(0))

	assert.Equal(t, 90.00, o.Lines[0].UnitPrice)
	assert.Equal(t, 180.00, o.Lines[0].Subtotal)
	assert.Equal(t, 180.00, o.TotalAmount)
	assert.Equal(t, "ETB", o.Currency)
}

func TestAssembleTotalIsSumOfSubtotals(t *testing.T) {
	itemA, err := catalog.New(1, "A", 19.99, 0)
	require.NoError(t, err)
	itemB, err := catalog.New(2, "B", 100, 25)
	require.NoError(t, err)

	c := cart.New()
	require.NoError(t, c.Add(itemA))
	require.NoError(t, c.Add(itemB))
	require.NoError(t, c.SetQuantity(2, 3))

	o, err := Assemble(c, CustomerInfo{Name: "Ann"}, "card", "")
	require.NoError(t, err)

	var want float64
	for _, l := range o.Lines {
		want += l.Subtotal
	}
	assert.Equal(t, want, o.TotalAmount)
	assert.Equal(t, 19.99+3*75.00, o.TotalAmount)
}

func TestAssembleEmptyCart(t *testing.T) {
	_, err := Assemble(cart.New(), CustomerInfo{}, "card", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestHistoryAppendAndCurrent(t *testing.T) {
	h := NewHistory(42, StatusProcessing, "order received")
	assert.Equal(t, StatusProcessing, h.Current())

	h.Append(42, StatusShipped, "handed to courier")
	h.Append(42, StatusDelivered, "")

	assert.Equal(t, StatusDelivered, h.Current())

	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, StatusProcessing, entries[0].Status)
	assert.Equal(t, "handed to courier", entries[1].Note)
	for _, e := range entries {
		assert.Equal(t, 42, e.OrderID)
		assert.False(t, e.UpdatedAt.IsZero())
	}

	// no label is forbidden; free text may follow anything
	h.Append(42, "On Hold", "customer requested delay")
	assert.Equal(t, "On Hold", h.Current())
}

func TestEntriesReturnsCopy(t *testing.T) {
	h := NewHistory(1, StatusProcessing, "")
	entries := h.Entries()
	entries[0].Status = "tampered"
	assert.Equal(t, StatusProcessing, h.Current())
}
