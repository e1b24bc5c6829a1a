package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
)

func mustItem(t *testing.T, id int, name string, base, pct float64) *catalog.Item {
	t.Helper()
	item, err := catalog.New(id, name, base, pct)
	require.NoError(t, err)
	return item
}

func TestAddMergesByProductID(t *testing.T) {
	c := New()
	item := mustItem(t, 7, "Basket", 100, 10)

	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item))

	require.Equal(t, 1, c.Len(), "same product must merge into one line")
	line := c.Lines()[0]
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2*90.00, line.Subtotal())
}

func TestAddKeepsOriginalPriceSnapshot(t *testing.T) {
	c := New()
	item := mustItem(t, 7, "Basket", 100, 10)
	require.NoError(t, c.Add(item))

	// a price change between adds must not refresh the snapshot
	require.NoError(t, item.SetBasePrice(500))
	require.NoError(t, c.Add(item))

	line := c.Lines()[0]
	assert.Equal(t, 90.00, line.FinalPrice)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddRejectsUnidentifiedItem(t *testing.T) {
	c := New()
	blank := &catalog.Item{Name: "no id yet"}
	assert.ErrorIs(t, c.Add(blank), ErrUnidentifiedItem)
	assert.Equal(t, 0, c.Len())
}

func TestGrandTotalIsSumOfSubtotals(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustItem(t, 1, "A", 100, 10))) // 90
	require.NoError(t, c.Add(mustItem(t, 2, "B", 19.99, 0))) // 19.99
	require.NoError(t, c.SetQuantity(1, 3))

	var want float64
	for _, l := range c.Lines() {
		want += l.Subtotal()
	}
	assert.Equal(t, want, c.GrandTotal())
	assert.Equal(t, 3*90.00+19.99, c.GrandTotal())
}

func TestSetQuantityValidation(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustItem(t, 1, "A", 10, 0)))

	assert.ErrorIs(t, c.SetQuantity(1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.SetQuantity(1, -2), ErrInvalidQuantity)
	assert.ErrorIs(t, c.SetQuantity(99, 2), ErrLineNotFound)
}

func TestRemove(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustItem(t, 1, "A", 10, 0)))
	require.NoError(t, c.Add(mustItem(t, 2, "B", 20, 0)))

	require.NoError(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].ProductID)

	assert.ErrorIs(t, c.Remove(1), ErrLineNotFound)
}

func TestFromLinesRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustItem(t, 1, "A", 100, 50)))
	require.NoError(t, c.SetQuantity(1, 4))

	rebuilt := FromLines(c.Lines())
	assert.Equal(t, c.GrandTotal(), rebuilt.GrandTotal())
	assert.Equal(t, c.Lines(), rebuilt.Lines())
}
