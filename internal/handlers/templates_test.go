package handlers

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/order"
)

func loadTestTemplates(t *testing.T) *TemplateCache {
	t.Helper()
	tc := NewTemplateCache()
	require.NoError(t, tc.Load("../../templates"))
	return tc
}

func render(t *testing.T, tc *TemplateCache, name string, data map[string]interface{}) string {
	t.Helper()
	tmpl := tc.Get(name)
	require.NotNil(t, tmpl, "template %s not cached", name)
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

// Orders store amounts in the base currency; the stored currency code only
// says what the customer was viewing. Pages showing order money must convert
// before formatting, like the cart page does.
func etbOrder() order.Order {
	return order.Order{
		ID:           1,
		OrderRef:     "A7X9KQ2M",
		CustomerName: "Ann",
		Status:       order.StatusProcessing,
		TotalAmount:  180.00, // USD; 10530.00 in ETB at 58.5
		Currency:     "ETB",
		CreatedAt:    time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		Lines: []order.Line{
			{OrderRef: "A7X9KQ2M", ProductID: 1, ProductName: "Rug", Quantity: 2, UnitPrice: 90.00, Subtotal: 180.00},
		},
	}
}

func TestOrderStatusPageConvertsToOrderCurrency(t *testing.T) {
	tc := loadTestTemplates(t)
	o := etbOrder()

	out := render(t, tc, "order_status.html", map[string]interface{}{
		"Order":   &o,
		"History": []order.StatusEntry{},
	})

	assert.Contains(t, out, "Br 10530.00", "total must be converted into the order's currency")
	assert.Contains(t, out, "Br 5265.00", "unit price must be converted into the order's currency")
	assert.NotContains(t, out, "Br 180.00", "base amount must not wear the foreign symbol")
}

func TestMyOrdersPageConvertsToOrderCurrency(t *testing.T) {
	tc := loadTestTemplates(t)

	out := render(t, tc, "my_orders.html", map[string]interface{}{
		"Email":  "ann@example.com",
		"Orders": []order.Order{etbOrder()},
	})

	assert.Contains(t, out, "Br 10530.00")
	assert.NotContains(t, out, "Br 180.00")
}

func TestAdminOrdersPageConvertsToOrderCurrency(t *testing.T) {
	tc := loadTestTemplates(t)

	out := render(t, tc, "admin_orders.html", map[string]interface{}{
		"Orders":      []order.Order{etbOrder()},
		"CsrfField":   template.HTML(""),
		"CurrentPage": 1,
		"TotalPages":  1,
		"Limit":       20,
	})

	assert.Contains(t, out, "Br 10530.00")
	assert.NotContains(t, out, "Br 180.00")
}
