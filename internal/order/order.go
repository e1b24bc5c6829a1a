package order

import (
	"crypto/rand"
	"errors"
	"strconv"
	"time"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/cart"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/pricing"
)

// Conventional status labels. The history accepts any label; these are
// just the ones the storefront itself assigns.
const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

var ErrEmptyCart = errors.New("order: cart has no lines")

// Line is a frozen copy of a cart line taken at assembly time. Nothing
// updates it afterwards; later catalog edits do not reach it.
type Line struct {
	OrderRef    string  `json:"order_ref"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

type CustomerInfo struct {
	Name    string
	Email   string
	Address string
}

type Order struct {
	ID            int       `json:"id"`
	OrderRef      string    `json:"order_ref"` // public "A7X9..." id
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ShippingAddr  string    `json:"shipping_address"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"` // read model: latest history entry
	CreatedAt     time.Time `json:"created_at"`
	Lines         []Line    `json:"lines"`
}

// Assemble turns a finalized cart into an order with one frozen Line per
// cart line. TotalAmount is fixed to the sum of the line subtotals at
// this moment and is never recomputed from live catalog data. An empty
// currency selects the base currency.
func Assemble(c *cart.Cart, customer CustomerInfo, paymentMethod, currency string) (*Order, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if currency == "" {
		currency = pricing.BaseCurrency
	}

	ref := newOrderRef()
	o := &Order{
		OrderRef:      ref,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ShippingAddr:  customer.Address,
		Currency:      currency,
		PaymentMethod: paymentMethod,
		Status:        StatusProcessing,
		CreatedAt:     time.Now(),
	}

	var total float64
	for _, l := range c.Lines() {
		sub := l.Subtotal()
		o.Lines = append(o.Lines, Line{
			OrderRef:    ref,
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.FinalPrice,
			Subtotal:    sub,
		})
		total += sub
	}
	o.TotalAmount = total
	return o, nil
}

// newOrderRef generates an 8-char public reference. The charset drops
// I, O, 1 and 0 to avoid confusion when customers read it back.
func newOrderRef() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "ORD" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
