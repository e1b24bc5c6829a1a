package store

import (
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/order"
)

// GetOrderByToken looks up an order by its magic link token, lines
// included.
func (s *Store) GetOrderByToken(token string) (*order.Order, error) {
	query := `
		SELECT o.id, o.order_ref, o.customer_name, o.customer_email, o.shipping_address,
		       o.total_amount, o.currency, COALESCE(o.payment_method, ''), ` + currentStatusExpr + `, o.created_at
		FROM orders o
		WHERE o.magic_token = ? AND o.magic_token_expiry > datetime('now')
	`
	var o order.Order
	err := s.DB.QueryRow(query, token).Scan(&o.ID, &o.OrderRef, &o.CustomerName, &o.CustomerEmail, &o.ShippingAddr,
		&o.TotalAmount, &o.Currency, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if o.Lines, err = s.getOrderLines(o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// Case-insensitive on the email.
func (s *Store) GetOrdersByEmail(email string) ([]order.Order, error) {
	query := `
		SELECT o.id, o.order_ref, o.customer_name, o.customer_email, o.shipping_address,
		       o.total_amount, o.currency, COALESCE(o.payment_method, ''), ` + currentStatusExpr + `, o.created_at
		FROM orders o
		WHERE LOWER(o.customer_email) = LOWER(?)
		ORDER BY o.created_at DESC
	`
	rows, err := s.DB.Query(query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.OrderRef, &o.CustomerName, &o.CustomerEmail, &o.ShippingAddr,
			&o.TotalAmount, &o.Currency, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) UpdateOrderToken(id int, token string) error {
	query := `UPDATE orders SET magic_token = ?, magic_token_expiry = datetime('now', '+30 days') WHERE id = ?`
	_, err := s.DB.Exec(query, token, id)
	return err
}

// Login tokens grant one email address access to its whole order list
// for a short window.

func (s *Store) CreateLoginToken(email, token string) error {
	query := `INSERT INTO login_tokens (token, email, expires_at) VALUES (?, ?, datetime('now', '+1 hour'))`
	_, err := s.DB.Exec(query, token, email)
	return err
}

func (s *Store) GetEmailByLoginToken(token string) (string, error) {
	var email string
	query := `SELECT email FROM login_tokens WHERE token = ? AND expires_at > datetime('now')`
	err := s.DB.QueryRow(query, token).Scan(&email)
	if err != nil {
		return "", err
	}
	return email, nil
}
