package store

import (
	"database/sql"
	"fmt"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/order"
)

// currentStatusExpr derives an order's status from its newest history
// row. There is no other status field anywhere.
const currentStatusExpr = `COALESCE((
	SELECT h.status FROM order_status_history h
	WHERE h.order_id = o.id
	ORDER BY h.id DESC LIMIT 1
), '')`

// CreateOrder persists the order, its frozen lines and the opening
// status history entry in one transaction.
func (s *Store) CreateOrder(o *order.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO orders (order_ref, customer_name, customer_email, shipping_address, total_amount, currency, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		o.OrderRef, o.CustomerName, o.CustomerEmail, o.ShippingAddr, o.TotalAmount, o.Currency, o.PaymentMethod)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = int(id)

	for i := range o.Lines {
		l := &o.Lines[i]
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, order_ref, product_id, product_name, quantity, unit_price, subtotal)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			o.ID, l.OrderRef, l.ProductID, l.ProductName, l.Quantity, l.UnitPrice, l.Subtotal); err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO order_status_history (order_id, status, note, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)`,
		o.ID, o.Status, "order placed"); err != nil {
		return fmt.Errorf("failed to insert initial status: %w", err)
	}

	return tx.Commit()
}

func (s *Store) GetAllOrders(limit, offset int) ([]order.Order, error) {
	query := `
		SELECT o.id, o.order_ref, o.customer_name, o.customer_email, o.shipping_address,
		       o.total_amount, o.currency, COALESCE(o.payment_method, ''), ` + currentStatusExpr + `, o.created_at
		FROM orders o
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := s.DB.Query(query, limit, offset)
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

func (s *Store) GetTotalOrdersCount() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) GetOrderByID(id int) (*order.Order, error) {
	query := `
		SELECT o.id, o.order_ref, o.customer_name, o.customer_email, o.shipping_address,
		       o.total_amount, o.currency, COALESCE(o.payment_method, ''), ` + currentStatusExpr + `, o.created_at
		FROM orders o
		WHERE o.id = ?
	`
	var o order.Order
	err := s.DB.QueryRow(query, id).Scan(&o.ID, &o.OrderRef, &o.CustomerName, &o.CustomerEmail, &o.ShippingAddr,
		&o.TotalAmount, &o.Currency, &o.PaymentMethod, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if o.Lines, err = s.getOrderLines(o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) getOrderLines(orderID int) ([]order.Line, error) {
	rows, err := s.DB.Query(`
		SELECT order_ref, product_id, product_name, quantity, unit_price, subtotal
		FROM order_items WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.OrderRef, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// AppendOrderStatus adds one history entry. History rows are never
// updated or deleted.
func (s *Store) AppendOrderStatus(orderID int, status, note string) error {
	_, err := s.DB.Exec(`
		INSERT INTO order_status_history (order_id, status, note, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)`, orderID, status, note)
	return err
}

// CurrentStatus reads the latest history entry for the order.
func (s *Store) CurrentStatus(orderID int) (string, error) {
	var status string
	err := s.DB.QueryRow(`
		SELECT status FROM order_status_history
		WHERE order_id = ? ORDER BY id DESC LIMIT 1`, orderID).Scan(&status)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return status, err
}

func (s *Store) GetStatusHistory(orderID int) ([]order.StatusEntry, error) {
	rows, err := s.DB.Query(`
		SELECT order_id, status, COALESCE(note, ''), updated_at
		FROM order_status_history
		WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []order.StatusEntry
	for rows.Next() {
		var e order.StatusEntry
		if err := rows.Scan(&e.OrderID, &e.Status, &e.Note, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
