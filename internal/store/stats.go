package store

import "database/sql"

type DashboardStats struct {
	TotalItems      int
	TotalOrders     int
	UnreadMessages  int
	OrdersByStatus  map[string]int
	ItemOrderCounts []ItemOrderCount
}

type ItemOrderCount struct {
	ProductID  int
	Name       string
	OrderCount int
}

func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	err := s.DB.QueryRow("SELECT COUNT(*) FROM items").Scan(&stats.TotalItems)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	if stats.UnreadMessages, err = s.CountUnreadMessages(); err != nil {
		return nil, err
	}

	// Orders grouped by their derived current status (latest history row)
	rows, err := s.DB.Query(`
		SELECT ` + currentStatusExpr + ` AS status, COUNT(*)
		FROM orders o
		GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Best sellers by number of order lines referencing the product
	itemRows, err := s.DB.Query(`
		SELECT i.id, i.name, COUNT(oi.id) AS order_count
		FROM items i
		LEFT JOIN order_items oi ON i.id = oi.product_id
		GROUP BY i.id
		ORDER BY order_count DESC`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var ioc ItemOrderCount
		if err := itemRows.Scan(&ioc.ProductID, &ioc.Name, &ioc.OrderCount); err != nil {
			return nil, err
		}
		stats.ItemOrderCounts = append(stats.ItemOrderCounts, ioc)
	}
	return stats, itemRows.Err()
}
