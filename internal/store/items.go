package store

import (
	"fmt"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
)

const itemColumns = `i.id, i.name, COALESCE(i.description, ''), i.base_price, i.discount_pct, i.stock,
	COALESCE(i.image_url, ''), COALESCE(i.category_id, 0), COALESCE(c.name, ''), i.created_at`

func (s *Store) scanItem(row interface{ Scan(...any) error }) (*catalog.Item, error) {
	var i catalog.Item
	if err := row.Scan(&i.ID, &i.Name, &i.Description, &i.BasePrice, &i.DiscountPct, &i.Stock,
		&i.ImageURL, &i.Category.ID, &i.Category.Name, &i.CreatedAt); err != nil {
		return nil, err
	}
	// FinalPrice is derived, not stored
	if err := i.Recalculate(); err != nil {
		return nil, fmt.Errorf("item %d has invalid pricing: %w", i.ID, err)
	}
	return &i, nil
}

func (s *Store) CreateItem(item *catalog.Item) error {
	query := `
		INSERT INTO items (name, description, base_price, discount_pct, stock, image_url, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query, item.Name, item.Description, item.BasePrice, item.DiscountPct,
		item.Stock, item.ImageURL, nullableID(item.Category.ID))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = int(id)
	return nil
}

func (s *Store) GetAllItems() ([]catalog.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items i LEFT JOIN categories c ON i.category_id = c.id
		ORDER BY i.created_at DESC`
	return s.queryItems(query)
}

// GetPublicItems hides items with no stock left.
func (s *Store) GetPublicItems() ([]catalog.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items i LEFT JOIN categories c ON i.category_id = c.id
		WHERE i.stock > 0
		ORDER BY i.created_at DESC`
	return s.queryItems(query)
}

func (s *Store) queryItems(query string, args ...any) ([]catalog.Item, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, err := s.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *Store) GetItemByID(id int) (*catalog.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items i LEFT JOIN categories c ON i.category_id = c.id
		WHERE i.id = ?`
	return s.scanItem(s.DB.QueryRow(query, id))
}

func (s *Store) UpdateItem(item *catalog.Item) error {
	query := `
		UPDATE items
		SET name = ?, description = ?, base_price = ?, discount_pct = ?, stock = ?, category_id = ?
		WHERE id = ?
	`
	_, err := s.DB.Exec(query, item.Name, item.Description, item.BasePrice, item.DiscountPct,
		item.Stock, nullableID(item.Category.ID), item.ID)
	return err
}

func (s *Store) UpdateItemImage(id int, imageURL string) error {
	query := `UPDATE items SET image_url = ? WHERE id = ?`
	_, err := s.DB.Exec(query, imageURL, id)
	return err
}

func (s *Store) DeleteItem(id int) error {
	query := `DELETE FROM items WHERE id = ?`
	_, err := s.DB.Exec(query, id)
	return err
}

func (s *Store) ListCategories() ([]catalog.Category, error) {
	rows, err := s.DB.Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []catalog.Category
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *Store) CreateCategory(name string) (int, error) {
	res, err := s.DB.Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// nullableID maps the zero id to NULL so the foreign key stays honest.
func nullableID(id int) any {
	if id == 0 {
		return nil
	}
	return id
}
