package store

import (
	"database/sql"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/models"
)

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	query := `SELECT id, username, password, COALESCE(email, ''), COALESCE(full_name, ''), role FROM users WHERE username = ?`
	row := s.DB.QueryRow(query, username)

	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.FullName, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser is mainly for seeding the initial admin
func (s *Store) CreateUser(username, hashedPassword, email, fullName, role string) error {
	query := `INSERT INTO users (username, password, email, full_name, role) VALUES (?, ?, ?, ?, ?)`
	_, err := s.DB.Exec(query, username, hashedPassword, email, fullName, role)
	return err
}
