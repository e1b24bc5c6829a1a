package store

import (
	"database/sql"
	"time"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/message"
)

func (s *Store) CreateMessage(m *message.Message) error {
	res, err := s.DB.Exec(`
		INSERT INTO messages (name, email, subject, body, admin_reply, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		m.Name, m.Email, m.Subject, m.Body, m.AdminReply, m.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = int(id)
	return nil
}

func (s *Store) GetMessageByID(id int) (*message.Message, error) {
	row := s.DB.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(subject, ''), COALESCE(body, ''),
		       admin_reply, status, created_at, replied_at
		FROM messages WHERE id = ?`, id)
	return scanMessage(row)
}

func (s *Store) ListMessages() ([]message.Message, error) {
	rows, err := s.DB.Query(`
		SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(subject, ''), COALESCE(body, ''),
		       admin_reply, status, created_at, replied_at
		FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []message.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *m)
	}
	return msgs, rows.Err()
}

// SaveMessageStatus writes back the lifecycle fields after MarkRead or
// Reply ran on the domain value.
func (s *Store) SaveMessageStatus(m *message.Message) error {
	_, err := s.DB.Exec(`
		UPDATE messages SET admin_reply = ?, status = ?, replied_at = ? WHERE id = ?`,
		m.AdminReply, m.Status, nullableTime(m.RepliedAt), m.ID)
	return err
}

func (s *Store) CountUnreadMessages() (int, error) {
	var count int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM messages WHERE status = ?`, message.StatusUnread).Scan(&count)
	return count, err
}

func scanMessage(row interface{ Scan(...any) error }) (*message.Message, error) {
	var m message.Message
	var repliedAt sql.NullTime
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body,
		&m.AdminReply, &m.Status, &m.CreatedAt, &repliedAt); err != nil {
		return nil, err
	}
	if repliedAt.Valid {
		t := repliedAt.Time
		m.RepliedAt = &t
	}
	return &m, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
