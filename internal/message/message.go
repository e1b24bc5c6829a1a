package message

import (
	"strings"
	"time"
)

const (
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// Message is a customer support message with a small lifecycle:
// unread -> read -> replied in the common flow. The status field is
// plain text; HasReply, not the status, is the authoritative check for
// whether the message was answered.
type Message struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	AdminReply string     `json:"admin_reply"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	RepliedAt  *time.Time `json:"replied_at,omitempty"`
}

func New(name, email, subject, body string) *Message {
	return &Message{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		Status:    StatusUnread,
		CreatedAt: time.Now(),
	}
}

// MarkRead moves an unread message to read. Messages already read or
// replied keep their status.
func (m *Message) MarkRead() {
	if m.Status == StatusUnread {
		m.Status = StatusRead
	}
}

// Reply records the admin's answer and stamps the reply time.
func (m *Message) Reply(text string) {
	m.AdminReply = text
	m.Status = StatusReplied
	now := time.Now()
	m.RepliedAt = &now
}

// HasReply reports whether an answer was actually written. It looks at
// the reply text, not the status label — the two can diverge if status
// is set without a reply.
func (m *Message) HasReply() bool {
	return strings.TrimSpace(m.AdminReply) != ""
}
