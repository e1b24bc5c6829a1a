package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	m := New("Ann", "ann@example.com", "Shipping", "When will my order ship?")
	assert.Equal(t, StatusUnread, m.Status)
	assert.False(t, m.HasReply())
	assert.Nil(t, m.RepliedAt)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestMarkRead(t *testing.T) {
	m := New("Ann", "ann@example.com", "Hi", "Hello")
	m.MarkRead()
	assert.Equal(t, StatusRead, m.Status)

	// reading again is a no-op
	m.MarkRead()
	assert.Equal(t, StatusRead, m.Status)

	// a replied message never drops back to read
	m.Reply("done")
	m.MarkRead()
	assert.Equal(t, StatusReplied, m.Status)
}

func TestReply(t *testing.T) {
	m := New("Ann", "ann@example.com", "Hi", "Hello")
	m.Reply("ok")

	assert.Equal(t, StatusReplied, m.Status)
	assert.True(t, m.HasReply())
	require.NotNil(t, m.RepliedAt)
	assert.False(t, m.RepliedAt.IsZero())
}

func TestHasReplyIgnoresStatusLabel(t *testing.T) {
	m := New("Ann", "ann@example.com", "Hi", "Hello")

	// status says replied but nothing was written
	m.Status = StatusReplied
	assert.False(t, m.HasReply())

	// whitespace is not an answer
	m.AdminReply = "   \t\n"
	assert.False(t, m.HasReply())

	m.AdminReply = " ok "
	assert.True(t, m.HasReply())
}
