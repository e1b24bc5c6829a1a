package order

import "time"

// StatusEntry is one record in an order's append-only status history.
type StatusEntry struct {
	OrderID   int       `json:"order_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updated_at"`
}

// History tracks status changes for a single order. Entries are only
// ever appended; the current status is whatever the latest entry says.
// Any label may follow any label — ordering policy belongs to whoever
// drives the workflow, not here.
type History struct {
	entries []StatusEntry
}

func NewHistory(orderID int, initialStatus, note string) *History {
	h := &History{}
	h.Append(orderID, initialStatus, note)
	return h
}

func (h *History) Append(orderID int, status, note string) StatusEntry {
	e := StatusEntry{
		OrderID:   orderID,
		Status:    status,
		Note:      note,
		UpdatedAt: time.Now(),
	}
	h.entries = append(h.entries, e)
	return e
}

// Current derives the order's status from the latest entry. There is no
// separate status field to fall out of sync with.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1].Status
}

func (h *History) Entries() []StatusEntry {
	out := make([]StatusEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
