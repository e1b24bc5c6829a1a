package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/cart"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/message"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/order"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.InitSchema())
	t.Cleanup(func() { s.DB.Close() })
	return s
}

func TestItemRoundTripDerivesFinalPrice(t *testing.T) {
	s := newTestStore(t)

	item, err := catalog.New(0, "Basket", 100, 10)
	require.NoError(t, err)
	item.Stock = 5
	require.NoError(t, s.CreateItem(item))
	require.NotZero(t, item.ID)

	got, err := s.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Basket", got.Name)
	assert.Equal(t, 100.00, got.BasePrice)
	assert.Equal(t, 90.00, got.FinalPrice, "final price is derived on load, not stored")
}

func TestOrderPersistenceAndDerivedStatus(t *testing.T) {
	s := newTestStore(t)

	item, err := catalog.New(1, "Rug", 50, 0)
	require.NoError(t, err)
	c := cart.New()
	require.NoError(t, c.Add(item))
	require.NoError(t, c.SetQuantity(1, 2))

	o, err := order.Assemble(c, order.CustomerInfo{Name: "Bob", Email: "bob@example.com", Address: "12 Main St"}, "card", "")
	require.NoError(t, err)
	require.NoError(t, s.CreateOrder(o))
	require.NotZero(t, o.ID)

	loaded, err := s.GetOrderByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, loaded.Status, "initial history entry sets the status")
	assert.Equal(t, 100.00, loaded.TotalAmount)
	require.Len(t, loaded.Lines, 1)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)

	require.NoError(t, s.AppendOrderStatus(o.ID, order.StatusShipped, "handed to courier"))

	status, err := s.CurrentStatus(o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, status)

	loaded, err = s.GetOrderByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, loaded.Status, "listing reflects the latest history entry")

	history, err := s.GetStatusHistory(o.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, order.StatusProcessing, history[0].Status)
	assert.Equal(t, "handed to courier", history[1].Note)
}

func TestMessageRoundTrip(t *testing.T) {
	s := newTestStore(t)

	m := message.New("Ann", "ann@example.com", "Hi", "Where is my order?")
	require.NoError(t, s.CreateMessage(m))
	require.NotZero(t, m.ID)

	unread, err := s.CountUnreadMessages()
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	m.Reply("On its way!")
	require.NoError(t, s.SaveMessageStatus(m))

	got, err := s.GetMessageByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, message.StatusReplied, got.Status)
	assert.True(t, got.HasReply())
	require.NotNil(t, got.RepliedAt)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	s := newTestStore(t)
	user, err := s.GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateItemImagePersistsAndSurfacesErrors(t *testing.T) {
	s := newTestStore(t)

	item, err := catalog.New(0, "Basket", 34.50, 0)
	require.NoError(t, err)
	require.NoError(t, s.CreateItem(item))

	require.NoError(t, s.UpdateItemImage(item.ID, "/static/uploads/basket.jpg"))
	got, err := s.GetItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/basket.jpg", got.ImageURL)

	require.NoError(t, s.DB.Close())
	assert.Error(t, s.UpdateItemImage(item.ID, "/static/uploads/other.jpg"),
		"a failed write must reach the caller")
}

func TestMigrateAppliesEachVersionOnce(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.DB.Close() })

	dir := t.TempDir()
	// No IF NOT EXISTS: a second application would fail loudly.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_widgets.sql"),
		[]byte(`CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT);`), 0o644))

	require.NoError(t, s.Migrate(dir))
	require.NoError(t, s.Migrate(dir), "applied versions are skipped on later runs")

	var applied int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)

	_, err = s.DB.Exec(`INSERT INTO widgets (name) VALUES (?)`, "basket")
	require.NoError(t, err)
}

func TestMigrateFailureRecordsNothing(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.DB.Close() })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_bad.sql"),
		[]byte(`CREATE TABLE`), 0o644))

	require.Error(t, s.Migrate(dir))

	var applied int
	require.NoError(t, s.DB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Zero(t, applied, "a failed migration must leave no version row behind")
}
