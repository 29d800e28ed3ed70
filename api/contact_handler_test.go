package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMessageStore is an in-memory messageStore for handler tests.
type stubMessageStore struct {
	message *models.ContactMessage
	added   []*models.ContactMessage
	setRead []bool
	deleted []string
}

func (s *stubMessageStore) FindPage(page, limit int) ([]*models.ContactMessage, int64, error) {
	return nil, 0, nil
}

func (s *stubMessageStore) FindByID(id string) (*models.ContactMessage, error) {
	return s.message, nil
}

func (s *stubMessageStore) Add(message *models.ContactMessage) error {
	message.ID = models.NewID()
	s.added = append(s.added, message)
	return nil
}

func (s *stubMessageStore) SetRead(id string, read bool) error {
	s.setRead = append(s.setRead, read)
	return nil
}

func (s *stubMessageStore) Delete(id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubMessageStore) CountUnread() (int64, error) {
	return 0, nil
}

type stubNotifier struct {
	enabled bool
	panics  bool
	sent    chan *models.ContactMessage
}

func (n stubNotifier) Enabled() bool {
	return n.enabled
}

func (n stubNotifier) NotifyNewMessage(message *models.ContactMessage) error {
	if n.panics {
		panic("relay exploded")
	}
	if n.sent != nil {
		n.sent <- message
	}
	return nil
}

func TestCreateContact_PersistsAndNotifies(t *testing.T) {
	t.Parallel()

	store := &stubMessageStore{}
	notifier := stubNotifier{enabled: true, sent: make(chan *models.ContactMessage, 1)}
	h := newContactHandler(store, notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/contacts",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","subject":"Hello","message":"Hi there"}`))
	rec := httptest.NewRecorder()
	h.createContact().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.added, 1)
	assert.Equal(t, "Ada", store.added[0].Name)

	select {
	case sent := <-notifier.sent:
		assert.Equal(t, store.added[0].ID, sent.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

// A panicking mail relay must not escape the notification goroutine.
func TestDispatchNotification_RecoversPanic(t *testing.T) {
	t.Parallel()

	h := newContactHandler(&stubMessageStore{}, stubNotifier{enabled: true, panics: true})

	require.NotPanics(t, func() {
		h.dispatchNotification(models.ContactMessage{ID: models.NewID(), Name: "Ada"})
	})
}

func TestSetMessageRead_Idempotent(t *testing.T) {
	t.Parallel()

	id := models.NewID()
	store := &stubMessageStore{
		message: &models.ContactMessage{ID: id, Name: "Ada", IsRead: true},
	}
	h := newContactHandler(store, nil)

	rec := httptest.NewRecorder()
	h.setMessageRead(true).ServeHTTP(rec, requestWithID(http.MethodPatch, "/", id, ""))

	// already read: succeed without writing
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.setRead)

	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "marked as read")
}

func TestSetMessageRead_FlipsUnreadMessage(t *testing.T) {
	t.Parallel()

	id := models.NewID()
	store := &stubMessageStore{
		message: &models.ContactMessage{ID: id, Name: "Ada", IsRead: false},
	}
	h := newContactHandler(store, nil)

	rec := httptest.NewRecorder()
	h.setMessageRead(true).ServeHTTP(rec, requestWithID(http.MethodPatch, "/", id, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []bool{true}, store.setRead)
}

func TestSetMessageRead_NotFound(t *testing.T) {
	t.Parallel()

	h := newContactHandler(&stubMessageStore{}, nil)

	rec := httptest.NewRecorder()
	h.setMessageRead(true).ServeHTTP(rec, requestWithID(http.MethodPatch, "/", models.NewID(), ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
