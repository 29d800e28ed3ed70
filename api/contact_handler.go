package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// messageStore is the persistence surface the contact handler works against.
type messageStore interface {
	FindPage(page, limit int) ([]*models.ContactMessage, int64, error)
	FindByID(id string) (*models.ContactMessage, error)
	Add(message *models.ContactMessage) error
	SetRead(id string, read bool) error
	Delete(id string) error
	CountUnread() (int64, error)
}

// messageNotifier dispatches the admin notification for a saved message.
type messageNotifier interface {
	Enabled() bool
	NotifyNewMessage(message *models.ContactMessage) error
}

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo messageStore
	notifier    messageNotifier
}

func newContactHandler(contactRepo messageStore, notifier messageNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

type contactRequest struct {
	Name    json.RawMessage `json:"name"`
	Email   json.RawMessage `json:"email"`
	Subject json.RawMessage `json:"subject"`
	Message json.RawMessage `json:"message"`
}

// requireString rejects both absent fields and non-string values.
func requireString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, s != ""
}

// createContact persists a public contact-form submission, then dispatches
// the admin notification fire-and-forget: a mail-relay failure is logged and
// never undoes or masks the already-persisted message.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(req.Name) == 0 || len(req.Email) == 0 || len(req.Subject) == 0 || len(req.Message) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("All fields are required"))
			return
		}

		name, nameOK := requireString(req.Name)
		email, emailOK := requireString(req.Email)
		subject, subjectOK := requireString(req.Subject)
		body, messageOK := requireString(req.Message)
		if !nameOK || !emailOK || !subjectOK || !messageOK {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid input types"))
			return
		}

		message := models.ContactMessage{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: body,
		}

		if err := h.contactRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		if h.notifier != nil && h.notifier.Enabled() {
			go h.dispatchNotification(message)
		} else {
			h.logger.Warn().Str("messageId", message.ID).Msg("Contact notifier not configured, skipping notification")
		}

		h.responder.WriteData(w, http.StatusCreated, message, "Message sent successfully")
	}
}

// dispatchNotification delivers the admin notification for one saved message.
// It runs on its own goroutine outside the request middleware chain, so it
// must recover its own panics.
func (h contactHandler) dispatchNotification(message models.ContactMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().
				Interface("panic", rec).
				Str("messageId", message.ID).
				Msg("Recovered from panic while sending contact notification")
		}
	}()

	if err := h.notifier.NotifyNewMessage(&message); err != nil {
		h.logger.Error().Err(err).Str("messageId", message.ID).Msg("Failed to send contact notification")
	}
}

// getAllMessages returns one page of messages, newest first.
func (h contactHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		messages, total, err := h.contactRepo.FindPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"messages":   messages,
			"pagination": newPagination(page, limit, total),
		}, "Messages fetched successfully.")
	}
}

// setMessageRead flips the read flag one way. Repeating the same call is a
// no-op that still succeeds.
func (h contactHandler) setMessageRead(read bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid message ID format"))
			return
		}

		message, err := h.contactRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Message not found"))
			return
		}

		if message.IsRead != read {
			if err := h.contactRepo.SetRead(id, read); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
				return
			}
			message.IsRead = read
		}

		state := "read"
		if !read {
			state = "unread"
		}
		h.responder.WriteData(w, http.StatusOK, message,
			"Message from "+message.Name+" marked as "+state+".")
	}
}

func (h contactHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid message ID format"))
			return
		}

		message, err := h.contactRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Message not found"))
			return
		}

		if err := h.contactRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, message,
			"Message from "+message.Name+" deleted successfully.")
	}
}

func (h contactHandler) getUnreadCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.contactRepo.CountUnread()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "messages", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"unreadCount": count,
		}, "Unread message count fetched successfully.")
	}
}
