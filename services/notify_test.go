package services

import (
	"testing"
	"time"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestNewContactNotifier_Enabled(t *testing.T) {
	t.Parallel()

	full := map[string]string{
		"RESEND_API_KEY":    "re_123",
		"RESEND_FROM_EMAIL": "noreply@example.com",
		"ADMIN_EMAILS":      "a@example.com, b@example.com",
	}
	assert.True(t, NewContactNotifier(full).Enabled())

	for _, missing := range []string{"RESEND_API_KEY", "RESEND_FROM_EMAIL", "ADMIN_EMAILS"} {
		partial := map[string]string{}
		for k, v := range full {
			if k != missing {
				partial[k] = v
			}
		}
		assert.False(t, NewContactNotifier(partial).Enabled(), missing)
	}
}

func TestNotifyNewMessage_Disabled(t *testing.T) {
	t.Parallel()

	err := NewContactNotifier(nil).NotifyNewMessage(&models.ContactMessage{})
	assert.Error(t, err)
}

func TestRenderContactEmail(t *testing.T) {
	t.Parallel()

	message := &models.ContactMessage{
		Name:      "Ada <script>",
		Email:     "ada@example.com",
		Subject:   "Hiring & consulting",
		Message:   "Line one\nLine two",
		CreatedAt: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}

	body := RenderContactEmail(message)

	assert.Contains(t, body, "ada@example.com")
	assert.Contains(t, body, "Line one\nLine two")
	// user input is escaped before it lands in the HTML body
	assert.Contains(t, body, "Ada &lt;script&gt;")
	assert.Contains(t, body, "Hiring &amp; consulting")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Fri, 14 Mar 2025 09:30:00 UTC")
}
