package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rajnish018/portfolio-admin-backend/config"
	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rs/zerolog/log"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// ContactNotifier dispatches a notification email to the configured admin
// address list when a contact message is submitted. Dispatch is fire-and-
// forget: failures are logged, never propagated to the submitting client,
// and never roll back the already-persisted message.
type ContactNotifier struct {
	apiKey     string
	from       string
	recipients []string
	client     *http.Client
}

// NewContactNotifier builds a notifier from config. Requires RESEND_API_KEY,
// RESEND_FROM_EMAIL and ADMIN_EMAILS (comma-separated); without all three the
// notifier is disabled.
func NewContactNotifier(cfg map[string]string) ContactNotifier {
	return ContactNotifier{
		apiKey:     config.GetString(cfg, "RESEND_API_KEY", ""),
		from:       config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		recipients: config.GetStringSlice(cfg, "ADMIN_EMAILS"),
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (n ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.from != "" && len(n.recipients) > 0
}

// NotifyNewMessage sends the admin notification for one contact message.
func (n ContactNotifier) NotifyNewMessage(message *models.ContactMessage) error {
	if !n.Enabled() {
		return fmt.Errorf("contact notifier is not configured")
	}

	payload := ResendEmailRequest{
		From:    n.from,
		To:      n.recipients,
		Subject: fmt.Sprintf("New portfolio enquiry - %s", message.Subject),
		Html:    RenderContactEmail(message),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Str("messageId", message.ID).Msg("Sent contact notification")
	}

	return nil
}

// RenderContactEmail builds the HTML notification body for a contact message.
func RenderContactEmail(message *models.ContactMessage) string {
	return fmt.Sprintf(
		`<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p style="white-space:pre-wrap;"><strong>Message:</strong><br>%s</p>
<p>Received at %s</p>`,
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message),
		message.CreatedAt.Format(time.RFC1123),
	)
}
