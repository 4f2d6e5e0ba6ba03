package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dada-sanat-akademisi/dada-sanat-akademisi-web/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

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

// Mailer delivers application-form submissions through the Resend API. It is
// constructed once from the config snapshot; a missing API key is reported at
// send time so the form page itself keeps working.
type Mailer struct {
	apiKey     string
	from       string
	recipient  string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		apiKey:     config.GetString(cfg, "RESEND_API_KEY", ""),
		from:       config.GetString(cfg, "RESEND_FROM_EMAIL", "Dada Sanat Akademisi <[email protected]>"),
		recipient:  config.GetString(cfg, "APPLICATION_RECIPIENT", "[email protected]"),
		httpClient: http.DefaultClient,
		logger:     log.With().Str("service", "mailer").Logger(),
	}
}

// Configured reports whether delivery can be attempted at all.
func (m *Mailer) Configured() bool {
	return m.apiKey != ""
}

// Send delivers one plain-text email to the configured recipient.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}

	payload := ResendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		Subject: subject,
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		var resendErr ResendErrorResponse
		if json.Unmarshal(respBody, &resendErr) == nil && resendErr.Message != "" {
			return fmt.Errorf("email service returned %d: %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("email service returned %d", resp.StatusCode)
	}

	var result ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.ID != "" {
		m.logger.Info().Str("emailID", result.ID).Msg("Application email delivered")
	}
	return nil
}
