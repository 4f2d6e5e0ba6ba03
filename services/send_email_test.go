package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestMailerUnconfigured(t *testing.T) {
	mailer := NewMailer(map[string]string{})

	assert.False(t, mailer.Configured())
	assert.Error(t, mailer.Send(context.Background(), "konu", "mesaj"))
}

func TestMailerSend(t *testing.T) {
	mailer := NewMailer(map[string]string{
		"RESEND_API_KEY":        "re_test_key",
		"RESEND_FROM_EMAIL":     "Akademi <[email protected]>",
		"APPLICATION_RECIPIENT": "[email protected]",
	})

	mailer.httpClient = &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, resendEndpoint, r.URL.String())
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var payload ResendEmailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"[email protected]"}, payload.To)
		assert.Equal(t, "Yeni başvuru", payload.Subject)
		assert.Contains(t, payload.Text, "Ayşe")

		return jsonResponse(http.StatusOK, `{"id":"email-1"}`), nil
	})}

	err := mailer.Send(context.Background(), "Yeni başvuru", "Ad: Ayşe")
	assert.NoError(t, err)
}

func TestMailerSendErrorResponse(t *testing.T) {
	mailer := NewMailer(map[string]string{"RESEND_API_KEY": "re_test_key"})
	mailer.httpClient = &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity, `{"message":"invalid from address"}`), nil
	})}

	err := mailer.Send(context.Background(), "konu", "mesaj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}
