package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendClientSend(t *testing.T) {
	var got resendEmailRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewResendClient(ResendConfig{
		APIKey:  "re_test",
		From:    "Meenos <noreply@meenos.com>",
		BaseURL: srv.URL,
	})

	err := client.Send(context.Background(), "admin@example.com", "New Order", "<b>hi</b>", "hi")
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, []string{"admin@example.com"}, got.To)
	assert.Equal(t, "New Order", got.Subject)
	assert.Equal(t, "Meenos <noreply@meenos.com>", got.From)
}

func TestResendClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewResendClient(ResendConfig{APIKey: "re_test", BaseURL: srv.URL})

	err := client.Send(context.Background(), "admin@example.com", "s", "h", "t")
	assert.ErrorContains(t, err, "422")
}

func TestResendClientUnconfigured(t *testing.T) {
	client := NewResendClient(ResendConfig{})

	err := client.Send(context.Background(), "admin@example.com", "s", "h", "t")
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestWhatsAppClientPrefersTwilio(t *testing.T) {
	var form map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		sid, token, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "AC123", sid)
		require.Equal(t, "secret", token)
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewWhatsAppClient(WhatsAppConfig{
		WebhookURL: "http://webhook.invalid", // must be ignored when Twilio is configured
		Twilio: TwilioConfig{
			AccountSID: "AC123",
			AuthToken:  "secret",
			FromNumber: "+14155238886",
		},
		TwilioBaseURL: srv.URL,
	})

	err := client.Send(context.Background(), "+2348000000000", "order up")
	require.NoError(t, err)

	assert.Equal(t, "whatsapp:+14155238886", form["From"])
	assert.Equal(t, "whatsapp:+2348000000000", form["To"])
	assert.Equal(t, "order up", form["Body"])
}

func TestWhatsAppClientFallsBackToWebhook(t *testing.T) {
	var got webhookMessage
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWhatsAppClient(WhatsAppConfig{
		WebhookURL: srv.URL,
		APIToken:   "hook-token",
	})

	err := client.Send(context.Background(), "+2348000000000", "order up")
	require.NoError(t, err)

	assert.Equal(t, "Bearer hook-token", auth)
	assert.Equal(t, "+2348000000000", got.To)
	assert.Equal(t, "order up", got.Message)
}

func TestWhatsAppClientUnconfigured(t *testing.T) {
	client := NewWhatsAppClient(WhatsAppConfig{})

	err := client.Send(context.Background(), "+2348000000000", "order up")
	assert.ErrorIs(t, err, ErrWhatsAppNotConfigured)
}
