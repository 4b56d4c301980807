package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

var ErrWhatsAppNotConfigured = errors.New("whatsapp sender not configured")

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c TwilioConfig) configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// WhatsAppClient sends messages over one of two transports: the Twilio
// messaging API when its credentials are present, otherwise a plain
// webhook POST. Exactly one transport is attempted per send.
type WhatsAppClient struct {
	webhookURL    string
	apiToken      string
	twilio        TwilioConfig
	twilioBaseURL string
	client        *http.Client
}

type WhatsAppConfig struct {
	WebhookURL string
	APIToken   string
	Twilio     TwilioConfig
	// TwilioBaseURL overrides the Twilio endpoint, used by tests.
	TwilioBaseURL string
}

func NewWhatsAppClient(cfg WhatsAppConfig) *WhatsAppClient {
	twilioBaseURL := cfg.TwilioBaseURL
	if twilioBaseURL == "" {
		twilioBaseURL = defaultTwilioBaseURL
	}

	return &WhatsAppClient{
		webhookURL:    cfg.WebhookURL,
		apiToken:      cfg.APIToken,
		twilio:        cfg.Twilio,
		twilioBaseURL: twilioBaseURL,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *WhatsAppClient) Send(ctx context.Context, to, message string) error {
	if c.twilio.configured() {
		return c.sendViaTwilio(ctx, to, message)
	}
	if c.webhookURL != "" {
		return c.sendViaWebhook(ctx, to, message)
	}
	return ErrWhatsAppNotConfigured
}

type webhookMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (c *WhatsAppClient) sendViaWebhook(ctx context.Context, to, message string) error {
	body, err := json.Marshal(webhookMessage{To: to, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp webhook returned HTTP %d", resp.StatusCode)
	}

	return nil
}

func (c *WhatsAppClient) sendViaTwilio(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("From", "whatsapp:"+c.twilio.FromNumber)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.twilioBaseURL, c.twilio.AccountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.twilio.AccountSID, c.twilio.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send twilio message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("twilio API returned HTTP %d", resp.StatusCode)
	}

	return nil
}
