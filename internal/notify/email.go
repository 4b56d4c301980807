package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

var ErrEmailNotConfigured = errors.New("email sender not configured")

// ResendClient sends mail through the Resend REST API.
type ResendClient struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

type ResendConfig struct {
	APIKey string
	From   string
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
}

func NewResendClient(cfg ResendConfig) *ResendClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}

	return &ResendClient{
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

func (c *ResendClient) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	if c.apiKey == "" {
		return ErrEmailNotConfigured
	}

	payload := resendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email API returned HTTP %d", resp.StatusCode)
	}

	return nil
}
