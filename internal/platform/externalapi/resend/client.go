package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"ratemymajor_backend/internal/feature/verification/usecase"
	"ratemymajor_backend/internal/shared/ratelimiter"
)

// Client sends transactional email through the Resend HTTP API.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// Compile-time check to ensure Client implements the verification Mailer.
var _ usecase.Mailer = (*Client)(nil)

// NewClient creates a new instance of Client with the given configuration
// and HTTP client. limiter paces requests to stay inside the Resend API
// rate limit; nil disables pacing.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// emailRequest is the POST /emails payload.
type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendVerificationEmail sends a confirmation link for token to email.
// The link points at the frontend route where the token gets resolved.
func (c *Client) SendVerificationEmail(ctx context.Context, email, token string) error {
	confirmLink := fmt.Sprintf("%s/new-verification?token=%s", c.cfg.AppURL, token)

	payload := emailRequest{
		From:    c.cfg.From,
		To:      []string{email},
		Subject: "Confirm your email address now",
		HTML: fmt.Sprintf(
			`<p>Click <a href="%s">here</a> to confirm your email address.</p>`,
			confirmLink,
		),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	if c.limiter != nil {
		c.limiter.WaitIfNeeded()
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("resend http %d", res.StatusCode)
	}
	return nil
}
