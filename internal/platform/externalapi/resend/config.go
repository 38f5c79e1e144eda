// Package resend provides a client for the Resend transactional email API.
package resend

import (
	"os"
	"time"
)

// Config holds configuration for the Resend API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g. "https://api.resend.com")
	AppURL  string        // Public URL of the app, used to build confirmation links
	From    string        // Sender shown on outbound mail
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Resend configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("RESEND_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "RateMyMajor <no-reply@mail.ratemymajor.com>"
	}
	return Config{
		APIKey:  os.Getenv("RESEND_API_KEY"),
		BaseURL: baseURL,
		AppURL:  os.Getenv("APP_URL"),
		From:    from,
		Timeout: 10 * time.Second,
	}
}
