package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:  "re_test_key",
		BaseURL: baseURL,
		AppURL:  "https://ratemymajor.example",
		From:    "RateMyMajor <no-reply@mail.ratemymajor.com>",
		Timeout: 5 * time.Second,
	}
}

func TestClient_SendVerificationEmail(t *testing.T) {
	t.Run("posts a well-formed request", func(t *testing.T) {
		var got emailRequest
		var gotAuth, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient(testConfig(srv.URL), srv.Client(), nil)
		err := c.SendVerificationEmail(context.Background(), "billy@gmail.com", "tok-123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/emails" {
			t.Errorf("unexpected path: %q", gotPath)
		}
		if gotAuth != "Bearer re_test_key" {
			t.Errorf("unexpected authorization header: %q", gotAuth)
		}
		if len(got.To) != 1 || got.To[0] != "billy@gmail.com" {
			t.Errorf("unexpected recipients: %v", got.To)
		}
		if got.From != "RateMyMajor <no-reply@mail.ratemymajor.com>" {
			t.Errorf("unexpected sender: %q", got.From)
		}
		if !strings.Contains(got.HTML, "https://ratemymajor.example/new-verification?token=tok-123") {
			t.Errorf("confirmation link missing from body: %q", got.HTML)
		}
	})

	t.Run("api error status surfaces to the caller", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		c := NewClient(testConfig(srv.URL), srv.Client(), nil)
		err := c.SendVerificationEmail(context.Background(), "billy@gmail.com", "tok-123")

		if err == nil || !strings.Contains(err.Error(), "422") {
			t.Errorf("expected a status error, got: %v", err)
		}
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewClient(testConfig(srv.URL), srv.Client(), nil)
		err := c.SendVerificationEmail(ctx, "billy@gmail.com", "tok-123")

		if err == nil {
			t.Error("expected an error for a cancelled context")
		}
	})
}
