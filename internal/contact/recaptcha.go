package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Recaptcha verifies tokens with Google's siteverify endpoint.
type Recaptcha struct {
	secret    string
	verifyURL string
	client    *http.Client
}

// NewRecaptcha creates a verifier posting to verifyURL.
func NewRecaptcha(secret, verifyURL string) *Recaptcha {
	return &Recaptcha{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify returns nil when the token is accepted.
func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{"secret": {r.secret}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("verification service returned %s", resp.Status)
	}
	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode verification response: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("token rejected: %s", strings.Join(out.ErrorCodes, ", "))
	}
	return nil
}
