package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"portfolio/internal/config"
)

// Verifier checks an anti-spam token. A false result with a nil error means the token
// was rejected; a non-nil error means the verifier could not be reached or answered
// with something unusable.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// Recaptcha verifies tokens against Google's siteverify endpoint.
type Recaptcha struct {
	secret    string
	verifyURL string
	client    *http.Client
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// NewRecaptcha builds a verifier whose HTTP calls are traced.
func NewRecaptcha(cfg config.CaptchaConfig) *Recaptcha {
	return &Recaptcha{
		secret:    cfg.PrivateKey,
		verifyURL: cfg.VerifyURL,
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", r.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha verify: unexpected status %d", resp.StatusCode)
	}

	var out siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode captcha response: %w", err)
	}
	return out.Success, nil
}

// AllowAll accepts every token. It is used when no reCAPTCHA key is configured.
type AllowAll struct{}

func (AllowAll) Verify(context.Context, string, string) (bool, error) { return true, nil }
