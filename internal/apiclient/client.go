// Package apiclient is the widget's HTTP client for the two bootstrap calls:
// the token exchange and the service catalog fetch. Every request is bound
// to its context and the client's timeout; failures come back as wrapped
// errors for the widget to surface as the error view.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pawdesk/booking-widget/internal/catalog"
	"github.com/pawdesk/booking-widget/internal/session"
	"github.com/pawdesk/booking-widget/pkg/logging"
)

const defaultTimeout = 20 * time.Second

// ErrNoToken is returned when the token endpoint responds without a token.
var ErrNoToken = errors.New("apiclient: response missing token")

// Customization carries the embed-time appearance options sent with the
// token request.
type Customization struct {
	PrimaryColor string `json:"primary_color,omitempty"`
	TextColor    string `json:"text_color,omitempty"`
	FontFamily   string `json:"font_family,omitempty"`
	BorderRadius string `json:"border_radius,omitempty"`
}

// TokenRequest is the wire body of POST /api/widget/token.
type TokenRequest struct {
	APIKey        string          `json:"api_key"`
	Signature     string          `json:"signature"`
	Payload       session.Payload `json:"payload"`
	Customization Customization   `json:"customization"`
}

// TokenResponse is the wire body of a successful token exchange.
type TokenResponse struct {
	Token string `json:"token"`
}

// Client talks to the widget API.
type Client struct {
	baseURL       string
	apiKey        string
	signingSecret string
	httpClient    *http.Client
	logger        *logging.Logger
	now           func() time.Time
}

// New creates a widget API client.
func New(baseURL, apiKey, signingSecret string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		signingSecret: signingSecret,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// RequestToken exchanges the API key and a signed payload for a session token.
func (c *Client) RequestToken(ctx context.Context, origin string, custom Customization) (string, error) {
	payload := session.Payload{
		Timestamp: c.now().UnixMilli(),
		Origin:    origin,
	}
	reqBody := TokenRequest{
		APIKey:        c.apiKey,
		Signature:     session.Sign(c.signingSecret, payload),
		Payload:       payload,
		Customization: custom,
	}

	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/widget/token", "", reqBody, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", ErrNoToken
	}
	return out.Token, nil
}

// LoadServices fetches the offering catalog with the bearer token.
func (c *Client) LoadServices(ctx context.Context, token string) ([]catalog.Service, error) {
	var out catalog.ServicesResponse
	if err := c.do(ctx, http.MethodGet, "/api/widget/services", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return fmt.Errorf("apiclient: %s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("apiclient: unmarshal response: %w", err)
	}
	return nil
}
