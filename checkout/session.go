package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/emberhollow/storefront/models"
)

// SessionClient opens a checkout session with the remote payment
// authority. The authority recomputes all pricing, tax and shipping; this
// engine only forwards the assembled request and redirects to the URL it
// gets back.
type SessionClient interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error)
}

type sessionResponse struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// HTTPSessionClient posts the checkout request to a configured endpoint.
type HTTPSessionClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSessionClient builds a session client against the endpoint URL.
func NewHTTPSessionClient(endpoint string) *HTTPSessionClient {
	return &HTTPSessionClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *HTTPSessionClient) CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("checkout session request failed: %v", err)
	}
	defer resp.Body.Close()

	var parsed sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode checkout session response: %v", err)
	}
	if parsed.Error != "" {
		return "", errors.New(parsed.Error)
	}
	if resp.StatusCode != http.StatusOK || parsed.URL == "" {
		return "", fmt.Errorf("checkout session returned status %d without a redirect URL", resp.StatusCode)
	}
	return parsed.URL, nil
}
