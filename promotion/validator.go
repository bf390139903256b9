package promotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/emberhollow/storefront/models"
)

// Verdict is the validation endpoint's answer. For automatic discovery the
// endpoint is queried without a code and reports the best promotion the
// cart currently qualifies for, if any.
type Verdict struct {
	Valid     bool              `json:"valid"`
	Promotion *models.Promotion `json:"promotion,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Validator is the remote promotion-validation boundary. Qualification
// rules live entirely on the remote side; this engine adopts the verdict
// verbatim.
type Validator interface {
	Validate(ctx context.Context, code string, lines []models.PromoLine) (Verdict, error)
}

type validateRequest struct {
	Code  string             `json:"code,omitempty"`
	Items []models.PromoLine `json:"items"`
}

// HTTPValidator posts cart lines (and an optional code) to the validation
// endpoint.
type HTTPValidator struct {
	endpoint string
	client   *http.Client
}

// NewHTTPValidator builds a validator against the given endpoint URL.
func NewHTTPValidator(endpoint string) *HTTPValidator {
	return &HTTPValidator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPValidator) Validate(ctx context.Context, code string, lines []models.PromoLine) (Verdict, error) {
	body, err := json.Marshal(validateRequest{Code: code, Items: lines})
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to encode validation request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to build validation request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return Verdict{}, fmt.Errorf("promotion validation request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Verdict{}, fmt.Errorf("promotion validation returned status %d", resp.StatusCode)
	}

	var verdict Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return Verdict{}, fmt.Errorf("failed to decode validation response: %v", err)
	}
	return verdict, nil
}
