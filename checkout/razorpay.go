package checkout

import (
	"context"
	"fmt"

	"github.com/emberhollow/storefront/models"
	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayClient opens checkout sessions as Razorpay payment links. The
// shopper is redirected to the hosted link to complete payment.
type RazorpayClient struct {
	client *razorpay.Client
}

// NewRazorpayClient builds a session client from API credentials.
func NewRazorpayClient(key, secret string) *RazorpayClient {
	return &RazorpayClient{client: razorpay.NewClient(key, secret)}
}

func (c *RazorpayClient) CreateSession(_ context.Context, req models.CheckoutRequest) (string, error) {
	notes := map[string]interface{}{
		"idempotency_key": req.IdempotencyKey,
		"line_count":      len(req.Lines),
	}
	if req.PromotionID != "" {
		notes["promotion_id"] = req.PromotionID
	}
	if req.PointsToRedeem > 0 {
		notes["points_to_redeem"] = req.PointsToRedeem
	}

	data := map[string]interface{}{
		"amount":      req.AdvisoryTotalCents,
		"currency":    "USD",
		"description": fmt.Sprintf("Ember Hollow order (%d items)", len(req.Lines)),
		"reference_id": req.IdempotencyKey,
		"customer": map[string]interface{}{
			"name": req.ShippingAddress.Name,
		},
		"notes": notes,
	}

	link, err := c.client.PaymentLink.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create payment link: %v", err)
	}

	url, ok := link["short_url"].(string)
	if !ok || url == "" {
		return "", fmt.Errorf("payment link response missing short_url")
	}
	return url, nil
}
