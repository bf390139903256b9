package models

// ShippingAddress is the destination collected at checkout. Name, Line1,
// City, State and PostalCode are required before a session is opened.
type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country,omitempty"`
}

// CheckoutLine is one order line in an outbound checkout session request.
type CheckoutLine struct {
	PaymentRef     string   `json:"payment_ref"`
	Quantity       int      `json:"quantity"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url,omitempty"`
	UnitPriceCents int64    `json:"unit_price_cents"`
	VariantLabels  []string `json:"variant_labels,omitempty"`
}

// CheckoutRequest is assembled fresh on every submission and never
// persisted. The remote checkout authority recomputes all pricing; the
// totals implied here are advisory.
type CheckoutRequest struct {
	IdempotencyKey  string          `json:"idempotency_key"`
	Lines           []CheckoutLine  `json:"lines"`
	PromotionID     string          `json:"promotion_id,omitempty"`
	PointsToRedeem  int             `json:"points_to_redeem,omitempty"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	// AdvisoryTotalCents is the engine's own total after discounts. The
	// remote authority recomputes pricing and is the source of truth.
	AdvisoryTotalCents int64 `json:"advisory_total_cents"`
}
