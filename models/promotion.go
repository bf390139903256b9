package models

// PromotionSource distinguishes how the active promotion was selected.
type PromotionSource int

const (
	// SourceAutomatic means the cart qualified without shopper input.
	SourceAutomatic PromotionSource = iota
	// SourceManual means the shopper entered a code. Manual selections
	// always supersede automatic ones.
	SourceManual
)

func (s PromotionSource) String() string {
	switch s {
	case SourceAutomatic:
		return "automatic"
	case SourceManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Promotion is a discount as reported by the validation endpoint. The
// discount amount is taken verbatim from the remote response; this engine
// never recomputes percentage math on its own.
type Promotion struct {
	ID              string  `json:"id"`
	Code            string  `json:"code,omitempty"` // empty for automatic promotions
	Name            string  `json:"name"`
	Type            string  `json:"type"` // "percent" or "flat"
	DiscountPercent float64 `json:"discount_percent,omitempty"`
	DiscountCents   int64   `json:"discount_amount_cents"`
}

// PromoLine is the cart line shape sent to the validation endpoint.
type PromoLine struct {
	Slug           string `json:"slug"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}
