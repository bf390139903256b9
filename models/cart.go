package models

// CartItem is one line in a shopper's cart. Identity is the
// (ProductSlug, VariantID) pair; VariantID is empty for products without
// configurable axes. MaxStock is the stock ceiling snapshotted at the last
// add or update, not a live reservation.
type CartItem struct {
	ProductSlug    string   `json:"product_slug"`
	VariantID      string   `json:"variant_id,omitempty"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url"`
	UnitPriceCents int64    `json:"unit_price_cents"`
	Quantity       int      `json:"quantity"`
	MaxStock       int      `json:"max_stock"`
	PaymentRef     string   `json:"payment_ref"`
	VariantLabels  []string `json:"variant_labels,omitempty"`
}

// Key returns the cart identity for this line.
func (i CartItem) Key() string {
	return i.ProductSlug + "|" + i.VariantID
}

// LineTotalCents is the extended price for this line.
func (i CartItem) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// SnapshotVersion is bumped whenever the persisted cart layout changes.
// Snapshots with any other version are treated as corrupt and dropped.
const SnapshotVersion = 1

// CartSnapshot is the persisted form of a cart, written after every
// mutating store operation and read once at store creation.
type CartSnapshot struct {
	Version int        `json:"version"`
	Items   []CartItem `json:"items"`
}
