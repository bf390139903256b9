package models

import (
	"time"

	"gorm.io/gorm"
)

// VariantOverride carries the sparse per-variant stock and price data keyed
// by variant ID in the product's variant config. A variant absent from the
// map has zero stock and the product's base price.
type VariantOverride struct {
	StockCount int    `json:"stock_count"`
	PriceCents int64  `json:"price_cents,omitempty"`
	PaymentRef string `json:"payment_ref,omitempty"`
}

// VariantConfig enumerates a product's configurable axes. Sizes may be empty
// for single-size products.
type VariantConfig struct {
	WickTypes []string                   `json:"wick_types"`
	Sizes     []string                   `json:"sizes,omitempty"`
	Overrides map[string]VariantOverride `json:"overrides,omitempty"`
	// ScentKeys lists product-specific scent overrides. When set, these
	// scents are eligible for this product even if restricted elsewhere.
	ScentKeys []string `json:"scent_keys,omitempty"`
}

// Product is the catalog entry the variant resolver works from.
type Product struct {
	Slug           string         `gorm:"primaryKey" json:"slug"`
	Name           string         `json:"name"`
	ImageURL       string         `json:"image_url"`
	BasePriceCents int64          `json:"base_price_cents"`
	PaymentRef     string         `json:"payment_ref"`
	// StockCount applies to products without configurable axes; products
	// with variants carry stock per variant in the override map.
	StockCount int `json:"stock_count,omitempty"`
	Variants       VariantConfig  `gorm:"serializer:json" json:"variants"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Variant is a fully resolved purchasable combination of a product's axes.
// Recomputed on every catalog read, never persisted.
type Variant struct {
	ID         string `json:"id"`
	WickType   string `json:"wick_type"`
	Size       string `json:"size,omitempty"`
	ScentKey   string `json:"scent_key"`
	ScentName  string `json:"scent_name"`
	PriceCents int64  `json:"price_cents"`
	PaymentRef string `json:"payment_ref"`
	Stock      int    `json:"stock"`
}

// Purchasable reports whether the variant can currently be added to a cart.
// Zero-stock variants stay listed but cannot be purchased.
func (v Variant) Purchasable() bool {
	return v.Stock > 0
}

// Labels returns the human-readable axis values shown on cart lines.
func (v Variant) Labels() []string {
	labels := []string{v.WickType}
	if v.Size != "" {
		labels = append(labels, v.Size)
	}
	labels = append(labels, v.ScentName)
	return labels
}
