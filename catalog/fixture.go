package catalog

import "github.com/emberhollow/storefront/models"

// SeedCatalog returns the demo storefront catalog. Wick types, scents and
// jar sizes mirror the production line; stock counts are illustrative.
func SeedCatalog() *StaticProvider {
	scents := []models.Scent{
		{Key: "bonfire_embers", Name: "Bonfire Embers", Category: models.ScentSeasonal},
		{Key: "lavender", Name: "Lavender", Category: models.ScentFavorites},
		{Key: "leather", Name: "Leather", Category: models.ScentFavorites},
		{Key: "white_eucalyptus", Name: "White Eucalyptus", Category: models.ScentFavorites},
		{Key: "sandalwood", Name: "Sandalwood", Category: models.ScentFavorites},
		{Key: "boot_leather", Name: "Boot Leather", Category: models.ScentLimited, RestrictedTo: "rancher-jar"},
	}

	products := []models.Product{
		{
			Slug:           "amber-jar",
			Name:           "Amber Jar Candle",
			ImageURL:       "/images/amber-jar.jpg",
			BasePriceCents: 2000,
			PaymentRef:     "price_amber_jar",
			Variants: models.VariantConfig{
				WickTypes: []string{"wood_30mm", "cdn12"},
				Sizes:     []string{"8oz", "12oz"},
				Overrides: map[string]models.VariantOverride{
					"wood_30mm-8oz-lavender":    {StockCount: 12},
					"wood_30mm-8oz-sandalwood":  {StockCount: 8},
					"wood_30mm-12oz-lavender":   {StockCount: 6, PriceCents: 2600},
					"cdn12-8oz-leather":         {StockCount: 10},
					"cdn12-12oz-bonfire_embers": {StockCount: 4, PriceCents: 2600},
				},
			},
		},
		{
			Slug:           "travel-tin",
			Name:           "Travel Tin Candle",
			ImageURL:       "/images/travel-tin.jpg",
			BasePriceCents: 1200,
			PaymentRef:     "price_travel_tin",
			Variants: models.VariantConfig{
				WickTypes: []string{"cdn16"},
				Overrides: map[string]models.VariantOverride{
					"cdn16-lavender":         {StockCount: 20},
					"cdn16-white_eucalyptus": {StockCount: 15},
				},
			},
		},
		{
			Slug:           "rancher-jar",
			Name:           "Rancher Jar Candle",
			ImageURL:       "/images/rancher-jar.jpg",
			BasePriceCents: 2800,
			PaymentRef:     "price_rancher_jar",
			Variants: models.VariantConfig{
				WickTypes: []string{"wood_20mm"},
				Sizes:     []string{"12oz"},
				ScentKeys: []string{"boot_leather"},
				Overrides: map[string]models.VariantOverride{
					"wood_20mm-12oz-boot_leather": {StockCount: 5},
					"wood_20mm-12oz-leather":      {StockCount: 7},
				},
			},
		},
	}

	return &StaticProvider{Products: products, Scents: scents}
}
