package catalog

import (
	"strings"

	"github.com/emberhollow/storefront/models"
)

// VariantID builds the stable composite identifier for a variant. Size is
// omitted for single-size products.
func VariantID(wickType, size, scentKey string) string {
	parts := []string{wickType}
	if size != "" {
		parts = append(parts, size)
	}
	parts = append(parts, scentKey)
	return strings.Join(parts, "-")
}

// EligibleScents filters the full scent catalog down to the set a product
// may be poured in: global scents, minus scents restricted to other
// products, plus the product's own scent overrides.
func EligibleScents(all []models.Scent, product models.Product) []models.Scent {
	override := make(map[string]bool, len(product.Variants.ScentKeys))
	for _, key := range product.Variants.ScentKeys {
		override[key] = true
	}

	var eligible []models.Scent
	for _, s := range all {
		if override[s.Key] {
			eligible = append(eligible, s)
			continue
		}
		if s.RestrictedTo != "" && s.RestrictedTo != product.Slug {
			continue
		}
		eligible = append(eligible, s)
	}
	return eligible
}

// ResolveVariants expands a product's variant config against its eligible
// scents into the full cartesian variant set. Stock defaults to zero for
// variants absent from the override map; price falls back to the product's
// base price. The function is pure: same inputs always produce the same
// set, and it performs no I/O.
func ResolveVariants(product models.Product, scents []models.Scent) []models.Variant {
	sizes := product.Variants.Sizes
	if len(sizes) == 0 {
		sizes = []string{""}
	}

	var variants []models.Variant
	for _, wick := range product.Variants.WickTypes {
		for _, size := range sizes {
			for _, scent := range scents {
				id := VariantID(wick, size, scent.Key)

				v := models.Variant{
					ID:         id,
					WickType:   wick,
					Size:       size,
					ScentKey:   scent.Key,
					ScentName:  scent.Name,
					PriceCents: product.BasePriceCents,
					PaymentRef: product.PaymentRef + ":" + id,
				}
				if ov, ok := product.Variants.Overrides[id]; ok {
					v.Stock = ov.StockCount
					if ov.PriceCents > 0 {
						v.PriceCents = ov.PriceCents
					}
					if ov.PaymentRef != "" {
						v.PaymentRef = ov.PaymentRef
					}
				}
				variants = append(variants, v)
			}
		}
	}
	return variants
}

// FindVariant resolves the product's variant set and returns the variant
// with the given ID, if present.
func FindVariant(product models.Product, scents []models.Scent, variantID string) (models.Variant, bool) {
	for _, v := range ResolveVariants(product, scents) {
		if v.ID == variantID {
			return v, true
		}
	}
	return models.Variant{}, false
}
