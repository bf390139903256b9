package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/middleware"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/utils"
)

// cartSummary builds the priced cart payload returned by every cart and
// promotion operation. Totals are advisory; the checkout authority
// recomputes everything at session creation.
func cartSummary(c *gin.Context, eng *shopperEngine) gin.H {
	items := eng.Cart.Items()

	var lines []gin.H
	for _, item := range items {
		stockStatus := "In Stock"
		switch {
		case item.MaxStock < item.Quantity:
			stockStatus = "Out of Stock"
		case item.MaxStock <= 3:
			stockStatus = "Only a few left"
		}

		lines = append(lines, gin.H{
			"product_slug":   item.ProductSlug,
			"variant_id":     item.VariantID,
			"name":           item.Name,
			"image_url":      item.ImageURL,
			"variant_labels": item.VariantLabels,
			"quantity":       item.Quantity,
			"unit_price":     utils.FormatCents(item.UnitPriceCents),
			"line_total":     utils.FormatCents(item.LineTotalCents()),
			"stock_status":   stockStatus,
		})
	}

	subtotal := eng.Cart.TotalPriceCents()

	var promoDiscount int64
	promoCode := ""
	promoSource := ""
	if promo, source, ok := eng.Promo.Active(); ok {
		promoDiscount = promo.DiscountCents
		promoCode = promo.Code
		promoSource = source.String()
	}
	// The discount amount comes verbatim from the validation endpoint;
	// only the displayed total is floored at zero.
	effectiveDiscount := promoDiscount
	if effectiveDiscount > subtotal {
		effectiveDiscount = subtotal
	}
	total := subtotal - effectiveDiscount

	balance := pointsBalance(c, c.GetString(middleware.CartKeyContextKey))
	pointsCap := points.Cap(balance, subtotal)

	return gin.H{
		"cart":             lines,
		"total_items":      eng.Cart.TotalItems(),
		"subtotal_cents":   subtotal,
		"subtotal":         utils.FormatCents(subtotal),
		"promo_code":       promoCode,
		"promo_source":     promoSource,
		"promo_discount":   utils.FormatCents(promoDiscount),
		"total_cents":      total,
		"total":            utils.FormatCents(total),
		"points_balance":   balance,
		"points_cap":       pointsCap,
		"points_max_value": utils.FormatCents(points.DiscountCents(pointsCap)),
	}
}
