package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/middleware"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/utils"
)

// PreviewRedemption clamps a requested points redemption against the
// shopper's balance and the current subtotal, and returns the resulting
// discount. Out-of-range requests are clamped, never rejected.
func PreviewRedemption(c *gin.Context) {
	utils.LogInfo("PreviewRedemption called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req struct {
		Points int `json:"points"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid redemption preview request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	balance := pointsBalance(c, c.GetString(middleware.CartKeyContextKey))
	subtotal := eng.Cart.TotalPriceCents()

	clamped := points.Clamp(req.Points, balance, subtotal)
	utils.LogInfo("Redemption preview: requested %d, balance %d, subtotal %d cents, clamped %d", req.Points, balance, subtotal, clamped)

	utils.Success(c, "Redemption preview calculated", gin.H{
		"requested_points": req.Points,
		"points":           clamped,
		"points_cap":       points.Cap(balance, subtotal),
		"balance":          balance,
		"discount_cents":   points.DiscountCents(clamped),
		"discount":         utils.FormatCents(points.DiscountCents(clamped)),
	})
}
