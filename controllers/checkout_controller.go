package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/checkout"
	"github.com/emberhollow/storefront/middleware"
	"github.com/emberhollow/storefront/models"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/utils"
)

// CheckoutRequest represents the checkout submission body
type CheckoutRequest struct {
	PointsToRedeem  int                    `json:"points_to_redeem"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
}

// Checkout assembles the cart, active promotion, requested points and
// shipping destination into one session request against the remote
// checkout authority and returns the redirect URL. A failed attempt leaves
// all state untouched and is safely retryable.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	in := checkout.Input{
		Items:   eng.Cart.Items(),
		Address: req.ShippingAddress,
	}
	if promo, _, active := eng.Promo.Active(); active {
		in.Promotion = &promo
	}

	// Redemption requests outside [0, cap] are clamped, not rejected.
	balance := pointsBalance(c, c.GetString(middleware.CartKeyContextKey))
	in.PointsToRedeem = points.Clamp(req.PointsToRedeem, balance, eng.Cart.TotalPriceCents())

	url, err := eng.Checkout.Submit(c.Request.Context(), in)
	if err != nil {
		var addrErr *checkout.AddressError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			utils.LogError("Checkout refused: cart is empty")
			utils.BadRequest(c, "Cart is empty", nil)
		case errors.As(err, &addrErr):
			utils.LogError("Checkout refused: %v", addrErr)
			utils.ValidationError(c, "Shipping address is incomplete", gin.H{"missing": addrErr.Missing})
		case errors.Is(err, checkout.ErrSubmissionInFlight):
			utils.LogError("Checkout refused: submission already in progress")
			utils.Conflict(c, "A checkout is already in progress", nil)
		default:
			utils.LogError("Checkout session creation failed: %v", err)
			utils.BadGateway(c, "Checkout could not be started, please try again", gin.H{"reason": err.Error()})
		}
		return
	}

	utils.LogInfo("Checkout session created, redirecting shopper")
	utils.Success(c, "Checkout session created", gin.H{"url": url})
}
