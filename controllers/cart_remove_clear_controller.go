package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/utils"
)

// RemoveFromCart unconditionally removes a cart line. Removing an absent
// line succeeds; the operation is idempotent.
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req struct {
		ProductSlug string `json:"product_slug" binding:"required"`
		VariantID   string `json:"variant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart remove request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	eng.Cart.RemoveItem(req.ProductSlug, req.VariantID)
	utils.LogInfo("Removed %s|%s from cart", req.ProductSlug, req.VariantID)
	utils.Success(c, "Item removed from cart", cartSummary(c, eng))
}

// ClearCart empties the cart unconditionally
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	eng.Cart.Clear()
	utils.LogInfo("Cleared cart")
	utils.Success(c, "Cart cleared", cartSummary(c, eng))
}
