package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/utils"
)

// UpdateCart sets the quantity of a cart line, clamped to the stock
// ceiling captured for that line. A quantity of zero removes the line;
// clients are expected to confirm the removal before calling.
func UpdateCart(c *gin.Context) {
	utils.LogInfo("UpdateCart called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req struct {
		ProductSlug string `json:"product_slug" binding:"required"`
		VariantID   string `json:"variant_id"`
		Quantity    *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart update request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if eng.Cart.ItemQuantity(req.ProductSlug, req.VariantID) == 0 {
		utils.LogError("Cart line not found for %s|%s", req.ProductSlug, req.VariantID)
		utils.NotFound(c, "Cart item not found")
		return
	}

	newQty := eng.Cart.UpdateQuantity(req.ProductSlug, req.VariantID, *req.Quantity)
	utils.LogInfo("Updated %s|%s to quantity %d (requested %d)", req.ProductSlug, req.VariantID, newQty, *req.Quantity)

	message := "Cart item quantity updated"
	if newQty == 0 {
		message = "Cart item removed"
	}

	summary := cartSummary(c, eng)
	summary["resulting_quantity"] = newQty
	utils.Success(c, message, summary)
}
