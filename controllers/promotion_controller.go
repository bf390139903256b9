package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/utils"
)

// ApplyPromoRequest represents the request body for applying a promotion code
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyPromo validates a shopper-entered code against the cart and makes
// it the active promotion. A manual code supersedes any automatic
// promotion; on failure the previous promotion state is unchanged.
func ApplyPromo(c *gin.Context) {
	utils.LogInfo("ApplyPromo called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req ApplyPromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid promo apply request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if eng.Cart.TotalItems() == 0 {
		utils.LogInfo("Promo apply refused: cart is empty")
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	promo, err := eng.Promo.Apply(c.Request.Context(), req.Code, eng.Cart.PromoLines())
	if err != nil {
		utils.LogError("Failed to apply promotion code %s: %v", req.Code, err)
		utils.BadRequest(c, "Could not apply promotion code", gin.H{"code": err.Error()})
		return
	}

	utils.LogInfo("Applied promotion %s (%s)", promo.ID, promo.Code)
	summary := cartSummary(c, eng)
	summary["promotion"] = promo
	utils.Success(c, "Promotion applied successfully", summary)
}

// RemovePromo clears the active promotion, manual or automatic. Automatic
// discovery stays quiet until the next qualifying cart change.
func RemovePromo(c *gin.Context) {
	utils.LogInfo("RemovePromo called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	eng.Promo.Remove()
	utils.LogInfo("Removed active promotion")
	utils.Success(c, "Promotion removed", cartSummary(c, eng))
}

// GetPromo reports the currently active promotion, if any
func GetPromo(c *gin.Context) {
	utils.LogInfo("GetPromo called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	promo, source, active := eng.Promo.Active()
	if !active {
		utils.Success(c, "No active promotion", gin.H{"active": false})
		return
	}
	utils.Success(c, "Active promotion retrieved", gin.H{
		"active":    true,
		"promotion": promo,
		"source":    source.String(),
	})
}
