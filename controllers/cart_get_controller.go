package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/utils"
)

// GetCart returns the shopper's cart with the full price breakdown
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	utils.Success(c, "Cart retrieved successfully", cartSummary(c, eng))
}
