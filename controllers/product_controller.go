package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/catalog"
	"github.com/emberhollow/storefront/utils"
)

// GetProductVariants resolves and returns the full variant set for a
// product. Zero-stock variants are listed but flagged unpurchasable.
func GetProductVariants(c *gin.Context) {
	utils.LogInfo("GetProductVariants called")

	slug := c.Param("slug")
	product, err := deps.Catalog.ProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.LogError("Product not found: %s", slug)
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to load product %s: %v", slug, err)
		utils.InternalServerError(c, "Failed to load product", nil)
		return
	}

	scents, err := deps.Catalog.ScentsForProduct(c.Request.Context(), product)
	if err != nil {
		utils.LogError("Failed to load scents for product %s: %v", slug, err)
		utils.InternalServerError(c, "Failed to load product variants", nil)
		return
	}

	variants := catalog.ResolveVariants(product, scents)
	var payload []gin.H
	for _, v := range variants {
		payload = append(payload, gin.H{
			"id":          v.ID,
			"wick_type":   v.WickType,
			"size":        v.Size,
			"scent_key":   v.ScentKey,
			"scent_name":  v.ScentName,
			"price":       utils.FormatCents(v.PriceCents),
			"price_cents": v.PriceCents,
			"stock":       v.Stock,
			"purchasable": v.Purchasable(),
		})
	}

	utils.LogInfo("Resolved %d variants for product %s", len(variants), slug)
	utils.Success(c, "Product variants resolved", gin.H{
		"product_slug": product.Slug,
		"name":         product.Name,
		"image_url":    product.ImageURL,
		"variants":     payload,
	})
}
