package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/catalog"
	"github.com/emberhollow/storefront/models"
	"github.com/emberhollow/storefront/utils"
)

// AddToCart adds a product variant to the shopper's cart with stock validation
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	eng, ok := engineFor(c)
	if !ok {
		return
	}

	var req struct {
		ProductSlug string `json:"product_slug" binding:"required"`
		VariantID   string `json:"variant_id"`
		Quantity    int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add to cart request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	utils.LogInfo("Adding product %s variant %q quantity %d", req.ProductSlug, req.VariantID, req.Quantity)

	product, err := deps.Catalog.ProductBySlug(c.Request.Context(), req.ProductSlug)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.LogError("Product not found: %s", req.ProductSlug)
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to load product %s: %v", req.ProductSlug, err)
		utils.InternalServerError(c, "Failed to load product", nil)
		return
	}

	item := models.CartItem{
		ProductSlug:    product.Slug,
		Name:           product.Name,
		ImageURL:       product.ImageURL,
		UnitPriceCents: product.BasePriceCents,
		PaymentRef:     product.PaymentRef,
		MaxStock:       product.StockCount,
	}

	if len(product.Variants.WickTypes) > 0 {
		if req.VariantID == "" {
			utils.LogError("Variant selection required for product %s", product.Slug)
			utils.BadRequest(c, "Please select a variant", nil)
			return
		}
		scents, err := deps.Catalog.ScentsForProduct(c.Request.Context(), product)
		if err != nil {
			utils.LogError("Failed to load scents for product %s: %v", product.Slug, err)
			utils.InternalServerError(c, "Failed to load product variants", nil)
			return
		}
		variant, found := catalog.FindVariant(product, scents, req.VariantID)
		if !found {
			utils.LogError("Variant %s not found for product %s", req.VariantID, product.Slug)
			utils.NotFound(c, "Variant not found")
			return
		}
		if !variant.Purchasable() {
			utils.LogInfo("Variant %s of product %s is out of stock", variant.ID, product.Slug)
			utils.BadRequest(c, "This variant is out of stock", nil)
			return
		}
		item.VariantID = variant.ID
		item.UnitPriceCents = variant.PriceCents
		item.PaymentRef = variant.PaymentRef
		item.MaxStock = variant.Stock
		item.VariantLabels = variant.Labels()
	}

	if !eng.Cart.AddItem(item, req.Quantity) {
		held := eng.Cart.ItemQuantity(item.ProductSlug, item.VariantID)
		utils.LogInfo("Stock ceiling refused add for %s: held %d, ceiling %d", item.Key(), held, item.MaxStock)
		utils.BadRequest(c, fmt.Sprintf("Not enough stock. Available: %d", item.MaxStock-held), nil)
		return
	}

	utils.LogInfo("Added %s to cart, new quantity %d", item.Key(), eng.Cart.ItemQuantity(item.ProductSlug, item.VariantID))
	utils.Success(c, "Item added to cart successfully", cartSummary(c, eng))
}
