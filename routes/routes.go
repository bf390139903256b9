package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/controllers"
	"github.com/emberhollow/storefront/middleware"
	"github.com/emberhollow/storefront/utils"
)

// SetupRouter configures the storefront routes with their middleware chain
func SetupRouter(sessionSecret string) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	store := cookie.NewStore([]byte(sessionSecret))
	router.Use(sessions.Sessions("storefront", store))
	router.Use(middleware.CartSession())

	// Catalog reads
	router.GET("/products/:slug/variants", controllers.GetProductVariants)

	// Cart operations
	cart := router.Group("/cart")
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/add", controllers.AddToCart)
		cart.PUT("/update", controllers.UpdateCart)
		cart.DELETE("/remove", controllers.RemoveFromCart)
		cart.DELETE("/clear", controllers.ClearCart)
	}

	// Promotions
	promo := router.Group("/promo")
	{
		promo.GET("", controllers.GetPromo)
		promo.POST("/apply", controllers.ApplyPromo)
		promo.DELETE("/remove", controllers.RemovePromo)
	}

	// Loyalty points
	router.POST("/points/preview", controllers.PreviewRedemption)

	// Checkout
	router.POST("/checkout", controllers.Checkout)

	return router
}
