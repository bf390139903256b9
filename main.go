package main

import (
	"log"

	"github.com/emberhollow/storefront/cart"
	"github.com/emberhollow/storefront/catalog"
	"github.com/emberhollow/storefront/checkout"
	"github.com/emberhollow/storefront/config"
	"github.com/emberhollow/storefront/controllers"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/promotion"
	"github.com/emberhollow/storefront/routes"
	"github.com/emberhollow/storefront/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Catalog: Postgres when configured, seed catalog otherwise.
	var provider catalog.Provider
	if cfg.DBHost != "" {
		if err := config.InitDB(cfg); err != nil {
			utils.LogError("Failed to initialize database: %v", err)
			log.Fatal("Failed to initialize database:", err)
		}
		provider = catalog.NewGORMProvider(config.DB)
		utils.LogInfo("Using Postgres catalog provider")
	} else {
		provider = catalog.SeedCatalog()
		utils.LogInfo("Using seed catalog provider")
	}

	var storage cart.Storage
	switch cfg.CartStorage {
	case "postgres":
		if config.DB == nil {
			log.Fatal("CART_STORAGE=postgres requires DB_HOST to be configured")
		}
		storage, err = cart.NewGORMStorage(config.DB)
		if err != nil {
			utils.LogError("Failed to initialize cart storage: %v", err)
			log.Fatal("Failed to initialize cart storage:", err)
		}
	case "file":
		storage, err = cart.NewFileStorage(cfg.CartStorageDir)
		if err != nil {
			utils.LogError("Failed to initialize cart storage: %v", err)
			log.Fatal("Failed to initialize cart storage:", err)
		}
	case "memory":
		storage = cart.NewMemoryStorage()
	default:
		log.Fatalf("Unknown CART_STORAGE %q", cfg.CartStorage)
	}
	utils.LogInfo("Cart storage backend: %s", cfg.CartStorage)

	var sessionClient checkout.SessionClient
	if cfg.CheckoutProvider == "razorpay" {
		sessionClient = checkout.NewRazorpayClient(cfg.RazorpayKey, cfg.RazorpaySecret)
	} else {
		sessionClient = checkout.NewHTTPSessionClient(cfg.CheckoutSessionURL)
	}
	utils.LogInfo("Checkout provider: %s", cfg.CheckoutProvider)

	controllers.Setup(controllers.Deps{
		Catalog:  provider,
		Storage:  storage,
		Promos:   promotion.NewHTTPValidator(cfg.PromoValidationURL),
		Sessions: sessionClient,
		Balances: points.StaticBalance(cfg.DemoPointsBalance),
	})

	router := routes.SetupRouter(cfg.SessionSecret)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
