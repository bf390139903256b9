package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service
type Config struct {
	Port string
	Env  string

	// Remote collaborator endpoints
	PromoValidationURL string
	CheckoutSessionURL string

	// Razorpay credentials, used when CheckoutProvider is "razorpay"
	CheckoutProvider string // "http" or "razorpay"
	RazorpayKey      string
	RazorpaySecret   string

	// Cart snapshot persistence: "memory", "file" or "postgres"
	CartStorage    string
	CartStorageDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SessionSecret string

	// DemoPointsBalance backs the static balance provider when no account
	// service is configured.
	DemoPointsBalance int
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig loads configuration from the environment, reading .env first
// when present.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               envOr("PORT", "8080"),
		Env:                envOr("ENV", "development"),
		PromoValidationURL: os.Getenv("PROMO_VALIDATION_URL"),
		CheckoutSessionURL: os.Getenv("CHECKOUT_SESSION_URL"),
		CheckoutProvider:   envOr("CHECKOUT_PROVIDER", "http"),
		RazorpayKey:        os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret:     os.Getenv("RAZORPAY_SECRET"),
		CartStorage:        envOr("CART_STORAGE", "file"),
		CartStorageDir:     envOr("CART_STORAGE_DIR", "data/carts"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		SessionSecret:      envOr("SESSION_SECRET", "ember-hollow-dev-secret"),
	}

	if raw := os.Getenv("DEMO_POINTS_BALANCE"); raw != "" {
		balance, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid DEMO_POINTS_BALANCE %q: %v", raw, err)
		}
		cfg.DemoPointsBalance = balance
	}

	if cfg.PromoValidationURL == "" {
		return nil, fmt.Errorf("PROMO_VALIDATION_URL is required")
	}

	switch cfg.CheckoutProvider {
	case "http":
		if cfg.CheckoutSessionURL == "" {
			return nil, fmt.Errorf("CHECKOUT_SESSION_URL is required for the http checkout provider")
		}
	case "razorpay":
		if cfg.RazorpayKey == "" || cfg.RazorpaySecret == "" {
			return nil, fmt.Errorf("RAZORPAY_KEY and RAZORPAY_SECRET are required for the razorpay checkout provider")
		}
	default:
		return nil, fmt.Errorf("unknown CHECKOUT_PROVIDER %q", cfg.CheckoutProvider)
	}

	return cfg, nil
}

// DSN assembles the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
