package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	PrintifyAPIToken string
	PrintifyShopID   string
	PrintifyAPIBase  string

	StripeAPIKey        string
	StripeAPIBase       string
	StripeWebhookSecret string

	FrontendURL string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),

		PrintifyAPIToken: getEnv("PRINTIFY_API_TOKEN", ""),
		PrintifyShopID:   getEnv("PRINTIFY_SHOP_ID", ""),
		PrintifyAPIBase:  getEnv("PRINTIFY_API_BASE", "https://api.printify.com/v1"),

		StripeAPIKey:        getEnv("STRIPE_API_KEY", ""),
		StripeAPIBase:       getEnv("STRIPE_API_BASE", "https://api.stripe.com/v1"),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
