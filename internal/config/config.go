// Package config loads the server configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// DefaultAPIVersion is the Shopify Admin API version used for outbound
// calls when SHOPIFY_API_VERSION is not set.
const DefaultAPIVersion = "2023-07"

// Config holds the application configuration. It is read once at startup
// and treated as immutable.
type Config struct {
	MongoURI      string
	MongoDatabase string
	Port          string
	APIVersion    string
	CORSOrigin    string
}

// Load reads the configuration from environment variables. MONGODB_URI is
// required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "DistaApps"),
		Port:          getEnv("PORT", "5000"),
		APIVersion:    getEnv("SHOPIFY_API_VERSION", DefaultAPIVersion),
		CORSOrigin:    getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("required environment variable not set: MONGODB_URI")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
