package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret verifies tokens minted by the external identity service.
	JWTSecret string
	// APIKeyHash is the bcrypt hash of the machine API key; empty disables
	// API-key auth.
	APIKeyHash string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Software identity embedded in the audit file header.
	SoftwareDescription string
	SoftwareVersion     string

	// FailOnMissingAccount switches the reporting core from exclude-and-log
	// to fail-fast when a journal line references an unknown account.
	FailOnMissingAccount bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("API_KEY_HASH", "")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("SOFTWARE_DESCRIPTION", "Boekhoud App")
	viper.SetDefault("SOFTWARE_VERSION", "1.0")
	viper.SetDefault("FAIL_ON_MISSING_ACCOUNT", false)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		APIKeyHash:           viper.GetString("API_KEY_HASH"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
		SoftwareDescription:  viper.GetString("SOFTWARE_DESCRIPTION"),
		SoftwareVersion:      viper.GetString("SOFTWARE_VERSION"),
		FailOnMissingAccount: viper.GetBool("FAIL_ON_MISSING_ACCOUNT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.APIKeyHash == "" {
		log.Println("Warning: API_KEY_HASH not set. API-key authentication disabled.")
	}

	return cfg, nil
}
