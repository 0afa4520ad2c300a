package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the console
type Config struct {
	AppMode string
	Port    string
	API     APIConfig
	Session SessionConfig
	Cookie  CookieConfig
}

// APIConfig holds the remote lending API configuration
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SessionConfig holds session signing and persistence configuration
type SessionConfig struct {
	Secret   string
	DBPath   string
	TTLHours int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	timeoutSeconds, _ := strconv.Atoi(getEnv("API_TIMEOUT_SECONDS", "10"))
	ttlHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		API: APIConfig{
			BaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
			TimeoutSeconds: timeoutSeconds,
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", "default_secret"),
			DBPath:   getEnv("SESSION_DB_PATH", "consigne-admin.db"),
			TTLHours: ttlHours,
		},
		Cookie: loadCookieConfig(appMode),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://admin.consigne.local"
	}
	return origins
}
