package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// InsecureDefaultSecret is only acceptable outside production.
const InsecureDefaultSecret = "dev-super-secret"

type Config struct {
	Env           string
	Port          string
	SecretKey     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from the environment. infra.Initialize is
// expected to have loaded .env beforehand.
func Load() *Config {
	return &Config{
		Env:           getEnvString("ENV", "dev"),
		Port:          getEnvString("PORT", "8080"),
		SecretKey:     getEnvString("SECRET_KEY", InsecureDefaultSecret),
		TokenTTL:      time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		AdminEmail:    getEnvString("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnvString("ADMIN_PASSWORD", "Admin123!"),
	}
}

// Validate fails closed when the signing key is missing or left at the
// development default in a production environment.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Env == "prod" && c.SecretKey == InsecureDefaultSecret {
		return errors.New("SECRET_KEY must be set to a non-default value when ENV=prod")
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
