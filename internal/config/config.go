package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	DataDir        string
	AppEnv         string
	RequestTimeout time.Duration
	OfflineMode    bool
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("SHOP_API_URL", "http://127.0.0.1:8000"),
		DataDir:        getEnv("SHOP_DATA_DIR", ".rupeeshop"),
		AppEnv:         os.Getenv("APP_ENV"),
		RequestTimeout: getEnvDuration("SHOP_REQUEST_TIMEOUT", 15*time.Second),
		OfflineMode:    getEnvBool("SHOP_OFFLINE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
