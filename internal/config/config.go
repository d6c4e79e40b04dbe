package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	AppPort        string
	AppEnv         string
	AppRegion      string
	PaymentAPIKey  string
	PaymentBaseURL string
}

// LoadConfig reads configuration from the environment (optionally seeded from
// a .env file). The durable-store location and the deployment region are
// required; the process refuses to start without them.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        getEnv("APP_PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AppRegion:      os.Getenv("APP_REGION"),
		PaymentAPIKey:  os.Getenv("PAYMENT_API_KEY"),
		PaymentBaseURL: os.Getenv("PAYMENT_BASE_URL"),
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" || cfg.DBPort == "" {
		log.Fatal("database location not configured: DB_HOST, DB_USER, DB_NAME and DB_PORT are required")
	}
	if cfg.AppRegion == "" {
		log.Fatal("APP_REGION not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
