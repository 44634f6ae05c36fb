package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	HTTPAddr         string
	StoreDriver      string
	DatabaseURI      string
	MongoURI         string
	MongoDatabase    string
	ClassifierPath   string
	AmountPick       string
	SpecialImagePath string
	TelegramToken    string
	AIAPIKey         string
	AIBaseURL        string
	AIModel          string
	LogLevel         string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		HTTPAddr:         getEnvOrDefault("HTTP_ADDR", ":5000"),
		StoreDriver:      strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURI:      os.Getenv("DATABASE_URI"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "fund_manager"),
		ClassifierPath:   getEnvOrDefault("CLASSIFIER_PATH", "models/intent_classifier.gob"),
		AmountPick:       strings.ToLower(getEnvOrDefault("AMOUNT_PICK", "first")),
		SpecialImagePath: getEnvOrDefault("SPECIAL_IMAGE_PATH", "images/connor.jpeg"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		AIAPIKey:         os.Getenv("AI_API_KEY"),
		AIBaseURL:        getEnvOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
		AIModel:          getEnvOrDefault("AI_MODEL", "openai/gpt-4o-mini"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURI == "" {
			return fmt.Errorf("DATABASE_URI is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.ClassifierPath == "" {
		return fmt.Errorf("CLASSIFIER_PATH is required")
	}

	if c.AmountPick != "first" && c.AmountPick != "last" {
		return fmt.Errorf("AMOUNT_PICK must be first or last, got %q", c.AmountPick)
	}

	return nil
}

// AIEnabled reports whether the LLM fallback classifier is configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
