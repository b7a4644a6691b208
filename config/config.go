package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	StoreDriver    string
	DataDir        string
	MongoString    string
	MongoDatabase  string
	DatabaseURL    string
	AllowedOrigins []string
	SeedDemo       bool
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded, using system environment: %v", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO", "false"))
	if err != nil {
		log.Printf("Warning: SEED_DEMO is not a boolean, seeding disabled: %v", err)
		seed = false
	}

	return &AppConfig{
		Port:           getEnv("PORT", "3000"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		DataDir:        getEnv("DATA_DIR", "./data"),
		MongoString:    getEnv("MONGOSTRING", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "station-attendance"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", defaultOrigins)),
		SeedDemo:       seed,
	}
}

// getEnv falls back to defaultValue when key is unset or empty.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
