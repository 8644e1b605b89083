package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBConnStr  string
	ServerPort string
}

func LoadConfig() *Config {
	return &Config{
		DBConnStr:  databaseDSN(),
		ServerPort: getEnvOrDefault("PORT", "8080"),
	}
}

// databaseDSN prefers a full DATABASE_URL and falls back to discrete vars.
func databaseDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		getEnvOrDefault("DB_NAME", "cartly"),
		getEnvOrDefault("DB_PORT", "5432"),
	)
}

func getEnvOrDefault(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
