package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/shop")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://app:pw@db:5432/shop", cfg.DBConnStr)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestLoadConfigBuildsDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "dbhost")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "shopdb")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("PORT", "")

	cfg := LoadConfig()

	assert.Equal(t, "host=dbhost user=shop password=pw dbname=shopdb port=5433 sslmode=disable", cfg.DBConnStr)
	assert.Equal(t, "8080", cfg.ServerPort)
}
