package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production") // skip .env lookup
	t.Setenv("MONGO_URI", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "eventdb", cfg.DatabaseName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "events_test")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://app.local")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "events_test", cfg.DatabaseName)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://app.local"}, cfg.CORSOrigins)
}
