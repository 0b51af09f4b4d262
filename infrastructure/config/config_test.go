package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDRESS", "ENVIRONMENT", "DATA_DIR", "CACHE_KEY",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "USER_ID",
		"REMOTE_ENABLED", "REMOTE_TIMEOUT_MS", "LOG_LEVEL", "ENABLE_CORS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "sik-dan-meals", cfg.CacheKey)
	assert.Equal(t, DefaultUserID, cfg.UserID)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigDisablesRemoteWithoutCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("REMOTE_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.RemoteEnabled)
}

func TestLoadConfigEnablesRemoteWithCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.RemoteEnabled)
}

func TestLoadConfigRemoteTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REMOTE_TIMEOUT_MS", "1500")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.RemoteTimeout)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{CacheKey: ""}).Validate())

	prod := &Config{CacheKey: "k", Environment: "production", RemoteEnabled: true}
	assert.Error(t, prod.Validate())

	prod.SupabaseURL = "https://example.supabase.co"
	assert.Error(t, prod.Validate())

	prod.SupabaseAnonKey = "anon-key"
	assert.NoError(t, prod.Validate())
}
