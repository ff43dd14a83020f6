package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.DBName = "portfolio"
	cfg.Mongo.Collection = "users"
	cfg.LLM.Token = "hf_test"
	return cfg
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "MONGO_URI", "DB_NAME", "COLLECTION_NAME",
		"JWT_SECRET_KEY", "SESSION_TTL", "HF_BASE_URL", "HF_MODEL",
		"HF_TOKEN", "HF_MAX_TOKENS", "HF_TEMPERATURE", "HF_TIMEOUT",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://router.huggingface.co/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "meta-llama/Meta-Llama-3-8B-Instruct", cfg.LLM.Model)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Empty(t, cfg.LLM.Token)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "missing mongo uri", modify: func(c *Config) { c.Mongo.URI = "" }, wantErr: "MONGO_URI"},
		{name: "missing db name", modify: func(c *Config) { c.Mongo.DBName = "" }, wantErr: "DB_NAME"},
		{name: "missing collection", modify: func(c *Config) { c.Mongo.Collection = "" }, wantErr: "COLLECTION_NAME"},
		{name: "missing hf token", modify: func(c *Config) { c.LLM.Token = "" }, wantErr: "HF_TOKEN"},
		{name: "zero max tokens", modify: func(c *Config) { c.LLM.MaxTokens = 0 }, wantErr: "max_tokens"},
		{name: "temperature out of range", modify: func(c *Config) { c.LLM.Temperature = 2.5 }, wantErr: "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "portfoliomaker.yaml")
	content := `
server:
  addr: ":9000"
mongo:
  uri: "mongodb://from-file:27017"
  db_name: "filedb"
  collection: "users"
llm:
  model: "file-model"
  max_tokens: 512
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("MONGO_URI", "mongodb://from-env:27017")
	t.Setenv("HF_TOKEN", "hf_env")
	t.Setenv("HF_TEMPERATURE", "0.3")

	cfg, err := Load()
	require.NoError(t, err)

	// File overrides defaults.
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "file-model", cfg.LLM.Model)
	assert.Equal(t, 512, cfg.LLM.MaxTokens)
	// Env overrides file.
	assert.Equal(t, "mongodb://from-env:27017", cfg.Mongo.URI)
	assert.Equal(t, 0.3, cfg.LLM.Temperature)
	// Untouched values keep defaults.
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	// Secret was backfilled.
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
}

func TestLoadMissingRequired(t *testing.T) {
	clearEnv(t)

	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("COLLECTION_NAME", "users")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HF_TOKEN")
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	t.Setenv(ConfigFileEnv, path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
