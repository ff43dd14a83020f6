// Package config provides layered configuration loading for the API server.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the env var that points at an alternate config file.
const ConfigFileEnv = "PORTFOLIO_CONFIG"

// DefaultConfigFile is looked up in the working directory when
// PORTFOLIO_CONFIG is unset.
const DefaultConfigFile = "portfoliomaker.yaml"

// Config is the complete server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	Auth   AuthConfig   `yaml:"auth"`
	LLM    LLMConfig    `yaml:"llm"`
	Limit  LimitConfig  `yaml:"limit"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	DBName     string `yaml:"db_name"`
	Collection string `yaml:"collection"`
}

type AuthConfig struct {
	// JWTSecret signs access tokens. Required.
	JWTSecret string `yaml:"jwt_secret"`
	// SessionTTL bounds how long an idle session survives server-side.
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type LLMConfig struct {
	// BaseURL is an OpenAI-compatible chat-completions endpoint.
	BaseURL string `yaml:"base_url"`
	// Model is the model identifier sent with each request.
	Model string `yaml:"model"`
	// Token authorizes requests against the provider. Required.
	Token       string        `yaml:"token"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

type LimitConfig struct {
	// RPS and Burst bound per-client calls to the generation endpoints.
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with working defaults for everything that
// has one. Required secrets stay empty and fail Validate.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Auth: AuthConfig{
			SessionTTL: 24 * time.Hour,
		},
		LLM: LLMConfig{
			BaseURL:     "https://router.huggingface.co/v1",
			Model:       "meta-llama/Meta-Llama-3-8B-Instruct",
			MaxTokens:   2048,
			Temperature: 0.7,
			Timeout:     5 * time.Minute,
		},
		Limit: LimitConfig{
			RPS:   1,
			Burst: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration: defaults, then the optional YAML
// file, then environment variables. A .env file in the working directory is
// folded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := os.Getenv(ConfigFileEnv)
	if path == "" {
		path = DefaultConfigFile
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	// Sessions live in process memory, so tokens cannot outlive a restart
	// anyway. A random per-boot secret is safe when none is configured.
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = randomSecret()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("read random secret: %v", err))
	}
	return hex.EncodeToString(buf)
}

func (c *Config) applyEnv() {
	setString(&c.Server.Addr, "LISTEN_ADDR")
	setString(&c.Mongo.URI, "MONGO_URI")
	setString(&c.Mongo.DBName, "DB_NAME")
	setString(&c.Mongo.Collection, "COLLECTION_NAME")
	setString(&c.Auth.JWTSecret, "JWT_SECRET_KEY")
	setDuration(&c.Auth.SessionTTL, "SESSION_TTL")
	setString(&c.LLM.BaseURL, "HF_BASE_URL")
	setString(&c.LLM.Model, "HF_MODEL")
	setString(&c.LLM.Token, "HF_TOKEN")
	setInt(&c.LLM.MaxTokens, "HF_MAX_TOKENS")
	setFloat(&c.LLM.Temperature, "HF_TEMPERATURE")
	setDuration(&c.LLM.Timeout, "HF_TIMEOUT")
	setFloat(&c.Limit.RPS, "RATE_LIMIT_RPS")
	setInt(&c.Limit.Burst, "RATE_LIMIT_BURST")
	setString(&c.Log.Level, "LOG_LEVEL")
}

// Validate reports the first missing required value.
func (c *Config) Validate() error {
	required := []struct {
		value, name string
	}{
		{c.Mongo.URI, "MONGO_URI"},
		{c.Mongo.DBName, "DB_NAME"},
		{c.Mongo.Collection, "COLLECTION_NAME"},
		{c.LLM.Token, "HF_TOKEN"},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required configuration: %s", r.name)
		}
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
