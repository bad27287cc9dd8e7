package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nulzo/model-catalog-api/pkg/schema"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
	Entitlement EntitlementConfig `mapstructure:"entitlement"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// EntitlementConfig lists the bearer tokens that grant Pro-tier access to the
// catalog endpoints. Tier determination proper lives with the caller; the
// server only needs a yes/no.
type EntitlementConfig struct {
	ProTokens []string `mapstructure:"pro_tokens"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Default Values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("rate_limit.requests_per_second", 25.0)
	v.SetDefault("rate_limit.burst", 50)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("entitlement.pro_tokens", []string{})

	// Environment Variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}

// ResolveAPIKeys scans the environment for each provider's credential
// variable and returns the keys that are set. Values are carried as opaque
// data; nothing here validates or stores them.
func ResolveAPIKeys(providers []schema.Provider) []schema.APIKey {
	var keys []schema.APIKey
	now := time.Now()
	for _, p := range providers {
		val := os.Getenv(p.EnvKey)
		if val == "" {
			continue
		}
		keys = append(keys, schema.APIKey{
			Service: p.ID,
			Key:     val,
			AddedAt: now,
		})
	}
	return keys
}
