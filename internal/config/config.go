// Package config loads the service configuration from the environment.
//
// Variables are read with the HRVALIDATOR_ prefix (a `.env` file is loaded
// first when present), mapped into Config with koanf, defaulted and then
// validated so the process fails fast on bad input.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable name. A double underscore
// separates nesting levels: HRVALIDATOR_SERVER__PORT -> server.port.
const EnvPrefix = "HRVALIDATOR_"

const serviceName = "hr-validator"

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary describes the runtime environment (local, development, production).
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"gte=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"gte=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"gte=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
}

func (s *ServerConfig) applyDefaults() {
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = 60
	}
	if s.RateLimit == 0 {
		s.RateLimit = 20
	}
	if len(s.CORSAllowedOrigins) == 0 {
		s.CORSAllowedOrigins = []string{"*"}
	}
}

// envKey maps HRVALIDATOR_OBSERVABILITY__LOGGING__LEVEL to
// observability.logging.level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// envValue splits list settings on commas.
func envValue(key, value string) (string, any) {
	k := envKey(key)
	if strings.HasSuffix(k, "cors_allowed_origins") || strings.HasSuffix(k, "health_checks.checks") {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return k, parts
	}
	return k, value
}

// LoadConfig reads, defaults and validates the configuration.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if mainConfig.Primary.Env == "" {
		mainConfig.Primary.Env = "local"
	}
	mainConfig.Server.applyDefaults()

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	} else {
		mainConfig.Observability.applyDefaults()
	}

	// Service identity always follows the primary config.
	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
