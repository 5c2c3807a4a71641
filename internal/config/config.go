// Package config loads server configuration from an optional YAML file
// and MIQAT_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents server configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Methods MethodsConfig `mapstructure:"methods"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`         // "release" or "debug"
	CORSOrigins []string `mapstructure:"cors_origins"` // empty allows all
}

// MethodsConfig selects the calculation-method registry.
type MethodsConfig struct {
	CSVPath string `mapstructure:"csv_path"` // empty uses the built-in registry
}

// Load reads configuration. An empty path skips the file and uses
// defaults plus environment overrides (MIQAT_SERVER_PORT and friends).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("methods.csv_path", "")

	v.SetEnvPrefix("MIQAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Server.Mode != "release" && cfg.Server.Mode != "debug" {
		return nil, fmt.Errorf("invalid server mode %q (expected release or debug)", cfg.Server.Mode)
	}
	return &cfg, nil
}
