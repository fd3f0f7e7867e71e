// Package config provides configuration loading and management for nosh.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/noshapp/nosh/internal/errors"
)

const (
	// DefaultConfigPath is the default path to the config file relative
	// to the working directory.
	DefaultConfigPath = ".nosh/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "NOSH"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working
// directory. A missing file is not an error: defaults apply.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)

		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.ConfigParseError(path, err)
		}
		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, errors.ConfigParseError(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrConfig, "cannot read configuration file "+path)
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .nosh/config.yaml in dir.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	return l.LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_DATA_DISHES"); v != "" {
		cfg.Data.Dishes = v
	}
	if v := os.Getenv(EnvPrefix + "_DATA_RESTAURANTS"); v != "" {
		cfg.Data.Restaurants = v
	}
	if v := os.Getenv(EnvPrefix + "_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv(EnvPrefix + "_HOME_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Home.Lat = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_HOME_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Home.Lon = f
		}
	}
	if v := os.Getenv(EnvPrefix + "_GEOCODER_ENDPOINT"); v != "" {
		cfg.Geocoder.Endpoint = v
	}
	if v := os.Getenv(EnvPrefix + "_GEOCODER_USER_AGENT"); v != "" {
		cfg.Geocoder.UserAgent = v
	}
	if v := os.Getenv(EnvPrefix + "_GEOCODER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Geocoder.Timeout = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_RECOMMEND_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Recommend.Limit = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_RECOMMEND_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Recommend.Workers = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_CONSOLE"); v != "" {
		cfg.Log.Console = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)
}
