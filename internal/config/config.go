// Package config provides configuration data structures for nosh.
package config

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/geo"
)

// Config represents the complete nosh configuration loaded from
// .nosh/config.yaml.
type Config struct {
	Data      DataConfig      `yaml:"data"      json:"data"      mapstructure:"data"`
	Home      geo.Point       `yaml:"home"      json:"home"      mapstructure:"home"`
	Region    string          `yaml:"region"    json:"region"    mapstructure:"region"`
	Geocoder  GeocoderConfig  `yaml:"geocoder"  json:"geocoder"  mapstructure:"geocoder"`
	Cache     CacheConfig     `yaml:"cache"     json:"cache"     mapstructure:"cache"`
	Recommend RecommendConfig `yaml:"recommend" json:"recommend" mapstructure:"recommend"`
	Log       LogConfig       `yaml:"log"       json:"log"       mapstructure:"log"`
}

// DataConfig locates the dish and restaurant data files.
type DataConfig struct {
	// Dishes is the path to the dish data file (JSON, comments allowed).
	Dishes string `yaml:"dishes" json:"dishes" mapstructure:"dishes"`
	// Restaurants is the path to the restaurant data file.
	Restaurants string `yaml:"restaurants" json:"restaurants" mapstructure:"restaurants"`
}

// GeocoderConfig configures the Nominatim client.
type GeocoderConfig struct {
	// Endpoint is the Nominatim search endpoint.
	Endpoint string `yaml:"endpoint" json:"endpoint" mapstructure:"endpoint"`
	// UserAgent identifies nosh to the geocoding service. Nominatim's
	// usage policy requires a non-empty, identifying value.
	UserAgent string `yaml:"user_agent" json:"user_agent" mapstructure:"user_agent"`
	// Timeout bounds a single geocoding request (default: 8s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// CacheConfig configures the on-disk caches.
type CacheConfig struct {
	// Dir is the root cache directory (default: .nosh/cache).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
}

// RecommendConfig configures the recommendation ranker.
type RecommendConfig struct {
	// Limit is the default number of restaurants to rank (default: 20).
	Limit int `yaml:"limit" json:"limit" mapstructure:"limit"`
	// Workers bounds concurrent geocode backfill requests (default: 2).
	Workers int `yaml:"workers" json:"workers" mapstructure:"workers"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Console mirrors log output to stderr (headless commands only).
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
	// JSON switches the log files to JSON format.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultDishesPath      = ".nosh/dishes.json"
	DefaultRestaurantsPath = ".nosh/restaurants.json"
	DefaultRegion          = "New York"
	DefaultEndpoint        = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent       = "nosh/1.0 (+https://github.com/noshapp/nosh)"
	DefaultGeocodeTimeout  = 8 * time.Second
	DefaultCacheDir        = ".nosh/cache"
	DefaultRecommendLimit  = 20
	DefaultWorkers         = 2
	DefaultLogLevel        = "info"
)

// DefaultHome is the Times Square anchor used when no home is configured.
var DefaultHome = geo.Point{Lat: 40.7580, Lon: -73.9855}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dishes:      DefaultDishesPath,
			Restaurants: DefaultRestaurantsPath,
		},
		Home:   DefaultHome,
		Region: DefaultRegion,
		Geocoder: GeocoderConfig{
			Endpoint:  DefaultEndpoint,
			UserAgent: DefaultUserAgent,
			Timeout:   DefaultGeocodeTimeout,
		},
		Cache: CacheConfig{
			Dir: DefaultCacheDir,
		},
		Recommend: RecommendConfig{
			Limit:   DefaultRecommendLimit,
			Workers: DefaultWorkers,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults fills default values into any unset fields.
// This is used after loading config from file.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Data.Dishes == "" {
		c.Data.Dishes = defaults.Data.Dishes
	}
	if c.Data.Restaurants == "" {
		c.Data.Restaurants = defaults.Data.Restaurants
	}
	if c.Home.IsZero() {
		c.Home = defaults.Home
	}
	if c.Region == "" {
		c.Region = defaults.Region
	}
	if c.Geocoder.Endpoint == "" {
		c.Geocoder.Endpoint = defaults.Geocoder.Endpoint
	}
	if c.Geocoder.UserAgent == "" {
		c.Geocoder.UserAgent = defaults.Geocoder.UserAgent
	}
	if c.Geocoder.Timeout == 0 {
		c.Geocoder.Timeout = defaults.Geocoder.Timeout
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = defaults.Cache.Dir
	}
	if c.Recommend.Limit == 0 {
		c.Recommend.Limit = defaults.Recommend.Limit
	}
	if c.Recommend.Workers == 0 {
		c.Recommend.Workers = defaults.Recommend.Workers
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Validate checks the configuration for invalid values.
// It returns all problems found, joined, not just the first.
func (c *Config) Validate() error {
	var errs []error

	if c.Geocoder.UserAgent == "" {
		errs = append(errs, errors.ConfigValidationError("geocoder.user_agent",
			"geocoder.user_agent must not be empty; Nominatim's usage policy requires an identifying user agent", nil))
	}
	if c.Geocoder.Timeout <= 0 {
		errs = append(errs, errors.ConfigValidationError("geocoder.timeout",
			"geocoder.timeout must be positive", nil))
	}
	if c.Recommend.Limit < 1 {
		errs = append(errs, errors.ConfigValidationError("recommend.limit",
			"recommend.limit must be at least 1", nil))
	}
	if c.Recommend.Workers < 1 {
		errs = append(errs, errors.ConfigValidationError("recommend.workers",
			"recommend.workers must be at least 1", nil))
	}
	if c.Home.Lat < -90 || c.Home.Lat > 90 {
		errs = append(errs, errors.ConfigValidationError("home.lat",
			"home.lat must be between -90 and 90", nil))
	}
	if c.Home.Lon < -180 || c.Home.Lon > 180 {
		errs = append(errs, errors.ConfigValidationError("home.lon",
			"home.lon must be between -180 and 180", nil))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, errors.ConfigValidationError("log.level",
			fmt.Sprintf("log.level %q is not a known level", c.Log.Level),
			[]string{"debug", "info", "warn", "error"}))
	}

	return stderrors.Join(errs...)
}
