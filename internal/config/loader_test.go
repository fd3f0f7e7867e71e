package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
data:
  dishes: data/dishes.json
  restaurants: data/restaurants.json
home:
  lat: 41.8781
  lon: -87.6298
region: Chicago
geocoder:
  user_agent: "nosh-test/1.0"
  timeout: 12s
recommend:
  limit: 5
`)

	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Data.Dishes != "data/dishes.json" {
		t.Errorf("Data.Dishes = %q", cfg.Data.Dishes)
	}
	if cfg.Region != "Chicago" {
		t.Errorf("Region = %q, want Chicago", cfg.Region)
	}
	if cfg.Home.Lat != 41.8781 {
		t.Errorf("Home.Lat = %v, want 41.8781", cfg.Home.Lat)
	}
	if cfg.Geocoder.Timeout != 12*time.Second {
		t.Errorf("Geocoder.Timeout = %v, want 12s (duration decode hook)", cfg.Geocoder.Timeout)
	}
	if cfg.Recommend.Limit != 5 {
		t.Errorf("Recommend.Limit = %v, want 5", cfg.Recommend.Limit)
	}

	// Unset fields fall back to defaults.
	if cfg.Geocoder.Endpoint != DefaultEndpoint {
		t.Errorf("Geocoder.Endpoint = %q, want default", cfg.Geocoder.Endpoint)
	}
	if cfg.Recommend.Workers != DefaultWorkers {
		t.Errorf("Recommend.Workers = %v, want default", cfg.Recommend.Workers)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() of a missing file error = %v, want defaults", err)
	}
	if cfg.Region != DefaultRegion {
		t.Errorf("Region = %q, want default", cfg.Region)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "region: [unclosed\n")

	if _, err := NewLoader().LoadConfig(path); err == nil {
		t.Error("LoadConfig() of invalid YAML should fail")
	}
}

func TestLoadConfigValidationFailure(t *testing.T) {
	path := writeConfig(t, `
recommend:
  limit: -3
`)

	_, err := NewLoader().LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() should fail validation")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOSH_REGION", "Boston")
	t.Setenv("NOSH_GEOCODER_TIMEOUT", "3s")
	t.Setenv("NOSH_RECOMMEND_LIMIT", "7")
	t.Setenv("NOSH_LOG_CONSOLE", "yes")

	cfg, err := NewLoader().LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Region != "Boston" {
		t.Errorf("Region = %q, want Boston", cfg.Region)
	}
	if cfg.Geocoder.Timeout != 3*time.Second {
		t.Errorf("Geocoder.Timeout = %v, want 3s", cfg.Geocoder.Timeout)
	}
	if cfg.Recommend.Limit != 7 {
		t.Errorf("Recommend.Limit = %v, want 7", cfg.Recommend.Limit)
	}
	if !cfg.Log.Console {
		t.Error("Log.Console = false, want true")
	}
}
