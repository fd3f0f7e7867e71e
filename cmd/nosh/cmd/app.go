package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/noshapp/nosh/internal/config"
	"github.com/noshapp/nosh/internal/errors"
	"github.com/noshapp/nosh/internal/geocode"
	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/menu"
	"github.com/noshapp/nosh/internal/recommend"
	"github.com/noshapp/nosh/internal/session"
)

// appContext bundles everything a command needs after setup.
type appContext struct {
	Config   *config.Config
	Menu     *menu.Store
	Sessions *session.Store
	Engine   *recommend.Engine
}

// setupApp loads config, initializes logging, and opens the data stores.
// console controls whether logs also go to stderr; the TUI keeps it off.
func setupApp(cmd *cobra.Command, console bool) (*appContext, error) {
	configPath, _ := cmd.Flags().GetString("config")

	// An explicitly requested config file must exist; the default path may
	// be absent, in which case defaults apply.
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(configPath)
		}
	}

	cfg, err := config.NewLoader().LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logConfig := &logging.Config{
		Level:       logging.ParseLevel(cfg.Log.Level),
		LogDir:      ".nosh/logs",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     console && cfg.Log.Console,
		JSONFormat:  cfg.Log.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	}

	cmd.SetContext(logging.WithCommand(cmd.Context(), cmd.Name()))
	logging.Global().WithContext(cmd.Context()).Info("nosh starting", "version", Version)

	menuStore, err := menu.Load(cfg.Data.Dishes, cfg.Data.Restaurants)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStoreInDir(".nosh")
	if err := sessions.Load(); err != nil {
		return nil, err
	}

	geoCache, err := geocode.NewCache(filepath.Join(cfg.Cache.Dir, "geocode"))
	if err != nil {
		return nil, err
	}
	geocoder := geocode.NewClient(geocode.Options{
		Endpoint:  cfg.Geocoder.Endpoint,
		UserAgent: cfg.Geocoder.UserAgent,
		Timeout:   cfg.Geocoder.Timeout,
		Region:    cfg.Region,
		Cache:     geoCache,
	})

	return &appContext{
		Config:   cfg,
		Menu:     menuStore,
		Sessions: sessions,
		Engine: &recommend.Engine{
			Home:     cfg.Home,
			Geocoder: geocoder,
			Workers:  cfg.Recommend.Workers,
		},
	}, nil
}
