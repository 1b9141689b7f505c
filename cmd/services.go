package cmd

import (
	"context"
	"fmt"

	"github.com/nihzaa/focusflow/internal/adapters/notification"
	"github.com/nihzaa/focusflow/internal/adapters/quote"
	"github.com/nihzaa/focusflow/internal/adapters/storage"
	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/ports"
	"github.com/nihzaa/focusflow/internal/services"
)

// app bundles the shared dependencies wired once per command run.
type appDeps struct {
	cfg       *config.Config
	storage   ports.Storage
	engine    *services.Engine
	analytics *services.AnalyticsService
	notifier  *notification.Notifier
	quotes    *quote.Client
}

var app appDeps

// initializeServices wires configuration, storage, and the core services.
func initializeServices() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.cfg = cfg

	path := dbPath
	if path == "" {
		path = config.GetDBPath(cfg)
	}

	store, err := storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	app.storage = store

	// Config file is the source of truth for preferences; mirror it into
	// the store so the engine reads the same values.
	prefs := cfg.ToPreferences()
	if err := store.Preferences().Save(context.Background(), &prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	app.engine = services.NewEngine(context.Background(), store)
	app.analytics = services.NewAnalyticsService(store)
	app.notifier = notification.New(&cfg.Notifications)
	app.quotes = quote.New(&cfg.Quotes)

	app.engine.Subscribe(app.notifier)

	return nil
}

// cleanupServices closes the engine and storage.
func cleanupServices() error {
	if app.engine != nil {
		app.engine.Close()
	}
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}
