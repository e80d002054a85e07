package cmd

import (
	"fmt"

	"github.com/iksnae/chatkeep/internal"
)

// app bundles the wired core components for a command invocation.
type app struct {
	cfg        internal.Config
	store      *internal.SQLiteStore
	hub        *internal.Hub
	repo       *internal.Repository
	transcript *internal.Transcript
	controller *internal.Controller
}

// newApp loads config, opens the store, and wires the controller. The
// caller must Close the returned app.
func newApp() (*app, error) {
	cfg, err := internal.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override file and environment.
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if cfg.StorePath == "" {
		cfg.StorePath, err = internal.DefaultStorePath()
		if err != nil {
			return nil, err
		}
	}

	store, err := internal.OpenStore(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	hub := internal.NewHub()
	repo := internal.NewRepository(store, hub)
	transcript := internal.NewTranscript(store, hub)
	controller := internal.NewController(repo, transcript, internal.NewClient(cfg), cfg.APIKey,
		internal.WithSingleFlight())
	controller.Start()

	return &app{
		cfg:        cfg,
		store:      store,
		hub:        hub,
		repo:       repo,
		transcript: transcript,
		controller: controller,
	}, nil
}

// Close releases the store.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		internal.LogWarn("Failed to close store: %v", err)
	}
}
