package app

import (
	"sync"

	"payseal/internal/store"
)

// App is the per-process context shared by CLI commands.
type App struct {
	Config Config
	Keys   *store.KeyFileStore

	once sync.Once
	wire *Wire
	err  error
}

// New validates cfg and prepares the key store. No key file is read yet.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &App{Config: cfg, Keys: store.NewKeyFileStore(cfg.KeysDir)}, nil
}

// Wire loads the key set and builds the services on first call. Later calls
// return the same result.
func (a *App) Wire() (*Wire, error) {
	a.once.Do(func() {
		a.wire, a.err = NewWire(a.Config, a.Keys)
	})
	return a.wire, a.err
}
