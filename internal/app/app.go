// Package app wires configuration, storage and the HTTP surface into a
// runnable server.
package app

import (
	"context"
	"fmt"
	"net/http"

	"chatkv/pkg/banner"
	"chatkv/pkg/chat"
	"chatkv/pkg/config"
	"chatkv/pkg/store"
	"chatkv/pkg/telemetry"
)

// App encapsulates the server components and lifecycle.
type App struct {
	eff       config.EffectiveConfigResult
	version   string
	commit    string
	buildDate string

	st  *store.Store
	svc *chat.Service
	srv *http.Server
}

// New opens the store and builds the service layer. It does not start the
// HTTP server; call Run to start it and block until shutdown.
func New(eff config.EffectiveConfigResult, version, commit, buildDate string) (*App, error) {
	st, err := store.Open(eff.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", eff.DBPath, err)
	}
	telemetry.RegisterStoreGauges(st.DiskUsage)

	return &App{
		eff:       eff,
		version:   version,
		commit:    commit,
		buildDate: buildDate,
		st:        st,
		svc:       chat.New(st),
	}, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or a fatal
// server error occurs.
func (a *App) Run(ctx context.Context) error {
	a.printBanner()

	errCh := a.startHTTP(ctx)

	select {
	case <-ctx.Done():
		return a.shutdownHTTP()
	case err := <-errCh:
		return err
	}
}

// Close releases the store. Call after Run returns.
func (a *App) Close() error {
	return a.st.Close()
}

func (a *App) printBanner() {
	verStr := a.version
	if a.commit != "none" {
		verStr += " (" + a.commit + ")"
	}
	if a.buildDate != "unknown" {
		verStr += " @ " + a.buildDate
	}
	banner.PrintWithEff(a.eff, verStr)
}
