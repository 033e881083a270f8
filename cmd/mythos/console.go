package main

import (
	"context"
	"errors"

	"github.com/eidora/mythos/pkg/config"
	"github.com/eidora/mythos/pkg/console"
	"github.com/eidora/mythos/pkg/gateway"
	"github.com/eidora/mythos/pkg/logging"
	"github.com/eidora/mythos/pkg/telemetry"
	tcellbackend "github.com/eidora/mythos/pkg/ui/backend/tcell"
	"github.com/eidora/mythos/pkg/ui/runtime"
	"github.com/eidora/mythos/pkg/ui/theme"
	"github.com/eidora/mythos/pkg/ui/tui"
)

// runConsole starts the interactive TUI.
func runConsole(ctx context.Context, cfg *config.Config, client *gateway.Client, log *logging.Logger, sessionID string) error {
	hub := telemetry.NewHub()
	defer hub.Close()

	store := console.NewStore(client, console.StoreOptions{
		Hub:            hub,
		Logger:         log,
		SessionID:      sessionID,
		NarrativeLimit: cfg.API.NarrativeLimit,
		DreamLimit:     cfg.API.DreamLimit,
	})
	nav := console.NewNavigator()

	stopForwarding := forwardEvents(hub, log)
	defer stopForwarding()

	backend, err := tcellbackend.New()
	if err != nil {
		return err
	}

	app := runtime.NewApp(runtime.AppConfig{Backend: backend})
	root := tui.NewConsole(tui.ConsoleConfig{
		Store:  store,
		Nav:    nav,
		Theme:  theme.DefaultTheme(),
		Logger: log,
		Post:   app.Post,
	})
	app.SetRoot(root)

	// Initial bulk refresh happens behind the first frame.
	root.Reload()

	err = app.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
