package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/eidora/mythos/pkg/config"
	consoleerrors "github.com/eidora/mythos/pkg/errors"
	"github.com/eidora/mythos/pkg/gateway"
	"github.com/eidora/mythos/pkg/logging"
	"github.com/eidora/mythos/pkg/telemetry"
)

// Version information - set via ldflags during build
var (
	version   = "0.3.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	configPath string
	apiURL     string
	logLevel   string
	noColor    bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&apiURL, "api-url", "", "mythology service base URL (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "minimum log level: debug, info, warn, error")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 && args[0] == "version" {
		fmt.Printf("mythos %s (%s, built %s)\n", version, commit, buildDate)
		return
	}

	if err := run(args); err != nil {
		printFatal(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadWithOverrides(configPath, config.Overrides{
		BaseURL:  apiURL,
		LogLevel: logLevel,
	})
	if err != nil {
		return err
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	setupColorProfile(cfg.UI.NoColor)

	sessionID := newSessionID()

	log, err := logging.NewLogger(cfg.Logging.Dir, sessionID)
	if err != nil {
		// Logging must never block the console itself.
		log = logging.Discard()
	}
	defer log.Close()
	log.SetMinLevel(logging.ParseLevel(cfg.Logging.Level))
	log.Info(logging.CategoryConfig, "startup", "configuration loaded", map[string]any{
		"base_url": cfg.API.BaseURL,
		"version":  version,
	})

	client, cleanup := newGatewayClient(cfg)
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(args) > 0 {
		return runSubcommand(ctx, args, cfg, client, sessionID)
	}
	return runConsole(ctx, cfg, client, log, sessionID)
}

// newGatewayClient builds the HTTP client, wiring the JSONL network
// logger when enabled.
func newGatewayClient(cfg *config.Config) (*gateway.Client, func()) {
	var transport http.RoundTripper = gateway.DefaultTransport()
	cleanup := func() {}

	if cfg.API.NetworkLogs {
		lt := gateway.NewLoggingTransport(transport, filepath.Join(cfg.Logging.Dir, "network"))
		transport = lt
		cleanup = func() { lt.Close() }
	}

	client := gateway.NewClientWithOptions(cfg.API.BaseURL, gateway.ClientOptions{
		Timeout:   cfg.API.Timeout,
		Transport: transport,
	})
	return client, cleanup
}

func newSessionID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func printFatal(err error) {
	if consoleerrors.GetCode(err) == consoleerrors.ErrCodeConfigInvalid {
		fmt.Fprintln(os.Stderr, errorStyle.Render("configuration error: ")+err.Error())
		fmt.Fprintf(os.Stderr, "\nSet %s to the mythology service base URL, e.g.\n\n", config.EnvAPIURL)
		fmt.Fprintf(os.Stderr, "    export %s=http://localhost:8000\n", config.EnvAPIURL)
		return
	}
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
}

// forwardEvents bridges store telemetry into the session log until the
// unsubscribe function is called.
func forwardEvents(hub *telemetry.Hub, log *logging.Logger) func() {
	events, unsubscribe := hub.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			details := map[string]any{}
			for k, v := range ev.Data {
				details[k] = v
			}
			if ev.Err != nil {
				details["error"] = ev.Err.Error()
			}
			log.Debug(logging.CategoryConsole, string(ev.Type), "store event", details)
		}
	}()
	return func() {
		unsubscribe()
	}
}
