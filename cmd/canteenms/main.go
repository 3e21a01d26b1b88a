// canteenms: terminal client for the canteen management system.
//
// Connects to the canteen backend over HTTP and drives the full-screen
// operator terminal: food items, production, sales, analytics, and alerts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canteenms/canteenms/internal/api"
	"github.com/canteenms/canteenms/internal/config"
	"github.com/canteenms/canteenms/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		serverURL   = flag.String("server", "", "Backend base URL (overrides config)")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("canteenms version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		// Force exit after timeout
		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	if err := run(ctx, *configPath, *serverURL, *debugMode); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, serverURL string, debugMode bool) error {
	cfg, cfgPath, err := config.Load(configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}

	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	// Log to a file: stderr belongs to the full-screen terminal.
	var logHandler slog.Handler
	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()

		logHandler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		logHandler = slog.DiscardHandler
	}

	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	slog.Info("canteenms starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
		"server", cfg.Server.BaseURL,
	)

	client := api.New(cfg.Server.BaseURL, cfg.Server.Timeout(), logger)

	tui.Version = Version
	tui.BuildTime = BuildTime

	if err := tui.Run(ctx, client, cfg, logger); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("canteenms shutdown complete")
	return nil
}
