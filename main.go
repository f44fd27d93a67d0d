package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/VincentGefflaut/ShortChat/clip"
	"github.com/VincentGefflaut/ShortChat/completion"
	"github.com/VincentGefflaut/ShortChat/config"
	"github.com/VincentGefflaut/ShortChat/platform"
	"github.com/VincentGefflaut/ShortChat/storage"
)

func main() {
	// Config directory must exist before anything else; this is the one
	// unrecoverable configuration failure.
	configDir, err := config.Dir()
	if err != nil {
		slog.Error("Failed to set up config directory", "error", err)
		os.Exit(1)
	}

	setupLogging(configDir)

	// Load configuration; an unparseable file falls back to defaults with
	// no shortcuts, it never stops startup.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	configPath, _ := config.ConfigPath()
	slog.Info("Configuration loaded", "path", configPath)

	table := config.NewTable(cfg.Shortcuts)
	if table.Len() == 0 {
		slog.Warn("No shortcuts active", "path", configPath)
	}

	// A missing key is non-fatal: the gateway then fails per request.
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		credPath, _ := config.CredentialPath()
		slog.Warn("No API key loaded, completion requests will fail", "path", credPath, "error", err)
	}

	gateway, err := completion.NewGateway(cfg.Completion, apiKey)
	if err != nil {
		slog.Error("Invalid completion config, falling back to mistral", "error", err)
		gateway = completion.NewMistralGateway(apiKey, "")
	}

	// Dispatch history; the pipeline runs fine without it.
	db, err := storage.Open(configDir)
	if err != nil {
		slog.Warn("Dispatch history unavailable", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	settle := time.Duration(cfg.Timing.SettleMs) * time.Millisecond
	debounce := time.Duration(cfg.Timing.DebounceMs) * time.Millisecond

	clipboard := platform.NewClipboard()
	keys := platform.NewKeys()
	mediator := clip.NewMediator(clipboard, settle)
	dispatcher := NewDispatcher(
		table,
		clip.NewCapturer(mediator, clipboard, keys),
		gateway,
		clip.NewInjector(mediator, keys),
		db,
		cfg.Completion.Model,
		debounce,
	)

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Failing to hook the keyboard is the fatal startup case; the process
	// never enters its event loop without the capability.
	events, err := platform.NewHotkey().Listen(ctx, table.Hotkeys())
	if err != nil {
		slog.Error("Failed to start hotkey listener", "error", err)
		if runtime.GOOS == "darwin" {
			slog.Error("Grant accessibility permissions under System Settings > Privacy & Security > Accessibility, then restart")
		}
		os.Exit(1)
	}

	slog.Info("ShortChat started", "hotkeys", table.Hotkeys(), "provider", gateway.Name())

	if err := dispatcher.Run(ctx, events); err != nil {
		slog.Error("Dispatcher error", "error", err)
		os.Exit(1)
	}

	if db != nil {
		if total, succeeded, err := db.Totals(); err == nil {
			slog.Info("Dispatch totals", "total", total, "succeeded", succeeded)
		}
	}

	slog.Info("ShortChat stopped")
}

// setupLogging sends structured logs to stdout and an append-only log file
// in the config directory.
func setupLogging(configDir string) {
	out := io.Writer(os.Stdout)

	logPath := filepath.Join(configDir, "shortchat.log")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err != nil {
		slog.Warn("Logging to stdout only", "path", logPath, "error", err)
	}
}
