package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/otterbagel/cardiolog/internal/client/cardio"
	"github.com/otterbagel/cardiolog/internal/config"
	"github.com/otterbagel/cardiolog/internal/credstore"
	"github.com/otterbagel/cardiolog/internal/paths"
	"github.com/otterbagel/cardiolog/internal/session"
)

// app holds the wired dependency graph shared by the TUI and the
// headless subcommands.
type app struct {
	cfg        config.Config
	store      *credstore.Store
	client     *cardio.Client
	controller *session.Controller
	sessionID  string
}

func newApp(logger *slog.Logger) (*app, func(), error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	if _, err := paths.EnsureDir(); err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = paths.DB()
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := credstore.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	sessionID := uuid.NewString()
	client := cardio.New(
		store,
		cardio.WithBaseURL(cfg.APIHost),
		cardio.WithSessionID(sessionID),
		cardio.WithLogger(logger),
		cardio.WithTimeout(30*time.Second),
	)

	controller := session.New(store, client.User, client.Connection, logger)

	a := &app{
		cfg:        cfg,
		store:      store,
		client:     client,
		controller: controller,
		sessionID:  sessionID,
	}
	cleanup := func() { _ = store.Close() }
	return a, cleanup, nil
}

// fileLogger writes the operator log to ~/.config/cardiolog; the TUI
// owns stdout.
func fileLogger() (*slog.Logger, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	logPath, err := paths.Log()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, nil)), nil
}

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
