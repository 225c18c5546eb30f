// package app is the main entrypoint into the application, responsible for
// configuring and starting the application, registering actions and
// persisting their bindings.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/leg100/imbinder/internal/binder"
	"github.com/leg100/imbinder/internal/logging"
	"github.com/leg100/imbinder/internal/tui/top"
	"github.com/leg100/imbinder/internal/version"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "imbinder", version.Version)
		return nil
	}

	// Without the TUI there is nowhere to show log messages other than
	// stderr.
	if cfg.PrintBindings {
		cfg.loggingOptions.AdditionalWriters = append(cfg.loggingOptions.AdditionalWriters, stderr)
	}

	// Setup logging
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Slog())

	registry, err := newRegistry(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.PrintBindings {
		return printBindings(stdout, registry)
	}

	// Blocks until user quits
	err = top.Start(top.Options{
		Registry:    registry,
		Logger:      logger,
		FPS:         cfg.FPS,
		HoldTimeout: cfg.HoldTimeout,
		Debug:       cfg.Debug,
	})
	if saveErr := registry.SaveFile(cfg.BindingsFile); saveErr != nil {
		err = errors.Join(err, fmt.Errorf("saving bindings: %w", saveErr))
	}
	return err
}

// newRegistry constructs the registry with the demonstration actions, and
// then loads their bindings from the bindings file.
func newRegistry(cfg config, logger *logging.Logger) (*binder.Registry, error) {
	registry := binder.New(binder.Options{
		Logger:    logger,
		AbortKeys: cfg.AbortKeys,
	})
	if _, err := registry.AddActions(demoActions(logger)); err != nil {
		return nil, fmt.Errorf("registering actions: %w", err)
	}

	// A missing bindings file is expected on first use, and any other
	// failure leaves the defaults in place.
	err := registry.LoadFile(cfg.BindingsFile)
	switch {
	case err == nil:
		logger.Info("loaded bindings", "path", cfg.BindingsFile)
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no bindings file found", "path", cfg.BindingsFile)
	default:
		logger.Warn("loading bindings", "path", cfg.BindingsFile, "error", err)
	}
	return registry, nil
}
