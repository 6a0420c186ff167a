package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ziadkadry99/solidview/internal/config"
	"github.com/ziadkadry99/solidview/internal/loader"
	"github.com/ziadkadry99/solidview/internal/logging"
	"github.com/ziadkadry99/solidview/internal/principles"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `solidview init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section of cfg.
// --verbose lowers the level to debug regardless of the configured level.
func newLogger(cfg *config.Config, stderr io.Writer) (*logging.Logger, error) {
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	if verbose {
		logger.SetLevel(slog.LevelDebug)
	}
	return logger, nil
}

// newSource picks the document source. A base URL wins over a directory.
func newSource(cfg *config.Config) (loader.Source, string, error) {
	if cfg.SourceURL != "" {
		src, err := loader.NewHTTPSource(cfg.SourceURL, cfg.FetchTimeout)
		if err != nil {
			return nil, "", err
		}
		return src, cfg.SourceURL, nil
	}
	return loader.NewDirSource(cfg.SourceDir), cfg.SourceDir, nil
}

// loadDocuments fetches the full catalog from the configured source.
func loadDocuments(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*principles.Collection, error) {
	src, where, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading documents", "source", where)
	return loader.Load(ctx, src, logger.Logger)
}
