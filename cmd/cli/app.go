package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/gocaixa/internal/adapter/idgen"
	"github.com/iho/gocaixa/internal/adapter/repository/textfile"
	"github.com/iho/gocaixa/internal/infrastructure/config"
	"github.com/iho/gocaixa/internal/infrastructure/logger"
	"github.com/iho/gocaixa/internal/infrastructure/metrics"
	"github.com/iho/gocaixa/internal/usecase"
)

var errStoreUnreadable = errors.New("closing store could not be read; refusing to overwrite it")

// app wires the store, use cases and ambient services for one command run.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	closings *usecase.ClosingUseCase
	reports  *usecase.ReconciliationUseCase
	loadErr  error
}

func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{
		Output: logOut,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	storePath, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}

	m := metrics.New()

	// Initialize repository
	repo := textfile.NewRepository(textfile.Config{
		Path:   storePath,
		Logger: log,
		Retrier: textfile.NewRetrier(log).
			WithLimits(cfg.SaveMaxRetries, cfg.SaveRetryInterval, cfg.SaveMaxElapsed),
		Metrics: m,
	})

	// Initialize use cases
	closings := usecase.NewClosingUseCase(repo, idgen.NewULIDGenerator(), m, log)
	a := &app{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		closings: closings,
		reports:  usecase.NewReconciliationUseCase(closings),
	}

	// A failed load degrades to an empty collection; only writes are refused.
	a.loadErr = closings.Load(ctx)
	return a, nil
}

// writable reports whether mutating the collection is safe.
func (a *app) writable() error {
	if a.loadErr != nil {
		return fmt.Errorf("%w: %w", errStoreUnreadable, a.loadErr)
	}
	return nil
}

// flushMetrics writes the textfile export when one is configured.
func (a *app) flushMetrics() {
	if a.cfg.MetricsTextfile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		a.logger.Warn().Err(err).Str("path", a.cfg.MetricsTextfile).Msg("failed to write metrics textfile")
	}
}
