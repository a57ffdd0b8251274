package workers

import (
	"context"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the background jobs of the server.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewStatusCleaner(services.ProfileService, cfg.StatusCleanupInterval.Std(), logger),
		},
		logger: logger,
	}
}

// Run starts every worker and waits for all of them to return.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error { return worker.Run(gctx) })
	}

	err := g.Wait()
	if w.logger != nil {
		w.logger.Info().Err(err).Msg("workers stopped")
	}
	return err
}
