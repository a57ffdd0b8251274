package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/metrics"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is the bcrypt implementation of PasswordHasher.
// A weighted semaphore caps how many hashes run at once so bursts of
// logins queue up instead of occupying every core.
type bcryptHasher struct {
	cost  int
	slots *semaphore.Weighted

	logger *logger.Logger
}

// NewPasswordHasher builds a PasswordHasher using cfg.BcryptCost and
// cfg.HashConcurrency. A non-positive concurrency falls back to the CPU count.
func NewPasswordHasher(cfg config.App, logger *logger.Logger) PasswordHasher {
	width := cfg.HashConcurrency
	if width <= 0 {
		width = runtime.NumCPU()
	}

	return &bcryptHasher{
		cost:   cfg.BcryptCost,
		slots:  semaphore.NewWeighted(int64(width)),
		logger: logger,
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	start := time.Now()
	defer func() { metrics.PasswordHashDuration.Observe(time.Since(start).Seconds()) }()

	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.slots.Release(1)

	return utils.HashPassword(plaintext, h.cost)
}

// Verify fails with the context error when ctx is done before a slot frees
// up. A mismatch is (false, nil).
func (h *bcryptHasher) Verify(ctx context.Context, plaintext, hashed string) (bool, error) {
	if err := h.acquire(ctx); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("password verification aborted")
		return false, err
	}
	defer h.slots.Release(1)

	return utils.CheckPassword(plaintext, hashed), nil
}

func (h *bcryptHasher) acquire(ctx context.Context) error {
	metrics.PasswordHashWaiting.Inc()
	defer metrics.PasswordHashWaiting.Dec()

	if err := h.slots.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for hashing slot: %w", err)
	}
	return nil
}
