// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/service"
)

// StatusCleaner removes profile statuses whose clear interval has elapsed.
type StatusCleaner struct {
	profiles service.ProfileService
	interval time.Duration

	logger *logger.Logger
}

func NewStatusCleaner(profiles service.ProfileService, interval time.Duration, logger *logger.Logger) *StatusCleaner {
	return &StatusCleaner{
		profiles: profiles,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is done. A failed sweep is logged
// and retried on the next tick. A non-positive interval disables the cleaner.
func (c *StatusCleaner) Run(ctx context.Context) error {
	if c.interval <= 0 {
		c.logger.Warn().Msg("status cleaner disabled: non-positive interval")
		return nil
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("status cleaner started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *StatusCleaner) sweep(ctx context.Context) {
	ctx = c.logger.WithContext(ctx)

	n, err := c.profiles.ClearExpiredStatuses(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*StatusCleaner.sweep").Msg("clearing expired statuses failed")
		return
	}
	if n > 0 {
		c.logger.Info().Int64("cleared", n).Msg("expired statuses cleared")
	}
}
