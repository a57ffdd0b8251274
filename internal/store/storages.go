package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the repositories used by the services.
type Storages struct {
	UserRepository    UserRepository
	PostRepository    PostRepository
	ProfileRepository ProfileRepository
	Pinger            Pinger

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. When cfg.Redis.Address is set, user lookups by id go
// through a Redis cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	s := &Storages{
		UserRepository:    NewUserRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		Pinger:            db,
		db:                db,
	}

	if cfg.Redis.Address != "" {
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		s.redis = client
		s.UserRepository = NewCachedUserRepository(s.UserRepository, NewRedisUserCache(client, cfg.Redis.TTL.Std()), log)
	}

	return s, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
