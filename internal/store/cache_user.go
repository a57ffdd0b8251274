package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/metrics"
	"github.com/MKhiriev/go-rest-auth/models"
)

// cachedUserRepository serves FindUserByID from a [UserCache] and drops the
// cached entry on every write to that user. Cache failures are logged and
// fall through to the wrapped repository.
//
// A miss only stores what it loaded if no write finished while it was
// loading; otherwise a concurrent update or delete could be undone by a stale
// Set. mu orders that check against invalidation.
type cachedUserRepository struct {
	UserRepository
	cache  UserCache
	logger *logger.Logger

	mu         sync.Mutex
	generation uint64
}

// NewCachedUserRepository decorates next with cache.
func NewCachedUserRepository(next UserRepository, cache UserCache, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating cached user repository")
	return &cachedUserRepository{
		UserRepository: next,
		cache:          cache,
		logger:         logger,
	}
}

func (r *cachedUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, ok, err := r.cache.Get(ctx, id)
	switch {
	case err != nil:
		metrics.UserCacheRequestsTotal.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("func", "*cachedUserRepository.FindUserByID").Msg("user cache lookup failed")
	case ok:
		metrics.UserCacheRequestsTotal.WithLabelValues("hit").Inc()
		return user, nil
	default:
		metrics.UserCacheRequestsTotal.WithLabelValues("miss").Inc()
	}

	loadedAt := r.currentGeneration()

	user, err = r.UserRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	r.store(ctx, user, loadedAt)

	return user, nil
}

func (r *cachedUserRepository) currentGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// store caches user unless a write was invalidated after loadedAt.
func (r *cachedUserRepository) store(ctx context.Context, user models.User, loadedAt uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation != loadedAt {
		logger.FromContext(ctx).Debug().Str("user_id", user.ID).Msg("user changed while loading, not caching")
		return
	}
	if err := r.cache.Set(ctx, user); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedUserRepository.FindUserByID").Msg("user cache store failed")
	}
}

func (r *cachedUserRepository) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	user, err := r.UserRepository.UpdateUser(ctx, id, update)
	r.invalidate(ctx, id)
	return user, err
}

func (r *cachedUserRepository) DeleteUser(ctx context.Context, id string) (models.User, error) {
	user, err := r.UserRepository.DeleteUser(ctx, id)
	r.invalidate(ctx, id)
	return user, err
}

func (r *cachedUserRepository) invalidate(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++
	if err := r.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedUserRepository.invalidate").Str("user_id", id).Msg("user cache invalidation failed")
	}
}
