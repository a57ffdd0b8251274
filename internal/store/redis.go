package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/redis/go-redis/v9"
)

const userCacheKeyPrefix = "auth:user:"

// NewConnectRedis opens a client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Str("addr", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// cachedUser is the stored form of a user. Unlike [models.User] it keeps the
// password hash so cached lookups can still verify credentials.
type cachedUser struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Username  *string     `json:"username,omitempty"`
	Password  string      `json:"password"`
	Firstname *string     `json:"firstname,omitempty"`
	Lastname  *string     `json:"lastname,omitempty"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// redisUserCache implements [UserCache] on top of Redis string keys with a TTL.
type redisUserCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisUserCache(client redis.UniversalClient, ttl time.Duration) UserCache {
	return &redisUserCache{client: client, ttl: ttl}
}

func (c *redisUserCache) Get(ctx context.Context, id string) (models.User, bool, error) {
	raw, err := c.client.Get(ctx, userCacheKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("redis get: %w", err)
	}

	var u cachedUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, false, fmt.Errorf("decode cached user: %w", err)
	}

	return models.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, true, nil
}

func (c *redisUserCache) Set(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Password:  user.Password,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}

	return c.client.Set(ctx, userCacheKeyPrefix+user.ID, raw, c.ttl).Err()
}

func (c *redisUserCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, userCacheKeyPrefix+id).Err()
}
