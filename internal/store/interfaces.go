package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-auth/models"
)

// UserRepository persists user accounts. Lookups that match nothing return
// [ErrNoUserWasFound]; writes that collide on email or username return a
// [UniqueViolationError].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// UpdateUser applies the non-nil fields of update. An empty update returns the stored user.
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	FindPublishedPostByID(ctx context.Context, id string) (models.Post, error)
	ListPublishedPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, id string, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// ProfileRepository persists profiles and their statuses.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, id string, fields models.ProfileFields) (models.Profile, error)
	FindStatusByProfileID(ctx context.Context, profileID string) (models.ProfileStatus, error)
	UpsertStatus(ctx context.Context, profileID string, fields models.ProfileStatusFields) (models.ProfileStatus, error)
	// DeleteExpiredStatuses removes statuses whose clear interval has elapsed at now.
	DeleteExpiredStatuses(ctx context.Context, now time.Time) (int64, error)
}

// UserCache is a read-through cache of users keyed by id.
type UserCache interface {
	Get(ctx context.Context, id string) (models.User, bool, error)
	Set(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id string) error
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
