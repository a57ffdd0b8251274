package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-auth/models"
)

// PasswordHasher hashes and verifies passwords. Implementations bound the
// number of concurrent hashing operations. Both methods wait for a slot and
// fail with the context error when ctx is done first.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hashed string) (bool, error)
}

// TokenService signs and verifies JWTs. Verify fails with [ErrTokenExpired]
// or [ErrTokenInvalid].
type TokenService interface {
	Sign(userID string, ttl time.Duration) (string, error)
	Verify(token string) (models.TokenClaims, error)
}

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error)
	GenerateToken(userID string, remembers bool) (models.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string, remembers bool) (models.TokenPair, error)
	// VerifyAndResolveUser returns (nil, nil) when the token is valid but its subject no longer exists.
	VerifyAndResolveUser(ctx context.Context, bearerToken string) (*models.Identity, error)
}

// UserService covers the operations a user performs on their own account.
type UserService interface {
	UpdateMe(ctx context.Context, identity models.Identity, req models.UpdateUserRequest) (models.User, error)
	UpdateMyPassword(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error
}

// AdminUserService manages arbitrary accounts. Callers must hold ADMIN.
type AdminUserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	UpdatePassword(ctx context.Context, id, password string) error
	UpdateRole(ctx context.Context, id string, role models.Role) (models.User, error)
	UpdateEmail(ctx context.Context, id, email string) (models.User, error)
	RemoveUser(ctx context.Context, id string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type PostService interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetPublished(ctx context.Context, id string) (models.Post, error)
	Create(ctx context.Context, identity models.Identity, req models.CreatePostRequest) (models.Post, error)
	Update(ctx context.Context, identity models.Identity, id string, req models.UpdatePostRequest) (models.Post, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

type ProfileService interface {
	Save(ctx context.Context, identity models.Identity, req models.SaveProfileWithStatusRequest) (models.Profile, *models.ProfileStatus, error)
	Get(ctx context.Context, identity models.Identity) (models.Profile, *models.ProfileStatus, error)
	ClearExpiredStatuses(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckHealth pings the database.
	CheckHealth(ctx context.Context) error
}
