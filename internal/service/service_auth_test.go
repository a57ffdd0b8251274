package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/mock"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:              "secret",
	TokenIssuer:               "go-rest-auth",
	AccessTokenTTL:            config.Duration(2 * time.Minute),
	RefreshTokenTTL:           config.Duration(24 * time.Hour),
	RememberedRefreshTokenTTL: config.Duration(360 * 24 * time.Hour),
	BcryptCost:                4,
	DefaultUserPassword:       "zolran666",
	Version:                   "test",
}

// newTestAuthSvc builds an authService with mocked collaborators.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher, *mock.MockTokenService) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	tokens := mock.NewMockTokenService(ctrl)

	svc := NewAuthService(repo, hasher, tokens, testAppConfig, logger.Nop()).(*authService)
	return svc, repo, hasher, tokens
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_UserNotFound_SkipsPasswordCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// no Verify expectation: gomock fails the test if the hasher is called
	repo.EXPECT().FindUserByEmail(ctx, "ghost@x.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u-1", Email: "a@x.com", Password: "hash"}
	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil),
		hasher.EXPECT().Verify(ctx, "wrong", "hash").Return(false, nil),
	)

	_, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "wrong"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u-1", Email: "a@x.com", Password: "hash"}
	repo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Verify(ctx, "secret1", "hash").Return(true, nil)
	tokens.EXPECT().Sign("u-1", 2*time.Minute).Return("access", nil)
	tokens.EXPECT().Sign("u-1", 24*time.Hour).Return("refresh", nil)

	pair, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, pair)
}

func TestAuthService_Login_HasherUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: "u-1", Email: "a@x.com", Password: "hash"}
	repo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	hasher.EXPECT().Verify(ctx, "secret1", "hash").Return(false, context.Canceled)

	_, err := svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// A correct password must never be reported as wrong because the request
// ran out of time while every hashing slot was busy.
func TestAuthService_Login_SaturatedHasher(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenService(ctrl)
	hasher := newTestHasher(1)
	svc := NewAuthService(repo, hasher, tokens, testAppConfig, logger.Nop())

	hash, err := hasher.Hash(context.Background(), "secret1")
	require.NoError(t, err)

	require.NoError(t, hasher.slots.Acquire(context.Background(), 1))
	defer hasher.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user := models.User{ID: "u-1", Email: "a@x.com", Password: hash}
	repo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)

	_, err = svc.Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrStorageUnavailable)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, "secret1").Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, "hash", u.Password, "only the hash is stored")
			assert.Equal(t, models.RoleUser, u.Role)
			require.NotNil(t, u.Username)
			assert.Equal(t, "alice", *u.Username)
			return u, nil
		},
	)
	tokens.EXPECT().Sign(gomock.Any(), 2*time.Minute).Return("access", nil)
	tokens.EXPECT().Sign(gomock.Any(), 360*24*time.Hour).Return("refresh", nil)

	pair, err := svc.Register(ctx, models.RegisterRequest{
		Email:     "a@x.com",
		Password:  "secret1",
		Username:  "alice",
		Remembers: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestAuthService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"email", &store.UniqueViolationError{Field: "email", Constraint: "users_email_key"}, ErrEmailConflict},
		{"username", &store.UniqueViolationError{Field: "username", Constraint: "users_username_key"}, ErrUsernameConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			hasher.EXPECT().Hash(ctx, gomock.Any()).Return("hash", nil)
			repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, tt.repoErr)

			_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Password: "secret1", Username: "alice"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Register_UnknownConstraintIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, &store.UniqueViolationError{Constraint: "users_pkey"})

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Password: "secret1", Username: "alice"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailConflict)
	assert.NotErrorIs(t, err, ErrUsernameConflict)
	assert.ErrorIs(t, err, store.ErrUniqueViolation)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash(ctx, gomock.Any()).Return("", context.Canceled)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@x.com", Password: "secret1", Username: "alice"})
	assert.ErrorIs(t, err, context.Canceled)
}

// ── GenerateToken / RefreshToken ─────────────────────────────────────────────

func TestAuthService_GenerateToken_RemembersOnlyExtendsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, repo, hasher, _ := newTestAuthSvc(t, ctrl)

	clock := &fakeClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	tokens := newTestTokenService(testAppConfig.TokenSignKey, testAppConfig.TokenIssuer, clock)
	svc := NewAuthService(repo, hasher, tokens, testAppConfig, logger.Nop())

	short, err := svc.GenerateToken("u-1", false)
	require.NoError(t, err)
	long, err := svc.GenerateToken("u-1", true)
	require.NoError(t, err)

	expiry := func(token string) time.Time {
		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		return claims.ExpiresAt.Time
	}

	assert.True(t, expiry(long.RefreshToken).After(expiry(short.RefreshToken)))
	assert.Equal(t, expiry(short.AccessToken), expiry(long.AccessToken))

	shortClaims, _ := tokens.Verify(short.RefreshToken)
	accessClaims, _ := tokens.Verify(short.AccessToken)
	assert.Equal(t, shortClaims.UserID, accessClaims.UserID, "both tokens carry the same subject")
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tokens.EXPECT().Verify("refresh").Return(models.TokenClaims{UserID: "u-1"}, nil)
	tokens.EXPECT().Sign("u-1", 2*time.Minute).Return("access2", nil)
	tokens.EXPECT().Sign("u-1", 24*time.Hour).Return("refresh2", nil)

	pair, err := svc.RefreshToken(ctx, "refresh", false)
	require.NoError(t, err)
	assert.Equal(t, "refresh2", pair.RefreshToken)
}

func TestAuthService_RefreshToken_Unauthorized(t *testing.T) {
	for _, verifyErr := range []error{ErrTokenExpired, ErrTokenInvalid} {
		ctrl := gomock.NewController(t)
		svc, _, _, tokens := newTestAuthSvc(t, ctrl)

		tokens.EXPECT().Verify("bad").Return(models.TokenClaims{}, verifyErr)

		_, err := svc.RefreshToken(context.Background(), "bad", true)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

// ── VerifyAndResolveUser ─────────────────────────────────────────────────────

func TestAuthService_VerifyAndResolveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tokens.EXPECT().Verify("token").Return(models.TokenClaims{UserID: "u-1"}, nil)
	repo.EXPECT().FindUserByID(ctx, "u-1").Return(models.User{ID: "u-1", Email: "a@x.com", Password: "hash", Role: models.RoleAdmin}, nil)

	identity, err := svc.VerifyAndResolveUser(ctx, "token")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestAuthService_VerifyAndResolveUser_DeletedSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, tokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tokens.EXPECT().Verify("token").Return(models.TokenClaims{UserID: "gone"}, nil)
	repo.EXPECT().FindUserByID(ctx, "gone").Return(models.User{}, store.ErrNoUserWasFound)

	identity, err := svc.VerifyAndResolveUser(ctx, "token")
	assert.NoError(t, err)
	assert.Nil(t, identity)
}

func TestAuthService_VerifyAndResolveUser_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, tokens := newTestAuthSvc(t, ctrl)

	tokens.EXPECT().Verify("token").Return(models.TokenClaims{}, ErrTokenExpired)

	identity, err := svc.VerifyAndResolveUser(context.Background(), "token")
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}
