package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/metrics"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// authService is the concrete implementation of AuthService.
// It handles login, registration and the token lifecycle on top of a
// UserRepository, a PasswordHasher and a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher PasswordHasher
	tokens TokenService

	// accessTTL is the lifetime of every access token.
	accessTTL time.Duration

	// refreshTTL and rememberedRefreshTTL are the refresh token lifetimes
	// without and with "remembers". Access tokens ignore "remembers".
	refreshTTL           time.Duration
	rememberedRefreshTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, tokens TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		hasher:               hasher,
		tokens:               tokens,
		accessTTL:            cfg.AccessTokenTTL.Std(),
		refreshTTL:           cfg.RefreshTokenTTL.Std(),
		rememberedRefreshTTL: cfg.RememberedRefreshTokenTTL.Std(),
		logger:               logger,
	}
}

// Login authenticates by email and password.
//
// The account lookup always happens first:
//   - ErrUserNotFound if no account has the email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "user_not_found").Inc()
		return models.TokenPair{}, ErrUserNotFound
	}
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(ctx, req.Password, user.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		log.Err(err).Str("func", "*authService.Login").Msg("password verification failed")
		return models.TokenPair{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid_credentials").Inc()
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := a.GenerateToken(user.ID, req.Remembers)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return models.TokenPair{}, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return pair, nil
}

// Register creates a USER account and logs it in.
//
// Unique violations reported by storage become ErrEmailConflict or
// ErrUsernameConflict. A violation on any other constraint, or any other
// storage failure, is returned wrapped as an internal error.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.TokenPair{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:        utils.NewID(),
		Email:     req.Email,
		Password:  hash,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      models.RoleUser,
	}
	if req.Username != "" {
		user.Username = &req.Username
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		err = translateUserStoreError(err)
		if errors.Is(err, ErrEmailConflict) || errors.Is(err, ErrUsernameConflict) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "conflict").Inc()
			return models.TokenPair{}, err
		}

		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	pair, err := a.GenerateToken(created.ID, req.Remembers)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "error").Inc()
		return models.TokenPair{}, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	return pair, nil
}

// GenerateToken signs an access token and a refresh token for userID.
// remembers only selects the longer refresh lifetime.
func (a *authService) GenerateToken(userID string, remembers bool) (models.TokenPair, error) {
	access, err := a.tokens.Sign(userID, a.accessTTL)
	if err != nil {
		return models.TokenPair{}, err
	}

	ttl := a.refreshTTL
	if remembers {
		ttl = a.rememberedRefreshTTL
	}

	refresh, err := a.tokens.Sign(userID, ttl)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken rotates a pair for the subject of refreshToken. The old
// refresh token stays valid until it expires.
func (a *authService) RefreshToken(ctx context.Context, refreshToken string, remembers bool) (models.TokenPair, error) {
	claims, err := a.tokens.Verify(refreshToken)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", "unauthorized").Inc()
		logger.FromContext(ctx).Debug().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	pair, err := a.GenerateToken(claims.UserID, remembers)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", "error").Inc()
		return models.TokenPair{}, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("refresh", "success").Inc()
	return pair, nil
}

// VerifyAndResolveUser turns a bearer token into the identity of its subject.
// A valid token whose user was deleted resolves to (nil, nil).
func (a *authService) VerifyAndResolveUser(ctx context.Context, bearerToken string) (*models.Identity, error) {
	claims, err := a.tokens.Verify(bearerToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	identity := models.NewIdentity(user)
	return &identity, nil
}

// translateUserStoreError maps storage signals of the user repository to
// service errors. Unknown errors are returned unchanged.
func translateUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailConflict
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameConflict
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return err
	}
}
