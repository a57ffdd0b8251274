package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// adminUserService implements AdminUserService. Role checks happen in the
// route guards; this service trusts its caller.
type adminUserService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher

	// defaultPassword is assigned when a user is created without one.
	defaultPassword string

	logger *logger.Logger
}

func NewAdminUserService(userRepository store.UserRepository, hasher PasswordHasher, cfg config.App, logger *logger.Logger) AdminUserService {
	return &adminUserService{
		userRepository:  userRepository,
		hasher:          hasher,
		defaultPassword: cfg.DefaultUserPassword,
		logger:          logger,
	}
}

// CreateUser creates an account with the given or the default password and
// the given role or USER.
func (s *adminUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role := models.RoleUser
	if req.Role != nil {
		if !req.Role.Valid() {
			return models.User{}, ErrInvalidRole
		}
		role = *req.Role
	}

	password := s.defaultPassword
	if req.Password != nil {
		password = *req.Password
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		log.Err(err).Str("func", "*adminUserService.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:        utils.NewID(),
		Email:     req.Email,
		Password:  hash,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      role,
	})
	if err != nil {
		log.Err(err).Str("func", "*adminUserService.CreateUser").Msg("user creation failed")
		return models.User{}, translateUserStoreError(err)
	}

	return user, nil
}

func (s *adminUserService) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	return s.update(ctx, id, models.UserUpdate{Firstname: req.Firstname, Lastname: req.Lastname})
}

// UpdatePassword sets a new password without checking the old one.
func (s *adminUserService) UpdatePassword(ctx context.Context, id, password string) error {
	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = s.update(ctx, id, models.UserUpdate{Password: &hash})
	return err
}

func (s *adminUserService) UpdateRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	return s.update(ctx, id, models.UserUpdate{Role: &role})
}

func (s *adminUserService) UpdateEmail(ctx context.Context, id, email string) (models.User, error) {
	return s.update(ctx, id, models.UserUpdate{Email: &email})
}

func (s *adminUserService) RemoveUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, translateUserStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("user_id", id).Msg("user removed")
	return user, nil
}

func (s *adminUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, translateUserStoreError(err)
	}

	return user, nil
}

func (s *adminUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *adminUserService) SearchUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return s.userRepository.SearchUsers(ctx, filter)
}

func (s *adminUserService) update(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adminUserService.update").Str("user_id", id).Msg("user update failed")
		return models.User{}, translateUserStoreError(err)
	}

	return user, nil
}
