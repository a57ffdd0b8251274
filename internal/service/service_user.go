package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// UpdateMe changes the name fields of the caller's own account.
func (s *userService) UpdateMe(ctx context.Context, identity models.Identity, req models.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, identity.UserID, models.UserUpdate{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateMe").Msg("user update failed")
		return models.User{}, translateUserStoreError(err)
	}

	return user, nil
}

// UpdateMyPassword replaces the caller's password after checking the current
// one. A mismatch returns ErrIncorrectPassword.
func (s *userService) UpdateMyPassword(ctx context.Context, identity models.Identity, req models.UpdatePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return translateUserStoreError(err)
	}

	ok, err := s.hasher.Verify(ctx, req.CurrentPassword, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateMyPassword").Msg("password verification failed")
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return ErrIncorrectPassword
	}

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateMyPassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if _, err := s.userRepository.UpdateUser(ctx, user.ID, models.UserUpdate{Password: &hash}); err != nil {
		log.Err(err).Str("func", "*userService.UpdateMyPassword").Msg("password update failed")
		return translateUserStoreError(err)
	}

	return nil
}
