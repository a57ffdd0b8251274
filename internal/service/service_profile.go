package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/metrics"
	"github.com/MKhiriev/go-rest-auth/internal/rbac"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/models"
)

// profileService implements ProfileService. Profiles are always looked up by
// the caller's own user id.
type profileService struct {
	profileRepository store.ProfileRepository
	now               func() time.Time

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// Save creates the caller's profile on first use and updates it afterwards.
// When req carries a status it is upserted as well.
func (s *profileService) Save(ctx context.Context, identity models.Identity, req models.SaveProfileWithStatusRequest) (models.Profile, *models.ProfileStatus, error) {
	log := logger.FromContext(ctx)

	var fields models.ProfileFields
	if req.Profile != nil {
		fields = models.ProfileFields{Bio: req.Profile.Bio, City: req.Profile.City}
	}

	profile, err := s.profileRepository.FindProfileByUserID(ctx, identity.UserID)
	switch {
	case errors.Is(err, store.ErrProfileNotFound):
		profile, err = s.profileRepository.CreateProfile(ctx, models.Profile{
			UserID: identity.UserID,
			Bio:    fields.Bio,
			City:   fields.City,
		})
		if errors.Is(err, store.ErrUniqueViolation) {
			// a concurrent request created it first
			profile, err = s.updateProfile(ctx, identity, fields)
		}
	case err == nil:
		profile, err = s.applyProfile(ctx, identity, profile, fields)
	}
	if err != nil {
		log.Err(err).Str("func", "*profileService.Save").Msg("profile save failed")
		return models.Profile{}, nil, s.translate(err)
	}

	if req.Status == nil {
		return profile, nil, nil
	}

	status, err := s.profileRepository.UpsertStatus(ctx, profile.ID, models.ProfileStatusFields{
		Content:       req.Status.Content,
		Emoji:         req.Status.Emoji,
		ClearInterval: req.Status.ClearInterval,
	})
	if err != nil {
		log.Err(err).Str("func", "*profileService.Save").Msg("profile status save failed")
		return models.Profile{}, nil, fmt.Errorf("profile status save failed: %w", err)
	}

	return profile, &status, nil
}

// Get returns the caller's profile and its status, if any.
func (s *profileService) Get(ctx context.Context, identity models.Identity) (models.Profile, *models.ProfileStatus, error) {
	profile, err := s.profileRepository.FindProfileByUserID(ctx, identity.UserID)
	if err != nil {
		return models.Profile{}, nil, s.translate(err)
	}

	status, err := s.profileRepository.FindStatusByProfileID(ctx, profile.ID)
	switch {
	case errors.Is(err, store.ErrProfileStatusNotFound):
		return profile, nil, nil
	case err != nil:
		return models.Profile{}, nil, err
	}

	return profile, &status, nil
}

// ClearExpiredStatuses deletes every status whose clear interval has elapsed.
func (s *profileService) ClearExpiredStatuses(ctx context.Context) (int64, error) {
	n, err := s.profileRepository.DeleteExpiredStatuses(ctx, s.now())
	if err != nil {
		return 0, err
	}

	metrics.ProfileStatusesClearedTotal.Add(float64(n))
	return n, nil
}

func (s *profileService) updateProfile(ctx context.Context, identity models.Identity, fields models.ProfileFields) (models.Profile, error) {
	profile, err := s.profileRepository.FindProfileByUserID(ctx, identity.UserID)
	if err != nil {
		return models.Profile{}, err
	}

	return s.applyProfile(ctx, identity, profile, fields)
}

func (s *profileService) applyProfile(ctx context.Context, identity models.Identity, profile models.Profile, fields models.ProfileFields) (models.Profile, error) {
	if !rbac.CanModify(identity, &profile.UserID) {
		return models.Profile{}, ErrForbidden
	}

	if fields.Bio == nil && fields.City == nil {
		return profile, nil
	}

	return s.profileRepository.UpdateProfile(ctx, profile.ID, fields)
}

func (s *profileService) translate(err error) error {
	if errors.Is(err, store.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	return err
}
