package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/jackc/pgerrcode"
)

type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Bio, &p.City, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanStatus(row rowScanner) (models.ProfileStatus, error) {
	var s models.ProfileStatus
	err := row.Scan(&s.ID, &s.ProfileID, &s.Content, &s.Emoji, &s.ClearInterval, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	return r.findProfile(ctx, "*profileRepository.FindProfileByUserID", findProfileByUserID, userID)
}

// CreateProfile inserts a profile. A second profile for the same user
// violates profiles_user_id_key and is reported as [ErrUniqueViolation].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.ID == "" {
		profile.ID = utils.NewID()
	}
	return r.findProfile(ctx, "*profileRepository.CreateProfile", createProfile, profile.ID, profile.UserID, profile.Bio, profile.City)
}

func (r *profileRepository) UpdateProfile(ctx context.Context, id string, fields models.ProfileFields) (models.Profile, error) {
	if fields.Bio == nil && fields.City == nil {
		return r.findProfile(ctx, "*profileRepository.UpdateProfile", findProfileByID, id)
	}

	query, args, err := buildUpdateProfileQuery(id, fields)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findProfile(ctx, "*profileRepository.UpdateProfile", query, args...)
}

func (r *profileRepository) FindStatusByProfileID(ctx context.Context, profileID string) (models.ProfileStatus, error) {
	return r.findStatus(ctx, "*profileRepository.FindStatusByProfileID", findStatusByProfileID, profileID)
}

// UpsertStatus creates the status of a profile or updates the provided fields of the existing one.
func (r *profileRepository) UpsertStatus(ctx context.Context, profileID string, fields models.ProfileStatusFields) (models.ProfileStatus, error) {
	return r.findStatus(ctx, "*profileRepository.UpsertStatus", upsertStatus, utils.NewID(), profileID, fields.Content, fields.Emoji, fields.ClearInterval)
}

func (r *profileRepository) DeleteExpiredStatuses(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredStatuses, now)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.DeleteExpiredStatuses").Msg("error deleting expired statuses")
		return 0, r.db.unexpected(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, r.db.unexpected(err)
	}

	return affected, nil
}

func (r *profileRepository) findProfile(ctx context.Context, fn, query string, args ...any) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Profile{}, uniqueViolation(err)
		}
		return models.Profile{}, r.db.unexpected(err)
	}

	profile, err := scanProfile(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

func (r *profileRepository) findStatus(ctx context.Context, fn, query string, args ...any) (models.ProfileStatus, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error executing query")
		return models.ProfileStatus{}, r.db.unexpected(err)
	}

	status, err := scanStatus(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.ProfileStatus{}, ErrProfileStatusNotFound
	case err != nil:
		return models.ProfileStatus{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return status, nil
}
