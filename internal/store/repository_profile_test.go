package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileRowColumns = []string{"id", "user_id", "bio", "city", "created_at", "updated_at"}
	statusRowColumns  = []string{"id", "profile_id", "content", "emoji", "clear_interval", "created_at", "updated_at"}
)

func newTestProfileRepo(t *testing.T) (ProfileRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewProfileRepository(NewDB(db, logger.Nop()), logger.Nop()), mock
}

func TestProfileRepository_FindProfileByUserID_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = ").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	_, err := repo.FindProfileByUserID(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_CreateProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(sqlmock.AnyArg(), "u-1", "hello", nil).
		WillReturnRows(sqlmock.NewRows(profileRowColumns).AddRow("pr-1", "u-1", "hello", nil, now, now))

	profile, err := repo.CreateProfile(context.Background(), models.Profile{UserID: "u-1", Bio: strPtr("hello")})
	require.NoError(t, err)
	assert.Equal(t, "pr-1", profile.ID)
	require.NotNil(t, profile.Bio)
	assert.Equal(t, "hello", *profile.Bio)
	assert.Nil(t, profile.City)
}

func TestProfileRepository_CreateProfile_Duplicate(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("INSERT INTO profiles").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "profiles_user_id_key"))

	_, err := repo.CreateProfile(context.Background(), models.Profile{UserID: "u-1"})
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestProfileRepository_UpdateProfile_EmptyFieldsReadsProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE id = ").
		WithArgs("pr-1").
		WillReturnRows(sqlmock.NewRows(profileRowColumns).AddRow("pr-1", "u-1", nil, nil, now, now))

	profile, err := repo.UpdateProfile(context.Background(), "pr-1", models.ProfileFields{})
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.UserID)
}

func TestProfileRepository_UpsertStatus(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	now := time.Now()
	interval := 3600

	mock.ExpectQuery("INSERT INTO profile_statuses (.+) ON CONFLICT \\(profile_id\\) DO UPDATE").
		WithArgs(sqlmock.AnyArg(), "pr-1", "busy", nil, int64(interval)).
		WillReturnRows(sqlmock.NewRows(statusRowColumns).AddRow("st-1", "pr-1", "busy", nil, int64(interval), now, now))

	status, err := repo.UpsertStatus(context.Background(), "pr-1", models.ProfileStatusFields{
		Content:       strPtr("busy"),
		ClearInterval: &interval,
	})
	require.NoError(t, err)
	require.NotNil(t, status.ClearInterval)
	assert.Equal(t, interval, *status.ClearInterval)
	assert.Nil(t, status.Emoji)
}

func TestProfileRepository_FindStatusByProfileID_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM profile_statuses").
		WithArgs("pr-1").
		WillReturnRows(sqlmock.NewRows(statusRowColumns))

	_, err := repo.FindStatusByProfileID(context.Background(), "pr-1")
	assert.ErrorIs(t, err, ErrProfileStatusNotFound)
}

func TestProfileRepository_DeleteExpiredStatuses(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM profile_statuses").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpiredStatuses(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
