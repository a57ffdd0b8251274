package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/mock"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_UpdateMyPassword(t *testing.T) {
	me := models.Identity{UserID: "u-1", Role: models.RoleUser}
	stored := models.User{ID: "u-1", Password: "old-hash"}

	t.Run("current password matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		hasher := mock.NewMockPasswordHasher(ctrl)
		svc := NewUserService(repo, hasher, logger.Nop())
		ctx := context.Background()

		gomock.InOrder(
			repo.EXPECT().FindUserByID(ctx, "u-1").Return(stored, nil),
			hasher.EXPECT().Verify(ctx, "oldpass", "old-hash").Return(true, nil),
			hasher.EXPECT().Hash(ctx, "newpass").Return("new-hash", nil),
			repo.EXPECT().UpdateUser(ctx, "u-1", gomock.Any()).Return(stored, nil),
		)

		err := svc.UpdateMyPassword(ctx, me, models.UpdatePasswordRequest{Password: "newpass", CurrentPassword: "oldpass"})
		require.NoError(t, err)
	})

	t.Run("current password mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		hasher := mock.NewMockPasswordHasher(ctrl)
		svc := NewUserService(repo, hasher, logger.Nop())
		ctx := context.Background()

		repo.EXPECT().FindUserByID(ctx, "u-1").Return(stored, nil)
		hasher.EXPECT().Verify(ctx, "nope", "old-hash").Return(false, nil)

		err := svc.UpdateMyPassword(ctx, me, models.UpdatePasswordRequest{Password: "newpass", CurrentPassword: "nope"})
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("request gave up waiting for the hasher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		hasher := mock.NewMockPasswordHasher(ctrl)
		svc := NewUserService(repo, hasher, logger.Nop())
		ctx := context.Background()

		// no Hash or UpdateUser expectation: the password must stay unchanged
		repo.EXPECT().FindUserByID(ctx, "u-1").Return(stored, nil)
		hasher.EXPECT().Verify(ctx, "oldpass", "old-hash").Return(false, context.DeadlineExceeded)

		err := svc.UpdateMyPassword(ctx, me, models.UpdatePasswordRequest{Password: "newpass", CurrentPassword: "oldpass"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, ErrIncorrectPassword)
	})
}

func TestUserService_UpdateMe_UsesCallerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, mock.NewMockPasswordHasher(ctrl), logger.Nop())
	ctx := context.Background()
	last := "Doe"

	repo.EXPECT().UpdateUser(ctx, "u-1", models.UserUpdate{Lastname: &last}).Return(models.User{ID: "u-1", Lastname: &last}, nil)

	user, err := svc.UpdateMe(ctx, models.Identity{UserID: "u-1"}, models.UpdateUserRequest{Lastname: &last})
	require.NoError(t, err)
	assert.Equal(t, "Doe", *user.Lastname)
}
