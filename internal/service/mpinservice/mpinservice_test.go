package mpinservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *MockRepo, *MockHasher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hasher := NewMockHasher(ctrl)
	return New(repo, hasher), repo, hasher
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("sets a fresh pin", func(t *testing.T) {
		svc, repo, hasher := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)
		hasher.EXPECT().HashPassword("123456").Return("hashed", nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, mpin *domain.MPin) error {
				assert.Equal(t, "hashed", mpin.PinHash)
				assert.True(t, mpin.IsActive)
				return nil
			},
		)

		assert.NoError(t, svc.Create(ctx, userID, "123456"))
	})

	t.Run("rejects bad format", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		assert.ErrorIs(t, svc.Create(ctx, userID, "12345"), ErrMPinFormat)
		assert.ErrorIs(t, svc.Create(ctx, userID, "12345a"), ErrMPinFormat)
	})

	t.Run("refuses a second pin", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(&domain.MPin{UserID: userID}, nil)

		assert.ErrorIs(t, svc.Create(ctx, userID, "123456"), ErrMPinExists)
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	active := &domain.MPin{UserID: userID, PinHash: "hashed", IsActive: true}

	t.Run("correct pin records the use", func(t *testing.T) {
		svc, repo, hasher := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(active, nil)
		hasher.EXPECT().ComparePassword("hashed", "123456").Return(true)
		repo.EXPECT().Touch(ctx, userID).Return(nil)

		assert.NoError(t, svc.Verify(ctx, userID, "123456"))
	})

	t.Run("wrong pin", func(t *testing.T) {
		svc, repo, hasher := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(active, nil)
		hasher.EXPECT().ComparePassword("hashed", "654321").Return(false)

		assert.ErrorIs(t, svc.Verify(ctx, userID, "654321"), ErrMPinInvalid)
	})

	t.Run("no pin set", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		assert.ErrorIs(t, svc.Verify(ctx, userID, "123456"), ErrMPinNotSet)
	})

	t.Run("disabled pin", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.MPin{UserID: userID, PinHash: "hashed", IsActive: false}, nil)

		assert.ErrorIs(t, svc.Verify(ctx, userID, "123456"), ErrMPinDisabled)
	})
}

func TestService_Change(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("old pin gates the change", func(t *testing.T) {
		svc, repo, hasher := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.MPin{UserID: userID, PinHash: "hashed", IsActive: true}, nil)
		hasher.EXPECT().ComparePassword("hashed", "123456").Return(true)
		repo.EXPECT().Touch(ctx, userID).Return(nil)
		hasher.EXPECT().HashPassword("654321").Return("rehashed", nil)
		repo.EXPECT().UpdateHash(ctx, userID, "rehashed").Return(nil)

		assert.NoError(t, svc.Change(ctx, userID, "123456", "654321"))
	})

	t.Run("wrong old pin blocks the change", func(t *testing.T) {
		svc, repo, hasher := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.MPin{UserID: userID, PinHash: "hashed", IsActive: true}, nil)
		hasher.EXPECT().ComparePassword("hashed", "000000").Return(false)

		assert.ErrorIs(t, svc.Change(ctx, userID, "000000", "654321"), ErrMPinInvalid)
	})
}

func TestService_Status(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unset", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		set, active, err := svc.Status(ctx, userID)
		assert.NoError(t, err)
		assert.False(t, set)
		assert.False(t, active)
	})

	t.Run("set and active", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.MPin{UserID: userID, IsActive: true}, nil)

		set, active, err := svc.Status(ctx, userID)
		assert.NoError(t, err)
		assert.True(t, set)
		assert.True(t, active)
	})
}
