package notificationservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestService_List(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().ListByUser(ctx, userID, true, 10, 0).Return(
		[]domain.Notification{{UserID: userID, IsRead: false}}, 1, nil)

	notifications, total, err := svc.List(ctx, userID, true, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, notifications, 1)
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("own notification", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().MarkRead(ctx, notificationID, userID).Return(true, nil)

		assert.NoError(t, svc.MarkRead(ctx, notificationID, userID))
	})

	t.Run("unknown or foreign notification", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().MarkRead(ctx, notificationID, userID).Return(false, nil)

		assert.ErrorIs(t, svc.MarkRead(ctx, notificationID, userID), ErrNotificationNotFound)
	})
}

func TestService_MarkAllRead(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().MarkAllRead(ctx, userID).Return(7, nil)

	updated, err := svc.MarkAllRead(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 7, updated)
}
