package accountservice

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

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("registers a valid account", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByAccountNumber(ctx, "123456789012").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, account *domain.Account) error {
				account.ID = uuid.New()
				return nil
			},
		)

		account, err := svc.Create(ctx, userID, "Ada Lovelace", "123456789012", "HDFC0001234")
		assert.NoError(t, err)
		assert.Equal(t, userID, account.UserID)
		assert.Equal(t, "123456789012", account.AccountNumber)
	})

	t.Run("duplicate account number", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByAccountNumber(ctx, "123456789012").Return(
			&domain.Account{AccountNumber: "123456789012"}, nil)

		_, err := svc.Create(ctx, userID, "Ada Lovelace", "123456789012", "HDFC0001234")
		assert.ErrorIs(t, err, ErrDuplicateAccount)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, userID, "", "123456789012", "HDFC0001234")
		assert.ErrorIs(t, err, ErrHolderNameRequired)

		_, err = svc.Create(ctx, userID, "Ada", "12ab", "HDFC0001234")
		assert.ErrorIs(t, err, ErrInvalidAccountNumber)

		_, err = svc.Create(ctx, userID, "Ada", "123456789012", "bad-ifsc")
		assert.ErrorIs(t, err, ErrInvalidIFSCCode)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("holder and ifsc change, number stays", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(&domain.Account{
			ID:            accountID,
			UserID:        userID,
			AccountNumber: "123456789012",
		}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		account, err := svc.Update(ctx, accountID, userID, "Grace Hopper", "ICIC0004321")
		assert.NoError(t, err)
		assert.Equal(t, "Grace Hopper", account.AccountHolderName)
		assert.Equal(t, "ICIC0004321", account.IFSCCode)
		assert.Equal(t, "123456789012", account.AccountNumber)
	})

	t.Run("foreign account is invisible", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(nil, nil)

		_, err := svc.Update(ctx, accountID, userID, "Grace Hopper", "ICIC0004321")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("deletes owned account", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Delete(ctx, accountID, userID).Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, accountID, userID))
	})

	t.Run("unknown or foreign account", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Delete(ctx, accountID, userID).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, accountID, userID), ErrAccountNotFound)
	})
}
