package walletservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestService_GetWallet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("existing wallet", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.Wallet{UserID: userID, Balance: decimal.NewFromInt(100)}, nil)

		wallet, err := svc.GetWallet(ctx, userID)
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		_, err := svc.GetWallet(ctx, userID)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestService_EnsureExists(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns existing wallet untouched", func(t *testing.T) {
		svc, repo := newTestService(t)
		existing := &domain.Wallet{UserID: userID, Balance: decimal.NewFromInt(50)}
		repo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)

		wallet, err := svc.EnsureExists(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, existing, wallet)
	})

	t.Run("creates empty wallet when absent", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)
		repo.EXPECT().Create(ctx, userID, decimal.Zero).Return(
			&domain.Wallet{UserID: userID, Balance: decimal.Zero}, nil)

		wallet, err := svc.EnsureExists(ctx, userID)
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.IsZero())
	})
}

func TestService_Debit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	amount := decimal.NewFromInt(40)

	t.Run("rejects non positive amount", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Debit(ctx, userID, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("debits when balance covers it", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Debit(ctx, userID, amount).Return(
			&domain.Wallet{UserID: userID, Balance: decimal.NewFromInt(60)}, nil)

		wallet, err := svc.Debit(ctx, userID, amount)
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("guarded balance maps to insufficient funds", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Debit(ctx, userID, amount).Return(nil, nil)
		repo.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.Wallet{UserID: userID, Balance: decimal.NewFromInt(10)}, nil)

		_, err := svc.Debit(ctx, userID, amount)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Debit(ctx, userID, amount).Return(nil, nil)
		repo.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		_, err := svc.Debit(ctx, userID, amount)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestService_Credit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects negative amount", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.Credit(ctx, userID, decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Credit(ctx, userID, decimal.NewFromInt(5)).Return(nil, nil)

		_, err := svc.Credit(ctx, userID, decimal.NewFromInt(5))
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}
