package transactionservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/mpinservice"
)

func TestService_CreateTransfer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	amount := decimal.NewFromInt(300)
	pin := "482913"

	account := &domain.Account{ID: accountID, UserID: userID, AccountNumber: "123456789012"}

	t.Run("debits wallet and records pending request", func(t *testing.T) {
		svc, m := newTestService(t)
		m.account.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(account, nil)
		m.mpin.EXPECT().Verify(ctx, userID, pin).Return(nil)
		m.wallet.EXPECT().Debit(ctx, userID, amount).Return(
			&domain.Wallet{ID: uuid.New(), UserID: userID, Balance: decimal.NewFromInt(700)}, nil)
		m.transfer.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.TransferMoneyTransaction) error {
				tx.ID = uuid.New()
				return nil
			},
		)

		tx, err := svc.CreateTransfer(ctx, userID, accountID, amount, pin, nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, tx.Status)
		assert.Equal(t, account, tx.Account)
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateTransfer(ctx, userID, accountID, decimal.Zero, pin, nil)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("account must belong to the requester", func(t *testing.T) {
		svc, m := newTestService(t)
		m.account.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(nil, nil)

		_, err := svc.CreateTransfer(ctx, userID, accountID, amount, pin, nil)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("wrong pin stops before any debit", func(t *testing.T) {
		svc, m := newTestService(t)
		m.account.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(account, nil)
		m.mpin.EXPECT().Verify(ctx, userID, pin).Return(mpinservice.ErrMPinInvalid)

		_, err := svc.CreateTransfer(ctx, userID, accountID, amount, pin, nil)
		assert.ErrorIs(t, err, mpinservice.ErrMPinInvalid)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		svc, m := newTestService(t)
		m.account.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(account, nil)
		m.mpin.EXPECT().Verify(ctx, userID, pin).Return(nil)
		m.wallet.EXPECT().Debit(ctx, userID, amount).Return(nil, nil)
		m.wallet.EXPECT().FindByUserID(ctx, userID).Return(
			&domain.Wallet{ID: uuid.New(), UserID: userID, Balance: decimal.NewFromInt(10)}, nil)

		_, err := svc.CreateTransfer(ctx, userID, accountID, amount, pin, nil)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc, m := newTestService(t)
		m.account.EXPECT().FindByIDAndUser(ctx, accountID, userID).Return(account, nil)
		m.mpin.EXPECT().Verify(ctx, userID, pin).Return(nil)
		m.wallet.EXPECT().Debit(ctx, userID, amount).Return(nil, nil)
		m.wallet.EXPECT().FindByUserID(ctx, userID).Return(nil, nil)

		_, err := svc.CreateTransfer(ctx, userID, accountID, amount, pin, nil)
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestService_ApproveTransfer(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()
	userID := uuid.New()
	walletID := uuid.New()
	amount := decimal.NewFromInt(300)
	bankRef := "UTR0099"

	processing := func() *domain.TransferMoneyTransaction {
		return &domain.TransferMoneyTransaction{
			ID:                txID,
			UserID:            userID,
			Amount:            amount,
			Status:            domain.StatusProcessing,
			BankTransactionID: &bankRef,
			Account:           &domain.Account{AccountNumber: "123456789012"},
		}
	}

	t.Run("finalizes status and writes withdrawal", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(processing(), nil)
		m.transfer.EXPECT().Complete(ctx, txID).Return(true, nil)
		m.wallet.EXPECT().FindByUserID(ctx, userID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil)
		m.idGen.EXPECT().OrderID(ctx).Return("OIXYZ789", nil)
		m.ledger.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.AllTransaction) error {
				assert.Equal(t, domain.LedgerWithdrawal, entry.Type)
				assert.Equal(t, "Sent to bank account", entry.Description)
				assert.Equal(t, &bankRef, entry.TransactionRefID)
				assert.Equal(t, txID, *entry.TransferMoneyTransactionID)
				return nil
			},
		)

		tx, err := svc.ApproveTransfer(ctx, txID)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, tx.Status)
		assert.Equal(t, &bankRef, tx.BankTransactionID)
	})

	t.Run("pending cannot be approved directly", func(t *testing.T) {
		svc, m := newTestService(t)
		pending := processing()
		pending.Status = domain.StatusPending
		m.transfer.EXPECT().FindByID(ctx, txID).Return(pending, nil)

		_, err := svc.ApproveTransfer(ctx, txID)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(nil, nil)

		_, err := svc.ApproveTransfer(ctx, txID)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestService_AcceptTransfer(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()
	bankRef := "UTR0099"

	t.Run("records bank reference while moving to processing", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().MarkProcessing(ctx, txID, &bankRef).Return(true, nil)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(&domain.TransferMoneyTransaction{
			ID:                txID,
			Status:            domain.StatusProcessing,
			BankTransactionID: &bankRef,
			Account:           &domain.Account{AccountNumber: "123456789012"},
		}, nil)

		tx, err := svc.AcceptTransfer(ctx, txID, &bankRef)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, tx.Status)
		assert.Equal(t, &bankRef, tx.BankTransactionID)
	})

	t.Run("lost race reports conflict", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().MarkProcessing(ctx, txID, nil).Return(false, nil)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(&domain.TransferMoneyTransaction{
			ID:      txID,
			Status:  domain.StatusCompleted,
			Account: &domain.Account{AccountNumber: "123456789012"},
		}, nil)

		_, err := svc.AcceptTransfer(ctx, txID, nil)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().MarkProcessing(ctx, txID, nil).Return(false, nil)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(nil, nil)

		_, err := svc.AcceptTransfer(ctx, txID, nil)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestService_RejectTransfer(t *testing.T) {
	ctx := context.Background()
	txID := uuid.New()
	userID := uuid.New()
	amount := decimal.NewFromInt(300)

	t.Run("refunds the held amount", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(&domain.TransferMoneyTransaction{
			ID:      txID,
			UserID:  userID,
			Amount:  amount,
			Status:  domain.StatusProcessing,
			Account: &domain.Account{AccountNumber: "123456789012"},
		}, nil)
		m.transfer.EXPECT().Reject(ctx, txID, domain.StatusProcessing, "bank unreachable").Return(true, nil)
		m.wallet.EXPECT().Credit(ctx, userID, amount).Return(
			&domain.Wallet{ID: uuid.New(), UserID: userID, Balance: amount}, nil)

		tx, err := svc.RejectTransfer(ctx, txID, "bank unreachable")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, tx.Status)
	})

	t.Run("rejected request stays rejected", func(t *testing.T) {
		svc, m := newTestService(t)
		m.transfer.EXPECT().FindByID(ctx, txID).Return(&domain.TransferMoneyTransaction{
			ID:     txID,
			UserID: userID,
			Status: domain.StatusRejected,
		}, nil)

		_, err := svc.RejectTransfer(ctx, txID, "")
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}
