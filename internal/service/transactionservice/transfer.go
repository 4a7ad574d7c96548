package transactionservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/observability"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/notificationservice"
)

const withdrawalDescription = "Sent to bank account"

// CreateTransfer verifies the wallet pin, checks account ownership and
// debits the wallet up front, parking the amount in a pending request.
// All of it runs in one transaction; the hold is returned on rejection.
func (s *Service) CreateTransfer(ctx context.Context, userID, accountID uuid.UUID, amount decimal.Decimal, pin string, description *string) (*domain.TransferMoneyTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var created *domain.TransferMoneyTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindByIDAndUser(ctx, accountID, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		if err := s.mpin.Verify(ctx, userID, pin); err != nil {
			return err
		}

		wallet, err := s.walletRepo.Debit(ctx, userID, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			existing, err := s.walletRepo.FindByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrWalletNotFound
			}
			return ErrInsufficientFunds
		}

		tx := &domain.TransferMoneyTransaction{
			UserID:      userID,
			AccountID:   accountID,
			Amount:      amount,
			Status:      domain.StatusPending,
			Description: description,
		}
		if err := s.transferRepo.Create(ctx, tx); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrAccountNotFound
			}
			return err
		}
		tx.Account = account
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notificationservice.Transfer(created, domain.StatusPending, created.Account.AccountNumber))
	observability.IncrementTransition(string(domain.KindTransferMoney), string(domain.StatusPending))
	zap.L().Info("transfer request created",
		zap.String("transactionID", created.ID.String()),
		zap.String("accountID", accountID.String()),
	)
	return created, nil
}

func (s *Service) GetTransfer(ctx context.Context, id, requester uuid.UUID, role domain.Role) (*domain.TransferMoneyTransaction, error) {
	tx, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if role != domain.RoleAdmin && tx.UserID != requester {
		return nil, ErrNotOwner
	}
	return tx, nil
}

func (s *Service) ListTransfers(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.TransferMoneyTransaction, int, error) {
	return s.transferRepo.List(ctx, userID, status, limit, offset)
}

// AcceptTransfer moves a pending request into processing and records
// the external bank transaction id the operator is working under.
func (s *Service) AcceptTransfer(ctx context.Context, id uuid.UUID, bankTransactionID *string) (*domain.TransferMoneyTransaction, error) {
	moved, err := s.transferRepo.MarkProcessing(ctx, id, bankTransactionID)
	if err != nil {
		return nil, err
	}
	tx, err := s.transferRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if !moved {
		return nil, ErrInvalidStateTransition
	}

	s.notifier.Publish(notificationservice.Transfer(tx, domain.StatusProcessing, tx.Account.AccountNumber))
	observability.IncrementTransition(string(domain.KindTransferMoney), string(domain.StatusProcessing))
	return tx, nil
}

// ApproveTransfer completes a processing request. The wallet was
// already debited at creation, so approval only finalizes the status
// and writes the withdrawal to the ledger.
func (s *Service) ApproveTransfer(ctx context.Context, id uuid.UUID) (*domain.TransferMoneyTransaction, error) {
	var approved *domain.TransferMoneyTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.transferRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}
		if !canTransition(domain.KindTransferMoney, tx.Status, domain.StatusCompleted) {
			return ErrInvalidStateTransition
		}

		moved, err := s.transferRepo.Complete(ctx, id)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidStateTransition
		}

		wallet, err := s.walletRepo.FindByUserID(ctx, tx.UserID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		orderID, err := s.idGen.OrderID(ctx)
		if err != nil {
			return err
		}

		txID := tx.ID
		entry := &domain.AllTransaction{
			OrderID:                    orderID,
			UserID:                     tx.UserID,
			WalletID:                   wallet.ID,
			Amount:                     tx.Amount,
			Type:                       domain.LedgerWithdrawal,
			TransactionRefID:           tx.BankTransactionID,
			Description:                withdrawalDescription,
			TransferMoneyTransactionID: &txID,
		}
		if err := s.ledgerRepo.Insert(ctx, entry); err != nil {
			return err
		}

		tx.Status = domain.StatusCompleted
		approved = tx
		zap.L().Info("transfer request approved",
			zap.String("transactionID", tx.ID.String()),
			zap.String("orderID", orderID),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notificationservice.Transfer(approved, domain.StatusCompleted, approved.Account.AccountNumber))
	observability.IncrementTransition(string(domain.KindTransferMoney), string(domain.StatusCompleted))
	return approved, nil
}

// RejectTransfer terminates a request from either live stage and
// returns the held amount to the wallet in the same transaction.
func (s *Service) RejectTransfer(ctx context.Context, id uuid.UUID, reason string) (*domain.TransferMoneyTransaction, error) {
	var rejected *domain.TransferMoneyTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.transferRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}
		if !canTransition(domain.KindTransferMoney, tx.Status, domain.StatusRejected) {
			return ErrInvalidStateTransition
		}

		moved, err := s.transferRepo.Reject(ctx, id, tx.Status, reason)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidStateTransition
		}

		wallet, err := s.walletRepo.Credit(ctx, tx.UserID, tx.Amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		tx.Status = domain.StatusRejected
		rejected = tx
		zap.L().Info("transfer request rejected, amount refunded",
			zap.String("transactionID", tx.ID.String()),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notificationservice.Transfer(rejected, domain.StatusRejected, rejected.Account.AccountNumber))
	observability.IncrementTransition(string(domain.KindTransferMoney), string(domain.StatusRejected))
	return rejected, nil
}
