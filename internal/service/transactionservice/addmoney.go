package transactionservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/observability"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/notificationservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/validate"
)

const depositDescription = "Added money to wallet"

// CreateAddMoney records a user's request to top up the wallet. The
// wallet itself is untouched until an admin approves the request.
func (s *Service) CreateAddMoney(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, location, description *string) (*domain.AddMoneyTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	refID, err := s.idGen.RefID(ctx, domain.KindAddMoney)
	if err != nil {
		zap.L().Error("failed to generate ref id", zap.Error(err))
		return nil, err
	}

	tx := &domain.AddMoneyTransaction{
		UserID:           userID,
		Amount:           amount,
		Status:           domain.StatusPending,
		TransactionRefID: refID,
		Location:         location,
		Description:      description,
	}
	if err := s.addMoneyRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.notifier.Publish(notificationservice.AddMoney(tx, domain.StatusPending))
	observability.IncrementTransition(string(domain.KindAddMoney), string(domain.StatusPending))
	zap.L().Info("add money request created",
		zap.String("transactionID", tx.ID.String()),
		zap.String("refID", refID),
	)
	return tx, nil
}

func (s *Service) GetAddMoney(ctx context.Context, id, requester uuid.UUID, role domain.Role) (*domain.AddMoneyTransaction, error) {
	tx, err := s.addMoneyRepo.FindByID(ctx, id)
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

func (s *Service) ListAddMoney(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.AddMoneyTransaction, int, error) {
	return s.addMoneyRepo.List(ctx, userID, status, limit, offset)
}

// AcceptAddMoney moves a pending request into processing. The admin
// may pass a reference to replace the one minted at creation; omitting
// it keeps the stored reference.
func (s *Service) AcceptAddMoney(ctx context.Context, id uuid.UUID, refID *string) (*domain.AddMoneyTransaction, error) {
	if refID != nil && !validate.IsTransactionRefID(*refID) {
		return nil, ErrInvalidRefID
	}

	moved, err := s.addMoneyRepo.MarkProcessing(ctx, id, refID)
	if err != nil {
		return nil, err
	}
	tx, err := s.addMoneyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if !moved {
		return nil, ErrInvalidStateTransition
	}

	s.notifier.Publish(notificationservice.AddMoney(tx, domain.StatusProcessing))
	observability.IncrementTransition(string(domain.KindAddMoney), string(domain.StatusProcessing))
	return tx, nil
}

// ApproveAddMoney completes a processing request: the wallet is
// credited (created seeded with the amount when absent) and the
// deposit is written to the ledger, all in one transaction.
func (s *Service) ApproveAddMoney(ctx context.Context, id uuid.UUID) (*domain.AddMoneyTransaction, error) {
	var approved *domain.AddMoneyTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.addMoneyRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}
		if !canTransition(domain.KindAddMoney, tx.Status, domain.StatusCompleted) {
			return ErrInvalidStateTransition
		}

		moved, err := s.addMoneyRepo.UpdateStatus(ctx, id, domain.StatusProcessing, domain.StatusCompleted)
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
			wallet, err = s.walletRepo.Create(ctx, tx.UserID, tx.Amount)
		} else {
			wallet, err = s.walletRepo.Credit(ctx, tx.UserID, tx.Amount)
		}
		if err != nil {
			return err
		}

		orderID, err := s.idGen.OrderID(ctx)
		if err != nil {
			return err
		}

		refID := tx.TransactionRefID
		txID := tx.ID
		entry := &domain.AllTransaction{
			OrderID:               orderID,
			UserID:                tx.UserID,
			WalletID:              wallet.ID,
			Amount:                tx.Amount,
			Type:                  domain.LedgerDeposit,
			TransactionRefID:      &refID,
			Description:           depositDescription,
			AddMoneyTransactionID: &txID,
		}
		if err := s.ledgerRepo.Insert(ctx, entry); err != nil {
			return err
		}

		tx.Status = domain.StatusCompleted
		approved = tx
		zap.L().Info("add money request approved",
			zap.String("transactionID", tx.ID.String()),
			zap.String("orderID", orderID),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(notificationservice.AddMoney(approved, domain.StatusCompleted))
	observability.IncrementTransition(string(domain.KindAddMoney), string(domain.StatusCompleted))
	return approved, nil
}

// RejectAddMoney terminates a processing request. Nothing is refunded
// because nothing was charged; a pending request has to be picked up
// before it can be rejected.
func (s *Service) RejectAddMoney(ctx context.Context, id uuid.UUID, reason string) (*domain.AddMoneyTransaction, error) {
	tx, err := s.addMoneyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	if !canTransition(domain.KindAddMoney, tx.Status, domain.StatusRejected) {
		return nil, ErrInvalidStateTransition
	}

	moved, err := s.addMoneyRepo.Reject(ctx, id, tx.Status, reason)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidStateTransition
	}

	rejected, err := s.addMoneyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, ErrTransactionNotFound
	}

	s.notifier.Publish(notificationservice.AddMoney(rejected, domain.StatusRejected))
	observability.IncrementTransition(string(domain.KindAddMoney), string(domain.StatusRejected))
	zap.L().Info("add money request rejected", zap.String("transactionID", id.String()))
	return rejected, nil
}
