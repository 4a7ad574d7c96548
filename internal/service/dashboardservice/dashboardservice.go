package dashboardservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

type UserRepo interface {
	CountByRole(ctx context.Context, role domain.Role) (int, error)
}

type TransactionCounter interface {
	CountByStatus(ctx context.Context, status domain.TransactionStatus) (int, error)
}

type LedgerRepo interface {
	SumByType(ctx context.Context, entryType domain.LedgerEntryType) (decimal.Decimal, error)
}

// Stats is the admin dashboard snapshot.
type Stats struct {
	TotalUsers          int
	PendingAddMoney     int
	ProcessingAddMoney  int
	PendingTransfers    int
	ProcessingTransfers int
	TotalDeposited      decimal.Decimal
	TotalWithdrawn      decimal.Decimal
}

type Service struct {
	userRepo     UserRepo
	addMoneyRepo TransactionCounter
	transferRepo TransactionCounter
	ledgerRepo   LedgerRepo
}

func New(userRepo UserRepo, addMoneyRepo, transferRepo TransactionCounter, ledgerRepo LedgerRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		addMoneyRepo: addMoneyRepo,
		transferRepo: transferRepo,
		ledgerRepo:   ledgerRepo,
	}
}

func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountByRole(ctx, domain.RoleUser); err != nil {
		zap.L().Error("failed to count users", zap.Error(err))
		return nil, err
	}
	if stats.PendingAddMoney, err = s.addMoneyRepo.CountByStatus(ctx, domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.ProcessingAddMoney, err = s.addMoneyRepo.CountByStatus(ctx, domain.StatusProcessing); err != nil {
		return nil, err
	}
	if stats.PendingTransfers, err = s.transferRepo.CountByStatus(ctx, domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.ProcessingTransfers, err = s.transferRepo.CountByStatus(ctx, domain.StatusProcessing); err != nil {
		return nil, err
	}
	if stats.TotalDeposited, err = s.ledgerRepo.SumByType(ctx, domain.LedgerDeposit); err != nil {
		return nil, err
	}
	if stats.TotalWithdrawn, err = s.ledgerRepo.SumByType(ctx, domain.LedgerWithdrawal); err != nil {
		return nil, err
	}
	return stats, nil
}
