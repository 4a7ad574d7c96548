package walletservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

type Repo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Create(ctx context.Context, userID uuid.UUID, balance decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

type Service struct {
	walletRepo Repo
}

func New(walletRepo Repo) *Service {
	return &Service{walletRepo: walletRepo}
}

func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

// EnsureExists returns the user's wallet, creating an empty one first
// when the user has none yet.
func (s *Service) EnsureExists(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to look up wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	wallet, err = s.walletRepo.Create(ctx, userID, decimal.Zero)
	if err != nil {
		return nil, err
	}
	zap.L().Info("wallet created", zap.String("userID", userID.String()))
	return wallet, nil
}

func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.Credit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.walletRepo.Debit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	// Zero rows: distinguish a missing wallet from a guarded balance.
	existing, err := s.walletRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWalletNotFound
	}
	return nil, ErrInsufficientFunds
}
