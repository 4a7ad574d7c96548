package accountservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Account, int, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateAccount     = errors.New("account number already registered")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidIFSCCode      = errors.New("invalid ifsc code")
	ErrHolderNameRequired   = errors.New("account holder name is required")
)

type Service struct {
	accountRepo Repo
}

func New(accountRepo Repo) *Service {
	return &Service{accountRepo: accountRepo}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, holderName, accountNumber, ifscCode string) (*domain.Account, error) {
	if holderName == "" {
		return nil, ErrHolderNameRequired
	}
	if !validate.IsAccountNumber(accountNumber) {
		return nil, ErrInvalidAccountNumber
	}
	if !validate.IsIFSCCode(ifscCode) {
		return nil, ErrInvalidIFSCCode
	}

	existing, err := s.accountRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		zap.L().Error("failed to check account number", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	account := &domain.Account{
		UserID:            userID,
		AccountHolderName: holderName,
		AccountNumber:     accountNumber,
		IFSCCode:          ifscCode,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Account, int, error) {
	return s.accountRepo.ListByUser(ctx, userID, limit, offset)
}

// Update changes the holder name and IFSC of an owned account. The
// account number is immutable once registered.
func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, holderName, ifscCode string) (*domain.Account, error) {
	if holderName == "" {
		return nil, ErrHolderNameRequired
	}
	if !validate.IsIFSCCode(ifscCode) {
		return nil, ErrInvalidIFSCCode
	}

	account, err := s.accountRepo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	account.AccountHolderName = holderName
	account.IFSCCode = ifscCode
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	deleted, err := s.accountRepo.Delete(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to delete account", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAccountNotFound
	}
	return nil
}
