package ledgerservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/validate"
)

type Repo interface {
	FindByOrderID(ctx context.Context, orderID string) (*domain.AllTransaction, error)
	List(ctx context.Context, userID *uuid.UUID, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error)
}

var (
	ErrEntryNotFound  = errors.New("ledger entry not found")
	ErrForbidden      = errors.New("not allowed to view this entry")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// Service exposes read access to the immutable ledger. Regular users
// see only their own entries; admins see everything.
type Service struct {
	ledgerRepo Repo
}

func New(ledgerRepo Repo) *Service {
	return &Service{ledgerRepo: ledgerRepo}
}

func (s *Service) GetByOrderID(ctx context.Context, orderID string, requester uuid.UUID, role domain.Role) (*domain.AllTransaction, error) {
	if !validate.IsOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	entry, err := s.ledgerRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get ledger entry", zap.Error(err))
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if role != domain.RoleAdmin && entry.UserID != requester {
		return nil, ErrForbidden
	}
	return entry, nil
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error) {
	return s.ledgerRepo.List(ctx, &userID, entryType, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error) {
	return s.ledgerRepo.List(ctx, nil, entryType, limit, offset)
}
