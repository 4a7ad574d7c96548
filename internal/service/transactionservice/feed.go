package transactionservice

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

// FeedItem is one entry of the combined request feed covering both
// transaction kinds.
type FeedItem struct {
	ID          uuid.UUID
	Kind        domain.TransactionKind
	Amount      decimal.Decimal
	Status      domain.TransactionStatus
	Description *string
	Account     *domain.Account
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListFeed merges add-money and transfer requests into one list sorted
// by creation time descending. A nil userID yields the admin view over
// all users.
func (s *Service) ListFeed(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]FeedItem, int, error) {
	// Both sources page independently, so each must supply the whole
	// window before the merged cut.
	window := limit + offset

	addMoney, addTotal, err := s.addMoneyRepo.List(ctx, userID, status, window, 0)
	if err != nil {
		return nil, 0, err
	}
	transfers, transferTotal, err := s.transferRepo.List(ctx, userID, status, window, 0)
	if err != nil {
		return nil, 0, err
	}

	items := make([]FeedItem, 0, len(addMoney)+len(transfers))
	for i := range addMoney {
		tx := &addMoney[i]
		items = append(items, FeedItem{
			ID:          tx.ID,
			Kind:        domain.KindAddMoney,
			Amount:      tx.Amount,
			Status:      tx.Status,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
			UpdatedAt:   tx.UpdatedAt,
		})
	}
	for i := range transfers {
		tx := &transfers[i]
		items = append(items, FeedItem{
			ID:          tx.ID,
			Kind:        domain.KindTransferMoney,
			Amount:      tx.Amount,
			Status:      tx.Status,
			Description: tx.Description,
			Account:     tx.Account,
			CreatedAt:   tx.CreatedAt,
			UpdatedAt:   tx.UpdatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if offset >= len(items) {
		items = nil
	} else {
		end := offset + limit
		if end > len(items) {
			end = len(items)
		}
		items = items[offset:end]
	}
	return items, addTotal + transferTotal, nil
}
