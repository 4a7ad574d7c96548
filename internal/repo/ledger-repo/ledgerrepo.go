package ledgerrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/pg"
)

// Repository persists the append-only ledger. Rows are inserted once
// and never updated.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const ledgerColumns = `id, order_id, user_id, wallet_id, amount, transaction_type, transaction_ref_id, description, add_money_transaction_id, transfer_money_transaction_id, created_at`

func (r *Repository) Insert(ctx context.Context, entry *domain.AllTransaction) error {
	query := `
        INSERT INTO all_transactions
            (order_id, user_id, wallet_id, amount, transaction_type, transaction_ref_id, description, add_money_transaction_id, transfer_money_transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		entry.OrderID, entry.UserID, entry.WalletID, entry.Amount, entry.Type,
		entry.TransactionRefID, entry.Description, entry.AddMoneyTransactionID, entry.TransferMoneyTransactionID,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		zap.L().Error("failed to insert ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.AllTransaction, error) {
	query := `SELECT ` + ledgerColumns + ` FROM all_transactions WHERE order_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, orderID))
}

func (r *Repository) OrderIDExists(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM all_transactions WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to probe order id", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) List(ctx context.Context, userID *uuid.UUID, entryType *domain.LedgerEntryType, limit, offset int) ([]domain.AllTransaction, int, error) {
	countQuery := `
        SELECT COUNT(*) FROM all_transactions
        WHERE ($1::uuid IS NULL OR user_id = $1)
          AND ($2::text IS NULL OR transaction_type = $2)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID, entryType).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT ` + ledgerColumns + `
        FROM all_transactions
        WHERE ($1::uuid IS NULL OR user_id = $1)
          AND ($2::text IS NULL OR transaction_type = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, entryType, limit, offset)
	if err != nil {
		zap.L().Error("failed to list ledger entries", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AllTransaction
	for rows.Next() {
		var e domain.AllTransaction
		if err := rows.Scan(&e.ID, &e.OrderID, &e.UserID, &e.WalletID, &e.Amount, &e.Type, &e.TransactionRefID, &e.Description, &e.AddMoneyTransactionID, &e.TransferMoneyTransactionID, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// SumByType totals ledger volume for one entry type across all users.
func (r *Repository) SumByType(ctx context.Context, entryType domain.LedgerEntryType) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM all_transactions WHERE transaction_type = $1`
	if err := r.db.QueryRow(ctx, query, entryType).Scan(&sum); err != nil {
		zap.L().Error("failed to sum ledger entries", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.AllTransaction, error) {
	var e domain.AllTransaction
	err := row.Scan(&e.ID, &e.OrderID, &e.UserID, &e.WalletID, &e.Amount, &e.Type, &e.TransactionRefID, &e.Description, &e.AddMoneyTransactionID, &e.TransferMoneyTransactionID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan ledger entry", zap.Error(err))
		return nil, err
	}
	return &e, nil
}
