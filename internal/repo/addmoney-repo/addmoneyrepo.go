package addmoneyrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const txColumns = `id, user_id, amount, status, transaction_ref_id, location, description, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, tx *domain.AddMoneyTransaction) error {
	query := `
        INSERT INTO add_money_transactions (user_id, amount, status, transaction_ref_id, location, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Status, tx.TransactionRefID, tx.Location, tx.Description)
	if err := row.Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
		zap.L().Error("failed to create add money transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AddMoneyTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM add_money_transactions WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// UpdateStatus moves a transaction from one status to another. The
// compare-and-set predicate on the current status makes concurrent
// admin actions race safely: exactly one caller observes a row change.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus) (bool, error) {
	query := `
        UPDATE add_money_transactions
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update add money transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkProcessing is the CAS move out of PENDING. The admin may confirm
// the reference minted at creation or supply a corrected one.
func (r *Repository) MarkProcessing(ctx context.Context, id uuid.UUID, refID *string) (bool, error) {
	query := `
        UPDATE add_money_transactions
        SET status = $1, transaction_ref_id = COALESCE($2, transaction_ref_id), updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusProcessing, refID, id, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to mark add money transaction processing", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Reject is the CAS terminal move for a rejection. A non-empty reason
// is appended to the stored description.
func (r *Repository) Reject(ctx context.Context, id uuid.UUID, from domain.TransactionStatus, reason string) (bool, error) {
	query := `
        UPDATE add_money_transactions
        SET status = $1,
            description = CASE WHEN $2 = '' THEN description
                               ELSE COALESCE(description, '') || ' | Rejection reason: ' || $2 END,
            updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusRejected, reason, id, from)
	if err != nil {
		zap.L().Error("failed to reject add money transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) List(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.AddMoneyTransaction, int, error) {
	countQuery := `
        SELECT COUNT(*) FROM add_money_transactions
        WHERE ($1::uuid IS NULL OR user_id = $1)
          AND ($2::text IS NULL OR status = $2)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT ` + txColumns + `
        FROM add_money_transactions
        WHERE ($1::uuid IS NULL OR user_id = $1)
          AND ($2::text IS NULL OR status = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to list add money transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.AddMoneyTransaction
	for rows.Next() {
		var tx domain.AddMoneyTransaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Status, &tx.TransactionRefID, &tx.Location, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
			return nil, 0, err
		}
		txs = append(txs, tx)
	}
	return txs, total, rows.Err()
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.TransactionStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM add_money_transactions WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) RefIDExists(ctx context.Context, refID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM add_money_transactions WHERE transaction_ref_id = $1)`, refID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to probe add money ref id", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.AddMoneyTransaction, error) {
	var tx domain.AddMoneyTransaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Status, &tx.TransactionRefID, &tx.Location, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan add money transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}
