package transferrepo

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

const txColumns = `t.id, t.user_id, t.account_id, t.amount, t.status, t.bank_transaction_id, t.description, t.created_at, t.updated_at`

const accountColumns = `a.id, a.user_id, a.account_holder_name, a.account_number, a.ifsc_code, a.created_at, a.updated_at`

func (r *Repository) Create(ctx context.Context, tx *domain.TransferMoneyTransaction) error {
	query := `
        INSERT INTO transfer_money_transactions (user_id, account_id, amount, status, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, tx.UserID, tx.AccountID, tx.Amount, tx.Status, tx.Description)
	if err := row.Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt); err != nil {
		zap.L().Error("failed to create transfer transaction", zap.Error(err))
		return err
	}
	return nil
}

// FindByID loads the transfer together with its destination account.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TransferMoneyTransaction, error) {
	query := `
        SELECT ` + txColumns + `, ` + accountColumns + `
        FROM transfer_money_transactions t
        JOIN accounts a ON a.id = t.account_id
        WHERE t.id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// MarkProcessing is the CAS move out of PENDING; it records the bank
// side reference supplied by the operator picking up the request.
func (r *Repository) MarkProcessing(ctx context.Context, id uuid.UUID, bankTransactionID *string) (bool, error) {
	query := `
        UPDATE transfer_money_transactions
        SET status = $1, bank_transaction_id = COALESCE($2, bank_transaction_id), updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusProcessing, bankTransactionID, id, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to mark transfer transaction processing", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Complete is the CAS terminal move for an approval.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
        UPDATE transfer_money_transactions
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusCompleted, id, domain.StatusProcessing)
	if err != nil {
		zap.L().Error("failed to complete transfer transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Reject(ctx context.Context, id uuid.UUID, from domain.TransactionStatus, reason string) (bool, error) {
	query := `
        UPDATE transfer_money_transactions
        SET status = $1,
            description = CASE WHEN $2 = '' THEN description
                               ELSE COALESCE(description, '') || ' | Rejection reason: ' || $2 END,
            updated_at = now()
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusRejected, reason, id, from)
	if err != nil {
		zap.L().Error("failed to reject transfer transaction", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) List(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.TransferMoneyTransaction, int, error) {
	countQuery := `
        SELECT COUNT(*) FROM transfer_money_transactions t
        WHERE ($1::uuid IS NULL OR t.user_id = $1)
          AND ($2::text IS NULL OR t.status = $2)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT ` + txColumns + `, ` + accountColumns + `
        FROM transfer_money_transactions t
        JOIN accounts a ON a.id = t.account_id
        WHERE ($1::uuid IS NULL OR t.user_id = $1)
          AND ($2::text IS NULL OR t.status = $2)
        ORDER BY t.created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to list transfer transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var txs []domain.TransferMoneyTransaction
	for rows.Next() {
		tx, err := scanWithAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		txs = append(txs, *tx)
	}
	return txs, total, rows.Err()
}

func (r *Repository) CountByStatus(ctx context.Context, status domain.TransactionStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transfer_money_transactions WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) RefIDExists(ctx context.Context, refID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transfer_money_transactions WHERE transaction_ref_id = $1)`, refID).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to probe transfer ref id", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.TransferMoneyTransaction, error) {
	tx, err := scanWithAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan transfer transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func scanWithAccount(row pgx.Row) (*domain.TransferMoneyTransaction, error) {
	var (
		tx      domain.TransferMoneyTransaction
		account domain.Account
	)
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.AccountID, &tx.Amount, &tx.Status, &tx.BankTransactionID, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
		&account.ID, &account.UserID, &account.AccountHolderName, &account.AccountNumber, &account.IFSCCode, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	tx.Account = &account
	return &tx, nil
}
