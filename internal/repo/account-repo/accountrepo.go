package accountrepo

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

const accountColumns = `id, user_id, account_holder_name, account_number, ifsc_code, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, account *domain.Account) error {
	query := `
        INSERT INTO accounts (user_id, account_holder_name, account_number, ifsc_code)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, account.UserID, account.AccountHolderName, account.AccountNumber, account.IFSCCode)
	if err := row.Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByIDAndUser resolves an account only when it belongs to the given
// user; used for the transfer ownership precondition.
func (r *Repository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND user_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, id, userID))
}

func (r *Repository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, accountNumber))
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Account, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.AccountHolderName, &a.AccountNumber, &a.IFSCCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	return accounts, total, rows.Err()
}

func (r *Repository) Update(ctx context.Context, account *domain.Account) error {
	query := `
        UPDATE accounts
        SET account_holder_name = $1, ifsc_code = $2, updated_at = now()
        WHERE id = $3 AND user_id = $4
        RETURNING updated_at
    `
	row := r.db.QueryRow(ctx, query, account.AccountHolderName, account.IFSCCode, account.ID, account.UserID)
	if err := row.Scan(&account.UpdatedAt); err != nil {
		zap.L().Error("failed to update account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		zap.L().Error("failed to delete account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.UserID, &a.AccountHolderName, &a.AccountNumber, &a.IFSCCode, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan account", zap.Error(err))
		return nil, err
	}
	return &a, nil
}
