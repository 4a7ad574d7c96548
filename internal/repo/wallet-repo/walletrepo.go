package walletrepo

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

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const walletColumns = `id, user_id, balance, created_at, updated_at`

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID, balance decimal.Decimal) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, $2)
        RETURNING ` + walletColumns
	wallet, err := r.scanOne(r.db.QueryRow(ctx, query, userID, balance))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit adds amount to the wallet balance. Returns nil when the user
// has no wallet.
func (r *Repository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance + $1, updated_at = now()
        WHERE user_id = $2
        RETURNING ` + walletColumns
	return r.scanOne(r.db.QueryRow(ctx, query, amount, userID))
}

// Debit subtracts amount from the wallet balance. The balance guard is
// part of the statement so a concurrent debit can never push the
// balance negative; zero rows means either a missing wallet or
// insufficient funds, which the caller distinguishes.
func (r *Repository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1, updated_at = now()
        WHERE user_id = $2 AND balance >= $1
        RETURNING ` + walletColumns
	return r.scanOne(r.db.QueryRow(ctx, query, amount, userID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}
