package mpinrepo

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

const mpinColumns = `id, user_id, pin_hash, is_active, last_used_at, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, mpin *domain.MPin) error {
	query := `
        INSERT INTO mpins (user_id, pin_hash, is_active)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, mpin.UserID, mpin.PinHash, mpin.IsActive)
	if err := row.Scan(&mpin.ID, &mpin.CreatedAt, &mpin.UpdatedAt); err != nil {
		zap.L().Error("failed to create mpin", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.MPin, error) {
	query := `SELECT ` + mpinColumns + ` FROM mpins WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) UpdateHash(ctx context.Context, userID uuid.UUID, pinHash string) error {
	query := `
        UPDATE mpins
        SET pin_hash = $1, is_active = TRUE, updated_at = now()
        WHERE user_id = $2
    `
	if _, err := r.db.Exec(ctx, query, pinHash, userID); err != nil {
		zap.L().Error("failed to update mpin", zap.Error(err))
		return err
	}
	return nil
}

// Touch records a successful verification.
func (r *Repository) Touch(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE mpins SET last_used_at = now() WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("failed to touch mpin", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	query := `UPDATE mpins SET is_active = $1, updated_at = now() WHERE user_id = $2`
	if _, err := r.db.Exec(ctx, query, active, userID); err != nil {
		zap.L().Error("failed to set mpin active flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.MPin, error) {
	var m domain.MPin
	err := row.Scan(&m.ID, &m.UserID, &m.PinHash, &m.IsActive, &m.LastUsedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan mpin", zap.Error(err))
		return nil, err
	}
	return &m, nil
}
