package userrepo

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

const userColumns = `id, email, password_hash, first_name, last_name, phone_number, role, is_portal_access, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := `
        INSERT INTO users (email, password_hash, first_name, last_name, phone_number, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, is_portal_access, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.PhoneNumber, user.Role)
	err := row.Scan(&user.ID, &user.IsPortalAccess, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, phone_number = $3, updated_at = now()
        WHERE id = $4
        RETURNING updated_at
    `
	row := r.db.QueryRow(ctx, query, user.FirstName, user.LastName, user.PhoneNumber, user.ID)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		zap.L().Error("failed to update user profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdatePortalAccess(ctx context.Context, id uuid.UUID, approved bool) (*domain.User, error) {
	query := `
        UPDATE users
        SET is_portal_access = $1, updated_at = now()
        WHERE id = $2
        RETURNING ` + userColumns
	return r.scanOne(r.db.QueryRow(ctx, query, approved, id))
}

func (r *Repository) ListPendingPortalAccess(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE role = 'USER' AND is_portal_access = FALSE
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("failed to list pending portal access users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.Role, &u.IsPortalAccess, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *Repository) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.Role, &u.IsPortalAccess, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to scan user", zap.Error(err))
		return nil, err
	}
	return &u, nil
}
