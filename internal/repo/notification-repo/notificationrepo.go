package notificationrepo

import (
	"context"

	"github.com/google/uuid"
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

const notificationColumns = `id, user_id, title, message, type, is_read, add_money_transaction_id, transfer_money_transaction_id, created_at`

func (r *Repository) Insert(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (user_id, title, message, type, add_money_transaction_id, transfer_money_transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.AddMoneyTransactionID, n.TransferMoneyTransactionID)
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		zap.L().Error("failed to insert notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, int, error) {
	countQuery := `
        SELECT COUNT(*) FROM notifications
        WHERE user_id = $1 AND ($2 = FALSE OR is_read = FALSE)
    `
	var total int
	if err := r.db.QueryRow(ctx, countQuery, userID, unreadOnly).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE user_id = $1 AND ($2 = FALSE OR is_read = FALSE)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, unreadOnly, limit, offset)
	if err != nil {
		zap.L().Error("failed to list notifications", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.AddMoneyTransactionID, &n.TransferMoneyTransactionID, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

func (r *Repository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MarkRead flips one notification owned by the user. Returns false when
// the notification does not exist or belongs to someone else.
func (r *Repository) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		zap.L().Error("failed to mark notifications read", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
