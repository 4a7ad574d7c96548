package addmoneyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var txRows = []string{"id", "user_id", "amount", "status", "transaction_ref_id", "location", "description", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	txID := uuid.New()
	ts := time.Now()

	tx := &domain.AddMoneyTransaction{
		UserID:           userID,
		Amount:           decimal.NewFromInt(500),
		Status:           domain.StatusPending,
		TransactionRefID: "000000000042",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO add_money_transactions`)).
		WithArgs(userID, tx.Amount, domain.StatusPending, "000000000042", tx.Location, tx.Description).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(txID, ts, ts))

	err := repo.Create(context.Background(), tx)
	assert.NoError(t, err)
	assert.Equal(t, txID, tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()
	userID := uuid.New()
	ts := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "existing transaction",
			mockSetup: func() {
				rows := pgxmock.NewRows(txRows).
					AddRow(txID, userID, decimal.NewFromInt(500), domain.StatusPending, "000000000042", nil, nil, ts, ts)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM add_money_transactions WHERE id = $1`)).
					WithArgs(txID).
					WillReturnRows(rows)
			},
		},
		{
			name: "missing transaction returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM add_money_transactions WHERE id = $1`)).
					WithArgs(txID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM add_money_transactions WHERE id = $1`)).
					WithArgs(txID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx, err := repo.FindByID(context.Background(), txID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, tx)
			} else {
				assert.Equal(t, txID, tx.ID)
				assert.Equal(t, domain.StatusPending, tx.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	t.Run("status moves when predicate matches", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE add_money_transactions`)).
			WithArgs(domain.StatusProcessing, txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.UpdateStatus(context.Background(), txID, domain.StatusPending, domain.StatusProcessing)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost race leaves row untouched", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE add_money_transactions`)).
			WithArgs(domain.StatusProcessing, txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		moved, err := repo.UpdateStatus(context.Background(), txID, domain.StatusPending, domain.StatusProcessing)
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE add_money_transactions`)).
			WithArgs(domain.StatusProcessing, txID, domain.StatusPending).
			WillReturnError(errors.New("database error"))

		moved, err := repo.UpdateStatus(context.Background(), txID, domain.StatusPending, domain.StatusProcessing)
		assert.Error(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkProcessing(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	t.Run("keeps minted reference when none supplied", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`transaction_ref_id = COALESCE($2, transaction_ref_id)`)).
			WithArgs(domain.StatusProcessing, (*string)(nil), txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.MarkProcessing(context.Background(), txID, nil)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores supplied reference", func(t *testing.T) {
		refID := "123456789012"
		mock.ExpectExec(regexp.QuoteMeta(`transaction_ref_id = COALESCE($2, transaction_ref_id)`)).
			WithArgs(domain.StatusProcessing, &refID, txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.MarkProcessing(context.Background(), txID, &refID)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already picked up", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`transaction_ref_id = COALESCE($2, transaction_ref_id)`)).
			WithArgs(domain.StatusProcessing, (*string)(nil), txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		moved, err := repo.MarkProcessing(context.Background(), txID, nil)
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	t.Run("reason appended to description", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`Rejection reason:`)).
			WithArgs(domain.StatusRejected, "suspicious activity", txID, domain.StatusProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.Reject(context.Background(), txID, domain.StatusProcessing, "suspicious activity")
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already terminal", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`Rejection reason:`)).
			WithArgs(domain.StatusRejected, "", txID, domain.StatusProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		moved, err := repo.Reject(context.Background(), txID, domain.StatusProcessing, "")
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	ts := time.Now()

	status := domain.StatusPending
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM add_money_transactions`)).
		WithArgs(&userID, &status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	rows := pgxmock.NewRows(txRows).
		AddRow(uuid.New(), userID, decimal.NewFromInt(100), domain.StatusPending, "000000000001", nil, nil, ts, ts).
		AddRow(uuid.New(), userID, decimal.NewFromInt(200), domain.StatusPending, "000000000002", nil, nil, ts, ts)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(&userID, &status, 10, 0).
		WillReturnRows(rows)

	txs, total, err := repo.List(context.Background(), &userID, &status, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, txs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RefIDExists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("000000000042").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.RefIDExists(context.Background(), "000000000042")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
