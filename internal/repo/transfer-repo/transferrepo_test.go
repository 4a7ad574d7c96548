package transferrepo

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

var joinedRows = []string{
	"id", "user_id", "account_id", "amount", "status", "bank_transaction_id", "description", "created_at", "updated_at",
	"a_id", "a_user_id", "account_holder_name", "account_number", "ifsc_code", "a_created_at", "a_updated_at",
}

func addJoinedRow(rows *pgxmock.Rows, tx *domain.TransferMoneyTransaction, account *domain.Account, ts time.Time) *pgxmock.Rows {
	return rows.AddRow(
		tx.ID, tx.UserID, tx.AccountID, tx.Amount, tx.Status, tx.BankTransactionID, tx.Description, ts, ts,
		account.ID, account.UserID, account.AccountHolderName, account.AccountNumber, account.IFSCCode, ts, ts,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	accountID := uuid.New()
	txID := uuid.New()
	ts := time.Now()

	tx := &domain.TransferMoneyTransaction{
		UserID:    userID,
		AccountID: accountID,
		Amount:    decimal.NewFromInt(300),
		Status:    domain.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transfer_money_transactions`)).
		WithArgs(userID, accountID, tx.Amount, domain.StatusPending, tx.Description).
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
	accountID := uuid.New()
	ts := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "loads the transfer with its account",
			mockSetup: func() {
				tx := &domain.TransferMoneyTransaction{
					ID:        txID,
					UserID:    userID,
					AccountID: accountID,
					Amount:    decimal.NewFromInt(300),
					Status:    domain.StatusPending,
				}
				account := &domain.Account{
					ID:                accountID,
					UserID:            userID,
					AccountHolderName: "John Doe",
					AccountNumber:     "123456789012",
					IFSCCode:          "HDFC0001234",
				}
				rows := addJoinedRow(pgxmock.NewRows(joinedRows), tx, account, ts)
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN accounts a ON a.id = t.account_id`)).
					WithArgs(txID).
					WillReturnRows(rows)
			},
		},
		{
			name: "missing transaction returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN accounts a ON a.id = t.account_id`)).
					WithArgs(txID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN accounts a ON a.id = t.account_id`)).
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
				assert.NotNil(t, tx.Account)
				assert.Equal(t, "123456789012", tx.Account.AccountNumber)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkProcessing(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	t.Run("stores the bank reference", func(t *testing.T) {
		bankRef := "UTR0099"
		mock.ExpectExec(regexp.QuoteMeta(`bank_transaction_id = COALESCE($2, bank_transaction_id)`)).
			WithArgs(domain.StatusProcessing, &bankRef, txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.MarkProcessing(context.Background(), txID, &bankRef)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost race leaves row untouched", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`bank_transaction_id = COALESCE($2, bank_transaction_id)`)).
			WithArgs(domain.StatusProcessing, (*string)(nil), txID, domain.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		moved, err := repo.MarkProcessing(context.Background(), txID, nil)
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	t.Run("processing completes", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transfer_money_transactions`)).
			WithArgs(domain.StatusCompleted, txID, domain.StatusProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		moved, err := repo.Complete(context.Background(), txID)
		assert.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second approval finds no row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE transfer_money_transactions`)).
			WithArgs(domain.StatusCompleted, txID, domain.StatusProcessing).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		moved, err := repo.Complete(context.Background(), txID)
		assert.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	txID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`Rejection reason:`)).
		WithArgs(domain.StatusRejected, "bank unreachable", txID, domain.StatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	moved, err := repo.Reject(context.Background(), txID, domain.StatusPending, "bank unreachable")
	assert.NoError(t, err)
	assert.True(t, moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RefIDExists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs("000000000042").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.RefIDExists(context.Background(), "000000000042")
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
