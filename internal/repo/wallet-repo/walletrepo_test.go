package walletrepo

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
)

func now() time.Time { return time.Now() }

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var walletRows = []string{"id", "user_id", "balance", "created_at", "updated_at"}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	walletID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "existing wallet",
			mockSetup: func() {
				rows := pgxmock.NewRows(walletRows).
					AddRow(walletID, userID, decimal.NewFromInt(100), now(), now())
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
		},
		{
			name: "missing wallet returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.FindByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, wallet)
			} else {
				assert.Equal(t, walletID, wallet.ID)
				assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(100)))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	walletID := uuid.New()
	amount := decimal.NewFromInt(40)

	t.Run("sufficient balance", func(t *testing.T) {
		rows := pgxmock.NewRows(walletRows).
			AddRow(walletID, userID, decimal.NewFromInt(60), now(), now())
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance - $1`)).
			WithArgs(amount, userID).
			WillReturnRows(rows)

		wallet, err := repo.Debit(context.Background(), userID, amount)
		assert.NoError(t, err)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(60)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard blocks overdraft", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance - $1`)).
			WithArgs(amount, userID).
			WillReturnError(pgx.ErrNoRows)

		wallet, err := repo.Debit(context.Background(), userID, amount)
		assert.NoError(t, err)
		assert.Nil(t, wallet)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	walletID := uuid.New()
	amount := decimal.NewFromInt(25)

	rows := pgxmock.NewRows(walletRows).
		AddRow(walletID, userID, decimal.NewFromInt(125), now(), now())
	mock.ExpectQuery(regexp.QuoteMeta(`SET balance = balance + $1`)).
		WithArgs(amount, userID).
		WillReturnRows(rows)

	wallet, err := repo.Credit(context.Background(), userID, amount)
	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(125)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	walletID := uuid.New()
	initial := decimal.NewFromInt(500)

	rows := pgxmock.NewRows(walletRows).
		AddRow(walletID, userID, initial, now(), now())
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (user_id, balance)`)).
		WithArgs(userID, initial).
		WillReturnRows(rows)

	wallet, err := repo.Create(context.Background(), userID, initial)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.True(t, wallet.Balance.Equal(initial))
	assert.NoError(t, mock.ExpectationsWereMet())
}
