package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	accountrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/account-repo"
	addmoneyrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/addmoney-repo"
	ledgerrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/ledger-repo"
	mpinrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/mpin-repo"
	notificationrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/notification-repo"
	transferrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/transfer-repo"
	userrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/user-repo"
	walletrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.AccountRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.AddMoneyRepo)
	assert.NotNil(t, repo.TransferRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.MPinRepo)
	assert.NotNil(t, repo.NotificationRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &accountrepo.Repository{}, repo.AccountRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &addmoneyrepo.Repository{}, repo.AddMoneyRepo)
	assert.IsType(t, &transferrepo.Repository{}, repo.TransferRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &mpinrepo.Repository{}, repo.MPinRepo)
	assert.IsType(t, &notificationrepo.Repository{}, repo.NotificationRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
