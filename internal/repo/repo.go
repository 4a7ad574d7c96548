package repo

import (
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/pg"
	accountrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/account-repo"
	addmoneyrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/addmoney-repo"
	ledgerrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/ledger-repo"
	mpinrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/mpin-repo"
	notificationrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/notification-repo"
	transferrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/transfer-repo"
	userrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/user-repo"
	walletrepo "github.com/mohamed-arshad-ch/aq-pay-api/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	AccountRepo      *accountrepo.Repository
	WalletRepo       *walletrepo.Repository
	AddMoneyRepo     *addmoneyrepo.Repository
	TransferRepo     *transferrepo.Repository
	LedgerRepo       *ledgerrepo.Repository
	MPinRepo         *mpinrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		AccountRepo:      accountrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		AddMoneyRepo:     addmoneyrepo.New(conn),
		TransferRepo:     transferrepo.New(conn),
		LedgerRepo:       ledgerrepo.New(conn),
		MPinRepo:         mpinrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
