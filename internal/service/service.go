package service

import (
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/account"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/admin"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/auth"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/ledger"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/mpin"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/notification"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/transaction"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/wallet"

	pkgauth "github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/idgen"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/notifier"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/pg"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/repo"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/accountservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/authservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/dashboardservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/ledgerservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/mpinservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/notificationservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/transactionservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/walletservice"
)

type Services struct {
	AuthService         auth.Service
	AccountService      account.Service
	WalletService       wallet.Service
	TransactionService  transaction.Service
	MPinService         mpin.Service
	LedgerService       ledger.Service
	NotificationService notification.Service
	UserAdminService    admin.UserService
	DashboardService    admin.DashboardService
}

func New(repos *repo.Repositories, txManager pg.TXManager, pool *notifier.Pool) *Services {
	idGen := idgen.New(repos.LedgerRepo, repos.AddMoneyRepo, repos.TransferRepo)

	walletService := walletservice.New(repos.WalletRepo)
	accountService := accountservice.New(repos.AccountRepo)
	mpinService := mpinservice.New(repos.MPinRepo, &pkgauth.HashService{})
	authService := authservice.New(repos.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{}, pool)
	transactionService := transactionservice.New(
		repos.AddMoneyRepo,
		repos.TransferRepo,
		repos.AccountRepo,
		repos.WalletRepo,
		repos.LedgerRepo,
		idGen,
		mpinService,
		txManager,
		pool,
	)
	ledgerService := ledgerservice.New(repos.LedgerRepo)
	notificationService := notificationservice.New(repos.NotificationRepo)
	dashboardService := dashboardservice.New(repos.UserRepo, repos.AddMoneyRepo, repos.TransferRepo, repos.LedgerRepo)

	return &Services{
		AuthService:         authService,
		AccountService:      accountService,
		WalletService:       walletService,
		TransactionService:  transactionService,
		MPinService:         mpinService,
		LedgerService:       ledgerService,
		NotificationService: notificationService,
		UserAdminService:    authService,
		DashboardService:    dashboardService,
	}
}
