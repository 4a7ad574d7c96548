package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mohamed-arshad-ch/aq-pay-api/docs"
	accounthandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/account"
	adminhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/admin"
	authhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/auth"
	ledgerhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/ledger"
	mpinhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/mpin"
	notificationhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/notification"
	transactionhandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/transaction"
	wallethandlers "github.com/mohamed-arshad-ch/aq-pay-api/internal/handlers/wallet"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/observability"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateAddMoney(w http.ResponseWriter, r *http.Request)
	GetAddMoney(w http.ResponseWriter, r *http.Request)
	ListAddMoney(w http.ResponseWriter, r *http.Request)
	CreateTransfer(w http.ResponseWriter, r *http.Request)
	GetTransfer(w http.ResponseWriter, r *http.Request)
	ListTransfers(w http.ResponseWriter, r *http.Request)
	ListFeed(w http.ResponseWriter, r *http.Request)

	AcceptAddMoney(w http.ResponseWriter, r *http.Request)
	ApproveAddMoney(w http.ResponseWriter, r *http.Request)
	RejectAddMoney(w http.ResponseWriter, r *http.Request)
	AcceptTransfer(w http.ResponseWriter, r *http.Request)
	ApproveTransfer(w http.ResponseWriter, r *http.Request)
	RejectTransfer(w http.ResponseWriter, r *http.Request)
	ListAllFeed(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetByOrderID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type MPinHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Change(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	ListPendingPortalAccess(w http.ResponseWriter, r *http.Request)
	SetPortalAccess(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	AccountHandler      AccountHandler
	WalletHandler       WalletHandler
	TransactionHandler  TransactionHandler
	LedgerHandler       LedgerHandler
	MPinHandler         MPinHandler
	NotificationHandler NotificationHandler
	AdminHandler        AdminHandler

	authRateLimit int
}

func New(s *service.Services, authRateLimit int) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		AccountHandler:      accounthandlers.New(s.AccountService),
		WalletHandler:       wallethandlers.New(s.WalletService),
		TransactionHandler:  transactionhandlers.New(s.TransactionService),
		LedgerHandler:       ledgerhandlers.New(s.LedgerService),
		MPinHandler:         mpinhandlers.New(s.MPinService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		AdminHandler:        adminhandlers.New(s.UserAdminService, s.DashboardService),
		authRateLimit:       authRateLimit,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		observability.MetricsMiddleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(h.authRateLimit, time.Minute))
				r.Post("/register", h.AuthHandler.Register)
				r.Post("/login", h.AuthHandler.Login)
			})
			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/profile", h.AuthHandler.GetProfile)
				r.Put("/profile", h.AuthHandler.UpdateProfile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/wallet", h.WalletHandler.GetWallet)

			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.Create)
				r.Get("/", h.AccountHandler.List)
				r.Get("/{id}", h.AccountHandler.Get)
				r.Put("/{id}", h.AccountHandler.Update)
				r.Delete("/{id}", h.AccountHandler.Delete)
			})

			r.Route("/add-money", func(r chi.Router) {
				r.Post("/", h.TransactionHandler.CreateAddMoney)
				r.Get("/", h.TransactionHandler.ListAddMoney)
				r.Get("/{id}", h.TransactionHandler.GetAddMoney)
			})

			r.Route("/transfer-money", func(r chi.Router) {
				r.Post("/", h.TransactionHandler.CreateTransfer)
				r.Get("/", h.TransactionHandler.ListTransfers)
				r.Get("/{id}", h.TransactionHandler.GetTransfer)
			})

			r.Get("/transactions", h.TransactionHandler.ListFeed)

			r.Route("/all-transactions", func(r chi.Router) {
				r.Get("/", h.LedgerHandler.List)
				r.Get("/{orderId}", h.LedgerHandler.GetByOrderID)
			})

			r.Route("/mpin", func(r chi.Router) {
				r.Post("/", h.MPinHandler.Create)
				r.Get("/", h.MPinHandler.Status)
				r.Put("/", h.MPinHandler.Change)
				r.Post("/verify", h.MPinHandler.Verify)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Get("/unread-count", h.NotificationHandler.UnreadCount)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
				r.Post("/read-all", h.NotificationHandler.MarkAllRead)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)

				r.Get("/dashboard", h.AdminHandler.Dashboard)
				r.Get("/portal-access", h.AdminHandler.ListPendingPortalAccess)
				r.Post("/portal-access/{id}", h.AdminHandler.SetPortalAccess)

				r.Route("/add-money/{id}", func(r chi.Router) {
					r.Post("/accept", h.TransactionHandler.AcceptAddMoney)
					r.Post("/approve", h.TransactionHandler.ApproveAddMoney)
					r.Post("/reject", h.TransactionHandler.RejectAddMoney)
				})

				r.Route("/transfer-money/{id}", func(r chi.Router) {
					r.Post("/accept", h.TransactionHandler.AcceptTransfer)
					r.Post("/approve", h.TransactionHandler.ApproveTransfer)
					r.Post("/reject", h.TransactionHandler.RejectTransfer)
				})

				r.Get("/transactions", h.TransactionHandler.ListAllFeed)
				r.Get("/all-transactions", h.LedgerHandler.ListAll)
			})
		})
	})
	return r
}
