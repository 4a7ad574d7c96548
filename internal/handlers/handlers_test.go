package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newMockHandlers(ctrl *gomock.Controller) *Handlers {
	authHandler := NewMockAuthHandler(ctrl)
	accountHandler := NewMockAccountHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	transactionHandler := NewMockTransactionHandler(ctrl)
	ledgerHandler := NewMockLedgerHandler(ctrl)
	mpinHandler := NewMockMPinHandler(ctrl)
	notificationHandler := NewMockNotificationHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	return &Handlers{
		AuthHandler:         authHandler,
		AccountHandler:      accountHandler,
		WalletHandler:       walletHandler,
		TransactionHandler:  transactionHandler,
		LedgerHandler:       ledgerHandler,
		MPinHandler:         mpinHandler,
		NotificationHandler: notificationHandler,
		AdminHandler:        adminHandler,
		authRateLimit:       100,
	}
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newMockHandlers(ctrl)

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/auth/profile", http.StatusUnauthorized},
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"POST", "/api/accounts/", http.StatusUnauthorized},
		{"POST", "/api/add-money/", http.StatusUnauthorized},
		{"POST", "/api/transfer-money/", http.StatusUnauthorized},
		{"GET", "/api/transactions", http.StatusUnauthorized},
		{"GET", "/api/all-transactions/", http.StatusUnauthorized},
		{"POST", "/api/mpin/", http.StatusUnauthorized},
		{"GET", "/api/notifications/", http.StatusUnauthorized},
		{"GET", "/api/admin/dashboard", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
