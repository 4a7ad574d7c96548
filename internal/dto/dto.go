package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/dashboardservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/transactionservice"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	PhoneNumber    string    `json:"phoneNumber"`
	Role           string    `json:"role"`
	IsPortalAccess bool      `json:"isPortalAccess"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type PortalAccessRequest struct {
	Approved bool `json:"approved"`
}

type AccountRequest struct {
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
}

type AccountUpdateRequest struct {
	AccountHolderName string `json:"accountHolderName"`
	IFSCCode          string `json:"ifscCode"`
}

type AccountResponse struct {
	ID                uuid.UUID `json:"id"`
	AccountHolderName string    `json:"accountHolderName"`
	AccountNumber     string    `json:"accountNumber"`
	IFSCCode          string    `json:"ifscCode"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type WalletResponse struct {
	ID        uuid.UUID       `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type AddMoneyRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Location    *string         `json:"location,omitempty"`
	Description *string         `json:"description,omitempty"`
}

type TransferRequest struct {
	AccountID   uuid.UUID       `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	MPin        string          `json:"mpin"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type AcceptAddMoneyRequest struct {
	TransactionRefID *string `json:"transactionRefId,omitempty"`
}

type AcceptTransferRequest struct {
	BankTransactionID *string `json:"bankTransactionId,omitempty"`
}

type AddMoneyResponse struct {
	ID               uuid.UUID       `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	TransactionRefID string          `json:"transactionRefId"`
	Location         *string         `json:"location,omitempty"`
	Description      *string         `json:"description,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type TransferResponse struct {
	ID                uuid.UUID        `json:"id"`
	Amount            decimal.Decimal  `json:"amount"`
	Status            string           `json:"status"`
	BankTransactionID *string          `json:"bankTransactionId,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Account           *AccountResponse `json:"account,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

type FeedItemResponse struct {
	ID          uuid.UUID        `json:"id"`
	Kind        string           `json:"kind"`
	Amount      decimal.Decimal  `json:"amount"`
	Status      string           `json:"status"`
	Description *string          `json:"description,omitempty"`
	Account     *AccountResponse `json:"account,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type LedgerEntryResponse struct {
	OrderID          string          `json:"orderId"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	TransactionRefID *string         `json:"transactionRefId,omitempty"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type MPinCreateRequest struct {
	MPin string `json:"mpin"`
}

type MPinChangeRequest struct {
	OldMPin string `json:"oldMpin"`
	NewMPin string `json:"newMpin"`
}

type MPinVerifyRequest struct {
	MPin string `json:"mpin"`
}

type MPinStatusResponse struct {
	IsSet    bool `json:"isSet"`
	IsActive bool `json:"isActive"`
}

type DashboardResponse struct {
	TotalUsers          int             `json:"totalUsers"`
	PendingAddMoney     int             `json:"pendingAddMoney"`
	ProcessingAddMoney  int             `json:"processingAddMoney"`
	PendingTransfers    int             `json:"pendingTransfers"`
	ProcessingTransfers int             `json:"processingTransfers"`
	TotalDeposited      decimal.Decimal `json:"totalDeposited"`
	TotalWithdrawn      decimal.Decimal `json:"totalWithdrawn"`
}

type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		Role:           string(u.Role),
		IsPortalAccess: u.IsPortalAccess,
		CreatedAt:      u.CreatedAt,
	}
}

func NewAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                a.ID,
		AccountHolderName: a.AccountHolderName,
		AccountNumber:     a.AccountNumber,
		IFSCCode:          a.IFSCCode,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func NewWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func NewAddMoneyResponse(tx *domain.AddMoneyTransaction) AddMoneyResponse {
	return AddMoneyResponse{
		ID:               tx.ID,
		Amount:           tx.Amount,
		Status:           string(tx.Status),
		TransactionRefID: tx.TransactionRefID,
		Location:         tx.Location,
		Description:      tx.Description,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func NewTransferResponse(tx *domain.TransferMoneyTransaction) TransferResponse {
	resp := TransferResponse{
		ID:                tx.ID,
		Amount:            tx.Amount,
		Status:            string(tx.Status),
		BankTransactionID: tx.BankTransactionID,
		Description:       tx.Description,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
	}
	if tx.Account != nil {
		account := NewAccountResponse(tx.Account)
		resp.Account = &account
	}
	return resp
}

func NewFeedItemResponse(item transactionservice.FeedItem) FeedItemResponse {
	resp := FeedItemResponse{
		ID:          item.ID,
		Kind:        string(item.Kind),
		Amount:      item.Amount,
		Status:      string(item.Status),
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.Account != nil {
		account := NewAccountResponse(item.Account)
		resp.Account = &account
	}
	return resp
}

func NewLedgerEntryResponse(e *domain.AllTransaction) LedgerEntryResponse {
	return LedgerEntryResponse{
		OrderID:          e.OrderID,
		Amount:           e.Amount,
		Type:             string(e.Type),
		TransactionRefID: e.TransactionRefID,
		Description:      e.Description,
		CreatedAt:        e.CreatedAt,
	}
}

func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func NewDashboardResponse(stats *dashboardservice.Stats) DashboardResponse {
	return DashboardResponse{
		TotalUsers:          stats.TotalUsers,
		PendingAddMoney:     stats.PendingAddMoney,
		ProcessingAddMoney:  stats.ProcessingAddMoney,
		PendingTransfers:    stats.PendingTransfers,
		ProcessingTransfers: stats.ProcessingTransfers,
		TotalDeposited:      stats.TotalDeposited,
		TotalWithdrawn:      stats.TotalWithdrawn,
	}
}
