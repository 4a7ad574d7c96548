package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// TransactionStatus is the shared lifecycle for add-money and
// transfer-money requests. Transitions never skip a stage and never
// leave a terminal state.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusRejected   TransactionStatus = "REJECTED"
)

type TransactionKind string

const (
	KindAddMoney      TransactionKind = "ADD_MONEY"
	KindTransferMoney TransactionKind = "TRANSFER_MONEY"
)

type LedgerEntryType string

const (
	LedgerDeposit    LedgerEntryType = "DEPOSIT"
	LedgerWithdrawal LedgerEntryType = "WITHDRAWAL"
)

type NotificationType string

const (
	NotificationRegistration NotificationType = "REGISTRATION"
	NotificationPortalAccess NotificationType = "PORTAL_ACCESS"
	NotificationAddMoney     NotificationType = "ADD_MONEY"
	NotificationTransfer     NotificationType = "TRANSFER_MONEY"
	NotificationSystem       NotificationType = "SYSTEM"
)

type User struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	PhoneNumber    string    `db:"phone_number"`
	Role           Role      `db:"role"`
	IsPortalAccess bool      `db:"is_portal_access"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Wallet struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Account is an off-system bank account used as the destination of a
// transfer. The engine never moves money into it.
type Account struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	AccountHolderName string    `db:"account_holder_name"`
	AccountNumber     string    `db:"account_number"`
	IFSCCode          string    `db:"ifsc_code"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type AddMoneyTransaction struct {
	ID               uuid.UUID         `db:"id"`
	UserID           uuid.UUID         `db:"user_id"`
	Amount           decimal.Decimal   `db:"amount"`
	Status           TransactionStatus `db:"status"`
	TransactionRefID string            `db:"transaction_ref_id"`
	Location         *string           `db:"location"`
	Description      *string           `db:"description"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

type TransferMoneyTransaction struct {
	ID                uuid.UUID         `db:"id"`
	UserID            uuid.UUID         `db:"user_id"`
	AccountID         uuid.UUID         `db:"account_id"`
	Amount            decimal.Decimal   `db:"amount"`
	Status            TransactionStatus `db:"status"`
	BankTransactionID *string           `db:"bank_transaction_id"`
	Description       *string           `db:"description"`
	CreatedAt         time.Time         `db:"created_at"`
	UpdatedAt         time.Time         `db:"updated_at"`

	Account *Account `db:"-"`
}

// AllTransaction is one immutable ledger row per completed money
// movement. Rows are never updated or deleted.
type AllTransaction struct {
	ID                         uuid.UUID       `db:"id"`
	OrderID                    string          `db:"order_id"`
	UserID                     uuid.UUID       `db:"user_id"`
	WalletID                   uuid.UUID       `db:"wallet_id"`
	Amount                     decimal.Decimal `db:"amount"`
	Type                       LedgerEntryType `db:"transaction_type"`
	TransactionRefID           *string         `db:"transaction_ref_id"`
	Description                string          `db:"description"`
	AddMoneyTransactionID      *uuid.UUID      `db:"add_money_transaction_id"`
	TransferMoneyTransactionID *uuid.UUID      `db:"transfer_money_transaction_id"`
	CreatedAt                  time.Time       `db:"created_at"`
}

type MPin struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	PinHash    string     `db:"pin_hash"`
	IsActive   bool       `db:"is_active"`
	LastUsedAt *time.Time `db:"last_used_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

type Notification struct {
	ID                         uuid.UUID        `db:"id"`
	UserID                     uuid.UUID        `db:"user_id"`
	Title                      string           `db:"title"`
	Message                    string           `db:"message"`
	Type                       NotificationType `db:"type"`
	IsRead                     bool             `db:"is_read"`
	AddMoneyTransactionID      *uuid.UUID       `db:"add_money_transaction_id"`
	TransferMoneyTransactionID *uuid.UUID       `db:"transfer_money_transaction_id"`
	CreatedAt                  time.Time        `db:"created_at"`
}
