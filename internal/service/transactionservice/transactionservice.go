package transactionservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/pg"
)

type AddMoneyRepo interface {
	Create(ctx context.Context, tx *domain.AddMoneyTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AddMoneyTransaction, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, refID *string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus) (bool, error)
	Reject(ctx context.Context, id uuid.UUID, from domain.TransactionStatus, reason string) (bool, error)
	List(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.AddMoneyTransaction, int, error)
}

type TransferRepo interface {
	Create(ctx context.Context, tx *domain.TransferMoneyTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TransferMoneyTransaction, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, bankTransactionID *string) (bool, error)
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	Reject(ctx context.Context, id uuid.UUID, from domain.TransactionStatus, reason string) (bool, error)
	List(ctx context.Context, userID *uuid.UUID, status *domain.TransactionStatus, limit, offset int) ([]domain.TransferMoneyTransaction, int, error)
}

type AccountRepo interface {
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Account, error)
}

type WalletRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Create(ctx context.Context, userID uuid.UUID, balance decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, error)
}

type LedgerRepo interface {
	Insert(ctx context.Context, entry *domain.AllTransaction) error
}

type IDGen interface {
	OrderID(ctx context.Context) (string, error)
	RefID(ctx context.Context, kind domain.TransactionKind) (string, error)
}

type Notifier interface {
	Publish(n *domain.Notification)
}

// MPinVerifier gates transfer creation.
type MPinVerifier interface {
	Verify(ctx context.Context, userID uuid.UUID, pin string) error
}

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidRefID           = errors.New("transaction ref id must be 12 digits")
	ErrAccountNotFound        = errors.New("account not found")
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrNotOwner               = errors.New("transaction belongs to another user")
)

// Service owns the request lifecycle for both transaction kinds. Every
// state change that moves money runs inside one database transaction;
// notifications go out only after that transaction commits.
type Service struct {
	addMoneyRepo AddMoneyRepo
	transferRepo TransferRepo
	accountRepo  AccountRepo
	walletRepo   WalletRepo
	ledgerRepo   LedgerRepo
	idGen        IDGen
	mpin         MPinVerifier
	txManager    pg.TXManager
	notifier     Notifier
}

func New(
	addMoneyRepo AddMoneyRepo,
	transferRepo TransferRepo,
	accountRepo AccountRepo,
	walletRepo WalletRepo,
	ledgerRepo LedgerRepo,
	idGen IDGen,
	mpin MPinVerifier,
	txManager pg.TXManager,
	notifier Notifier,
) *Service {
	return &Service{
		addMoneyRepo: addMoneyRepo,
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		walletRepo:   walletRepo,
		ledgerRepo:   ledgerRepo,
		idGen:        idGen,
		mpin:         mpin,
		txManager:    txManager,
		notifier:     notifier,
	}
}
