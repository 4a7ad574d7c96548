package notificationservice

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"twelve digits", "123456789012", "********9012"},
		{"nine digits", "123456789", "*****6789"},
		{"five digits", "12345", "*2345"},
		{"four digits masked entirely", "1234", "****"},
		{"short value masked entirely", "12", "**"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MaskAccountNumber(tt.in))
		})
	}
}

func TestRegistration(t *testing.T) {
	userID := uuid.New()
	n := Registration(userID)

	assert.Equal(t, userID, n.UserID)
	assert.Equal(t, "Registration Successful", n.Title)
	assert.Equal(t, domain.NotificationRegistration, n.Type)
	assert.Contains(t, n.Message, "wait for admin approval")
}

func TestPortalAccess(t *testing.T) {
	userID := uuid.New()

	approved := PortalAccess(userID, true)
	assert.Equal(t, "Portal Access Approved", approved.Title)
	assert.Contains(t, approved.Message, "You can now login")

	denied := PortalAccess(userID, false)
	assert.Equal(t, "Portal Access Denied", denied.Title)
	assert.Contains(t, denied.Message, "contact support")
}

func TestAddMoney(t *testing.T) {
	tx := &domain.AddMoneyTransaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(500),
	}

	tests := []struct {
		status  domain.TransactionStatus
		title   string
		message string
	}{
		{domain.StatusPending, "Add Money Request Received", "Your request to add ₹500 to your wallet has been received and is pending approval."},
		{domain.StatusProcessing, "Add Money Request Processing", "Your request to add ₹500 to your wallet is now being processed."},
		{domain.StatusCompleted, "Money Added Successfully", "₹500 has been successfully added to your wallet."},
		{domain.StatusRejected, "Add Money Request Rejected", "Your request to add ₹500 to your wallet has been rejected. Please contact support for assistance."},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			n := AddMoney(tx, tt.status)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.message, n.Message)
			assert.Equal(t, tx.UserID, n.UserID)
			assert.Equal(t, domain.NotificationAddMoney, n.Type)
			assert.Equal(t, tx.ID, *n.AddMoneyTransactionID)
		})
	}
}

func TestTransfer(t *testing.T) {
	tx := &domain.TransferMoneyTransaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(300),
	}

	n := Transfer(tx, domain.StatusCompleted, "123456789012")
	assert.Equal(t, "Money Transferred Successfully", n.Title)
	assert.Equal(t, "₹300 has been successfully transferred to account ending with ********9012.", n.Message)
	assert.Equal(t, domain.NotificationTransfer, n.Type)
	assert.Equal(t, tx.ID, *n.TransferMoneyTransactionID)

	pending := Transfer(tx, domain.StatusPending, "123456789012")
	assert.Equal(t, "Transfer Request Received", pending.Title)
	assert.Contains(t, pending.Message, "********9012")
}
