package notificationservice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

// Registration builds the welcome notification for a freshly
// registered user who is still waiting for portal approval.
func Registration(userID uuid.UUID) *domain.Notification {
	return &domain.Notification{
		UserID:  userID,
		Title:   "Registration Successful",
		Message: "Your registration was successful. Please wait for admin approval to access the portal.",
		Type:    domain.NotificationRegistration,
	}
}

func PortalAccess(userID uuid.UUID, approved bool) *domain.Notification {
	n := &domain.Notification{
		UserID: userID,
		Type:   domain.NotificationPortalAccess,
	}
	if approved {
		n.Title = "Portal Access Approved"
		n.Message = "Your request for portal access has been approved. You can now login and use the platform."
	} else {
		n.Title = "Portal Access Denied"
		n.Message = "Your request for portal access has been denied. Please contact support for more information."
	}
	return n
}

func AddMoney(tx *domain.AddMoneyTransaction, status domain.TransactionStatus) *domain.Notification {
	amount := tx.Amount.String()
	var title, message string
	switch status {
	case domain.StatusPending:
		title = "Add Money Request Received"
		message = fmt.Sprintf("Your request to add ₹%s to your wallet has been received and is pending approval.", amount)
	case domain.StatusProcessing:
		title = "Add Money Request Processing"
		message = fmt.Sprintf("Your request to add ₹%s to your wallet is now being processed.", amount)
	case domain.StatusCompleted:
		title = "Money Added Successfully"
		message = fmt.Sprintf("₹%s has been successfully added to your wallet.", amount)
	case domain.StatusRejected:
		title = "Add Money Request Rejected"
		message = fmt.Sprintf("Your request to add ₹%s to your wallet has been rejected. Please contact support for assistance.", amount)
	default:
		title = "Add Money Status Update"
		message = fmt.Sprintf("Your add money request for ₹%s status has been updated to %s.", amount, status)
	}
	txID := tx.ID
	return &domain.Notification{
		UserID:                tx.UserID,
		Title:                 title,
		Message:               message,
		Type:                  domain.NotificationAddMoney,
		AddMoneyTransactionID: &txID,
	}
}

func Transfer(tx *domain.TransferMoneyTransaction, status domain.TransactionStatus, accountNumber string) *domain.Notification {
	amount := tx.Amount.String()
	masked := MaskAccountNumber(accountNumber)
	var title, message string
	switch status {
	case domain.StatusPending:
		title = "Transfer Request Received"
		message = fmt.Sprintf("Your request to transfer ₹%s to account ending with %s has been received and is pending approval.", amount, masked)
	case domain.StatusProcessing:
		title = "Transfer Request Processing"
		message = fmt.Sprintf("Your request to transfer ₹%s to account ending with %s is now being processed.", amount, masked)
	case domain.StatusCompleted:
		title = "Money Transferred Successfully"
		message = fmt.Sprintf("₹%s has been successfully transferred to account ending with %s.", amount, masked)
	case domain.StatusRejected:
		title = "Transfer Request Rejected"
		message = fmt.Sprintf("Your request to transfer ₹%s to account ending with %s has been rejected. Please contact support for assistance.", amount, masked)
	default:
		title = "Transfer Status Update"
		message = fmt.Sprintf("Your transfer request for ₹%s to account ending with %s status has been updated to %s.", amount, masked, status)
	}
	txID := tx.ID
	return &domain.Notification{
		UserID:                     tx.UserID,
		Title:                      title,
		Message:                    message,
		Type:                       domain.NotificationTransfer,
		TransferMoneyTransactionID: &txID,
	}
}

func System(userID uuid.UUID, title, message string) *domain.Notification {
	return &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    domain.NotificationSystem,
	}
}

// MaskAccountNumber hides all but the last four digits, keeping the
// original length. Short values are masked entirely.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return strings.Repeat("*", len(accountNumber))
	}
	return strings.Repeat("*", len(accountNumber)-4) + accountNumber[len(accountNumber)-4:]
}
