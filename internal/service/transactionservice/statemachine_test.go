package transactionservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.TransactionKind
		from    domain.TransactionStatus
		to      domain.TransactionStatus
		allowed bool
	}{
		{"pending to processing", domain.KindAddMoney, domain.StatusPending, domain.StatusProcessing, true},
		{"pending add money cannot be rejected", domain.KindAddMoney, domain.StatusPending, domain.StatusRejected, false},
		{"pending transfer can be cancelled", domain.KindTransferMoney, domain.StatusPending, domain.StatusRejected, true},
		{"pending to completed skips a stage", domain.KindAddMoney, domain.StatusPending, domain.StatusCompleted, false},
		{"processing to completed", domain.KindAddMoney, domain.StatusProcessing, domain.StatusCompleted, true},
		{"processing add money to rejected", domain.KindAddMoney, domain.StatusProcessing, domain.StatusRejected, true},
		{"processing transfer to rejected", domain.KindTransferMoney, domain.StatusProcessing, domain.StatusRejected, true},
		{"processing back to pending", domain.KindTransferMoney, domain.StatusProcessing, domain.StatusPending, false},
		{"completed is terminal", domain.KindAddMoney, domain.StatusCompleted, domain.StatusRejected, false},
		{"rejected is terminal", domain.KindTransferMoney, domain.StatusRejected, domain.StatusProcessing, false},
		{"no self transition", domain.KindAddMoney, domain.StatusPending, domain.StatusPending, false},
		{"unknown status", domain.KindAddMoney, domain.TransactionStatus("LIMBO"), domain.StatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, canTransition(tt.kind, tt.from, tt.to))
		})
	}
}
