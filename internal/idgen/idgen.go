package idgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/observability"
)

const (
	orderIDPrefix  = "OI"
	orderIDRandLen = 6
	refIDLen       = 12
	maxAttempts    = 10

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits   = "0123456789"
)

var (
	// ErrSpaceExhausted is returned when no unused identifier was found
	// within the retry budget. The whole operation is safe to retry.
	ErrSpaceExhausted = errors.New("identifier space exhausted")

	ErrUnknownKind = errors.New("unknown transaction kind")
)

// OrderIDProbe checks a candidate order ID against the ledger.
type OrderIDProbe interface {
	OrderIDExists(ctx context.Context, orderID string) (bool, error)
}

// RefIDProbe checks a candidate reference ID against one transaction
// table. Reference IDs are unique per table, not globally.
type RefIDProbe interface {
	RefIDExists(ctx context.Context, refID string) (bool, error)
}

type Generator struct {
	ledger   OrderIDProbe
	addMoney RefIDProbe
	transfer RefIDProbe
}

func New(ledger OrderIDProbe, addMoney, transfer RefIDProbe) *Generator {
	return &Generator{
		ledger:   ledger,
		addMoney: addMoney,
		transfer: transfer,
	}
}

// OrderID mints an unused ledger order ID of the form OI followed by
// six characters from [A-Z0-9].
func (g *Generator) OrderID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := orderIDPrefix + randomString(alphabet, orderIDRandLen)

		exists, err := g.ledger.OrderIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe order id: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		observability.IncrementIDRetry("order_id")
	}
	return "", ErrSpaceExhausted
}

// RefID mints an unused 12-digit transaction reference for the table
// owning the given kind.
func (g *Generator) RefID(ctx context.Context, kind domain.TransactionKind) (string, error) {
	var probe RefIDProbe
	switch kind {
	case domain.KindAddMoney:
		probe = g.addMoney
	case domain.KindTransferMoney:
		probe = g.transfer
	default:
		return "", ErrUnknownKind
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := randomString(digits, refIDLen)

		exists, err := probe.RefIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe ref id: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		observability.IncrementIDRetry("ref_id")
	}
	return "", ErrSpaceExhausted
}

func randomString(charset string, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(charset[rand.Intn(len(charset))])
	}
	return b.String()
}
