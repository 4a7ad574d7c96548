package idgen

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Generator, *MockOrderIDProbe, *MockRefIDProbe, *MockRefIDProbe) {
	ctrl := gomock.NewController(t)
	ledger := NewMockOrderIDProbe(ctrl)
	addMoney := NewMockRefIDProbe(ctrl)
	transfer := NewMockRefIDProbe(ctrl)
	gen := New(ledger, addMoney, transfer)
	defer ctrl.Finish()
	return gen, ledger, addMoney, transfer
}

var orderIDPattern = regexp.MustCompile(`^OI[A-Z0-9]{6}$`)

func TestOrderID_Format(t *testing.T) {
	gen, ledger, _, _ := NewMock(t)

	ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(false, nil)

	orderID, err := gen.OrderID(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, orderIDPattern, orderID)
}

func TestOrderID_RetriesOnCollision(t *testing.T) {
	gen, ledger, _, _ := NewMock(t)

	gomock.InOrder(
		ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(true, nil),
		ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(true, nil),
		ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(false, nil),
	)

	orderID, err := gen.OrderID(context.Background())
	assert.NoError(t, err)
	assert.Regexp(t, orderIDPattern, orderID)
}

func TestOrderID_SpaceExhausted(t *testing.T) {
	gen, ledger, _, _ := NewMock(t)

	ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxAttempts)

	_, err := gen.OrderID(context.Background())
	assert.ErrorIs(t, err, ErrSpaceExhausted)
}

func TestOrderID_ProbeError(t *testing.T) {
	gen, ledger, _, _ := NewMock(t)

	ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))

	_, err := gen.OrderID(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSpaceExhausted)
}

func TestOrderID_ConcurrentValuesAreDistinct(t *testing.T) {
	gen, ledger, _, _ := NewMock(t)

	const n = 200
	ledger.EXPECT().OrderIDExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(n)

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			orderID, err := gen.OrderID(context.Background())
			assert.NoError(t, err)
			mu.Lock()
			seen[orderID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	for orderID := range seen {
		assert.Regexp(t, orderIDPattern, orderID)
	}
}

func TestRefID(t *testing.T) {
	tests := []struct {
		name      string
		kind      domain.TransactionKind
		mockSetup func(addMoney, transfer *MockRefIDProbe)
		expectErr error
		pattern   string
	}{
		{
			name: "add money ref id",
			kind: domain.KindAddMoney,
			mockSetup: func(addMoney, transfer *MockRefIDProbe) {
				addMoney.EXPECT().RefIDExists(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			pattern: `^\d{12}$`,
		},
		{
			name: "transfer ref id",
			kind: domain.KindTransferMoney,
			mockSetup: func(addMoney, transfer *MockRefIDProbe) {
				transfer.EXPECT().RefIDExists(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			pattern: `^\d{12}$`,
		},
		{
			name: "collision retried within budget",
			kind: domain.KindAddMoney,
			mockSetup: func(addMoney, transfer *MockRefIDProbe) {
				gomock.InOrder(
					addMoney.EXPECT().RefIDExists(gomock.Any(), gomock.Any()).Return(true, nil),
					addMoney.EXPECT().RefIDExists(gomock.Any(), gomock.Any()).Return(false, nil),
				)
			},
			pattern: `^\d{12}$`,
		},
		{
			name: "exhausted budget",
			kind: domain.KindTransferMoney,
			mockSetup: func(addMoney, transfer *MockRefIDProbe) {
				transfer.EXPECT().RefIDExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxAttempts)
			},
			expectErr: ErrSpaceExhausted,
		},
		{
			name:      "unknown kind",
			kind:      domain.TransactionKind("CASHBACK"),
			mockSetup: func(addMoney, transfer *MockRefIDProbe) {},
			expectErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _, addMoney, transfer := NewMock(t)
			tt.mockSetup(addMoney, transfer)

			refID, err := gen.RefID(context.Background(), tt.kind)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Regexp(t, tt.pattern, refID)
		})
	}
}
