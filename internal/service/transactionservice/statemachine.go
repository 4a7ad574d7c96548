package transactionservice

import "github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"

// transitions is the lifecycle shared by both kinds: a request never
// skips the processing stage on its way to completion and never leaves
// a terminal state.
var transitions = map[domain.TransactionStatus]map[domain.TransactionStatus]struct{}{
	domain.StatusPending: {
		domain.StatusProcessing: {},
	},
	domain.StatusProcessing: {
		domain.StatusCompleted: {},
		domain.StatusRejected:  {},
	},
	domain.StatusCompleted: {},
	domain.StatusRejected:  {},
}

// canTransition reports whether a request of the given kind may move
// between the two statuses. Only a transfer can be rejected straight
// from PENDING (cancellation returns the held amount); an add money
// request must be picked up before it can be rejected.
func canTransition(kind domain.TransactionKind, from, to domain.TransactionStatus) bool {
	if kind == domain.KindTransferMoney && from == domain.StatusPending && to == domain.StatusRejected {
		return true
	}
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}
