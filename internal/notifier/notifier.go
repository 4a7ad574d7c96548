package notifier

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/observability"
)

type Store interface {
	Insert(ctx context.Context, n *domain.Notification) error
}

// Pool delivers notifications off the request path. Publishing never
// blocks a caller: when the queue is full the notification is dropped
// and logged, since delivery is best-effort by contract.
type Pool struct {
	store Store
	jobs  chan *domain.Notification
}

func New(store Store, buffer int) *Pool {
	return &Pool{
		store: store,
		jobs:  make(chan *domain.Notification, buffer),
	}
}

// Start runs workers until ctx is cancelled and the queue drains.
func (p *Pool) Start(ctx context.Context, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case n, ok := <-p.jobs:
					if !ok {
						return nil
					}
					p.deliver(n)
				}
			}
		})
	}
	return g.Wait()
}

func (p *Pool) Publish(n *domain.Notification) {
	select {
	case p.jobs <- n:
	default:
		observability.IncrementNotificationDelivery("dropped")
		zap.L().Warn("notification queue full, dropping",
			zap.String("userID", n.UserID.String()),
			zap.String("type", string(n.Type)),
		)
	}
}

func (p *Pool) Close() {
	close(p.jobs)
}

func (p *Pool) deliver(n *domain.Notification) {
	// Delivery runs after the originating request has finished, so it
	// gets its own context.
	if err := p.store.Insert(context.Background(), n); err != nil {
		observability.IncrementNotificationDelivery("failed")
		zap.L().Error("failed to deliver notification",
			zap.String("userID", n.UserID.String()),
			zap.String("type", string(n.Type)),
			zap.Error(err),
		)
		return
	}
	observability.IncrementNotificationDelivery("delivered")
}
