package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
)

type recordingStore struct {
	mu       sync.Mutex
	inserted []*domain.Notification
}

func (s *recordingStore) Insert(_ context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, n)
	return nil
}

func (s *recordingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

func TestPool_DeliversPublished(t *testing.T) {
	store := &recordingStore{}
	pool := New(store, 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- pool.Start(ctx, 2)
	}()

	for i := 0; i < 5; i++ {
		pool.Publish(&domain.Notification{UserID: uuid.New(), Type: domain.NotificationSystem})
	}

	assert.Eventually(t, func() bool {
		return store.count() == 5
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestPool_PublishNeverBlocks(t *testing.T) {
	store := &recordingStore{}
	pool := New(store, 1)

	// No workers running: the second publish finds the queue full and
	// must drop instead of blocking.
	finished := make(chan struct{})
	go func() {
		pool.Publish(&domain.Notification{UserID: uuid.New()})
		pool.Publish(&domain.Notification{UserID: uuid.New()})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}

func TestPool_CloseStopsWorkers(t *testing.T) {
	store := &recordingStore{}
	pool := New(store, 4)

	done := make(chan error, 1)
	go func() {
		done <- pool.Start(context.Background(), 2)
	}()

	pool.Publish(&domain.Notification{UserID: uuid.New()})
	time.Sleep(50 * time.Millisecond)
	pool.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after Close")
	}
	assert.Equal(t, 1, store.count())
}
