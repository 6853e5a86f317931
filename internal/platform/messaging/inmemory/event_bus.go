package inmemory

import (
	"TxVisualizer/internal/domain"
	"TxVisualizer/internal/syncutil"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const subscriberBuffer = 256

var ErrBusClosed = errors.New("event bus closed")

// EventBus fans engine events out to in-process presentation adapters. Each
// subscriber owns its channel and its display state. A subscriber whose buffer
// is full misses status, link and duration events. Verdicts are one per batch
// and wait for room instead.
type EventBus struct {
	mu          syncutil.RWMutex
	subscribers []chan domain.Event
	closed      bool
	logger      *zap.Logger
}

func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{logger: logger}
}

func (b *EventBus) Subscribe() <-chan domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan domain.Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers = append(b.subscribers, ch)
	return ch
}

func (b *EventBus) Publish(event domain.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	for _, ch := range b.subscribers {
		if event.Kind == domain.EventVerdict {
			ch <- event
			continue
		}
		select {
		case ch <- event:
		default:
			b.logger.Warn("event dropped, subscriber is behind",
				zap.String("kind", string(event.Kind)),
				zap.String("transfer_id", event.TransferId))
		}
	}
	return nil
}

func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
}
