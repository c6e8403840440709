package feed

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/alfagnish/trading-app/internal/domain"
)

// DefaultBuffer is the per-subscriber channel capacity used when NewHub is
// given a non-positive size.
const DefaultBuffer = 64

// Hub fans newly appended trades out to live subscribers. All public methods
// are safe for concurrent use.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]chan domain.Trade
	buffer int
	closed bool

	dropped atomic.Int64
}

// NewHub creates a hub whose subscriber channels hold up to buffer trades.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[string]chan domain.Trade),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber and returns its generated ID and the
// channel trades are delivered on. On a closed hub the channel is already
// closed.
func (h *Hub) Subscribe() (string, <-chan domain.Trade) {
	id := uuid.New().String()
	ch := make(chan domain.Trade, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return id, ch
	}
	h.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown IDs are
// ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(ch)
}

// Publish delivers trades to every subscriber without blocking. A subscriber
// whose buffer is full misses the trade.
func (h *Hub) Publish(trades ...domain.Trade) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, t := range trades {
		for _, ch := range h.subs {
			select {
			case ch <- t:
			default:
				h.dropped.Add(1)
			}
		}
	}
}

// Count returns the number of active subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber was
// not keeping up.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Close closes every subscriber channel. Later subscriptions receive a
// closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}
