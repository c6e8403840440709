package store

import (
	"sync"

	"github.com/alfagnish/trading-app/internal/domain"
)

// TradeStore is an append-only, in-memory list of trades.
type TradeStore struct {
	mu     sync.RWMutex
	trades []domain.Trade
}

// NewTradeStore creates a store holding a copy of trades.
func NewTradeStore(trades []domain.Trade) *TradeStore {
	return &TradeStore{trades: append([]domain.Trade{}, trades...)}
}

// All returns a copy of every trade in insertion order.
func (s *TradeStore) All() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Trade{}, s.trades...)
}

// Len returns the number of trades.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// Window returns trades[offset:][:limit] using sequence slice rules:
// negative values count from the end and out of range bounds are clamped,
// so an offset past the end gives an empty list rather than an error.
func (s *TradeStore) Window(offset, limit int64) []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rest := s.trades[clampBound(offset, len(s.trades)):]
	return append([]domain.Trade{}, rest[:clampBound(limit, len(rest))]...)
}

// Append adds trades to the end of the list without any id check and
// returns the whole, extended list.
func (s *TradeStore) Append(trades ...domain.Trade) []domain.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades = append(s.trades, trades...)
	return append([]domain.Trade{}, s.trades...)
}

// clampBound maps a possibly negative slice bound onto [0, n].
func clampBound(i int64, n int) int {
	if i < 0 {
		i += int64(n)
		if i < 0 {
			return 0
		}
	}
	if i > int64(n) {
		return n
	}
	return int(i)
}
