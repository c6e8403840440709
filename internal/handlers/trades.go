package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/domain"
	"github.com/alfagnish/trading-app/internal/schema"
)

const (
	defaultLimit  = 2
	defaultOffset = 0
)

type tradeStore interface {
	Window(offset, limit int64) []domain.Trade
	Append(trades ...domain.Trade) []domain.Trade
}

type tradePublisher interface {
	Publish(trades ...domain.Trade)
}

// TradesHandler lists and appends trades.
type TradesHandler struct {
	trades tradeStore
	feed   tradePublisher
	log    *zap.Logger
}

// NewTradesHandler creates a new TradesHandler. Appended trades are
// published to feed.
func NewTradesHandler(trades tradeStore, feed tradePublisher, log *zap.Logger) *TradesHandler {
	return &TradesHandler{trades: trades, feed: feed, log: log}
}

// Routes registers trade routes on the given chi router.
func (h *TradesHandler) Routes(r chi.Router) {
	r.Get("/", h.ListTrades)
	r.Post("/", h.AddTrades)
}

// ListTrades returns trades[offset:][:limit]. Neither bound is range checked.
func (h *TradesHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var params schema.Scalars
	limit := params.Int(schema.Query("limit", q.Get("limit"), q.Has("limit")), defaultLimit)
	offset := params.Int(schema.Query("offset", q.Get("offset"), q.Has("offset")), defaultOffset)
	if err := params.Err(); err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.trades.Window(offset, limit))
}

// AddTrades validates a JSON array of trades and appends all of them, or
// none when any is invalid. The response carries the full trade list.
func (h *TradesHandler) AddTrades(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}

	trades, err := schema.DecodeTrades(data, "body")
	if err != nil {
		if !writeValidationError(w, err) {
			writeServerFault(w, r, h.log, err)
		}
		return
	}

	all := h.trades.Append(trades...)
	h.feed.Publish(trades...)

	h.log.Info("trades appended", zap.Int("added", len(trades)), zap.Int("total", len(all)))
	writeJSON(w, http.StatusOK, statusResponse{Status: http.StatusOK, Data: all})
}
