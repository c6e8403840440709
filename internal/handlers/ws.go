package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/domain"
)

const (
	writeWait = 10 * time.Second
	closeWait = time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Allow all origins (CORS is handled at the middleware level).
	CheckOrigin: func(r *http.Request) bool { return true },
}

type tradeSubscriber interface {
	Subscribe() (string, <-chan domain.Trade)
	Unsubscribe(id string)
}

// FeedHandler streams newly appended trades over a WebSocket.
type FeedHandler struct {
	hub tradeSubscriber
	log *zap.Logger
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(hub tradeSubscriber, log *zap.Logger) *FeedHandler {
	return &FeedHandler{hub: hub, log: log}
}

// Routes registers the WebSocket endpoint.
func (h *FeedHandler) Routes(r chi.Router) {
	r.Get("/feed", h.Stream)
}

// feedEvent is one JSON text frame sent to feed clients.
type feedEvent struct {
	Type string       `json:"type"`
	Data domain.Trade `json:"data"`
}

// Stream upgrades the connection and writes one frame per trade appended
// after the upgrade. It returns when the client goes away or the hub is
// closed.
func (h *FeedHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id, trades := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	log := h.log.With(zap.String("subscriber_id", id))
	log.Info("feed subscriber connected")

	// Clients never send data; reading only surfaces the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn("feed read error", zap.Error(err))
				}
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			log.Info("feed subscriber disconnected")
			return
		case t, ok := <-trades:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
				conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(feedEvent{Type: "trade", Data: t}); err != nil {
				log.Warn("feed write error", zap.Error(err))
				return
			}
		}
	}
}
