package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/config"
	"github.com/alfagnish/trading-app/internal/feed"
	"github.com/alfagnish/trading-app/internal/handlers"
	"github.com/alfagnish/trading-app/internal/store"
)

// RequestIDHeader carries the per-request id, echoed back to the client.
const RequestIDHeader = "X-Request-ID"

// New creates a fully-configured chi router with all route groups,
// middleware, and handlers wired together.
func New(cfg *config.Config, st *store.Store, hub *feed.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// ── Handlers ────────────────────────────────────────────
	systemH := handlers.NewSystemHandler(st.Directory, st.Trades)
	usersH := handlers.NewUsersHandler(st.Directory, st.Accounts, log)
	tradesH := handlers.NewTradesHandler(st.Trades, hub, log)
	feedH := handlers.NewFeedHandler(hub, log)

	// ── Route groups ────────────────────────────────────────
	systemH.Routes(r)
	r.Route("/users", usersH.Routes)
	r.Route("/trades", func(r chi.Router) {
		tradesH.Routes(r)
		feedH.Routes(r)
	})

	return r
}

// requestLogger tags each request with an id and logs it once it has been
// served, with method, path, status code and duration.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, reqID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.Info("http_request",
				zap.String("request_id", reqID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}
