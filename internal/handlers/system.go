package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const greeting = "Hello world!"

type counter interface {
	Len() int
}

// SystemHandler serves the greeting and the health check.
type SystemHandler struct {
	users  counter
	trades counter
}

// NewSystemHandler creates a new SystemHandler reporting the sizes of the
// given collections.
func NewSystemHandler(users, trades counter) *SystemHandler {
	return &SystemHandler{users: users, trades: trades}
}

// Routes registers system routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/", h.Hello)
	r.Get("/health", h.Health)
}

// Hello returns a fixed JSON string.
func (h *SystemHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, greeting)
}

// Health reports that the process is serving along with collection sizes.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"users":  h.users.Len(),
		"trades": h.trades.Len(),
	})
}

// NotFound answers unknown routes with {"detail": "Not Found"}.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
