package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/schema"
)

// maxBodyBytes caps request bodies read by the handlers.
const maxBodyBytes = 1 << 20

// statusResponse wraps mutation results as {"status": 200, "data": ...}.
type statusResponse struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a standard JSON error response of the form
// {"detail": "message"}.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeValidationError writes a 422 with one detail entry per invalid field.
// It reports false when err is not a validation error so the caller can fall
// through to writeServerFault.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string][]schema.ErrorDetail{"detail": verr.Errors})
	return true
}

// writeServerFault logs err and answers with a bare 500. Nothing about the
// cause reaches the client.
func writeServerFault(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	log.Error("unhandled error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// readBody reads at most maxBodyBytes of the request body. It writes an
// error response and returns false when the body cannot be read.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "could not read request body")
		return nil, false
	}
	return data, true
}
