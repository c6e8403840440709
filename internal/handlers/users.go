package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/domain"
	"github.com/alfagnish/trading-app/internal/schema"
)

type userLookup interface {
	Get(id int64) []domain.User
}

type userRenamer interface {
	Rename(id int64, name string) (domain.User, error)
}

// UsersHandler serves user lookups and renames. Lookups and renames are
// backed by two different collections; see store.Store.
type UsersHandler struct {
	lookup  userLookup
	renamer userRenamer
	log     *zap.Logger
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(lookup userLookup, renamer userRenamer, log *zap.Logger) *UsersHandler {
	return &UsersHandler{lookup: lookup, renamer: renamer, log: log}
}

// Routes registers user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/{user_id}", h.GetUser)
	r.Post("/{user_id}", h.ChangeName)
}

// GetUser returns the matching users as a list; an unknown id gives [].
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	var params schema.Scalars
	id := params.RequiredInt(schema.Path("user_id", chi.URLParam(r, "user_id")))
	if err := params.Err(); err != nil {
		writeValidationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.lookup.Get(id))
}

// ChangeName renames the first matching user and returns it without its
// degrees. new_name is read from the query string, or from a JSON object
// body when the query lacks it. An unknown id is a server fault.
func (h *UsersHandler) ChangeName(w http.ResponseWriter, r *http.Request) {
	newName, present, ok := newNameParam(w, r)
	if !ok {
		return
	}

	var params schema.Scalars
	id := params.RequiredInt(schema.Path("user_id", chi.URLParam(r, "user_id")))
	name := params.RequiredStr(schema.Query("new_name", newName, present))
	if err := params.Err(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.renamer.Rename(id, name)
	if err != nil {
		writeServerFault(w, r, h.log, err)
		return
	}

	h.log.Info("user renamed", zap.Int64("user_id", id), zap.String("name", name))
	writeJSON(w, http.StatusOK, statusResponse{Status: http.StatusOK, Data: user.Account()})
}

func newNameParam(w http.ResponseWriter, r *http.Request) (value string, present, ok bool) {
	if vals, found := r.URL.Query()["new_name"]; found && len(vals) > 0 {
		return vals[0], true, true
	}

	data, ok := readBody(w, r)
	if !ok {
		return "", false, false
	}
	var body struct {
		NewName *string `json:"new_name"`
	}
	if len(data) == 0 || json.Unmarshal(data, &body) != nil || body.NewName == nil {
		return "", false, true
	}
	return *body.NewName, true, true
}
