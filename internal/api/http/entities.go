package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/conectajovem/platform/internal/api/respond"
	"github.com/conectajovem/platform/internal/store"
)

var errDuplicateEdge = errors.New("duplicate follow edge")

// EntityHandler serves the generic CRUD surface over the document
// store: list, filter, get, create, delete for every known entity.
type EntityHandler struct {
	store store.Store

	// followMu serializes follow creates: the duplicate-edge check
	// and the insert are two store calls, and concurrent requests for
	// the same pair must not both pass the check.
	followMu sync.Mutex
}

func NewEntityHandler(s store.Store) *EntityHandler { return &EntityHandler{store: s} }

func entityVar(r *http.Request) string { return mux.Vars(r)["entity"] }

// List GET /api/{entity}?sort=-created_date&limit=20
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	entity := entityVar(r)
	if !store.KnownEntity(entity) {
		respond.WriteNotFound(w, "unknown entity "+entity)
		return
	}
	sortKey := r.URL.Query().Get("sort")
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			respond.WriteBadRequest(w, "invalid limit")
			return
		}
		limit = n
	}
	recs, err := store.List(r.Context(), h.store, entity, sortKey, limit)
	if err != nil {
		respond.WriteModelError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Filter POST /api/{entity}/filter
func (h *EntityHandler) Filter(w http.ResponseWriter, r *http.Request) {
	entity := entityVar(r)
	if !store.KnownEntity(entity) {
		respond.WriteNotFound(w, "unknown entity "+entity)
		return
	}
	var req struct {
		Where map[string]any `json:"where"`
		Sort  string         `json:"sort"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	recs, err := store.Filter(r.Context(), h.store, entity, req.Where, req.Sort)
	if err != nil {
		respond.WriteModelError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, recordsOrEmpty(recs))
}

// Get GET /api/{entity}/{id}
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rec, err := h.store.Get(r.Context(), vars["entity"], vars["id"])
	if err != nil {
		respond.WriteModelError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// Create POST /api/{entity}
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	entity := entityVar(r)
	var rec store.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := store.ValidateCreate(entity, rec); err != nil {
		respond.WriteModelError(w, err)
		return
	}
	if entity == store.EntityFollows {
		h.followMu.Lock()
		defer h.followMu.Unlock()
		if err := h.rejectDuplicateEdge(w, r, rec); err != nil {
			return
		}
	}

	rec["id"] = uuid.New().String()
	rec["created_date"] = time.Now().UTC().Format(time.RFC3339Nano)
	if err := h.store.Create(r.Context(), entity, rec); err != nil {
		respond.WriteModelError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, rec)
}

// rejectDuplicateEdge enforces at most one follow edge per ordered
// pair. Writes the error response itself and returns non-nil when the
// create must stop.
func (h *EntityHandler) rejectDuplicateEdge(w http.ResponseWriter, r *http.Request, rec store.Record) error {
	where := store.Record{
		"follower_email":  rec["follower_email"],
		"following_email": rec["following_email"],
	}
	existing, err := store.Filter(r.Context(), h.store, store.EntityFollows, where, "")
	if err != nil {
		respond.WriteModelError(w, err)
		return err
	}
	if len(existing) > 0 {
		respond.WriteError(w, http.StatusConflict, "follow edge already exists")
		return errDuplicateEdge
	}
	return nil
}

// Delete DELETE /api/{entity}/{id}
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.store.Delete(r.Context(), vars["entity"], vars["id"]); err != nil {
		respond.WriteModelError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func recordsOrEmpty(recs []store.Record) []store.Record {
	if recs == nil {
		return []store.Record{}
	}
	return recs
}
