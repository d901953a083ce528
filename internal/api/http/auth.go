package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/conectajovem/platform/internal/api/respond"
	"github.com/conectajovem/platform/internal/store"
)

// AuthHandler implements the emulator's development login and the
// /api/me surface. Production runs against the hosted identity
// provider instead; tokens here live only in process memory.
type AuthHandler struct {
	store store.Store

	mu     sync.Mutex
	tokens map[string]string // token -> user email
}

func NewAuthHandler(s store.Store) *AuthHandler {
	return &AuthHandler{store: s, tokens: make(map[string]string)}
}

// Login POST /api/auth/login {"email": ...} -> {"token": ...}
// The user record must already exist (created via POST /api/users or
// the seed command).
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respond.WriteBadRequest(w, "email is required")
		return
	}
	users, err := store.Filter(r.Context(), h.store, store.EntityUsers, store.Record{"email": req.Email}, "")
	if err != nil {
		respond.WriteModelError(w, err)
		return
	}
	if len(users) == 0 {
		respond.WriteNotFound(w, "no user with email "+req.Email)
		return
	}

	token := uuid.New().String()
	h.mu.Lock()
	h.tokens[token] = req.Email
	h.mu.Unlock()
	respond.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// userFor resolves the bearer token to the caller's user record.
func (h *AuthHandler) userFor(r *http.Request) (store.Record, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, false
	}
	h.mu.Lock()
	email, ok := h.tokens[token]
	h.mu.Unlock()
	if !ok {
		return nil, false
	}
	users, err := store.Filter(r.Context(), h.store, store.EntityUsers, store.Record{"email": email}, "")
	if err != nil || len(users) == 0 {
		return nil, false
	}
	return users[0], true
}

// Me GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.userFor(r)
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	respond.WriteJSON(w, http.StatusOK, user)
}

// UpdateMe PATCH /api/me merges the submitted fields into the
// caller's own record. id, email and created_date are immutable.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.userFor(r)
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	var fields store.Record
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	for k, v := range fields {
		switch k {
		case "id", "email", "created_date":
		default:
			user[k] = v
		}
	}
	if err := h.store.Update(r.Context(), store.EntityUsers, user["id"].(string), user); err != nil {
		respond.WriteModelError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, user)
}
