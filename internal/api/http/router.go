package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/conectajovem/platform/internal/store"
)

// NewRouter wires every emulator route onto a gorilla router.
func NewRouter(s store.Store, uploadDir, publicBaseURL string) http.Handler {
	r := mux.NewRouter()

	entities := NewEntityHandler(s)
	auth := NewAuthHandler(s)
	uploads := NewUploadHandler(uploadDir, publicBaseURL)
	health := NewHealthHandler(s)

	r.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/me", auth.Me).Methods(http.MethodGet)
	r.HandleFunc("/api/me", auth.UpdateMe).Methods(http.MethodPatch)

	r.HandleFunc("/api/uploads", uploads.Upload).Methods(http.MethodPost)
	r.PathPrefix("/files/").Handler(uploads.Files()).Methods(http.MethodGet)

	r.HandleFunc("/api/{entity}", entities.List).Methods(http.MethodGet)
	r.HandleFunc("/api/{entity}", entities.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/{entity}/filter", entities.Filter).Methods(http.MethodPost)
	r.HandleFunc("/api/{entity}/{id}", entities.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/{entity}/{id}", entities.Delete).Methods(http.MethodDelete)

	return Recovery(r)
}
