package http

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/conectajovem/platform/internal/api/respond"
)

// Recovery converts handler panics into 500 responses so one bad
// request cannot take the emulator down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panic")
				respond.WriteInternalError(w, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
