package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// WithRequestID assigns every request a uuid under the "reqid" context key
// and echoes it back in the X-Request-ID header. Handlers rely on the key
// being present.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()

		ctx := context.WithValue(r.Context(), "reqid", reqID)
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
