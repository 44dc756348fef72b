// Package requestid provides middleware that assigns every request a unique
// identifier. The ID is echoed back in the X-Request-ID response header and
// stored in the context so log lines across layers correlate.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"vigil/pkg/requestcontext"
)

// Header is the request/response header carrying the request ID.
const Header = "X-Request-ID"

// Middleware reuses a caller-supplied X-Request-ID when present, otherwise
// generates one. Should be applied early in the chain.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
