// Package requestid assigns every request a correlation ID for log and
// audit traceability.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"conforma/pkg/requestcontext"
)

// Header is the request/response header carrying the correlation ID.
const Header = "X-Request-ID"

// Middleware reuses an inbound X-Request-ID when present (trusted
// ingress sets it), otherwise generates one. The ID is stored in the
// context and echoed on the response.
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
