package middleware

import (
	"context"
	"net/http"

	"github.com/rs/xid"
)

// ctxKey is a private type for context keys. Using an unexported type prevents
// collisions with keys set by other packages.
type ctxKey int

const requestIDKey ctxKey = iota

// requestIDHeader is echoed back to the client so a failed request can be
// correlated with the server logs.
const requestIDHeader = "X-Request-ID"

// RequestID assigns every request a unique id, stores it in the request
// context and echoes it in the response headers.
//
// The ids are xid values: short, sortable and unique across restarts without
// any coordination, which makes them pleasant to grep for in logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := xid.New().String()

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID, or "" when the
// middleware did not run (direct handler tests, for example).
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
