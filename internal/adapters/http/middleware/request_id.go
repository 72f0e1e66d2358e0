package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"

	// maxInboundIDLength bounds client-supplied request and correlation ids
	// before they are echoed into headers and logs.
	maxInboundIDLength = 128
)

// requestIDKey is the context key for storing request IDs.
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that generates or extracts an X-Request-ID for
// each request. An incoming X-Request-ID header is reused when it is a
// printable token of at most maxInboundIDLength bytes; otherwise a new UUID v4
// is generated. The ID is stored in the request context and set as a
// response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !acceptableID(id) {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// acceptableID reports whether a client-supplied id can be propagated as is.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxInboundIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
