// Package requestid tags every request with a UUID that is echoed in the
// response headers and attached to log records.
package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/angelofallars/drivecalc/app/header"
	"github.com/google/uuid"
)

type key struct{}

var requestIDKey = key{}

// Middleware reuses a valid incoming X-Request-Id and otherwise generates
// a new one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(header.RequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(header.RequestID, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey, id))

		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Logger returns l annotated with the request ID found in ctx, if any.
func Logger(ctx context.Context, l *slog.Logger) *slog.Logger {
	if id := FromContext(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}
