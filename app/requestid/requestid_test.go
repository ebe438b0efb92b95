package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelofallars/drivecalc/app/header"
	"github.com/google/uuid"
)

func TestMiddleware(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		got := w.Header().Get(header.RequestID)
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("expected a uuid, got %q", got)
		}
		if seen != got {
			t.Fatalf("expected %q in context, got %q", got, seen)
		}
	})

	t.Run("reuses a valid id", func(t *testing.T) {
		id := uuid.NewString()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(header.RequestID, id)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		if got := w.Header().Get(header.RequestID); got != id {
			t.Fatalf("expected %q, got %q", id, got)
		}
	})

	t.Run("replaces an invalid id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(header.RequestID, "<script>")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		if got := w.Header().Get(header.RequestID); got == "<script>" {
			t.Fatalf("expected a new id, got %q", got)
		}
	})
}
