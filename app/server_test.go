package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelofallars/drivecalc/app/header"
	"github.com/angelofallars/drivecalc/internal/service"
)

func newTestApp() *App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, service.NewEstimate(logger))
}

func TestHandler(t *testing.T) {
	h := newTestApp().WithBaseURL("https://calc.example").Handler()

	tests := []struct {
		name   string
		target string
		code   int
		want   string
	}{
		{"form", "/", http.StatusOK, "Calculate My Earnings"},
		{"results", "/results?hours=40&weekend=no&car=normal&times=afternoon", http.StatusOK, `data-url="https://calc.example/results?`},
		{"api", "/api/estimate?hours=40&weekend=no&car=normal&times=afternoon", http.StatusOK, `"weekly":350`},
		{"stylesheet", "/static/style.css", http.StatusOK, ".share-btn"},
		{"unknown page", "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Fatalf("expected body to contain %q", tt.want)
			}
			if w.Header().Get(header.RequestID) == "" {
				t.Fatalf("expected a request id header")
			}
		})
	}
}

func TestServe_Shutdown(t *testing.T) {
	a := newTestApp().WithHost("127.0.0.1").WithPort(0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
