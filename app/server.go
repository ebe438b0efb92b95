package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/angelofallars/drivecalc/internal/service"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	host    string
	port    int
	baseURL string

	slog   *slog.Logger
	router chi.Router
	routes sync.Once

	svcEstimate service.Estimate
}

func New(slog *slog.Logger, svcEstimate service.Estimate) *App {
	return &App{
		host: "localhost",
		port: 3000,

		router: chi.NewRouter(),
		slog:   slog,

		svcEstimate: svcEstimate,
	}
}

func (a *App) WithHost(host string) *App {
	a.host = host
	return a
}

func (a *App) WithPort(port uint) *App {
	a.port = int(port)
	return a
}

// WithBaseURL sets the public origin used in share links. Without it the
// origin of each request is used.
func (a *App) WithBaseURL(baseURL string) *App {
	a.baseURL = baseURL
	return a
}

// Handler returns the router with every route registered.
func (a *App) Handler() http.Handler {
	a.routes.Do(a.RegisterRoutes)
	return a.router
}

// Serve listens until ctx is cancelled, then shuts the server down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	server := http.Server{
		Addr:    addr,
		Handler: a.Handler(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.slog.Info("server started listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.slog.Info("server shutting down", "addr", addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
