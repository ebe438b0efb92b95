package app

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/angelofallars/drivecalc/app/requestid"
	"github.com/angelofallars/drivecalc/app/route/api"
	"github.com/angelofallars/drivecalc/app/route/calculator"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var static embed.FS

func (a *App) RegisterRoutes() {
	a.router.Use(requestid.Middleware)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	calculator.NewHandlerGroup(a.slog, a.svcEstimate, a.baseURL).Mount(a.router)
	api.NewHandlerGroup(a.slog, a.svcEstimate, a.baseURL).Mount(a.router)

	staticFiles, _ := fs.Sub(static, "static")
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFiles))))
}
