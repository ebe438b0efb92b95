// Package api serves estimates as JSON for clients that do not want the
// rendered pages.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/angelofallars/drivecalc/app/header"
	"github.com/angelofallars/drivecalc/app/requestid"
	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/params"
	"github.com/angelofallars/drivecalc/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type HandlerGroup struct {
	slog        *slog.Logger
	svcEstimate service.Estimate
	baseURL     string
}

func NewHandlerGroup(slog *slog.Logger, svcEstimate service.Estimate, baseURL string) *HandlerGroup {
	return &HandlerGroup{
		slog:        slog,
		svcEstimate: svcEstimate,
		baseURL:     baseURL,
	}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/estimate", hg.handleGetEstimate)
		r.Post("/estimate", hg.handlePostEstimate)
	})
}

func (hg *HandlerGroup) handleGetEstimate(w http.ResponseWriter, r *http.Request) {
	breakdown, err := hg.svcEstimate.FromQuery(r.Context(), header.Origin(r, hg.baseURL), r.URL.Query())
	if err != nil {
		hg.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, newEstimateResponse(breakdown))
}

func (hg *HandlerGroup) handlePostEstimate(w http.ResponseWriter, r *http.Request) {
	req := &EstimateRequest{}
	if err := render.Bind(r, req); err != nil {
		_ = render.Render(w, r, errInvalidRequest(err))
		return
	}

	breakdown, err := hg.svcEstimate.FromInput(r.Context(), header.Origin(r, hg.baseURL), req.Input())
	if err != nil {
		hg.renderError(w, r, err)
		return
	}

	_ = render.Render(w, r, newEstimateResponse(breakdown))
}

func (hg *HandlerGroup) renderError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errResponse(err)
	if resp.HTTPStatusCode >= http.StatusInternalServerError {
		requestid.Logger(r.Context(), hg.slog).Error("estimate failed", "err", err)
	}
	_ = render.Render(w, r, resp)
}

// ErrResponse is the body of every failed API call.
type ErrResponse struct {
	HTTPStatusCode int `json:"-"`

	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

// ErrResponse satisfies [render.Renderer]
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInvalidRequest(err error) *ErrResponse {
	return &ErrResponse{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func errResponse(err error) *ErrResponse {
	switch {
	case errors.Is(err, earnings.ErrInvalidHours),
		errors.Is(err, earnings.ErrInvalidWorkTimes),
		errors.Is(err, earnings.ErrInvalidCarCategory),
		errors.Is(err, params.ErrMissingParameter),
		errors.Is(err, params.ErrMalformedParameter):
		return errInvalidRequest(err)
	default:
		return &ErrResponse{
			HTTPStatusCode: http.StatusInternalServerError,
			StatusText:     "Internal error.",
		}
	}
}
