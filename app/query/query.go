// Package query guards the results page: it decodes the estimate
// parameters from the URL before the handler runs.
package query

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/angelofallars/drivecalc/app/component"
	"github.com/angelofallars/drivecalc/app/requestid"
	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/params"
)

const errInvalidParameters = "Invalid parameters. Please use the calculator form."

// RequireInput responds with an error page when the request does not carry
// all estimate parameters, and otherwise stores the decoded input in the
// request context.
func RequireInput(logger *slog.Logger, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := params.Decode(r.URL.Query())
		if err != nil {
			requestid.Logger(r.Context(), logger).Info("rejected results parameters", "err", err)
			RenderError(w, r, http.StatusBadRequest, err)
			return
		}

		r = r.WithContext(context.WithValue(r.Context(), inputKey, in))

		f(w, r)
	}
}

func GetInput(c context.Context) (earnings.Input, error) {
	in, ok := c.Value(inputKey).(earnings.Input)
	if !ok {
		return earnings.Input{}, errors.New("estimate input not found")
	}
	return in, nil
}

// Message is the text shown on the results page for err.
func Message(err error) string {
	var paramErr *params.Error
	switch {
	case errors.As(err, &paramErr) && paramErr.Key == params.KeyHours && errors.Is(err, params.ErrMalformedParameter):
		return "Invalid hours parameter"
	case errors.Is(err, earnings.ErrInvalidHours):
		return "Invalid hours parameter"
	case errors.Is(err, earnings.ErrInvalidWorkTimes):
		return "Invalid work times parameter"
	case errors.Is(err, earnings.ErrInvalidCarCategory):
		return "Invalid car category parameter"
	default:
		return errInvalidParameters
	}
}

// RenderError writes the results page with the message for err in place of
// the breakdown.
func RenderError(w http.ResponseWriter, r *http.Request, code int, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = component.FullPage("Your Earnings Estimate", component.Error(Message(err))).Render(r.Context(), w)
}

type key struct{}

var inputKey = key{}
