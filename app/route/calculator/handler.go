package calculator

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/angelofallars/drivecalc/app/component"
	"github.com/angelofallars/drivecalc/app/event"
	"github.com/angelofallars/drivecalc/app/header"
	"github.com/angelofallars/drivecalc/app/query"
	"github.com/angelofallars/drivecalc/app/requestid"
	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/params"
	"github.com/angelofallars/drivecalc/internal/service"
	"github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
)

const title = "London Uber Driver Earnings Calculator"

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
	r.Get("/", hg.handleIndex)
	r.Get("/index.html", hg.handleIndex)
	r.Post("/estimate", hg.handleEstimate)
	r.Get(service.ResultsPath, query.RequireInput(hg.slog, hg.handleResults))
	r.Get("/results.html", query.RequireInput(hg.slog, hg.handleResults))
}

func (hg *HandlerGroup) handleIndex(w http.ResponseWriter, r *http.Request) {
	renderForm(w, r, http.StatusOK, formPropsFromValues(r.URL.Query()))
}

func (hg *HandlerGroup) handleEstimate(w http.ResponseWriter, r *http.Request) {
	log := requestid.Logger(r.Context(), hg.slog)

	if err := r.ParseForm(); err != nil {
		hg.showError(w, r, http.StatusBadRequest, component.FormProps{}, err)
		return
	}

	in, err := newEstimateRequest(r.PostForm)
	if err != nil {
		log.Info("rejected calculator form", "err", err)
		hg.showError(w, r, http.StatusUnprocessableEntity, formPropsFromValues(r.PostForm), err)
		return
	}

	target := service.ResultsURL("", in)

	if htmx.IsHTMX(r) {
		_ = htmx.NewResponse().
			Redirect(target).
			Write(w)
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (hg *HandlerGroup) handleResults(w http.ResponseWriter, r *http.Request) {
	in, err := query.GetInput(r.Context())
	if err != nil {
		query.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	breakdown, err := hg.svcEstimate.FromInput(r.Context(), header.Origin(r, hg.baseURL), in)
	if err != nil {
		requestid.Logger(r.Context(), hg.slog).Info("rejected results parameters", "err", err)
		query.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = component.FullPage("Your Earnings Estimate", component.Results(breakdown)).Render(r.Context(), w)
}

// newEstimateRequest reads the submitted calculator form. Work times come
// in as one value per ticked checkbox.
func newEstimateRequest(form url.Values) (earnings.Input, error) {
	values := url.Values{}
	for _, key := range []string{params.KeyHours, params.KeyWeekend, params.KeyCar} {
		values.Set(key, form.Get(key))
	}
	values.Set(params.KeyTimes, strings.Join(form[params.KeyTimes], ","))

	in, err := params.Decode(values)
	if err != nil {
		return earnings.Input{}, err
	}

	if err := earnings.Validate(in); err != nil {
		return earnings.Input{}, err
	}

	return in, nil
}

// formPropsFromValues pre-fills the form from whatever selections in v are
// readable. Unreadable values are left unselected.
func formPropsFromValues(v url.Values) component.FormProps {
	props := component.FormProps{Hours: component.DefaultHours}

	if hours, err := strconv.Atoi(v.Get(params.KeyHours)); err == nil &&
		hours >= earnings.MinHours && hours <= earnings.MaxHours {
		props.Hours = hours
	}

	var times []string
	for _, value := range v[params.KeyTimes] {
		times = append(times, strings.Split(value, ",")...)
	}
	for _, id := range times {
		if _, ok := earnings.WorkTime(id).Multiplier(); ok {
			props.WorkTimes = append(props.WorkTimes, earnings.WorkTime(id))
		}
	}

	switch weekend := v.Get(params.KeyWeekend); weekend {
	case "yes", "no":
		props.Weekend = weekend
	}

	if car := earnings.CarCategory(v.Get(params.KeyCar)); car != "" {
		if _, ok := car.Multiplier(); ok {
			props.Car = car
		}
	}

	return props
}

// formMessage is the text shown above the form for err.
func formMessage(err error) string {
	var paramErr *params.Error
	if errors.As(err, &paramErr) {
		switch paramErr.Key {
		case params.KeyHours:
			return "Please select valid hours (20-90)"
		case params.KeyTimes:
			return "Please select at least one work time"
		case params.KeyWeekend:
			return "Please select weekend work option"
		case params.KeyCar:
			return "Please select a car category"
		}
	}

	switch {
	case errors.Is(err, earnings.ErrInvalidHours):
		return "Please select valid hours (20-90)"
	case errors.Is(err, earnings.ErrInvalidWorkTimes):
		return "Please select at least one work time"
	case errors.Is(err, earnings.ErrInvalidCarCategory):
		return "Please select a car category"
	default:
		return "The form could not be read. Please try again."
	}
}

// focusTarget is the ID of the form field to focus for err.
func focusTarget(err error) string {
	var paramErr *params.Error
	switch {
	case errors.As(err, &paramErr) && paramErr.Key == params.KeyWeekend:
		return "weekend-yes"
	case errors.As(err, &paramErr) && paramErr.Key == params.KeyTimes,
		errors.Is(err, earnings.ErrInvalidWorkTimes):
		return string(earnings.WorkTimeEarlyMorning)
	case errors.As(err, &paramErr) && paramErr.Key == params.KeyCar,
		errors.Is(err, earnings.ErrInvalidCarCategory):
		return "car-" + string(earnings.CarNormal)
	default:
		return params.KeyHours
	}
}

// showError reports err next to the form: through an htmx trigger when the
// form was submitted by htmx, or by rendering the form again otherwise.
func (hg *HandlerGroup) showError(w http.ResponseWriter, r *http.Request, code int, props component.FormProps, err error) {
	message := formMessage(err)

	if htmx.IsHTMX(r) {
		_ = htmx.NewResponse().
			StatusCode(code).
			Reswap(htmx.SwapNone).
			AddTrigger(
				event.TriggerSetErrMessage(message),
				event.TriggerFocusField(focusTarget(err)),
			).
			Write(w)
		return
	}

	props.Error = message
	renderForm(w, r, code, props)
}

func renderForm(w http.ResponseWriter, r *http.Request, code int, props component.FormProps) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = component.FullPage(title, component.Form(props)).Render(r.Context(), w)
}
