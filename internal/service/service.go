package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/params"
	"github.com/angelofallars/drivecalc/internal/report"
)

// ResultsPath is the path of the results page.
const ResultsPath = "/results"

type Estimate interface {
	// FromQuery decodes the results page parameters and estimates them.
	FromQuery(ctx context.Context, baseURL string, query url.Values) (*report.Breakdown, error)
	FromInput(ctx context.Context, baseURL string, in earnings.Input) (*report.Breakdown, error)
}

type estimate struct {
	slog *slog.Logger
}

func NewEstimate(slog *slog.Logger) *estimate {
	return &estimate{slog: slog}
}

func (e *estimate) FromQuery(ctx context.Context, baseURL string, query url.Values) (*report.Breakdown, error) {
	in, err := params.Decode(query)
	if err != nil {
		return nil, err
	}

	return e.FromInput(ctx, baseURL, in)
}

func (e *estimate) FromInput(ctx context.Context, baseURL string, in earnings.Input) (*report.Breakdown, error) {
	res, err := earnings.Compute(in)
	if err != nil {
		e.slog.DebugContext(ctx, "estimate rejected", "input", fmt.Sprintf("%+v", in), "err", err)
		return nil, err
	}

	e.slog.DebugContext(ctx, "estimate computed",
		"hours", in.Hours,
		"car", in.Car,
		"weekend", in.WeekendWork,
		"net_weekly", res.NetWeekly,
	)

	return report.New(in, res, ResultsURL(baseURL, in)), nil
}

// ResultsURL is the link to the results page for in. baseURL may be empty,
// in which case the link is relative.
func ResultsURL(baseURL string, in earnings.Input) string {
	return strings.TrimSuffix(baseURL, "/") + ResultsPath + "?" + params.Query(in)
}
