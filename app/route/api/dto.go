package api

import (
	"net/http"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/params"
	"github.com/angelofallars/drivecalc/internal/report"
)

type EstimateRequest struct {
	Hours   *int     `json:"hours"`
	Times   []string `json:"times"`
	Weekend *bool    `json:"weekend"`
	Car     *string  `json:"car"`
}

// EstimateRequest satisfies [render.Binder]
func (er *EstimateRequest) Bind(r *http.Request) error {
	switch {
	case er.Hours == nil:
		return &params.Error{Key: params.KeyHours, Err: params.ErrMissingParameter}
	case er.Weekend == nil:
		return &params.Error{Key: params.KeyWeekend, Err: params.ErrMissingParameter}
	case er.Car == nil:
		return &params.Error{Key: params.KeyCar, Err: params.ErrMissingParameter}
	case len(er.Times) == 0:
		return &params.Error{Key: params.KeyTimes, Err: params.ErrMissingParameter}
	}
	return nil
}

func (er *EstimateRequest) Input() earnings.Input {
	workTimes := make([]earnings.WorkTime, 0, len(er.Times))
	for _, id := range er.Times {
		workTimes = append(workTimes, earnings.WorkTime(id))
	}

	return earnings.Input{
		Hours:       *er.Hours,
		WorkTimes:   workTimes,
		WeekendWork: *er.Weekend,
		Car:         earnings.CarCategory(*er.Car),
	}
}

type EstimateResponse struct {
	Input       InputResponse       `json:"input"`
	Multipliers MultipliersResponse `json:"multipliers"`
	Gross       GrossResponse       `json:"gross"`
	Costs       CostsResponse       `json:"costs"`
	Net         NetResponse         `json:"net"`
	BasedOn     string              `json:"based_on"`
	Share       ShareResponse       `json:"share"`
}

type InputResponse struct {
	Hours   int      `json:"hours"`
	Times   []string `json:"times"`
	Weekend bool     `json:"weekend"`
	Car     string   `json:"car"`
}

type MultipliersResponse struct {
	WorkTime float64 `json:"work_time"`
	Weekend  float64 `json:"weekend"`
	Car      float64 `json:"car"`
}

type GrossResponse struct {
	Hourly float64 `json:"hourly"`
	Weekly float64 `json:"weekly"`
}

type CostsResponse struct {
	Vehicle     float64 `json:"vehicle"`
	Fuel        float64 `json:"fuel"`
	Other       float64 `json:"other"`
	TotalWeekly float64 `json:"total_weekly"`
}

type NetResponse struct {
	Weekly  float64 `json:"weekly"`
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
}

type ShareResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
	Chat    string `json:"chat"`
	Email   string `json:"email"`
}

func newEstimateResponse(b *report.Breakdown) *EstimateResponse {
	times := make([]string, 0, len(b.Input.WorkTimes))
	for _, wt := range earnings.Distinct(b.Input.WorkTimes) {
		times = append(times, string(wt))
	}

	res := b.Result
	return &EstimateResponse{
		Input: InputResponse{
			Hours:   b.Input.Hours,
			Times:   times,
			Weekend: b.Input.WeekendWork,
			Car:     string(b.Input.Car),
		},
		Multipliers: MultipliersResponse{
			WorkTime: res.WorkTimeMultiplier,
			Weekend:  res.WeekendMultiplier,
			Car:      res.CarMultiplier,
		},
		Gross: GrossResponse{Hourly: res.GrossHourly, Weekly: res.GrossWeekly},
		Costs: CostsResponse{
			Vehicle:     res.VehicleCost,
			Fuel:        res.FuelCost,
			Other:       res.OtherCosts,
			TotalWeekly: res.TotalWeeklyCost,
		},
		Net:     NetResponse{Weekly: res.NetWeekly, Hourly: res.NetHourly, Monthly: res.NetMonthly},
		BasedOn: b.BasedOn(),
		Share: ShareResponse{
			URL:     b.URL,
			Message: b.ShareMessage(),
			Chat:    b.ChatURL(),
			Email:   b.EmailURL(),
		},
	}
}

// EstimateResponse satisfies [render.Renderer]
func (er *EstimateResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
