// Package component holds the HTML components of the calculator.
package component

import (
	"strconv"
	"strings"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/report"
	"github.com/angelofallars/drivecalc/pkg/share"
)

//go:generate templ generate

const DefaultHours = 40

// FormProps are the selections the calculator form is rendered with.
type FormProps struct {
	Hours     int
	WorkTimes []earnings.WorkTime

	// Weekend is "yes", "no" or empty when nothing is selected.
	Weekend string
	Car     earnings.CarCategory

	Error string
}

// hours is the slider position, DefaultHours when Hours is out of range.
func (p FormProps) hours() string {
	if p.Hours < earnings.MinHours || p.Hours > earnings.MaxHours {
		return strconv.Itoa(DefaultHours)
	}
	return strconv.Itoa(p.Hours)
}

type weekendOption struct {
	value string
	label string
}

var weekendOptions = []weekendOption{{"yes", "Yes"}, {"no", "No"}}

func vehicleCostHint(c earnings.CarCategory) string {
	cost, _ := c.VehicleCost()
	return report.Money(cost) + "/week with insurance"
}

func copyFeedbackMillis() string {
	return strconv.FormatInt(share.CopyFeedback.Milliseconds(), 10)
}

func fallbackPrompt() string {
	return strings.TrimSpace(share.FallbackMessage(""))
}
