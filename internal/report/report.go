// Package report turns an earnings estimate into the figures and
// descriptions shown to the user.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/pkg/share"
)

const CurrencySymbol = "£"

const shareTemplate = "I just estimated my London Uber driver earnings: %s/week after costs. Try it yourself: " + share.Placeholder

// Breakdown is an estimate ready for display.
type Breakdown struct {
	Input  earnings.Input
	Result earnings.Result

	WorkTimeDescription string
	WeekendDescription  string
	CarDescription      string
	RentalURL           string

	// URL is the absolute link to the results page for this input.
	URL string
}

func New(in earnings.Input, res earnings.Result, url string) *Breakdown {
	return &Breakdown{
		Input:  in,
		Result: res,

		WorkTimeDescription: DescribeWorkTimes(in.WorkTimes),
		WeekendDescription:  DescribeWeekend(in.WeekendWork),
		CarDescription:      DescribeCar(in.Car),
		RentalURL:           RentalURL(in.Car),

		URL: url,
	}
}

// BasedOn summarises the selections behind the estimate.
func (b *Breakdown) BasedOn() string {
	return fmt.Sprintf("%d hours/week, %s, %s, %s",
		b.Input.Hours, b.WorkTimeDescription, b.WeekendDescription, b.CarDescription)
}

// ShareTemplate is the share message with a placeholder for the link.
func (b *Breakdown) ShareTemplate() string {
	return fmt.Sprintf(shareTemplate, Money(b.Result.NetWeekly))
}

func (b *Breakdown) ShareMessage() string {
	return share.Message(b.ShareTemplate(), b.URL)
}

func (b *Breakdown) ChatURL() string {
	return share.ChatURL(b.ShareTemplate(), b.URL)
}

func (b *Breakdown) EmailURL() string {
	return share.EmailURL(b.ShareTemplate(), b.URL)
}

// Money formats v as an amount in pounds with exactly two decimals.
func Money(v float64) string {
	v = earnings.Round(v)
	if v < 0 {
		return fmt.Sprintf("-%s%.2f", CurrencySymbol, math.Abs(v))
	}
	return fmt.Sprintf("%s%.2f", CurrencySymbol, math.Abs(v))
}

func describeWorkTime(wt earnings.WorkTime) string {
	switch wt {
	case earnings.WorkTimeEarlyMorning:
		return "early mornings"
	case earnings.WorkTimeAfternoon:
		return "afternoons"
	case earnings.WorkTimeEvening:
		return "evenings"
	case earnings.WorkTimeLateNight:
		return "late nights"
	default:
		return ""
	}
}

// DescribeWorkTimes joins the selected slots in selection order, e.g.
// "early mornings, evenings & late nights".
func DescribeWorkTimes(workTimes []earnings.WorkTime) string {
	descriptions := []string{}
	for _, wt := range earnings.Distinct(workTimes) {
		if d := describeWorkTime(wt); d != "" {
			descriptions = append(descriptions, d)
		}
	}

	switch len(descriptions) {
	case 0:
		return ""
	case 1:
		return descriptions[0]
	default:
		last := len(descriptions) - 1
		return strings.Join(descriptions[:last], ", ") + " & " + descriptions[last]
	}
}

func DescribeWeekend(weekendWork bool) string {
	if weekendWork {
		return "weekend work"
	}
	return "weekdays only"
}

func DescribeCar(c earnings.CarCategory) string {
	switch c {
	case earnings.CarExecutive:
		return "executive car"
	case earnings.CarSeater:
		return "7-seater car"
	default:
		return "normal car"
	}
}

// Label is the name of the category on the calculator form.
func Label(c earnings.CarCategory) string {
	switch c {
	case earnings.CarExecutive:
		return "Executive"
	case earnings.CarSeater:
		return "7-Seater"
	default:
		return "Normal"
	}
}

// WorkTimeLabel is the name of the slot on the calculator form.
func WorkTimeLabel(wt earnings.WorkTime) string {
	switch wt {
	case earnings.WorkTimeEarlyMorning:
		return "Early morning (5am - 10am)"
	case earnings.WorkTimeAfternoon:
		return "Afternoon (10am - 4pm)"
	case earnings.WorkTimeEvening:
		return "Evening (4pm - 10pm)"
	case earnings.WorkTimeLateNight:
		return "Late night (10pm - 5am)"
	default:
		return string(wt)
	}
}

// RentalURL links to a London rental listing for the category.
func RentalURL(c earnings.CarCategory) string {
	switch c {
	case earnings.CarNormal:
		return "https://ottocar.co.uk/cars?branch_region=London+%26+South+East&plan=RENTAL&uberEligibility=Uber+X"
	case earnings.CarExecutive:
		return "https://fleeto.co.uk/car-listing/mercedes-benz-e300e/"
	case earnings.CarSeater:
		return "https://www.splend.com/en-GB/vehicles/?vehicles_gb%5BrefinementList%5D%5Buber_elligibility%5D%5B0%5D=uber-xl&vehicles_gb%5BrefinementList%5D%5Blocations%5D%5B0%5D=London"
	default:
		return ""
	}
}
