// Package earnings estimates the weekly earnings of a ride-hail driver
// from their working pattern and vehicle category.
package earnings

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidHours       = errors.New("invalid hours")
	ErrInvalidWorkTimes   = errors.New("invalid work times")
	ErrInvalidCarCategory = errors.New("invalid car category")
)

const (
	MinHours = 20
	MaxHours = 90

	BaseRate       = 18.00
	FuelPerHour    = 2.50
	OtherCosts     = 40.00
	WeeksPerMonth  = 4.33
	WeekendPremium = 1.10
)

type WorkTime string

const (
	WorkTimeEarlyMorning WorkTime = "earlyMorning"
	WorkTimeAfternoon    WorkTime = "afternoon"
	WorkTimeEvening      WorkTime = "evening"
	WorkTimeLateNight    WorkTime = "lateNight"
)

// WorkTimes lists every known slot in display order.
func WorkTimes() []WorkTime {
	return []WorkTime{
		WorkTimeEarlyMorning,
		WorkTimeAfternoon,
		WorkTimeEvening,
		WorkTimeLateNight,
	}
}

// Multiplier reports the demand multiplier of the slot. ok is false for
// unknown slots.
func (wt WorkTime) Multiplier() (m float64, ok bool) {
	switch wt {
	case WorkTimeEarlyMorning:
		return 1.10, true
	case WorkTimeAfternoon, WorkTimeEvening:
		return 1.00, true
	case WorkTimeLateNight:
		return 1.20, true
	default:
		return 0, false
	}
}

type CarCategory string

const (
	CarNormal    CarCategory = "normal"
	CarExecutive CarCategory = "executive"
	CarSeater    CarCategory = "seater"
)

func CarCategories() []CarCategory {
	return []CarCategory{CarNormal, CarExecutive, CarSeater}
}

// Multiplier reports the earnings multiplier of the category.
func (c CarCategory) Multiplier() (m float64, ok bool) {
	switch c {
	case CarNormal:
		return 1.00, true
	case CarExecutive:
		return 1.25, true
	case CarSeater:
		return 1.20, true
	default:
		return 0, false
	}
}

// VehicleCost is the weekly rental and insurance cost of the category.
func (c CarCategory) VehicleCost() (cost float64, ok bool) {
	switch c {
	case CarNormal:
		return 230, true
	case CarExecutive:
		return 300, true
	case CarSeater:
		return 270, true
	default:
		return 0, false
	}
}

type Input struct {
	Hours       int
	WorkTimes   []WorkTime
	WeekendWork bool
	Car         CarCategory
}

type Result struct {
	WorkTimeMultiplier float64
	WeekendMultiplier  float64
	CarMultiplier      float64

	GrossHourly float64
	GrossWeekly float64

	NetWeekly  float64
	NetHourly  float64
	NetMonthly float64

	VehicleCost     float64
	FuelCost        float64
	OtherCosts      float64
	TotalWeeklyCost float64
}

// Validate checks every field of in against its domain without computing
// anything.
func Validate(in Input) error {
	if in.Hours < MinHours || in.Hours > MaxHours {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidHours, in.Hours, MinHours, MaxHours)
	}

	if len(in.WorkTimes) == 0 {
		return fmt.Errorf("%w: none selected", ErrInvalidWorkTimes)
	}
	for _, wt := range in.WorkTimes {
		if _, ok := wt.Multiplier(); !ok {
			return fmt.Errorf("%w: unknown slot %q", ErrInvalidWorkTimes, wt)
		}
	}

	if _, ok := in.Car.Multiplier(); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCarCategory, in.Car)
	}

	return nil
}

// Compute estimates the earnings for in. It returns an error wrapping one
// of ErrInvalidHours, ErrInvalidWorkTimes or ErrInvalidCarCategory if in
// is not valid.
//
// The arithmetic is decimal. Currency amounts are rounded to 2 decimals
// from unrounded intermediates, so GrossWeekly is not necessarily
// GrossHourly times the hours.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	workTimeMultiplier := meanMultiplier(in.WorkTimes)

	weekendMultiplier := decimal.NewFromInt(1)
	if in.WeekendWork {
		weekendMultiplier = decimal.NewFromFloat(WeekendPremium)
	}

	m, _ := in.Car.Multiplier()
	carMultiplier := decimal.NewFromFloat(m)
	cost, _ := in.Car.VehicleCost()
	vehicleCost := decimal.NewFromFloat(cost)

	hours := decimal.NewFromInt(int64(in.Hours))

	grossHourly := decimal.NewFromFloat(BaseRate).
		Mul(workTimeMultiplier).
		Mul(weekendMultiplier).
		Mul(carMultiplier)
	grossWeekly := grossHourly.Mul(hours)

	fuelCost := decimal.NewFromFloat(FuelPerHour).Mul(hours)
	otherCosts := decimal.NewFromFloat(OtherCosts)
	totalWeeklyCost := vehicleCost.Add(fuelCost).Add(otherCosts)

	netWeekly := grossWeekly.Sub(totalWeeklyCost)
	netHourly := netWeekly.Div(hours)
	netMonthly := netWeekly.Mul(decimal.NewFromFloat(WeeksPerMonth))

	return Result{
		WorkTimeMultiplier: workTimeMultiplier.InexactFloat64(),
		WeekendMultiplier:  weekendMultiplier.InexactFloat64(),
		CarMultiplier:      carMultiplier.InexactFloat64(),

		GrossHourly: money(grossHourly),
		GrossWeekly: money(grossWeekly),

		NetWeekly:  money(netWeekly),
		NetHourly:  money(netHourly),
		NetMonthly: money(netMonthly),

		VehicleCost:     money(vehicleCost),
		FuelCost:        money(fuelCost),
		OtherCosts:      money(otherCosts),
		TotalWeeklyCost: money(totalWeeklyCost),
	}, nil
}

// Distinct returns the slots in first-seen order with duplicates removed.
func Distinct(workTimes []WorkTime) []WorkTime {
	distinct := make([]WorkTime, 0, len(workTimes))
	seen := make(map[WorkTime]struct{}, len(workTimes))
	for _, wt := range workTimes {
		if _, ok := seen[wt]; ok {
			continue
		}
		seen[wt] = struct{}{}
		distinct = append(distinct, wt)
	}
	return distinct
}

func meanMultiplier(workTimes []WorkTime) decimal.Decimal {
	distinct := Distinct(workTimes)

	sum := decimal.Zero
	for _, wt := range distinct {
		m, _ := wt.Multiplier()
		sum = sum.Add(decimal.NewFromFloat(m))
	}
	return sum.Div(decimal.NewFromInt(int64(len(distinct))))
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Round rounds v to 2 decimal places, halves away from zero. v is taken at
// its shortest decimal form, so Round(1.005) is 1.01.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return money(decimal.NewFromFloat(v))
}
