package earnings

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCompute_Scenarios(t *testing.T) {
	t.Run("afternoons, weekdays, normal car", func(t *testing.T) {
		res, err := Compute(Input{
			Hours:     40,
			WorkTimes: []WorkTime{WorkTimeAfternoon},
			Car:       CarNormal,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"workTimeMultiplier", res.WorkTimeMultiplier, 1.00},
			{"weekendMultiplier", res.WeekendMultiplier, 1.00},
			{"carMultiplier", res.CarMultiplier, 1.00},
			{"grossHourly", res.GrossHourly, 18.00},
			{"grossWeekly", res.GrossWeekly, 720.00},
			{"vehicleCost", res.VehicleCost, 230.00},
			{"fuelCost", res.FuelCost, 100.00},
			{"otherCosts", res.OtherCosts, 40.00},
			{"totalWeeklyCost", res.TotalWeeklyCost, 370.00},
			{"netWeekly", res.NetWeekly, 350.00},
			{"netHourly", res.NetHourly, 8.75},
			{"netMonthly", res.NetMonthly, 1515.50},
		}
		for _, c := range checks {
			if !approx(c.got, c.want, 1e-9) {
				t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
			}
		}
	})

	t.Run("early mornings and late nights, weekends, executive car", func(t *testing.T) {
		res, err := Compute(Input{
			Hours:       60,
			WorkTimes:   []WorkTime{WorkTimeEarlyMorning, WorkTimeLateNight},
			WeekendWork: true,
			Car:         CarExecutive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"workTimeMultiplier", res.WorkTimeMultiplier, 1.15},
			{"weekendMultiplier", res.WeekendMultiplier, 1.10},
			{"carMultiplier", res.CarMultiplier, 1.25},
			{"grossHourly", res.GrossHourly, 28.46},
			{"grossWeekly", res.GrossWeekly, 1707.75},
			{"fuelCost", res.FuelCost, 150.00},
			{"totalWeeklyCost", res.TotalWeeklyCost, 490.00},
			{"netWeekly", res.NetWeekly, 1217.75},
			{"netHourly", res.NetHourly, 20.30},
			{"netMonthly", res.NetMonthly, 5272.86},
		}
		for _, c := range checks {
			if !approx(c.got, c.want, 1e-6) {
				t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
			}
		}
	})

	t.Run("minimum hours", func(t *testing.T) {
		res, err := Compute(Input{
			Hours:     20,
			WorkTimes: []WorkTime{WorkTimeAfternoon},
			Car:       CarExecutive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 18 * 1.25 * 20 = 450 gross, 300 + 50 + 40 = 390 costs.
		if !approx(res.NetWeekly, 60, 1e-9) {
			t.Fatalf("expected 60, got %v", res.NetWeekly)
		}

		res, err = Compute(Input{
			Hours:     20,
			WorkTimes: []WorkTime{WorkTimeEvening},
			Car:       CarNormal,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 360 gross, 230 + 50 + 40 = 320 costs.
		if !approx(res.NetWeekly, 40, 1e-9) {
			t.Fatalf("expected 40, got %v", res.NetWeekly)
		}
	})
}

func TestCompute_HalfCent(t *testing.T) {
	// 18 * 1.10 * 1.10 * 1.25 = 27.225 an hour, 571.725 a week.
	res, err := Compute(Input{
		Hours:       21,
		WorkTimes:   []WorkTime{WorkTimeEarlyMorning, WorkTimeAfternoon, WorkTimeLateNight},
		WeekendWork: true,
		Car:         CarExecutive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"grossHourly", res.GrossHourly, 27.23},
		{"grossWeekly", res.GrossWeekly, 571.73},
		{"totalWeeklyCost", res.TotalWeeklyCost, 392.50},
		{"netWeekly", res.NetWeekly, 179.23},
		{"netHourly", res.NetHourly, 8.53},
		{"netMonthly", res.NetMonthly, 776.04},
	}
	for _, c := range checks {
		if !approx(c.got, c.want, 1e-9) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestCompute_Properties(t *testing.T) {
	subsets := [][]WorkTime{}
	all := WorkTimes()
	for mask := 1; mask < 1<<len(all); mask++ {
		subset := []WorkTime{}
		for i, wt := range all {
			if mask&(1<<i) != 0 {
				subset = append(subset, wt)
			}
		}
		subsets = append(subsets, subset)
	}

	for hours := MinHours; hours <= MaxHours; hours++ {
		for _, subset := range subsets {
			for _, car := range CarCategories() {
				for _, weekend := range []bool{false, true} {
					in := Input{Hours: hours, WorkTimes: subset, WeekendWork: weekend, Car: car}
					res, err := Compute(in)
					if err != nil {
						t.Fatalf("%+v: unexpected error: %v", in, err)
					}

					bound := 0.005*float64(hours+1) + 1e-9
					if !approx(res.GrossWeekly, res.GrossHourly*float64(hours), bound) {
						t.Fatalf("%+v: grossWeekly %v too far from grossHourly*hours %v",
							in, res.GrossWeekly, res.GrossHourly*float64(hours))
					}

					if res.TotalWeeklyCost != res.VehicleCost+res.FuelCost+res.OtherCosts {
						t.Fatalf("%+v: totalWeeklyCost %v is not the sum of its parts", in, res.TotalWeeklyCost)
					}

					if !approx(res.NetWeekly, res.GrossWeekly-res.TotalWeeklyCost, 1e-6) {
						t.Fatalf("%+v: expected netWeekly %v, got %v",
							in, res.GrossWeekly-res.TotalWeeklyCost, res.NetWeekly)
					}
				}
			}
		}
	}
}

func TestCompute_DuplicateWorkTimes(t *testing.T) {
	once, err := Compute(Input{
		Hours:     40,
		WorkTimes: []WorkTime{WorkTimeLateNight, WorkTimeAfternoon},
		Car:       CarSeater,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	twice, err := Compute(Input{
		Hours:     40,
		WorkTimes: []WorkTime{WorkTimeLateNight, WorkTimeLateNight, WorkTimeAfternoon, WorkTimeLateNight},
		Car:       CarSeater,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if once != twice {
		t.Fatalf("expected %+v, got %+v", once, twice)
	}
	if !approx(twice.WorkTimeMultiplier, 1.10, 1e-9) {
		t.Fatalf("expected 1.10, got %v", twice.WorkTimeMultiplier)
	}
}

func TestCompute_Order(t *testing.T) {
	a, _ := Compute(Input{Hours: 55, WorkTimes: []WorkTime{WorkTimeEarlyMorning, WorkTimeEvening, WorkTimeLateNight}, Car: CarNormal})
	b, _ := Compute(Input{Hours: 55, WorkTimes: []WorkTime{WorkTimeLateNight, WorkTimeEarlyMorning, WorkTimeEvening}, Car: CarNormal})
	if a != b {
		t.Fatalf("expected %+v, got %+v", a, b)
	}
}

func TestCompute_Invalid(t *testing.T) {
	valid := Input{Hours: 40, WorkTimes: []WorkTime{WorkTimeAfternoon}, Car: CarNormal}

	tests := []struct {
		name   string
		modify func(in *Input)
		want   error
	}{
		{"hours below range", func(in *Input) { in.Hours = 19 }, ErrInvalidHours},
		{"hours above range", func(in *Input) { in.Hours = 91 }, ErrInvalidHours},
		{"zero hours", func(in *Input) { in.Hours = 0 }, ErrInvalidHours},
		{"no work times", func(in *Input) { in.WorkTimes = nil }, ErrInvalidWorkTimes},
		{"unknown work time", func(in *Input) { in.WorkTimes = []WorkTime{WorkTimeAfternoon, "midday"} }, ErrInvalidWorkTimes},
		{"unknown car", func(in *Input) { in.Car = "limousine" }, ErrInvalidCarCategory},
		{"empty car", func(in *Input) { in.Car = "" }, ErrInvalidCarCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			res, err := Compute(in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if err == tt.want {
				t.Fatalf("expected %v to be wrapped with the offending value", err)
			}
			if res != (Result{}) {
				t.Fatalf("expected no result, got %+v", res)
			}
		})
	}

	t.Run("boundaries are inclusive", func(t *testing.T) {
		for _, hours := range []int{MinHours, MaxHours} {
			in := valid
			in.Hours = hours
			if _, err := Compute(in); err != nil {
				t.Fatalf("hours %d: unexpected error: %v", hours, err)
			}
		}
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.234, 1.23},
		{1.125, 1.13},
		{-1.125, -1.13},
		{1.005, 1.01},
		{-1.005, -1.01},
		{27.225, 27.23},
		{571.725, 571.73},
		{2.675, 2.68},
		{20.29583, 20.30},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); !approx(got, tt.want, 1e-9) {
			t.Fatalf("Round(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
