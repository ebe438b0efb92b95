package params

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/angelofallars/drivecalc/internal/earnings"
)

func TestEncode(t *testing.T) {
	in := earnings.Input{
		Hours:       60,
		WorkTimes:   []earnings.WorkTime{earnings.WorkTimeEarlyMorning, earnings.WorkTimeLateNight},
		WeekendWork: true,
		Car:         earnings.CarExecutive,
	}

	got := Query(in)
	want := "hours=60&weekend=yes&car=executive&times=earlyMorning%2ClateNight"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	v := Encode(earnings.Input{Hours: 20, WorkTimes: []earnings.WorkTime{earnings.WorkTimeAfternoon}, Car: earnings.CarNormal})
	if v.Get(KeyWeekend) != "no" {
		t.Fatalf("expected no, got %q", v.Get(KeyWeekend))
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []earnings.Input{
		{Hours: 40, WorkTimes: []earnings.WorkTime{earnings.WorkTimeAfternoon}, Car: earnings.CarNormal},
		{Hours: 90, WorkTimes: earnings.WorkTimes(), WeekendWork: true, Car: earnings.CarSeater},
		{Hours: 20, WorkTimes: []earnings.WorkTime{earnings.WorkTimeLateNight, earnings.WorkTimeEvening}, Car: earnings.CarExecutive},
	}

	for _, in := range inputs {
		got, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", in, err)
		}
		if !reflect.DeepEqual(got, in) {
			t.Fatalf("expected %+v, got %+v", in, got)
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("query from the form", func(t *testing.T) {
		v, err := url.ParseQuery("hours=45&weekend=no&car=seater&times=afternoon,evening")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := Decode(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := earnings.Input{
			Hours:     45,
			WorkTimes: []earnings.WorkTime{earnings.WorkTimeAfternoon, earnings.WorkTimeEvening},
			Car:       earnings.CarSeater,
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("unknown identifiers are left to the engine", func(t *testing.T) {
		v, _ := url.ParseQuery("hours=45&weekend=yes&car=limo&times=brunch")
		got, err := Decode(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := earnings.Compute(got); !errors.Is(err, earnings.ErrInvalidWorkTimes) {
			t.Fatalf("expected ErrInvalidWorkTimes, got %v", err)
		}
	})

	tests := []struct {
		name  string
		query string
		want  error
	}{
		{"empty", "", ErrMissingParameter},
		{"no hours", "weekend=no&car=normal&times=afternoon", ErrMissingParameter},
		{"no weekend", "hours=40&car=normal&times=afternoon", ErrMissingParameter},
		{"no car", "hours=40&weekend=no&times=afternoon", ErrMissingParameter},
		{"no times", "hours=40&weekend=no&car=normal", ErrMissingParameter},
		{"blank times", "hours=40&weekend=no&car=normal&times=", ErrMissingParameter},
		{"hours not a number", "hours=abc&weekend=no&car=normal&times=afternoon", ErrMalformedParameter},
		{"fractional hours", "hours=40.5&weekend=no&car=normal&times=afternoon", ErrMalformedParameter},
		{"weekend not yes or no", "hours=40&weekend=true&car=normal&times=afternoon", ErrMalformedParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := Decode(v); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("error names the key", func(t *testing.T) {
		v, _ := url.ParseQuery("hours=40&weekend=maybe&car=normal&times=afternoon")
		_, err := Decode(v)

		var paramErr *Error
		if !errors.As(err, &paramErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if paramErr.Key != KeyWeekend || paramErr.Value != "maybe" {
			t.Fatalf("expected weekend=maybe, got %s=%s", paramErr.Key, paramErr.Value)
		}
		if got, want := err.Error(), `malformed parameter: weekend="maybe"`; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}
