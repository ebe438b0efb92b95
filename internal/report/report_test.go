package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/angelofallars/drivecalc/internal/earnings"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{720, "£720.00"},
		{8.75, "£8.75"},
		{1515.5, "£1515.50"},
		{28.4625, "£28.46"},
		{-12.5, "-£12.50"},
		{-0.001, "£0.00"},
		{0, "£0.00"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Fatalf("Money(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestDescribeWorkTimes(t *testing.T) {
	tests := []struct {
		name string
		in   []earnings.WorkTime
		want string
	}{
		{"none", nil, ""},
		{"one", []earnings.WorkTime{earnings.WorkTimeAfternoon}, "afternoons"},
		{"two", []earnings.WorkTime{earnings.WorkTimeLateNight, earnings.WorkTimeEarlyMorning}, "late nights & early mornings"},
		{"all", earnings.WorkTimes(), "early mornings, afternoons, evenings & late nights"},
		{"duplicates", []earnings.WorkTime{earnings.WorkTimeEvening, earnings.WorkTimeEvening}, "evenings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeWorkTimes(tt.in); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func newBreakdown(t *testing.T) *Breakdown {
	t.Helper()

	in := earnings.Input{
		Hours:     40,
		WorkTimes: []earnings.WorkTime{earnings.WorkTimeAfternoon},
		Car:       earnings.CarNormal,
	}
	res, err := earnings.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return New(in, res, "https://x.io/results?hours=40&weekend=no&car=normal&times=afternoon")
}

func TestBreakdown(t *testing.T) {
	b := newBreakdown(t)

	if got, want := b.BasedOn(), "40 hours/week, afternoons, weekdays only, normal car"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	want := "I just estimated my London Uber driver earnings: £350.00/week after costs. Try it yourself: " + b.URL
	if got := b.ShareMessage(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if !strings.HasPrefix(b.ChatURL(), "https://wa.me/?text=I%20just%20estimated") {
		t.Fatalf("unexpected chat url %q", b.ChatURL())
	}
	if !strings.HasPrefix(b.EmailURL(), "mailto:?subject=") {
		t.Fatalf("unexpected email url %q", b.EmailURL())
	}
	if !strings.Contains(b.RentalURL, "ottocar.co.uk") {
		t.Fatalf("unexpected rental url %q", b.RentalURL)
	}
}

func TestWriteText(t *testing.T) {
	b := newBreakdown(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Based on: 40 hours/week, afternoons, weekdays only, normal car",
		"£720.00",
		"£370.00",
		"£350.00",
		"£8.75",
		"£1515.50",
		"https://wa.me/?text=",
		b.URL,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
