package component

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/report"
)

func TestForm(t *testing.T) {
	t.Run("escapes the error message", func(t *testing.T) {
		var buf bytes.Buffer
		err := Form(FormProps{Error: `<b>"bad"</b>`}).Render(context.Background(), &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := buf.String()
		if strings.Contains(got, "<b>") {
			t.Fatalf("expected the message to be escaped, got %s", got)
		}
		if !strings.Contains(got, `data-error="&lt;b&gt;&#34;bad&#34;&lt;/b&gt;"`) {
			t.Fatalf("expected escaped data-error attribute, got %s", got)
		}
	})

	t.Run("out of range hours fall back to the default", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Form(FormProps{Hours: 500}).Render(context.Background(), &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `data-hours="40"`) {
			t.Fatalf("expected default hours, got %s", buf.String())
		}
	})

	t.Run("listens for server events", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Form(FormProps{}).Render(context.Background(), &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"x-on:set-err-message.window", "x-on:focus-field.window", `value="normal"`, "£230.00/week with insurance"} {
			if !strings.Contains(buf.String(), want) {
				t.Fatalf("expected form to contain %q", want)
			}
		}
	})
}

func TestShare(t *testing.T) {
	var buf bytes.Buffer
	err := Share("https://x.io/results?hours=40&car=normal", "javascript:alert(1)", "mailto:?subject=a").
		Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		`data-url="https://x.io/results?hours=40&amp;car=normal"`,
		`data-feedback="2000"`,
		`href="mailto:?subject=a"`,
		"Could not copy link. Please copy manually:",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %s", want, got)
		}
	}
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected unsafe URL to be dropped, got %s", got)
	}
}

func TestResults(t *testing.T) {
	in := earnings.Input{Hours: 40, WorkTimes: []earnings.WorkTime{earnings.WorkTimeAfternoon}, Car: earnings.CarSeater}
	res, err := earnings.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	b := report.New(in, res, "https://x.io/results?hours=40")
	if err := FullPage("Your Earnings Estimate", Results(b)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"<title>Your Earnings Estimate</title>",
		`<div class="row net-weekly">`,
		"Cleaning, parking &amp; data",
		`href="/?hours=40&amp;weekend=no&amp;car=seater&amp;times=afternoon"`,
		"£270.00",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %s", want, got)
		}
	}
}
