package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText prints the breakdown as aligned plain text.
func WriteText(w io.Writer, b *Breakdown) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	res := b.Result

	lines := []struct {
		label string
		value string
	}{
		{"Gross hourly", Money(res.GrossHourly)},
		{"Gross weekly", Money(res.GrossWeekly)},
		{"", ""},
		{"Vehicle with insurance", Money(res.VehicleCost)},
		{"Fuel", Money(res.FuelCost)},
		{"Cleaning, parking & data", Money(res.OtherCosts)},
		{"Total weekly costs", Money(res.TotalWeeklyCost)},
		{"", ""},
		{"Net weekly", Money(res.NetWeekly)},
		{"Net hourly", Money(res.NetHourly)},
		{"Net monthly", Money(res.NetMonthly)},
	}

	fmt.Fprintf(tw, "Your earnings estimate\n")
	fmt.Fprintf(tw, "Based on: %s\n\n", b.BasedOn())
	for _, l := range lines {
		if l.label == "" {
			fmt.Fprintln(tw)
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", l.label, l.value)
	}

	if b.URL != "" {
		fmt.Fprintf(tw, "\nShare\n")
		fmt.Fprintf(tw, "  Link\t%s\n", b.URL)
		fmt.Fprintf(tw, "  WhatsApp\t%s\n", b.ChatURL())
		fmt.Fprintf(tw, "  Email\t%s\n", b.EmailURL())
	}

	return tw.Flush()
}
