package commands

import (
	"fmt"
	"strings"

	"github.com/angelofallars/drivecalc/internal/earnings"
	"github.com/angelofallars/drivecalc/internal/report"
	"github.com/angelofallars/drivecalc/internal/service"
	"github.com/angelofallars/drivecalc/pkg/share"
	"github.com/spf13/cobra"
)

func (c *cli) estimateCmd() *cobra.Command {
	var (
		hours    int
		times    []string
		weekend  bool
		car      string
		baseURL  string
		copyLink bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print an earnings estimate",
		Example: "  drivecalc estimate --hours 40 --times afternoon,evening --car normal\n" +
			"  drivecalc estimate --hours 60 --times earlyMorning,lateNight --weekend --car executive --copy",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base-url") {
				baseURL = c.cfg.BaseURL
				if baseURL == "" {
					baseURL = fmt.Sprintf("http://%s:%d", c.cfg.Host, c.cfg.Port)
				}
			}

			in := earnings.Input{
				Hours:       hours,
				WeekendWork: weekend,
				Car:         earnings.CarCategory(strings.TrimSpace(car)),
			}
			for _, id := range times {
				in.WorkTimes = append(in.WorkTimes, earnings.WorkTime(strings.TrimSpace(id)))
			}

			breakdown, err := service.NewEstimate(c.slog).FromInput(cmd.Context(), baseURL, in)
			if err != nil {
				return fmt.Errorf("%w (hours %d-%d, times %s, car %s)", err,
					earnings.MinHours, earnings.MaxHours, joinWorkTimes(earnings.WorkTimes()), joinCars(earnings.CarCategories()))
			}

			if err := report.WriteText(cmd.OutOrStdout(), breakdown); err != nil {
				return err
			}

			if copyLink {
				res := share.CopyLink(cmd.Context(), terminalClipboard{out: cmd.OutOrStdout()}, breakdown.URL)
				if res.Copied {
					fmt.Fprintln(cmd.ErrOrStderr(), "\nLink copied to clipboard.")
				} else {
					c.slog.Debug("clipboard write failed", "err", res.Err)
					fmt.Fprintln(cmd.ErrOrStderr(), "\n"+res.Fallback)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 40, "Hours driven per week (20-90)")
	cmd.Flags().StringSliceVar(&times, "times", nil, "Work times: earlyMorning, afternoon, evening, lateNight")
	cmd.Flags().BoolVar(&weekend, "weekend", false, "Work weekends")
	cmd.Flags().StringVar(&car, "car", "", "Car category: normal, executive, seater")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Origin of the web app used in the share links (env BASE_URL)")
	cmd.Flags().BoolVar(&copyLink, "copy", false, "Copy the results link to the clipboard")

	_ = cmd.MarkFlagRequired("times")
	_ = cmd.MarkFlagRequired("car")

	return cmd
}

func joinWorkTimes(workTimes []earnings.WorkTime) string {
	ids := make([]string, 0, len(workTimes))
	for _, wt := range workTimes {
		ids = append(ids, string(wt))
	}
	return strings.Join(ids, "|")
}

func joinCars(cars []earnings.CarCategory) string {
	ids := make([]string, 0, len(cars))
	for _, c := range cars {
		ids = append(ids, string(c))
	}
	return strings.Join(ids, "|")
}
