package commands

import (
	"github.com/angelofallars/drivecalc/app"
	"github.com/angelofallars/drivecalc/internal/service"
	"github.com/spf13/cobra"
)

func (c *cli) serveCmd() *cobra.Command {
	var (
		host    string
		port    uint
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("host") {
				host = c.cfg.Host
			}
			if !cmd.Flags().Changed("port") {
				port = c.cfg.Port
			}
			if !cmd.Flags().Changed("base-url") {
				baseURL = c.cfg.BaseURL
			}

			svcEstimate := service.NewEstimate(c.slog)

			return app.New(c.slog, svcEstimate).
				WithHost(host).
				WithPort(port).
				WithBaseURL(baseURL).
				Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "localhost", "Address to listen on (env HOST)")
	cmd.Flags().UintVar(&port, "port", 3000, "Port to listen on (env PORT)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Public origin used in share links, e.g. https://calc.example (env BASE_URL)")

	return cmd
}
