// Package commands implements the drivecalc command line: a web server for
// the calculator and a one-shot estimate printed to the terminal.
package commands

import (
	"log/slog"
	"os"

	"github.com/angelofallars/drivecalc/internal/config"
	"github.com/spf13/cobra"
)

type cli struct {
	cfg  config.Config
	slog *slog.Logger
}

func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "drivecalc",
		Short:        "London ride-hail driver earnings calculator (CLI or web)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.slog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
			return nil
		},
	}

	root.AddCommand(c.serveCmd(), c.estimateCmd())
	return root
}
