package commands

import (
	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-insights/internal/api"
	"github.com/ledgerlens/statement-insights/internal/config"
	"github.com/ledgerlens/statement-insights/internal/logger"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for statement uploads",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			cfg := config.Load()
			if addr != "" {
				cfg.Addr = addr
			}

			app := api.NewApp(log, cfg)
			log.Info().Str("addr", cfg.Addr).Msg("listening")
			return app.Listen(cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides STATEMENT_ADDR)")

	return cmd
}
