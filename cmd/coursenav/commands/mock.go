package commands

import (
	"os/signal"
	"syscall"

	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/mockapi"
	"github.com/spf13/cobra"
)

func newMockServerCommand(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve the course API from built-in fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Mock.Addr = addr
			}
			cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer cleanup()

			srv, err := mockapi.New(cfg.Mock, mockapi.DefaultSeed())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
