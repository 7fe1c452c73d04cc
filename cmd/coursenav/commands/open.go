package commands

import (
	"github.com/spf13/cobra"
)

func newOpenCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path|route>",
		Short: "Navigate to a route, applying the session guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.newApp()
			if err != nil {
				return err
			}
			defer cleanup()

			loc, err := a.Router.Push(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.printer(cmd).location(loc)
		},
	}
}
