package commands

import (
	"fmt"

	"github.com/ncobase/coursenav/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetVersionInfo()
			if opts.output == "json" {
				out, err := info.JSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}
			version.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
}
