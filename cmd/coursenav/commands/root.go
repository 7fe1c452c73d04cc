package commands

import (
	"fmt"

	"github.com/ncobase/coursenav/app"
	"github.com/ncobase/coursenav/config"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configFile string
	baseURL    string
	output     string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "coursenav",
		Short:         "Browse courses, themes and materials from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")

	rootCmd.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newWhoamiCommand(opts),
		newCoursesCommand(opts),
		newCourseCommand(opts),
		newBrowseCommand(opts),
		newOpenCommand(opts),
		newShellCommand(opts),
		newMockServerCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

// loadConfig loads the configuration and applies flag overrides
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	return cfg, nil
}

// newApp loads the configuration and wires the application
func (o *globalOptions) newApp() (*app.App, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	a, cleanup, err := app.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create app: %w", err)
	}
	return a, cleanup, nil
}

func (o *globalOptions) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), json: o.output == "json"}
}
