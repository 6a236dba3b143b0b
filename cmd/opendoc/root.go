package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "opendoc",
		Short: "Render document descriptions to WordprocessingML",
		Long: `opendoc turns a YAML document description into a word/document.xml part.

Configuration is taken from OPENDOC_* environment variables, then from the
file given with --config, then from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error, off)")

	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// apply builds the global configuration from the environment, the config
// file and the global flags.
func (o *rootOptions) apply() error {
	config := opendoc.ConfigFromEnvironment()
	if o.configPath != "" {
		c, err := opendoc.LoadConfigFile(o.configPath)
		if err != nil {
			return err
		}
		config = c
	}
	if o.logLevel != "" {
		config.LogLevel = o.logLevel
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opendoc.SetGlobalConfig(config)
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "opendoc version %s\n", version)
		},
	}
}
