package main

import (
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/loader"
)

type renderOptions struct {
	output        string
	maxDepth      int
	mergeRuns     bool
	reportUnknown bool
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <document.yaml>",
		Short: "Render a YAML document description",
		Example: `  opendoc render report.yaml -o word/document.xml
  opendoc render report.yaml --merge-runs --report-unknown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum element nesting")
	cmd.Flags().BoolVar(&opts.mergeRuns, "merge-runs", false, "merge adjacent runs with identical formatting")
	cmd.Flags().BoolVar(&opts.reportUnknown, "report-unknown", false, "warn about properties no formatter handles")
	return cmd
}

func (o *renderOptions) run(cmd *cobra.Command, input string) error {
	config := opendoc.GetGlobalConfig()
	if cmd.Flags().Changed("max-depth") {
		config.MaxDepth = o.maxDepth
	}
	if cmd.Flags().Changed("merge-runs") {
		config.MergeRuns = o.mergeRuns
	}
	if cmd.Flags().Changed("report-unknown") {
		config.ReportUnknown = o.reportUnknown
	}

	engine, err := opendoc.NewWithConfig(config)
	if err != nil {
		return err
	}

	if o.output != "" && o.output != "-" {
		return engine.RenderFile(input, o.output)
	}
	doc, err := loader.LoadFile(input)
	if err != nil {
		return err
	}
	return engine.Write(cmd.OutOrStdout(), doc)
}
