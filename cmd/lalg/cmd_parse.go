package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lalg/analysis"
	"github.com/dhamidi/lalg/format"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Scan and parse a source file and report the verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				outputFormat = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("trace") {
				trace = a.cfg.Output.Trace
			}

			encoder, err := format.ForName(outputFormat, cmd.OutOrStdout(), trace)
			if err != nil {
				return err
			}

			report := analysis.Analyze(text)
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if !report.OK() {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		fmt.Sprintf("output format (%s)", strings.Join(format.Names(), ", ")))
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every parser step (text format)")

	return cmd
}
