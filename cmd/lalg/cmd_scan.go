package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/lalg/analysis"
	"github.com/dhamidi/lalg/format"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file|->",
		Short: "List the tokens and lexical errors of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			tokens, errs := analysis.Scan(text)
			if err := format.WriteTokens(cmd.OutOrStdout(), tokens, errs); err != nil {
				return err
			}
			if len(errs) > 0 {
				return errRejected
			}
			return nil
		},
	}
}
