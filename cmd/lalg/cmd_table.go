package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/lalg/format"
	"github.com/dhamidi/lalg/grammar"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the LALG predictive parse table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return format.WriteTable(cmd.OutOrStdout(), grammar.LALG())
		},
	}
}
