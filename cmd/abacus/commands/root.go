package commands

import (
	"github.com/spf13/cobra"

	"abacus/internal/tui"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "abacus",
		Short:        "A keypad calculator for the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}
	root.AddCommand(evalCmd())
	return root.Execute()
}
