package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"abacus"
	"abacus/internal/display"
)

func evalCmd() *cobra.Command {
	var echo bool
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate expressions and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				e, err := abacus.Parse(strings.NewReader(arg))
				if err != nil {
					return err
				}
				if echo {
					fmt.Fprintf(cmd.OutOrStdout(), "%v : ", e)
				}
				v, err := e.Eval()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), display.Format(v))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}
