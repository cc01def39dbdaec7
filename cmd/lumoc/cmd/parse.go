package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file as an S-expression (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			src, err := readSource(cmd, name)
			if err != nil {
				return err
			}

			node, err := a.parser.Parse(src)
			if err != nil {
				a.errOut.Fprint(cmd.ErrOrStderr(), name, src, err)
				return ErrReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), node)
			return nil
		},
	}
}
