package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CrimsonDemon567/lumo/internal/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			src, err := readSource(cmd, name)
			if err != nil {
				return err
			}

			toks, err := lexer.Scan(src)
			if err != nil {
				a.errOut.Fprint(cmd.ErrOrStderr(), name, src, err)
				return ErrReported
			}

			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
			}
			return nil
		},
	}
}
