package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/CrimsonDemon567/lumo/internal/project"
)

type checkResult struct {
	src string
	err error
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Parse files (or every .lm file under a directory) and report the first error in each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := project.Collect(args)
			if err != nil {
				return err
			}
			results := make([]checkResult, len(files))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Jobs)
			for i, name := range files {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					src, err := readSource(cmd, name)
					if err != nil {
						return err
					}
					_, err = a.parser.Parse(src)
					results[i] = checkResult{src: src, err: err}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for i, name := range files {
				r := results[i]
				if r.err != nil {
					failed++
					a.errOut.Fprint(cmd.ErrOrStderr(), name, r.src, r.err)
					continue
				}
				io.WriteString(cmd.OutOrStdout(), a.out.OK(name))
			}
			a.logger.Debug("check finished", "files", len(files), "failed", failed)

			if failed > 0 {
				return ErrReported
			}
			return nil
		},
	}
}
