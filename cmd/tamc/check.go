package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/tamc/internal/driver"
	"github.com/you-not-fish/tamc/internal/syntax"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a program and print its annotated syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			res, err := run(args[0], cfg, driver.Check)
			if err != nil {
				return err
			}

			if !quiet {
				out := cmd.OutOrStdout()
				syntax.Fprint(out, res.Program)
				fmt.Fprintf(out, "frame size: %d\n", res.Info.FrameSize)
			}
			return report(cmd.ErrOrStderr(), res.Diagnostics)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print diagnostics")

	return cmd
}
