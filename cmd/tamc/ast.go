package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/tamc/internal/driver"
	"github.com/you-not-fish/tamc/internal/syntax"
)

func newASTCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			res, err := run(args[0], cfg, driver.Parse)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				syntax.Fprint(out, res.Program)
			case "json":
				err = syntax.FprintJSON(out, res.Program)
			case "yaml":
				err = syntax.FprintYAML(out, res.Program)
			default:
				return errors.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			if err != nil {
				return err
			}
			return report(cmd.ErrOrStderr(), res.Diagnostics)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or yaml")

	return cmd
}
