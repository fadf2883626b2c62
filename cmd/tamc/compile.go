package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/tamc/internal/driver"
	"github.com/you-not-fish/tamc/internal/tam"
)

func newCompileCmd(g *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a program and print its TAM listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			res, err := run(args[0], cfg, driver.Generate)
			if err != nil {
				return err
			}
			if err := report(cmd.ErrOrStderr(), res.Diagnostics); err != nil {
				return err
			}

			if output != "" {
				if err := writeListing(output, res.Code); err != nil {
					return err
				}
			}
			if output == "" || cfg.Listing {
				if err := tam.Fprint(cmd.OutOrStdout(), res.Code); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s instructions, %s words of storage\n",
				res.Filename, humanize.Comma(int64(res.Code.Len())), humanize.Comma(int64(res.Info.FrameSize)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the listing to this file")

	return cmd
}

func writeListing(path string, p *tam.Program) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := tam.Fprint(f, p); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "writing %s", path)
}
