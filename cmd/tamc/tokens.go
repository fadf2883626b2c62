package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/tamc/internal/driver"
	"github.com/you-not-fish/tamc/internal/syntax"
)

func newTokensCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			res, err := run(args[0], cfg, driver.Scan)
			if err != nil {
				return err
			}
			printTokens(cmd.OutOrStdout(), res.Tokens)
			return report(cmd.ErrOrStderr(), res.Diagnostics)
		},
	}
}

// printTokens writes one line per token: position, category and spelling.
func printTokens(w io.Writer, tokens []syntax.Token) {
	fmt.Fprintf(w, "%-20s %-16s %s\n", "POSITION", "TOKEN", "SPELLING")
	fmt.Fprintf(w, "%-20s %-16s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 16), strings.Repeat("-", 20))
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-20s %-16s %s\n", tok.Pos, tok.Kind, formatSpelling(tok.Spelling))
	}
}

// formatSpelling quotes a spelling, escaping special characters.
func formatSpelling(s string) string {
	if s == "" {
		return `""`
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
