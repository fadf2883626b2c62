// Command tamc compiles Triangle-style programs to TAM code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/tamc/internal/config"
	"github.com/you-not-fish/tamc/internal/diag"
	"github.com/you-not-fish/tamc/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

// errDiagnostics is returned by commands whose input had errors; the
// diagnostics themselves have already been printed.
var errDiagnostics = errors.New("compilation failed")

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	lenient     bool
	verbose     int
	logToStderr bool
}

func main() {
	cmd := newRootCmd()
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		if err != errDiagnostics {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "tamc",
		Short:         "Compile Triangle programs to TAM code",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "",
		"Settings file (default "+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVar(&g.lenient, "lenient", false,
		"Do not report missing tokens")
	cmd.PersistentFlags().IntVarP(&g.verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	cmd.PersistentFlags().BoolVar(&g.logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")

	cmd.AddCommand(newTokensCmd(g))
	cmd.AddCommand(newASTCmd(g))
	cmd.AddCommand(newCheckCmd(g))
	cmd.AddCommand(newCompileCmd(g))

	return cmd
}

// load reads the settings and applies the flags the user set explicitly.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("lenient") {
		cfg.Lenient = g.lenient
	}
	if flags.Changed("verbose") {
		cfg.Verbose = g.verbose
	}
	if err := initLogging(g.logToStderr, cfg.Verbose); err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogging forwards the logging settings to glog, which only reads
// them from the standard flag set.
func initLogging(logToStderr bool, verbose int) error {
	if logToStderr {
		if err := flag.Set("logtostderr", "true"); err != nil {
			return errors.Wrap(err, "enabling stderr logging")
		}
	}
	if verbose > 0 {
		if err := flag.Set("v", strconv.Itoa(verbose)); err != nil {
			return errors.Wrap(err, "setting log verbosity")
		}
	}
	return nil
}

// run opens filename and runs the pipeline up to stage last.
func run(filename string, cfg *config.Config, last driver.Stage) (*driver.Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening source")
	}
	defer f.Close()

	return driver.Run(filename, f, cfg, last)
}

// report prints the diagnostics of c to w and returns errDiagnostics if
// there were any.
func report(w io.Writer, c *diag.Collector) error {
	err := c.Err()
	if err == nil {
		return nil
	}
	fmt.Fprintln(w, err)
	return errDiagnostics
}
