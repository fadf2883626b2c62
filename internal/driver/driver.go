// Package driver runs the compiler stages in order and decides, between
// stages, whether the pipeline may go on.
//
// Every stage reports into one diag.Collector. The checker always runs,
// even over a parse that produced error nodes, so that one syntax error
// does not hide unrelated semantic errors. Code generation runs only when
// no diagnostic at all was recorded.
package driver

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/you-not-fish/tamc/internal/codegen"
	"github.com/you-not-fish/tamc/internal/config"
	"github.com/you-not-fish/tamc/internal/contract"
	"github.com/you-not-fish/tamc/internal/diag"
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
	"github.com/you-not-fish/tamc/internal/types2"
)

// Stage names a compiler stage.
type Stage int

const (
	Scan Stage = iota
	Parse
	Check
	Generate
)

var stageNames = [...]string{
	Scan:     "scan",
	Parse:    "parse",
	Check:    "check",
	Generate: "generate",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "stage?"
}

// Result is everything one compilation produced. Fields of stages that did
// not run are nil.
type Result struct {
	Filename    string
	Tokens      []syntax.Token
	Program     *syntax.Program
	Info        *types2.Info
	Diagnostics *diag.Collector
	Code        *tam.Program // set only if no diagnostic was recorded
}

// OK reports whether the compilation recorded no diagnostics.
func (r *Result) OK() bool {
	return !r.Diagnostics.HasErrors()
}

// Compile runs the whole pipeline over src.
func Compile(filename string, src io.Reader, cfg *config.Config) (*Result, error) {
	return Run(filename, src, cfg, Generate)
}

// Run runs the pipeline over src up to and including stage last. The
// returned error is set only for operational failures (src cannot be read)
// and internal errors; user errors are in Result.Diagnostics.
func Run(filename string, src io.Reader, cfg *config.Config, last Stage) (*Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	cs, err := syntax.NewSource(filename, src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	res := &Result{
		Filename:    filename,
		Diagnostics: diag.New(),
	}
	errh := res.Diagnostics.Handler()

	stage(Scan, filename)
	res.Tokens = syntax.NewScanner(cs, errh).GetAllTokens()
	if last == Scan {
		return res, nil
	}

	stage(Parse, filename)
	var mode syntax.Mode
	if cfg.Lenient {
		mode |= syntax.Lenient
	}
	p := syntax.NewParser(res.Tokens, errh, mode)
	p.SetErrorLimit(cfg.MaxErrors)
	res.Program = p.Parse()
	if last == Parse {
		return res, nil
	}

	stage(Check, filename)
	res.Info = &types2.Info{}
	_ = types2.Check(res.Program, &types2.Config{Error: errh}, res.Info)
	if last == Check {
		return res, nil
	}

	if res.Diagnostics.HasErrors() {
		glog.V(3).Infof("%s: %d diagnostics; skipping code generation", filename, res.Diagnostics.Len())
		return res, nil
	}

	stage(Generate, filename)
	err = contract.Recover(func() {
		res.Code = codegen.Generate(res.Program)
	})
	if err != nil {
		return res, errors.Wrapf(err, "internal error compiling %s", filename)
	}
	return res, nil
}

func stage(s Stage, filename string) {
	glog.V(3).Infof("%s: %s", filename, s)
}
