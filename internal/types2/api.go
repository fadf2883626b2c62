package types2

import (
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Error is called for each type error.
	// If nil, errors are silently ignored.
	Error ErrorHandler

	// MaxSuggestionDistance bounds the edit distance of "did you mean"
	// suggestions for undeclared names. Zero means the default of 2;
	// a negative value disables suggestions.
	MaxSuggestionDistance int
}

// Info holds the results of type checking that are not stored on the AST
// itself.
type Info struct {
	// Root is the program's root frame: a copy of the standard environment.
	Root *types.Scope

	// Scopes maps LetCmd and BlockCmd nodes to the frames they open.
	Scopes map[syntax.Node]*types.Scope

	// FrameSize is the largest number of words allocated at any point of
	// the program.
	FrameSize int
}

// Check resolves and type-checks prog in place. Every identifier and
// operator gets its declaration, every expression its type and every
// entity declaration its storage. Checking never stops early; it returns
// the first error encountered, if any.
func Check(prog *syntax.Program, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil && info.Scopes == nil {
		info.Scopes = make(map[syntax.Node]*types.Scope)
	}

	c := &Checker{
		conf:  conf,
		info:  info,
		scope: types.NewRootScope(),
	}
	if info != nil {
		info.Root = c.scope
	}

	c.checkProgram(prog)

	if info != nil {
		info.FrameSize = c.maxOffset
	}
	if c.errors > 0 {
		return c.first
	}
	return nil
}
