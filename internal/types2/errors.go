// Package types2 resolves names and checks types of Triangle programs,
// annotating the AST in place for the code generator.
package types2

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/you-not-fish/tamc/internal/syntax"
)

// TypeError represents a type checking error.
type TypeError struct {
	Pos syntax.Pos
	Msg string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is a function called for each type error.
type ErrorHandler func(pos syntax.Pos, msg string)

// defaultSuggestionDistance is the largest edit distance for which an
// undeclared name gets a suggestion.
const defaultSuggestionDistance = 2

// errorf reports a type checking error at the given position.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if c.errors == 0 {
		c.first = &TypeError{Pos: pos, Msg: msg}
	}
	c.errors++

	if c.conf.Error != nil {
		c.conf.Error(pos, msg)
	}
}

// undeclared reports a use of an undeclared name, suggesting the closest
// visible name if there is one.
func (c *Checker) undeclared(id *syntax.Ident) {
	if s := c.suggest(id.Value); s != "" {
		c.errorf(id.Pos(), "undeclared identifier %s (did you mean %s?)", id.Value, s)
		return
	}
	c.errorf(id.Pos(), "undeclared identifier %s", id.Value)
}

// suggest returns the visible name closest to name within the configured
// edit distance, or "". Ties go to the alphabetically first name.
func (c *Checker) suggest(name string) string {
	maxDistance := c.conf.MaxSuggestionDistance
	if maxDistance == 0 {
		maxDistance = defaultSuggestionDistance
	}
	if maxDistance < 0 {
		return ""
	}

	names := c.scope.VisibleNames()
	sort.Strings(names)

	match := ""
	closest := maxDistance + 1
	for _, key := range names {
		if r, _ := utf8.DecodeRuneInString(key); !unicode.IsLetter(r) {
			continue // operators
		}
		d := levenshtein.DistanceForStrings(
			[]rune(strings.ToLower(name)),
			[]rune(strings.ToLower(key)),
			levenshtein.DefaultOptionsWithSub,
		)
		if d < closest {
			closest = d
			match = key
		}
	}
	return match
}
