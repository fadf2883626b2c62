package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/tamc/internal/syntax"
)

// Scope is one frame of the symbol table. Frames form a tree rooted at the
// frame returned by NewRootScope; lookups walk from the innermost frame
// outward, so inner declarations shadow outer ones.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]syntax.Decl
	level    int    // nesting depth, 0 for a root frame
	comment  string // debugging comment (e.g., "let", "block")
	frozen   bool
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]syntax.Decl),
		comment: comment,
	}
	if parent != nil {
		s.level = parent.level + 1
		if !parent.frozen {
			parent.children = append(parent.children, s)
		}
	}
	return s
}

// NewRootScope returns a fresh root frame holding a copy of the standard
// environment. Declarations added to it do not affect Universe.
func NewRootScope() *Scope {
	s := NewScope(nil, "program")
	for name, d := range Universe.elems {
		s.elems[name] = d
	}
	return s
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Children returns the list of child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Level returns the nesting depth of s.
func (s *Scope) Level() int {
	return s.level
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// Lookup returns the declaration bound to name in this frame only, or nil.
func (s *Scope) Lookup(name string) syntax.Decl {
	return s.elems[name]
}

// LookupParent returns the declaration bound to name by searching from the
// current scope up through all parent scopes, and the scope it was found
// in. Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (syntax.Decl, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if d := scope.elems[name]; d != nil {
			return d, scope
		}
	}
	return nil, nil
}

// Insert binds name to d in this frame. If name is already bound in this
// frame, the existing declaration is returned and nothing changes.
// Otherwise, returns nil.
func (s *Scope) Insert(name string, d syntax.Decl) syntax.Decl {
	if s.frozen {
		panic("types: insert into frozen scope " + s.comment)
	}
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = d
	return nil
}

// Names returns the names bound in this frame, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VisibleNames returns every name visible from s, innermost first and
// without duplicates.
func (s *Scope) VisibleNames() []string {
	seen := make(map[string]bool)
	var names []string
	for scope := s; scope != nil; scope = scope.parent {
		for _, name := range scope.Names() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// NumDecls returns the number of names bound in this frame.
func (s *Scope) NumDecls() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		d := s.elems[name]
		fmt.Fprintf(buf, "%s  %s: %s %s\n", prefix, name, DeclKind(d), Describe(d))
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
