package types2

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/types"
)

// Checker is the type checker.
type Checker struct {
	conf *Config
	info *Info

	// Current checking context
	scope *types.Scope // current scope
	level int          // let nesting depth

	// Storage allocation: offset is the next free word above SB.
	offset    int
	maxOffset int

	// Error tracking
	errors int        // error count
	first  *TypeError // first error
}

// checkProgram checks the root command in a fresh copy of the standard
// environment.
func (c *Checker) checkProgram(prog *syntax.Program) {
	if prog == nil {
		return
	}
	c.command(prog.Cmd)
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, comment string) *types.Scope {
	s := types.NewScope(c.scope, comment)
	c.scope = s
	if c.info != nil {
		c.info.Scopes[n] = s
	}
	return s
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) syntax.Decl {
	d, _ := c.scope.LookupParent(name)
	return d
}

// resolve looks up id and records the declaration on it. Undeclared names
// are reported; names left empty by the parser have already been reported
// and resolve silently to nil.
func (c *Checker) resolve(id *syntax.Ident) syntax.Decl {
	if id == nil || id.Value == "" {
		return nil
	}
	d := c.lookup(id.Value)
	if d == nil {
		c.undeclared(id)
		return nil
	}
	id.Decl = d
	return d
}

// declare binds name to d in the current scope.
// Reports an error if the name is already declared in the same scope.
func (c *Checker) declare(name *syntax.Ident, d syntax.Decl) {
	if name == nil || name.Value == "" {
		return
	}
	if existing := c.scope.Insert(name.Value, d); existing != nil {
		if pos := declPos(existing); pos.IsValid() {
			c.errorf(name.Pos(), "duplicate declaration of %s (previously declared at %s)", name.Value, pos)
		} else {
			c.errorf(name.Pos(), "duplicate declaration of %s", name.Value)
		}
		return
	}
	name.Decl = d
	if glog.V(5) {
		glog.V(5).Infof("declared %s %s: %s in %s scope", types.DeclKind(d), name.Value, types.Describe(d), c.scope.Comment())
	}
}

// declPos returns the position of the name declared by d.
func declPos(d syntax.Decl) syntax.Pos {
	switch d := d.(type) {
	case *syntax.ConstDecl:
		return d.Name.Pos()
	case *syntax.VarDecl:
		return d.Name.Pos()
	}
	return d.Pos()
}

// allocate reserves size words for an entity declared at the current
// level and returns its descriptor.
func (c *Checker) allocate(kind syntax.StorageKind, size int) *syntax.Storage {
	s := &syntax.Storage{Kind: kind, Level: c.level, Offset: c.offset, Size: size}
	c.offset += size
	if c.offset > c.maxOffset {
		c.maxOffset = c.offset
	}
	return s
}
