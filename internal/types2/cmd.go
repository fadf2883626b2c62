package types2

import (
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/types"
)

// command checks a single command.
func (c *Checker) command(cmd syntax.Command) {
	switch cmd := cmd.(type) {
	case *syntax.SkipCmd, *syntax.BadCmd:
		// Nothing to check

	case *syntax.AssignCmd:
		c.assignCmd(cmd)

	case *syntax.CallCmd:
		c.call(cmd.Name, cmd.Arg)

	case *syntax.SeqCmd:
		for _, s := range cmd.List {
			c.command(s)
		}

	case *syntax.BlockCmd:
		c.openScope(cmd, "block")
		c.command(cmd.Body)
		c.closeScope()

	case *syntax.IfCmd:
		c.condition(cmd.Cond, "if")
		c.command(cmd.Then)
		c.command(cmd.Else)

	case *syntax.IfEitherCmd:
		c.condition(cmd.Cond, "ifeither")
		c.condition(cmd.Alt, "ifeither")
		c.command(cmd.Then)
		c.command(cmd.Else)

	case *syntax.WhileCmd:
		c.condition(cmd.Cond, "while")
		c.command(cmd.Body)

	case *syntax.LetCmd:
		c.letCmd(cmd)

	default:
		c.errorf(cmd.Pos(), "unexpected command %T", cmd)
	}
}

// assignCmd checks Name := X.
func (c *Checker) assignCmd(s *syntax.AssignCmd) {
	t := c.value(s.X)

	d := c.resolve(s.Name)
	if d == nil {
		return
	}
	if !types.IsVariable(d) {
		c.errorf(s.Name.Pos(), "cannot assign to %s %s", types.DeclKind(d), s.Name.Value)
		return
	}
	if vt := d.(syntax.EntityDecl).EntityType(); !types.Matches(vt, t) {
		c.errorf(s.X.Pos(), "type mismatch: cannot assign %s to %s of type %s", t, s.Name.Value, vt)
	}
}

// condition checks the boolean condition of an if, ifeither or while.
func (c *Checker) condition(x syntax.Expr, context string) {
	t := c.value(x)
	if !types.Matches(types.BooleanType, t) {
		c.errorf(x.Pos(), "non-boolean condition in %s command (type %s)", context, t)
	}
}

// letCmd checks let Decl in Body. Storage allocated by the declarations is
// released when the body has been checked.
func (c *Checker) letCmd(s *syntax.LetCmd) {
	saved := c.offset
	c.level++
	c.openScope(s, "let")

	c.decl(s.Decl)
	c.command(s.Body)

	c.closeScope()
	c.level--
	c.offset = saved
}
