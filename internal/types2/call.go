package types2

import (
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/types"
)

// call checks Name(Arg), as a command or an expression, and returns the
// result type of the callee.
func (c *Checker) call(name *syntax.Ident, arg syntax.Param) *syntax.TypeDecl {
	d := c.resolve(name)
	f, ok := d.(*syntax.FuncDecl)
	if !ok {
		if d != nil {
			c.errorf(name.Pos(), "cannot call %s %s", types.DeclKind(d), name.Value)
		}
		c.param(nil, arg)
		return types.AnyType
	}

	nargs := 1
	if _, blank := arg.(*syntax.BlankParam); blank {
		nargs = 0
	}
	if nargs != len(f.Params) {
		c.errorf(name.Pos(), "wrong number of arguments in call to %s: have %d, want %d", f.Name, nargs, len(f.Params))
		c.param(nil, arg)
		return f.Result
	}
	if nargs > 0 {
		c.param(&f.Params[0], arg)
		c.passMode(f, &f.Params[0], arg)
	}
	return f.Result
}

// param checks an actual parameter against formal. A nil formal only
// resolves the parameter, so that names inside it are still checked.
func (c *Checker) param(formal *syntax.FormalParam, arg syntax.Param) {
	var t *syntax.TypeDecl
	switch arg := arg.(type) {
	case *syntax.BlankParam, *syntax.BadParam:
		return

	case *syntax.ExprParam:
		t = c.value(arg.X)

	case *syntax.VarParam:
		d := c.resolve(arg.Name)
		if d == nil {
			return
		}
		if !types.IsVariable(d) {
			c.errorf(arg.Name.Pos(), "cannot pass %s %s as var parameter", types.DeclKind(d), arg.Name.Value)
			return
		}
		t = d.(syntax.EntityDecl).EntityType()

	default:
		c.errorf(arg.Pos(), "unexpected parameter %T", arg)
		return
	}

	if formal != nil && !types.Matches(formal.Type, t) {
		c.errorf(arg.Pos(), "type mismatch: cannot pass %s as %s parameter", t, formal.Type)
	}
}

// passMode checks that arg is passed the way formal expects.
func (c *Checker) passMode(f *syntax.FuncDecl, formal *syntax.FormalParam, arg syntax.Param) {
	switch arg.(type) {
	case *syntax.ExprParam:
		if formal.ByRef {
			c.errorf(arg.Pos(), "%s expects a var parameter", f.Name)
		}
	case *syntax.VarParam:
		if !formal.ByRef {
			c.errorf(arg.Pos(), "%s expects a value parameter, not var", f.Name)
		}
	}
}
