package types2

import (
	"strconv"

	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
	"github.com/you-not-fish/tamc/internal/types"
)

// maxInt is the largest integer literal.
const maxInt = tam.MaxInt

// expr checks x, records its type on the node and returns it. Erroneous
// expressions get Any so that enclosing checks do not report again.
func (c *Checker) expr(x syntax.Expr) *syntax.TypeDecl {
	t := c.exprInternal(x)
	x.SetType(t)
	return t
}

// value is like expr but x must produce a value: a procedure call is
// reported and treated as Any.
func (c *Checker) value(x syntax.Expr) *syntax.TypeDecl {
	t := c.expr(x)
	if types.IsVoid(t) {
		c.errorf(x.Pos(), "%s does not return a value", calleeName(x))
		return types.AnyType
	}
	return t
}

func calleeName(x syntax.Expr) string {
	if call, ok := x.(*syntax.CallExpr); ok {
		return call.Name.Value
	}
	return "expression"
}

func (c *Checker) exprInternal(x syntax.Expr) *syntax.TypeDecl {
	switch x := x.(type) {
	case *syntax.BadExpr:
		return types.AnyType

	case *syntax.IntExpr:
		if v, err := strconv.Atoi(x.Lit.Value); err != nil || v > maxInt {
			c.errorf(x.Pos(), "integer literal %s out of range (max %d)", x.Lit.Value, maxInt)
		}
		return types.IntegerType

	case *syntax.CharExpr:
		return types.CharType

	case *syntax.IdExpr:
		return c.idExpr(x)

	case *syntax.UnaryExpr:
		return c.unary(x)

	case *syntax.BinaryExpr:
		return c.binary(x)

	case *syntax.CallExpr:
		return c.call(x.Name, x.Arg)
	}

	c.errorf(x.Pos(), "unexpected expression %T", x)
	return types.AnyType
}

// idExpr checks a reference to a constant or variable.
func (c *Checker) idExpr(x *syntax.IdExpr) *syntax.TypeDecl {
	d := c.resolve(x.Name)
	if d == nil {
		return types.AnyType
	}
	e, ok := d.(syntax.EntityDecl)
	if !ok {
		c.errorf(x.Pos(), "%s is a %s, not a value", x.Name.Value, types.DeclKind(d))
		return types.AnyType
	}
	return e.EntityType()
}

// unary checks Op X against the operator's declared operand type.
func (c *Checker) unary(x *syntax.UnaryExpr) *syntax.TypeDecl {
	t := c.value(x.X)

	d := c.lookup(x.Op.Value)
	op, ok := d.(*syntax.UnaryOpDecl)
	if !ok {
		c.errorf(x.Op.Pos(), "%s is not a unary operator", x.Op.Value)
		return types.AnyType
	}
	x.Op.Decl = op

	if !types.Matches(op.Operand, t) {
		c.errorf(x.X.Pos(), "invalid operand for %s: have %s, want %s", op.Op, t, op.Operand)
	}
	return op.Result
}

// binary checks X Op Y against the operator's declared operand types.
// Operators with two Any operands (=) require both sides to agree.
func (c *Checker) binary(x *syntax.BinaryExpr) *syntax.TypeDecl {
	lt := c.value(x.X)
	rt := c.value(x.Y)

	d := c.lookup(x.Op.Value)
	op, ok := d.(*syntax.BinaryOpDecl)
	if !ok {
		c.errorf(x.Op.Pos(), "%s is not a binary operator", x.Op.Value)
		return types.AnyType
	}
	x.Op.Decl = op

	switch {
	case types.IsAny(op.Left) && types.IsAny(op.Right):
		if !types.Matches(lt, rt) {
			c.errorf(x.Op.Pos(), "mismatched operand types for %s: %s and %s", op.Op, lt, rt)
		}
	default:
		if !types.Matches(op.Left, lt) {
			c.errorf(x.X.Pos(), "invalid left operand for %s: have %s, want %s", op.Op, lt, op.Left)
		}
		if !types.Matches(op.Right, rt) {
			c.errorf(x.Y.Pos(), "invalid right operand for %s: have %s, want %s", op.Op, rt, op.Right)
		}
	}
	return op.Result
}
