package types2

import (
	"strconv"

	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/types"
)

// decl checks a declaration and binds its names in the current scope.
func (c *Checker) decl(d syntax.Decl) {
	switch d := d.(type) {
	case *syntax.BadDecl:
		// Nothing to check

	case *syntax.ConstDecl:
		c.constDecl(d)

	case *syntax.VarDecl:
		c.varDecl(d)

	case *syntax.SeqDecl:
		for _, s := range d.List {
			c.decl(s)
		}

	default:
		c.errorf(d.Pos(), "unexpected declaration %T", d)
	}
}

// constDecl checks const Name ~ Value. The value is checked before Name is
// bound, so it refers to outer declarations. Literal values and other
// known constants are folded; anything else is computed at block entry
// and stored like a variable.
func (c *Checker) constDecl(d *syntax.ConstDecl) {
	t := c.value(d.Value)
	d.SetEntityType(t)

	if v, ok := c.knownValue(d.Value); ok {
		d.SetStorage(&syntax.Storage{Kind: syntax.KnownValue, Level: c.level, Size: t.Size, Value: v})
	} else {
		d.SetStorage(c.allocate(syntax.UnknownValue, t.Size))
	}

	c.declare(d.Name, d)
}

// varDecl checks var Name : TypeName.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	t := c.typeName(d.TypeName)
	d.SetEntityType(t)
	d.SetStorage(c.allocate(syntax.KnownAddress, t.Size))
	c.declare(d.Name, d)
}

// typeName resolves the type named by id. Errors yield Any.
func (c *Checker) typeName(id *syntax.Ident) *syntax.TypeDecl {
	d := c.resolve(id)
	if d == nil {
		return types.AnyType
	}
	t, ok := d.(*syntax.TypeDecl)
	if !ok {
		c.errorf(id.Pos(), "%s is a %s, not a type", id.Value, types.DeclKind(d))
		return types.AnyType
	}
	return t
}

// knownValue returns the compile-time value of x if x is a literal or a
// reference to a known constant.
func (c *Checker) knownValue(x syntax.Expr) (int, bool) {
	switch x := x.(type) {
	case *syntax.IntExpr:
		v, err := strconv.Atoi(x.Lit.Value)
		return v, err == nil && v <= maxInt
	case *syntax.CharExpr:
		return int(x.Lit.Rune()), true
	case *syntax.IdExpr:
		if !types.IsConstant(x.Name.Decl) {
			return 0, false
		}
		if s := x.Name.Decl.(syntax.EntityDecl).Storage(); s != nil && s.Kind == syntax.KnownValue {
			return s.Value, true
		}
	}
	return 0, false
}
