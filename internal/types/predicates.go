package types

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/tamc/internal/syntax"
)

// Identical reports whether x and y are the same type. Types are declared
// once in the standard environment, so identity is pointer equality.
func Identical(x, y *syntax.TypeDecl) bool {
	return x == y
}

// Matches reports whether a value of type actual may be used where formal
// is expected. Any matches every type on either side.
func Matches(formal, actual *syntax.TypeDecl) bool {
	if formal == AnyType || actual == AnyType {
		return true
	}
	return Identical(formal, actual)
}

// IsAny reports whether t is the Any placeholder type.
func IsAny(t *syntax.TypeDecl) bool {
	return t == AnyType
}

// IsVoid reports whether t is the result type of a procedure.
func IsVoid(t *syntax.TypeDecl) bool {
	return t == VoidType
}

// IsConstant reports whether d binds a value that cannot be assigned.
func IsConstant(d syntax.Decl) bool {
	switch d.(type) {
	case *syntax.ConstDecl, *syntax.BuiltinConstDecl:
		return true
	}
	return false
}

// IsVariable reports whether d binds an assignable entity.
func IsVariable(d syntax.Decl) bool {
	_, ok := d.(*syntax.VarDecl)
	return ok
}

// Describe renders the signature or type of d, e.g. "integer" for a
// variable, "(var char) void" for get.
func Describe(d syntax.Decl) string {
	switch d := d.(type) {
	case *syntax.TypeDecl:
		return d.Name
	case syntax.EntityDecl:
		return d.EntityType().String()
	case *syntax.UnaryOpDecl:
		return fmt.Sprintf("(%s) %s", d.Operand, d.Result)
	case *syntax.BinaryOpDecl:
		return fmt.Sprintf("(%s, %s) %s", d.Left, d.Right, d.Result)
	case *syntax.FuncDecl:
		params := make([]string, len(d.Params))
		for i, p := range d.Params {
			params[i] = p.Type.Name
			if p.ByRef {
				params[i] = "var " + params[i]
			}
		}
		return fmt.Sprintf("(%s) %s", strings.Join(params, ", "), d.Result)
	}
	return "?"
}
