// Package types holds the standard environment, the symbol table and the
// type predicates shared by the checker and the code generator.
package types

import (
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
)

// Universe is the frozen scope holding the standard environment. It is
// built once at init and never modified; each compilation works on a copy
// made by NewRootScope.
var Universe *Scope

// Built-in types. Any and Void cannot be named in source: Any is the
// operand type of = and the placeholder type of erroneous expressions,
// Void is the result type of procedures.
var (
	IntegerType = &syntax.TypeDecl{Name: "integer", Size: tam.WordSize}
	CharType    = &syntax.TypeDecl{Name: "char", Size: tam.WordSize}
	BooleanType = &syntax.TypeDecl{Name: "boolean", Size: tam.WordSize}
	AnyType     = &syntax.TypeDecl{Name: "any"}
	VoidType    = &syntax.TypeDecl{Name: "void"}
)

// Built-in constants.
var (
	True  = syntax.NewBuiltinConst("true", BooleanType, tam.True)
	False = syntax.NewBuiltinConst("false", BooleanType, tam.False)
)

// Built-in operators.
var (
	GreaterThan = binary(">", tam.PrimGt, IntegerType, IntegerType, BooleanType)
	LessThan    = binary("<", tam.PrimLt, IntegerType, IntegerType, BooleanType)
	Equal       = binary("=", tam.PrimEq, AnyType, AnyType, BooleanType)
	Plus        = binary("+", tam.PrimAdd, IntegerType, IntegerType, IntegerType)
	Minus       = binary("-", tam.PrimSub, IntegerType, IntegerType, IntegerType)
	Multiply    = binary("*", tam.PrimMult, IntegerType, IntegerType, IntegerType)
	Divide      = binary("/", tam.PrimDiv, IntegerType, IntegerType, IntegerType)

	Not = &syntax.UnaryOpDecl{Op: `\`, Prim: tam.PrimNot, Operand: BooleanType, Result: BooleanType}
)

// Built-in functions and procedures.
var (
	Chr    = function("chr", tam.PrimID, CharType, param(IntegerType, false))
	Ord    = function("ord", tam.PrimID, IntegerType, param(CharType, false))
	Eof    = function("eof", tam.PrimEof, BooleanType)
	Eol    = function("eol", tam.PrimEol, BooleanType)
	Get    = function("get", tam.PrimGet, VoidType, param(CharType, true))
	GetInt = function("getint", tam.PrimGetint, VoidType, param(IntegerType, true))
	Put    = function("put", tam.PrimPut, VoidType, param(CharType, false))
	PutInt = function("putint", tam.PrimPutint, VoidType, param(IntegerType, false))
	PutEol = function("puteol", tam.PrimPuteol, VoidType)
)

func binary(op string, prim tam.Primitive, left, right, result *syntax.TypeDecl) *syntax.BinaryOpDecl {
	return &syntax.BinaryOpDecl{Op: op, Prim: prim, Left: left, Right: right, Result: result}
}

func param(typ *syntax.TypeDecl, byRef bool) syntax.FormalParam {
	return syntax.FormalParam{Type: typ, ByRef: byRef}
}

func function(name string, prim tam.Primitive, result *syntax.TypeDecl, params ...syntax.FormalParam) *syntax.FuncDecl {
	return &syntax.FuncDecl{Name: name, Prim: prim, Result: result, Params: params}
}

func init() {
	Universe = NewScope(nil, "universe")
	for _, d := range []syntax.Decl{
		IntegerType, CharType, BooleanType,
		True, False,
		GreaterThan, LessThan, Equal, Plus, Minus, Multiply, Divide, Not,
		Chr, Ord, Eof, Eol, Get, GetInt, Put, PutInt, PutEol,
	} {
		if Universe.Insert(DeclName(d), d) != nil {
			panic("duplicate standard environment entry " + DeclName(d))
		}
	}
	Universe.frozen = true
}

// DeclName returns the name a declaration is bound to.
func DeclName(d syntax.Decl) string {
	switch d := d.(type) {
	case syntax.EntityDecl:
		return d.EntityName()
	case *syntax.TypeDecl:
		return d.Name
	case *syntax.UnaryOpDecl:
		return d.Op
	case *syntax.BinaryOpDecl:
		return d.Op
	case *syntax.FuncDecl:
		return d.Name
	}
	return ""
}

// DeclKind returns a short description of what d declares, for messages.
func DeclKind(d syntax.Decl) string {
	switch d := d.(type) {
	case *syntax.TypeDecl:
		return "type"
	case *syntax.ConstDecl, *syntax.BuiltinConstDecl:
		return "constant"
	case *syntax.VarDecl:
		return "variable"
	case *syntax.UnaryOpDecl, *syntax.BinaryOpDecl:
		return "operator"
	case *syntax.FuncDecl:
		if d.Result == VoidType {
			return "procedure"
		}
		return "function"
	}
	return "declaration"
}
