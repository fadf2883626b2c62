// Package codegen lowers a checked AST into TAM instructions.
package codegen

import (
	"strconv"

	"github.com/golang/glog"

	"github.com/you-not-fish/tamc/internal/contract"
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
	"github.com/you-not-fish/tamc/internal/types"
)

// generator walks the AST and emits code. It only reads the annotations
// left by the checker; a missing annotation is a contract violation.
type generator struct {
	e emitter
}

// Generate returns the TAM program for prog, which must have been checked
// without errors. Unannotated or erroneous nodes abandon generation with a
// contract.Violation panic.
func Generate(prog *syntax.Program) *tam.Program {
	contract.Assertf(prog != nil, "nil program")
	g := &generator{}
	g.command(prog.Cmd)
	g.e.emit(tam.Instruction{Op: tam.HALT})
	if glog.V(3) {
		glog.V(3).Infof("generated %d instructions", len(g.e.code))
	}
	return &tam.Program{Code: g.e.code}
}

// ----------------------------------------------------------------------------
// Commands

func (g *generator) command(cmd syntax.Command) {
	switch cmd := cmd.(type) {
	case *syntax.SkipCmd:
		// no code

	case *syntax.AssignCmd:
		g.expr(cmd.X)
		g.store(cmd.Name)

	case *syntax.CallCmd:
		f := g.call(cmd.Name, cmd.Arg)
		if !types.IsVoid(f.Result) {
			g.e.emitPop(f.Result.Size)
		}

	case *syntax.SeqCmd:
		for _, c := range cmd.List {
			g.command(c)
		}

	case *syntax.BlockCmd:
		g.command(cmd.Body)

	case *syntax.IfCmd:
		g.expr(cmd.Cond)
		toElse := g.e.emitForward(tam.JUMPIF, tam.False)
		g.command(cmd.Then)
		toEnd := g.e.emitForward(tam.JUMP, 0)
		g.e.patch(toElse)
		g.command(cmd.Else)
		g.e.patch(toEnd)

	case *syntax.IfEitherCmd:
		g.expr(cmd.Cond)
		toThen := g.e.emitForward(tam.JUMPIF, tam.True)
		g.expr(cmd.Alt)
		toElse := g.e.emitForward(tam.JUMPIF, tam.False)
		g.e.patch(toThen)
		g.command(cmd.Then)
		toEnd := g.e.emitForward(tam.JUMP, 0)
		g.e.patch(toElse)
		g.command(cmd.Else)
		g.e.patch(toEnd)

	case *syntax.WhileCmd:
		test := g.e.here()
		g.expr(cmd.Cond)
		toEnd := g.e.emitForward(tam.JUMPIF, tam.False)
		g.command(cmd.Body)
		g.e.emitJump(test)
		g.e.patch(toEnd)

	case *syntax.LetCmd:
		words := g.decl(cmd.Decl)
		g.command(cmd.Body)
		g.e.emitPop(words)

	default:
		contract.Failf("cannot generate code for %T at %s", cmd, cmd.Pos())
	}
}

// ----------------------------------------------------------------------------
// Declarations

// decl allocates the storage of d on the stack and returns the number of
// words allocated. Variables are reserved with PUSH; constants of unknown
// value are evaluated in place; known constants take no space.
func (g *generator) decl(d syntax.Decl) int {
	switch d := d.(type) {
	case *syntax.SeqDecl:
		words := 0
		for _, s := range d.List {
			words += g.decl(s)
		}
		return words

	case *syntax.VarDecl:
		s := storage(d, d.Name)
		contract.Assertf(s.Kind == syntax.KnownAddress, "variable %s has %s storage", d.Name.Value, s.Kind)
		g.e.emit(tam.Instruction{Op: tam.PUSH, D: s.Size})
		return s.Size

	case *syntax.ConstDecl:
		s := storage(d, d.Name)
		if s.Kind == syntax.KnownValue {
			return 0
		}
		contract.Assertf(s.Kind == syntax.UnknownValue, "constant %s has %s storage", d.Name.Value, s.Kind)
		g.expr(d.Value)
		return s.Size
	}

	contract.Failf("cannot generate code for %T at %s", d, d.Pos())
	return 0
}

// storage returns the descriptor of d, which must have been assigned.
func storage(d syntax.EntityDecl, name *syntax.Ident) *syntax.Storage {
	s := d.Storage()
	contract.Assertf(s != nil, "%s at %s has no storage", name.Value, name.Pos())
	return s
}

// entity returns the entity declaration id resolves to.
func entity(id *syntax.Ident) syntax.EntityDecl {
	contract.Assertf(id.Decl != nil, "identifier %s at %s is unresolved", id.Value, id.Pos())
	d, ok := id.Decl.(syntax.EntityDecl)
	contract.Assertf(ok, "identifier %s at %s resolves to %T, not an entity", id.Value, id.Pos(), id.Decl)
	return d
}

// ----------------------------------------------------------------------------
// Addressing

// load pushes the value of the entity id refers to.
func (g *generator) load(id *syntax.Ident) {
	s := storage(entity(id), id)
	switch s.Kind {
	case syntax.KnownValue:
		g.e.emitLoadL(s.Value)
	case syntax.UnknownValue, syntax.KnownAddress:
		g.e.emit(tam.Instruction{Op: tam.LOAD, R: tam.SB, N: s.Size, D: s.Offset})
	default:
		contract.Failf("identifier %s at %s has invalid storage %s", id.Value, id.Pos(), s.Kind)
	}
}

// store pops the stack top into the variable id refers to.
func (g *generator) store(id *syntax.Ident) {
	s := storage(entity(id), id)
	contract.Assertf(s.Kind == syntax.KnownAddress, "assignment to %s at %s with %s storage", id.Value, id.Pos(), s.Kind)
	g.e.emit(tam.Instruction{Op: tam.STORE, R: tam.SB, N: s.Size, D: s.Offset})
}

// address pushes the address of the variable id refers to.
func (g *generator) address(id *syntax.Ident) {
	s := storage(entity(id), id)
	contract.Assertf(s.Kind == syntax.KnownAddress, "var parameter %s at %s with %s storage", id.Value, id.Pos(), s.Kind)
	g.e.emit(tam.Instruction{Op: tam.LOADA, R: tam.SB, D: s.Offset})
}

// ----------------------------------------------------------------------------
// Expressions

// expr pushes the value of x.
func (g *generator) expr(x syntax.Expr) {
	contract.Assertf(x.Type() != nil, "expression %T at %s is untyped", x, x.Pos())

	switch x := x.(type) {
	case *syntax.IntExpr:
		v, err := strconv.Atoi(x.Lit.Value)
		contract.Assertf(err == nil && v <= tam.MaxInt, "integer literal %s at %s", x.Lit.Value, x.Pos())
		g.e.emitLoadL(v)

	case *syntax.CharExpr:
		g.e.emitLoadL(int(x.Lit.Rune()))

	case *syntax.IdExpr:
		g.load(x.Name)

	case *syntax.UnaryExpr:
		g.expr(x.X)
		op, ok := x.Op.Decl.(*syntax.UnaryOpDecl)
		contract.Assertf(ok, "operator %s at %s is unresolved", x.Op.Value, x.Op.Pos())
		g.e.emitPrim(op.Prim)

	case *syntax.BinaryExpr:
		g.expr(x.X)
		g.expr(x.Y)
		op, ok := x.Op.Decl.(*syntax.BinaryOpDecl)
		contract.Assertf(ok, "operator %s at %s is unresolved", x.Op.Value, x.Op.Pos())
		if op.Prim.NeedsSize() {
			g.e.emitLoadL(x.X.Type().Size)
		}
		g.e.emitPrim(op.Prim)

	case *syntax.CallExpr:
		g.call(x.Name, x.Arg)

	default:
		contract.Failf("cannot generate code for %T at %s", x, x.Pos())
	}
}

// call evaluates the actual parameter and calls the built-in routine name
// resolves to. It returns the routine's declaration.
func (g *generator) call(name *syntax.Ident, arg syntax.Param) *syntax.FuncDecl {
	f, ok := name.Decl.(*syntax.FuncDecl)
	contract.Assertf(ok, "call of %s at %s is unresolved", name.Value, name.Pos())

	switch arg := arg.(type) {
	case *syntax.BlankParam:
		// no argument
	case *syntax.ExprParam:
		g.expr(arg.X)
	case *syntax.VarParam:
		g.address(arg.Name)
	default:
		contract.Failf("cannot generate code for %T at %s", arg, arg.Pos())
	}

	g.e.emitPrim(f.Prim)
	return f
}
