package syntax

import (
	"fmt"

	"github.com/you-not-fish/tamc/internal/tam"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 families of nodes: Commands, Declarations, Expressions and
// Parameters. All nodes implement the Node interface; each family further
// implements its own marker interface. Terminals (Ident, IntLit, CharLit,
// OpName) are plain Nodes.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Command is the interface for all command nodes.
type Command interface {
	Node
	aCommand()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Expr is the interface for all expression nodes. Type is nil until the
// checker has visited the expression.
type Expr interface {
	Node
	Type() *TypeDecl
	SetType(t *TypeDecl)
	aExpr()
}

// Param is the interface for the actual parameter of a call.
type Param interface {
	Node
	aParam()
}

// EntityDecl is implemented by declarations that bind a value: constants,
// variables and built-in constants. Both the type and the storage are
// filled in by the checker; built-in constants carry them from the start.
type EntityDecl interface {
	Decl
	EntityName() string
	EntityType() *TypeDecl
	SetEntityType(t *TypeDecl)
	Storage() *Storage
	SetStorage(s *Storage)
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// command is embedded in all command nodes.
type command struct{ node }

func (*command) aCommand() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// expr is embedded in all expression nodes.
type expr struct {
	node
	typ *TypeDecl
}

func (x *expr) Type() *TypeDecl     { return x.typ }
func (x *expr) SetType(t *TypeDecl) { x.typ = t }
func (*expr) aExpr()                {}

// param is embedded in all parameter nodes.
type param struct{ node }

func (*param) aParam() {}

// entity holds the annotations shared by entity declarations.
type entity struct {
	typ     *TypeDecl
	storage *Storage
}

func (e *entity) EntityType() *TypeDecl     { return e.typ }
func (e *entity) SetEntityType(t *TypeDecl) { e.typ = t }
func (e *entity) Storage() *Storage         { return e.storage }
func (e *entity) SetStorage(s *Storage)     { e.storage = s }

// ----------------------------------------------------------------------------
// Program

// Program is the root of the AST for one compilation unit.
type Program struct {
	node
	Cmd Command
}

// ----------------------------------------------------------------------------
// Commands

// AssignCmd represents Name := X.
type AssignCmd struct {
	command
	Name *Ident
	X    Expr
}

// CallCmd represents Name(Arg) used as a command.
type CallCmd struct {
	command
	Name *Ident
	Arg  Param
}

// SeqCmd represents C1; C2; ...; Cn with n >= 2.
type SeqCmd struct {
	command
	List []Command
}

// BlockCmd represents { Body }. A block opens its own scope.
type BlockCmd struct {
	command
	Body   Command
	Rbrace Pos // position of closing brace
}

// IfCmd represents if Cond then Then else Else endif.
type IfCmd struct {
	command
	Cond Expr
	Then Command
	Else Command
}

// IfEitherCmd represents ifeither Cond or Alt then Then else Else endif.
// Alt is only evaluated when Cond is false.
type IfEitherCmd struct {
	command
	Cond Expr
	Alt  Expr
	Then Command
	Else Command
}

// WhileCmd represents while Cond do Body.
type WhileCmd struct {
	command
	Cond Expr
	Body Command
}

// LetCmd represents let Decl in Body.
type LetCmd struct {
	command
	Decl Decl
	Body Command
}

// SkipCmd is the empty command. Explicit is set for the pass keyword; an
// implicit skip consumes no tokens.
type SkipCmd struct {
	command
	Explicit bool
}

// BadCmd is a placeholder for a command that could not be parsed.
type BadCmd struct {
	command
}

// ----------------------------------------------------------------------------
// Declarations

// ConstDecl represents const Name ~ Value.
type ConstDecl struct {
	decl
	entity
	Name  *Ident
	Value Expr
}

func (d *ConstDecl) EntityName() string { return d.Name.Value }

// VarDecl represents var Name : TypeName.
type VarDecl struct {
	decl
	entity
	Name     *Ident
	TypeName *Ident
}

func (d *VarDecl) EntityName() string { return d.Name.Value }

// SeqDecl represents D1; D2; ...; Dn with n >= 2.
type SeqDecl struct {
	decl
	List []Decl
}

// BadDecl is a placeholder for a declaration that could not be parsed.
type BadDecl struct {
	decl
}

// The remaining declarations only occur in the standard environment.

// TypeDecl declares a built-in type. Size is in words.
type TypeDecl struct {
	decl
	Name string
	Size int
}

// String returns the type name.
func (t *TypeDecl) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// BuiltinConstDecl declares a constant of the standard environment such as
// true. Its value is known at compile time.
type BuiltinConstDecl struct {
	decl
	entity
	Name  string
	Value int
}

// NewBuiltinConst returns a built-in constant of type typ.
func NewBuiltinConst(name string, typ *TypeDecl, value int) *BuiltinConstDecl {
	d := &BuiltinConstDecl{Name: name, Value: value}
	d.typ = typ
	d.storage = &Storage{Kind: KnownValue, Size: typ.Size, Value: value}
	return d
}

func (d *BuiltinConstDecl) EntityName() string { return d.Name }

// UnaryOpDecl declares a built-in prefix operator.
type UnaryOpDecl struct {
	decl
	Op      string
	Operand *TypeDecl
	Result  *TypeDecl
	Prim    tam.Primitive
}

// BinaryOpDecl declares a built-in infix operator. An Any operand type
// matches any type.
type BinaryOpDecl struct {
	decl
	Op     string
	Left   *TypeDecl
	Right  *TypeDecl
	Result *TypeDecl
	Prim   tam.Primitive
}

// FormalParam is one formal parameter of a built-in function.
type FormalParam struct {
	Type  *TypeDecl
	ByRef bool // passed as a var parameter
}

// FuncDecl declares a built-in function. Functions take at most one
// parameter; Result is Void for procedures.
type FuncDecl struct {
	decl
	Name   string
	Params []FormalParam
	Result *TypeDecl
	Prim   tam.Primitive
}

// ----------------------------------------------------------------------------
// Expressions

// IntExpr is an integer literal used as an expression.
type IntExpr struct {
	expr
	Lit *IntLit
}

// CharExpr is a character literal used as an expression.
type CharExpr struct {
	expr
	Lit *CharLit
}

// IdExpr is a reference to a named entity.
type IdExpr struct {
	expr
	Name *Ident
}

// UnaryExpr represents Op X.
type UnaryExpr struct {
	expr
	Op *OpName
	X  Expr
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	X  Expr
	Op *OpName
	Y  Expr
}

// CallExpr represents Name(Arg) used as an expression.
type CallExpr struct {
	expr
	Name *Ident
	Arg  Param
}

// BadExpr is a placeholder for an expression that could not be parsed.
type BadExpr struct {
	expr
}

// ----------------------------------------------------------------------------
// Parameters

// ExprParam passes X by value.
type ExprParam struct {
	param
	X Expr
}

// VarParam passes the variable Name by reference.
type VarParam struct {
	param
	Name *Ident
}

// BlankParam is the absent parameter of f().
type BlankParam struct {
	param
}

// BadParam is a placeholder for a parameter that could not be parsed.
type BadParam struct {
	param
}

// ----------------------------------------------------------------------------
// Terminals

// Ident is an identifier occurrence. Decl is set by the checker to the
// declaration the name resolves to.
type Ident struct {
	node
	Value string
	Decl  Decl
}

// IntLit is the spelling of an integer literal.
type IntLit struct {
	node
	Value string
}

// CharLit is the spelling of a character literal, quotes included.
type CharLit struct {
	node
	Value string
}

// Rune returns the quoted character.
func (c *CharLit) Rune() rune {
	r := []rune(c.Value)
	if len(r) != 3 {
		panic(fmt.Sprintf("malformed character literal %q", c.Value))
	}
	return r[1]
}

// OpName is an operator occurrence. Decl is set by the checker to the
// UnaryOpDecl or BinaryOpDecl it denotes.
type OpName struct {
	node
	Value string
	Decl  Decl
}

// ----------------------------------------------------------------------------
// Storage

// StorageKind classifies how an entity is addressed at run time.
// KnownValue is a compile-time constant held in Value; UnknownValue is a
// constant evaluated on block entry and stored at Offset; KnownAddress is
// a variable stored at Offset.
type StorageKind int

const (
	_ StorageKind = iota
	KnownValue
	UnknownValue
	KnownAddress
)

var storageKindNames = [...]string{
	KnownValue:   "known value",
	UnknownValue: "unknown value",
	KnownAddress: "known address",
}

func (k StorageKind) String() string {
	if k > 0 && int(k) < len(storageKindNames) {
		return storageKindNames[k]
	}
	return fmt.Sprintf("storage(%d)", int(k))
}

// Storage is the run-time descriptor of an entity. Level is the let
// nesting depth of the declaration; Offset is a word displacement from SB.
type Storage struct {
	Kind   StorageKind
	Level  int
	Offset int
	Size   int
	Value  int
}

func (s *Storage) String() string {
	if s == nil {
		return "<none>"
	}
	if s.Kind == KnownValue {
		return fmt.Sprintf("%s %d", s.Kind, s.Value)
	}
	return fmt.Sprintf("%s %d[SB] level %d", s.Kind, s.Offset, s.Level)
}
