package syntax

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Maximum number of errors before aborting parse.
const maxErrors = 10

// Mode controls optional parser behavior.
type Mode uint

const (
	// Lenient makes accept silent: a missing token is neither reported nor
	// consumed. Error nodes are still reported.
	Lenient Mode = 1 << iota
)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser builds the AST of one program from its token sequence, with one
// token of lookahead. It never fails: malformed input yields error nodes
// and diagnostics.
type Parser struct {
	tokens []Token
	idx    int   // index of the current token
	tok    Token // tokens[idx]

	mode Mode

	// Error handling
	errh     ErrorHandler
	errcnt   int
	first    error // first error encountered
	abort    bool  // set to true when error limit reached
	limit    int   // error limit, maxErrors unless set
	reported int   // index of the last token an error was reported at
}

// NewParser returns a parser over tokens. If tokens does not end with
// EndOfText, one is appended.
func NewParser(tokens []Token, errh ErrorHandler, mode Mode) *Parser {
	if n := len(tokens); n == 0 || !tokens[n-1].IsEOT() {
		var pos Pos
		if n > 0 {
			pos = tokens[n-1].Pos
		}
		tokens = append(tokens[:n:n], Token{Kind: EndOfText, Pos: pos})
	}
	p := &Parser{
		tokens:   tokens,
		mode:     mode,
		errh:     errh,
		reported: -1,
		limit:    maxErrors,
	}
	p.tok = tokens[0]
	return p
}

// Parse reads a whole program from src. Lexical and syntax errors are
// reported to errh; the returned error is only set if src cannot be read.
func Parse(filename string, src io.Reader, errh ErrorHandler, mode Mode) (*Program, error) {
	cs, err := NewSource(filename, src)
	if err != nil {
		return nil, err
	}
	tokens := NewScanner(cs, errh).GetAllTokens()
	return NewParser(tokens, errh, mode).Parse(), nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token. It stays on EndOfText.
func (p *Parser) next() {
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	p.tok = p.tokens[p.idx]
}

// got reports whether the current token is of kind k.
// If so, it consumes the token and returns true.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// accept consumes the current token if it is of kind k. Otherwise it
// reports the mismatch (unless the parser is lenient) and leaves the
// token in place, as if the expected token had been inserted.
func (p *Parser) accept(k Kind) {
	if p.got(k) {
		return
	}
	if p.mode&Lenient == 0 {
		p.syntaxError(fmt.Sprintf("expected %s but found %s", expected(k), p.tok.describe()))
	}
}

// expected renders k for "expected ..." messages.
func expected(k Kind) string {
	if k.IsKeyword() || k >= Colon && k <= Rbrace {
		return "'" + k.String() + "'"
	}
	return k.String()
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token. At most one
// error is reported per token, and none at Error tokens, which the scanner
// has already reported.
func (p *Parser) syntaxError(msg string) {
	if p.abort || p.reported == p.idx || p.tok.Kind == Error {
		return
	}
	p.reported = p.idx
	p.syntaxErrorAt(p.tok.Pos, msg)
}

// syntaxErrorAt reports a syntax error at a specific position.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++

	if p.errh != nil {
		p.errh(pos, msg)
	}

	p.errorLimitCheck(pos)
}

// errorLimitCheck aborts parsing if too many errors have occurred.
func (p *Parser) errorLimitCheck(pos Pos) {
	if p.errcnt >= p.limit {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.idx = len(p.tokens) - 1
		p.tok = p.tokens[p.idx]
	}
}

// SetErrorLimit sets the number of syntax errors after which the parser
// gives up. A non-positive n restores the default.
func (p *Parser) SetErrorLimit(n int) {
	if n <= 0 {
		n = maxErrors
	}
	p.limit = n
}

// Errors returns the number of errors encountered during parsing.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	return p.first
}

func (p *Parser) trace(production string) {
	if glog.V(7) {
		glog.V(7).Infof("parse %s at %s", production, p.tok)
	}
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses Program := Command EndOfText. Tokens left over after the
// command are reported once; parsing resumes at the next command so that
// the rest of the program is still built and checked.
func (p *Parser) Parse() *Program {
	p.trace("program")
	prog := &Program{}
	prog.pos = p.tok.Pos

	prog.Cmd = p.command()
	for !p.tok.IsEOT() {
		p.accept(EndOfText)
		p.skipToCommand()
		if p.got(Semicolon) || startsCommand(p.tok.Kind) {
			prog.Cmd = appendCommand(prog.Cmd, p.command())
		}
	}

	return prog
}

// appendCommand returns the sequence of c followed by next, flattened.
func appendCommand(c, next Command) Command {
	seq, ok := c.(*SeqCmd)
	if !ok {
		seq = &SeqCmd{List: []Command{c}}
		seq.pos = c.Pos()
	}
	if more, ok := next.(*SeqCmd); ok {
		seq.List = append(seq.List, more.List...)
	} else {
		seq.List = append(seq.List, next)
	}
	return seq
}

// ----------------------------------------------------------------------------
// Resynchronization

// startsCommand reports whether a token of kind k begins a command.
func startsCommand(k Kind) bool {
	switch k {
	case Identifier, Lbrace, Let, If, IfEither, While, Pass:
		return true
	}
	return false
}

// endsCommand reports whether a token of kind k may follow a command.
func endsCommand(k Kind) bool {
	switch k {
	case Semicolon, Rbrace, Else, Endif, In, Or, Do, EndOfText:
		return true
	}
	return false
}

// skipCommand skips the rest of a malformed command, up to a token that
// may follow it.
func (p *Parser) skipCommand() {
	for !endsCommand(p.tok.Kind) {
		p.next()
	}
}

// skipToCommand skips stray tokens up to the next ';', command start or
// end of text.
func (p *Parser) skipToCommand() {
	for k := p.tok.Kind; k != Semicolon && k != EndOfText && !startsCommand(k); k = p.tok.Kind {
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Commands

// command parses SingleCommand (';' SingleCommand)*. A single command is
// returned as is; two or more are wrapped in a SeqCmd.
func (p *Parser) command() Command {
	p.trace("command")
	pos := p.tok.Pos
	c := p.singleCommand()
	if p.tok.Kind != Semicolon {
		return c
	}

	seq := &SeqCmd{List: []Command{c}}
	seq.pos = pos
	for p.got(Semicolon) {
		seq.List = append(seq.List, p.singleCommand())
	}
	return seq
}

// singleCommand dispatches on the current token. A token that may follow
// a command yields an implicit skip without consuming anything; any other
// token starts a malformed command, which is skipped.
func (p *Parser) singleCommand() Command {
	p.trace("single command")
	switch p.tok.Kind {
	case Identifier:
		return p.assignOrCall()
	case Lbrace:
		return p.blockCmd()
	case Let:
		return p.letCmd()
	case If:
		return p.ifCmd()
	case IfEither:
		return p.ifEitherCmd()
	case While:
		return p.whileCmd()
	case Pass:
		c := &SkipCmd{Explicit: true}
		c.pos = p.tok.Pos
		p.next()
		return c
	}

	if endsCommand(p.tok.Kind) {
		c := &SkipCmd{}
		c.pos = p.tok.Pos
		return c
	}

	p.syntaxError("expected command")
	c := &BadCmd{}
	c.pos = p.tok.Pos
	p.skipCommand()
	return c
}

// assignOrCall parses Name := Expression or Name ( Parameter ).
func (p *Parser) assignOrCall() Command {
	pos := p.tok.Pos
	name := p.ident()

	switch p.tok.Kind {
	case Becomes:
		p.next()
		c := &AssignCmd{Name: name}
		c.pos = pos
		c.X = p.expr()
		return c

	case Lparen:
		c := &CallCmd{Name: name}
		c.pos = pos
		c.Arg = p.callArg()
		return c
	}

	p.syntaxError("expected ':=' or '(' after identifier")
	c := &BadCmd{}
	c.pos = p.tok.Pos
	p.skipCommand()
	return c
}

// blockCmd parses { Command }.
func (p *Parser) blockCmd() Command {
	c := &BlockCmd{}
	c.pos = p.tok.Pos

	p.accept(Lbrace)
	c.Body = p.command()
	c.Rbrace = p.tok.Pos
	p.accept(Rbrace)

	return c
}

// letCmd parses let Declaration in SingleCommand.
func (p *Parser) letCmd() Command {
	c := &LetCmd{}
	c.pos = p.tok.Pos

	p.accept(Let)
	c.Decl = p.declaration()
	p.accept(In)
	c.Body = p.singleCommand()

	return c
}

// ifCmd parses if Expression then SingleCommand else SingleCommand endif.
func (p *Parser) ifCmd() Command {
	c := &IfCmd{}
	c.pos = p.tok.Pos

	p.accept(If)
	c.Cond = p.expr()
	p.accept(Then)
	c.Then = p.singleCommand()
	p.accept(Else)
	c.Else = p.singleCommand()
	p.accept(Endif)

	return c
}

// ifEitherCmd parses
// ifeither Expression or Expression then SingleCommand else SingleCommand endif.
func (p *Parser) ifEitherCmd() Command {
	c := &IfEitherCmd{}
	c.pos = p.tok.Pos

	p.accept(IfEither)
	c.Cond = p.expr()
	p.accept(Or)
	c.Alt = p.expr()
	p.accept(Then)
	c.Then = p.singleCommand()
	p.accept(Else)
	c.Else = p.singleCommand()
	p.accept(Endif)

	return c
}

// whileCmd parses while Expression do SingleCommand.
func (p *Parser) whileCmd() Command {
	c := &WhileCmd{}
	c.pos = p.tok.Pos

	p.accept(While)
	c.Cond = p.expr()
	p.accept(Do)
	c.Body = p.singleCommand()

	return c
}

// ----------------------------------------------------------------------------
// Declarations

// declaration parses SingleDeclaration (';' SingleDeclaration)*, with the
// same singleton rule as command.
func (p *Parser) declaration() Decl {
	p.trace("declaration")
	pos := p.tok.Pos
	d := p.singleDeclaration()
	if p.tok.Kind != Semicolon {
		return d
	}

	seq := &SeqDecl{List: []Decl{d}}
	seq.pos = pos
	for p.got(Semicolon) {
		seq.List = append(seq.List, p.singleDeclaration())
	}
	return seq
}

func (p *Parser) singleDeclaration() Decl {
	switch p.tok.Kind {
	case Const:
		return p.constDecl()
	case Var:
		return p.varDecl()
	}

	p.syntaxError("expected declaration")
	d := &BadDecl{}
	d.pos = p.tok.Pos
	return d
}

// constDecl parses const Identifier ~ Expression.
func (p *Parser) constDecl() Decl {
	d := &ConstDecl{}
	d.pos = p.tok.Pos

	p.accept(Const)
	d.Name = p.ident()
	p.accept(Is)
	d.Value = p.expr()

	return d
}

// varDecl parses var Identifier : Identifier.
func (p *Parser) varDecl() Decl {
	d := &VarDecl{}
	d.pos = p.tok.Pos

	p.accept(Var)
	d.Name = p.ident()
	p.accept(Colon)
	d.TypeName = p.ident()

	return d
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses PrimaryExpression (Operator PrimaryExpression)*. All binary
// operators share one precedence level and associate to the left.
func (p *Parser) expr() Expr {
	p.trace("expression")
	x := p.primaryExpr()
	for p.tok.Kind == Operator {
		b := &BinaryExpr{X: x}
		b.pos = x.Pos()
		b.Op = p.operator()
		b.Y = p.primaryExpr()
		x = b
	}
	return x
}

// primaryExpr parses a literal, a name, a call, a prefix operation or a
// parenthesized expression.
func (p *Parser) primaryExpr() Expr {
	switch p.tok.Kind {
	case IntLiteral:
		x := &IntExpr{Lit: &IntLit{Value: p.tok.Spelling}}
		x.pos = p.tok.Pos
		x.Lit.pos = p.tok.Pos
		p.next()
		return x

	case CharLiteral:
		x := &CharExpr{Lit: &CharLit{Value: p.tok.Spelling}}
		x.pos = p.tok.Pos
		x.Lit.pos = p.tok.Pos
		p.next()
		return x

	case Identifier:
		pos := p.tok.Pos
		name := p.ident()
		if p.tok.Kind == Lparen {
			x := &CallExpr{Name: name}
			x.pos = pos
			x.Arg = p.callArg()
			return x
		}
		x := &IdExpr{Name: name}
		x.pos = pos
		return x

	case Operator:
		x := &UnaryExpr{}
		x.pos = p.tok.Pos
		x.Op = p.operator()
		x.X = p.primaryExpr()
		return x

	case Lparen:
		p.next()
		x := p.expr()
		p.accept(Rparen)
		return x

	case Error:
		// already reported by the scanner; skip it so parsing can go on
		x := &BadExpr{}
		x.pos = p.tok.Pos
		p.next()
		return x
	}

	p.syntaxError("expected expression")
	x := &BadExpr{}
	x.pos = p.tok.Pos
	return x
}

// ----------------------------------------------------------------------------
// Parameters

// callArg parses ( Parameter ).
func (p *Parser) callArg() Param {
	p.accept(Lparen)
	a := p.param()
	p.accept(Rparen)
	return a
}

// param parses Expression, var Identifier, or nothing before ')'.
func (p *Parser) param() Param {
	p.trace("parameter")
	pos := p.tok.Pos
	switch {
	case p.tok.Kind.StartsExpression():
		a := &ExprParam{X: p.expr()}
		a.pos = pos
		return a

	case p.tok.Kind == Var:
		p.next()
		a := &VarParam{Name: p.ident()}
		a.pos = pos
		return a

	case p.tok.Kind == Rparen:
		a := &BlankParam{}
		a.pos = pos
		return a
	}

	p.syntaxError("expected parameter")
	a := &BadParam{}
	a.pos = pos
	return a
}

// ----------------------------------------------------------------------------
// Terminals

// ident parses an identifier. A missing identifier is always reported and
// yields an Ident with an empty name.
func (p *Parser) ident() *Ident {
	n := &Ident{}
	n.pos = p.tok.Pos
	if p.tok.Kind != Identifier {
		p.syntaxError(fmt.Sprintf("expected identifier but found %s", p.tok.describe()))
		return n
	}
	n.Value = p.tok.Spelling
	p.next()
	return n
}

// operator parses an operator token.
func (p *Parser) operator() *OpName {
	op := &OpName{Value: p.tok.Spelling}
	op.pos = p.tok.Pos
	p.accept(Operator)
	return op
}
