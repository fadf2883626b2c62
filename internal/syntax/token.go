// Package syntax implements lexical and syntactic analysis for the Triangle
// teaching language: tokens, the scanner, the AST and the parser.
package syntax

import "fmt"

// Kind is the category of a token.
type Kind uint

const (
	// Lexemes with a variable spelling; operators are + - * / < > = \
	IntLiteral Kind = iota
	CharLiteral
	Identifier
	Operator

	// Keywords
	Const
	Do
	Else
	Endif
	If
	IfEither
	In
	Let
	Or
	Pass
	Then
	Var
	While

	// Punctuation
	Colon     // :
	Semicolon // ;
	Becomes   // :=
	Is        // ~
	Lparen    // (
	Rparen    // )
	Lbrace    // {
	Rbrace    // }

	// Special tokens
	EndOfText
	Error

	kindCount
)

var kindNames = [...]string{
	IntLiteral:  "integer literal",
	CharLiteral: "character literal",
	Identifier:  "identifier",
	Operator:    "operator",

	Const:    "const",
	Do:       "do",
	Else:     "else",
	Endif:    "endif",
	If:       "if",
	IfEither: "ifeither",
	In:       "in",
	Let:      "let",
	Or:       "or",
	Pass:     "pass",
	Then:     "then",
	Var:      "var",
	While:    "while",

	Colon:     ":",
	Semicolon: ";",
	Becomes:   ":=",
	Is:        "~",
	Lparen:    "(",
	Rparen:    ")",
	Lbrace:    "{",
	Rbrace:    "}",

	EndOfText: "end of text",
	Error:     "invalid token",
}

// String returns a human-readable name of the category.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Const && k <= While
}

// IsLiteral reports whether k is an integer or character literal.
func (k Kind) IsLiteral() bool {
	return k == IntLiteral || k == CharLiteral
}

// StartsExpression reports whether a token of category k can begin an
// expression.
func (k Kind) StartsExpression() bool {
	switch k {
	case IntLiteral, CharLiteral, Identifier, Operator, Lparen:
		return true
	}
	return false
}

// keywords maps reserved words to their categories. Built-in names such as
// integer, true or putint are ordinary identifiers bound by the standard
// environment.
var keywords = map[string]Kind{
	"const":    Const,
	"do":       Do,
	"else":     Else,
	"endif":    Endif,
	"if":       If,
	"ifeither": IfEither,
	"in":       In,
	"let":      Let,
	"or":       Or,
	"pass":     Pass,
	"then":     Then,
	"var":      Var,
	"while":    While,
}

// LookupKeyword returns the keyword category for word, or Identifier.
func LookupKeyword(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}

// Token is an immutable lexeme: its category, its exact spelling and the
// position of its first character.
type Token struct {
	Kind     Kind
	Spelling string
	Pos      Pos
}

// String returns e.g. `identifier "x" at 3:7`.
func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Spelling, t.Pos)
}

// IsEOT reports whether t is the end-of-text token.
func (t Token) IsEOT() bool {
	return t.Kind == EndOfText
}

// describe renders t for "found ..." parser messages.
func (t Token) describe() string {
	switch {
	case t.Kind == EndOfText:
		return "end of text"
	case t.Kind.IsKeyword() || t.Kind >= Colon && t.Kind <= Rbrace:
		return fmt.Sprintf("'%s'", t.Spelling)
	}
	return fmt.Sprintf("%s '%s'", t.Kind, t.Spelling)
}
