package syntax

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/golang/glog"
)

// ErrorHandler receives one diagnostic per call.
type ErrorHandler func(pos Pos, msg string)

// Scanner turns a CharSource into tokens. Malformed lexemes become Error
// tokens and are reported to the error handler; scanning always continues.
type Scanner struct {
	src  CharSource
	errh ErrorHandler

	spelling strings.Builder
}

// NewScanner returns a scanner reading from src. errh may be nil, in which
// case lexical errors are still tokenized but not reported.
func NewScanner(src CharSource, errh ErrorHandler) *Scanner {
	return &Scanner{src: src, errh: errh}
}

// Next scans the next token. Once the input is exhausted it keeps returning
// EndOfText.
func (s *Scanner) Next() Token {
	s.skipSeparators()

	pos := s.src.Pos()
	kind, msg := s.scanToken()
	tok := Token{Kind: kind, Spelling: s.spelling.String(), Pos: pos}
	if glog.V(5) {
		glog.V(5).Infof("scanned %s", tok)
	}

	if kind == Error && s.errh != nil {
		s.errh(pos, msg)
	}
	return tok
}

// GetAllTokens scans the whole input and closes the source. The result
// always ends with exactly one EndOfText token.
func (s *Scanner) GetAllTokens() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.IsEOT() {
			break
		}
	}
	if err := s.src.Close(); err != nil {
		glog.Warningf("closing source: %v", err)
	}
	return tokens
}

// skipSeparators skips whitespace and '!' comments.
func (s *Scanner) skipSeparators() {
	for {
		switch ch := s.src.Current(); {
		case ch == '!':
			s.src.SkipRestOfLine()
		case isWhitespace(ch):
			s.src.Next()
		default:
			return
		}
	}
}

// take appends the current character to the spelling and advances.
func (s *Scanner) take() {
	s.spelling.WriteRune(s.src.Current())
	s.src.Next()
}

// scanToken scans one lexeme into s.spelling. For Error tokens it also
// returns the diagnostic text.
func (s *Scanner) scanToken() (Kind, string) {
	s.spelling.Reset()

	ch := s.src.Current()
	switch {
	case ch == EOT:
		return EndOfText, ""

	case unicode.IsLetter(ch):
		return s.scanIdent()

	case isDigit(ch):
		return s.scanInt()

	case ch == BadChar:
		s.take()
		return Error, "invalid UTF-8 encoding"

	case isOperator(ch):
		s.take()
		return Operator, ""

	case ch == '\'':
		return s.scanChar()
	}

	s.take()
	switch ch {
	case ':':
		if s.src.Current() == '=' {
			s.take()
			return Becomes, ""
		}
		return Colon, ""
	case ';':
		return Semicolon, ""
	case '~':
		return Is, ""
	case '(':
		return Lparen, ""
	case ')':
		return Rparen, ""
	case '{':
		return Lbrace, ""
	case '}':
		return Rbrace, ""
	}
	return Error, fmt.Sprintf("unexpected character %q", ch)
}

// scanIdent scans a run of letters and digits, a run of underscores and
// another run of letters and digits, then applies the naming rule.
func (s *Scanner) scanIdent() (Kind, string) {
	for isLetterOrDigit(s.src.Current()) {
		s.take()
	}

	seps := 0
	for s.src.Current() == '_' {
		s.take()
		seps++
	}

	trailing := 0
	for isLetterOrDigit(s.src.Current()) {
		s.take()
		trailing++
	}

	name := s.spelling.String()
	if malformedName(name, seps, trailing) {
		return Error, fmt.Sprintf("malformed identifier %q", name)
	}
	return LookupKeyword(name), ""
}

// malformedName is the exclusive or of three properties of the whole
// lexeme: more than one underscore, characters after the underscores, and
// an upper-case letter anywhere. An odd number of them makes it malformed.
func malformedName(name string, seps, trailing int) bool {
	manySeps := seps > 1
	tail := trailing > 0
	upper := strings.IndexFunc(name, unicode.IsUpper) >= 0
	return manySeps != tail != upper
}

// scanInt scans a run of letters and digits; any letter makes it malformed.
func (s *Scanner) scanInt() (Kind, string) {
	letters := 0
	for ch := s.src.Current(); isLetterOrDigit(ch); ch = s.src.Current() {
		if unicode.IsLetter(ch) {
			letters++
		}
		s.take()
	}
	if letters > 0 {
		return Error, fmt.Sprintf("malformed integer literal %q", s.spelling.String())
	}
	return IntLiteral, ""
}

// scanChar scans 'c': exactly one character between quotes.
func (s *Scanner) scanChar() (Kind, string) {
	s.take() // opening '
	switch s.src.Current() {
	case EOT:
		return Error, "unterminated character literal"
	case BadChar:
		s.take()
		if s.src.Current() == '\'' {
			s.take()
		}
		return Error, "invalid UTF-8 encoding in character literal"
	}
	s.take()
	if s.src.Current() != '\'' {
		return Error, fmt.Sprintf("unterminated character literal %s", s.spelling.String())
	}
	s.take()
	return CharLiteral, ""
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isDigit accepts ASCII digits only; other Unicode digits are not numerals.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r)
}

// isOperator reports whether r is a single-character operator.
func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '<', '>', '=', '\\':
		return true
	}
	return false
}
