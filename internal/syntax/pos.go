package syntax

import "fmt"

// Pos is the line and column of the first character of a token or
// construct. The zero value is an invalid position; NoPos names it.
type Pos struct {
	filename string
	line     int // 1-based
	col      int // 1-based, counted in characters
}

// NoPos is the position of built-in declarations.
var NoPos Pos

// NewPos returns the position line:col in filename.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns "filename:line:col", or "line:col" without a filename.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether p denotes a source location.
func (p Pos) IsValid() bool {
	return p.line > 0
}

func (p Pos) Line() int        { return p.line }
func (p Pos) Col() int         { return p.col }
func (p Pos) Filename() string { return p.filename }

// Before reports whether p comes strictly before q in the same file.
func (p Pos) Before(q Pos) bool {
	return p.line < q.line || p.line == q.line && p.col < q.col
}
