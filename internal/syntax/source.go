package syntax

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EOT is the character reported by a CharSource past the end of its input.
const EOT rune = -1

// BadChar is the character reported for a byte that is not valid UTF-8.
// It is distinct from a correctly encoded U+FFFD.
const BadChar rune = -2

// CharSource yields the program text one character at a time. The scanner
// never seeks backward.
type CharSource interface {
	Current() rune   // current character, EOT at the end, BadChar if undecodable
	Pos() Pos        // position of the current character
	Next()           // advance by one character
	SkipRestOfLine() // advance past the next newline (or to EOT)
	Close() error    // release the underlying reader
}

// source is a CharSource over an in-memory copy of a reader's content.
type source struct {
	buf      []byte
	filename string
	line     int
	col      int
	ch       rune
	offs     int
	closer   io.Closer
}

// NewSource reads all of src and returns a CharSource positioned on its
// first character. If src is an io.Closer, Close closes it.
func NewSource(filename string, src io.Reader) (CharSource, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	s := &source{
		buf:      buf,
		filename: filename,
		line:     1,
		col:      0,
		ch:       EOT,
	}
	if c, ok := src.(io.Closer); ok {
		s.closer = c
	}
	s.Next()
	return s, nil
}

// NewStringSource is NewSource over an in-memory program text.
func NewStringSource(filename, text string) CharSource {
	s := &source{buf: []byte(text), filename: filename, line: 1, ch: EOT}
	s.Next()
	return s
}

func (s *source) Current() rune { return s.ch }

func (s *source) Pos() Pos { return NewPos(s.filename, s.line, s.col) }

// Next moves to the following character. (line, col) always describe s.ch;
// a newline bumps the line when the character after it is read.
func (s *source) Next() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = EOT
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		r = BadChar
	}
	s.ch = r
	s.offs += width
}

func (s *source) SkipRestOfLine() {
	for s.ch != '\n' && s.ch != EOT {
		s.Next()
	}
	if s.ch == '\n' {
		s.Next()
	}
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
