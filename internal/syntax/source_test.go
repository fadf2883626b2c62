package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcePositions(t *testing.T) {
	s := NewStringSource("f.tri", "ab\nc")
	var got []string
	for s.Current() != EOT {
		got = append(got, string(s.Current())+"@"+s.Pos().String())
		s.Next()
	}
	assert.Equal(t, []string{"a@f.tri:1:1", "b@f.tri:1:2", "\n@f.tri:1:3", "c@f.tri:2:1"}, got)
}

func TestSourceUnicode(t *testing.T) {
	s := NewStringSource("", "é!")
	assert.Equal(t, 'é', s.Current())
	s.Next()
	assert.Equal(t, '!', s.Current())
	assert.Equal(t, "1:2", s.Pos().String())
}

func TestSourceInvalidUTF8(t *testing.T) {
	s := NewStringSource("", "\xffa\uFFFD")
	assert.Equal(t, BadChar, s.Current())
	s.Next()
	assert.Equal(t, 'a', s.Current())
	assert.Equal(t, "1:2", s.Pos().String())
	s.Next()
	assert.Equal(t, '\uFFFD', s.Current())
}

func TestSkipRestOfLine(t *testing.T) {
	s := NewStringSource("", "! comment\nx")
	s.SkipRestOfLine()
	assert.Equal(t, 'x', s.Current())
	assert.Equal(t, "2:1", s.Pos().String())

	s = NewStringSource("", "! no newline")
	s.SkipRestOfLine()
	assert.Equal(t, EOT, s.Current())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestNewSourceReadError(t *testing.T) {
	_, err := NewSource("f.tri", failingReader{})
	require.Error(t, err)
	assert.Equal(t, "reading f.tri: disk on fire", err.Error())
}

func TestPos(t *testing.T) {
	assert.Equal(t, "-", NoPos.String())
	assert.False(t, NoPos.IsValid())
	p := NewPos("", 2, 5)
	assert.Equal(t, "2:5", p.String())
	assert.True(t, NewPos("", 1, 9).Before(p))
	assert.False(t, p.Before(p))
}
