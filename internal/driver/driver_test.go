package driver

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/tamc/internal/config"
	"github.com/you-not-fish/tamc/internal/syntax"
	"github.com/you-not-fish/tamc/internal/tam"
)

func compile(t *testing.T, src string, cfg *config.Config) *Result {
	t.Helper()
	res, err := Compile("prog.tri", strings.NewReader(src), cfg)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestCompile(t *testing.T) {
	res := compile(t, "let var x : integer in { x := 40 + 2; putint(x) }", nil)

	assert.True(t, res.OK())
	assert.Empty(t, res.Diagnostics.Messages())
	require.NotNil(t, res.Code)
	assert.Equal(t, tam.HALT, res.Code.Code[res.Code.Len()-1].Op)
	assert.Equal(t, 1, res.Info.FrameSize)
	assert.True(t, res.Tokens[len(res.Tokens)-1].IsEOT())
}

func TestCompileDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "lexical",
			src:  "putint(#)",
			want: []string{
				"prog.tri:1:8: unexpected character '#'",
			},
		},
		{
			name: "invalid_utf8_char_literal",
			src:  "put('\xff')",
			want: []string{
				"prog.tri:1:5: invalid UTF-8 encoding in character literal",
			},
		},
		{
			name: "syntax_and_semantic",
			src:  "{ x := ; y := 1 }",
			want: []string{
				"prog.tri:1:8: expected expression",
				"prog.tri:1:3: undeclared identifier x",
				"prog.tri:1:10: undeclared identifier y",
			},
		},
		{
			name: "stray_token",
			src:  "putint(1) ); putint(nosuch)",
			want: []string{
				"prog.tri:1:11: expected end of text but found ')'",
				"prog.tri:1:21: undeclared identifier nosuch",
			},
		},
		{
			name: "error_token_command",
			src:  "#; putint(nosuch)",
			want: []string{
				"prog.tri:1:1: unexpected character '#'",
				"prog.tri:1:11: undeclared identifier nosuch",
			},
		},
		{
			name: "semantic",
			src:  "let var b : boolean in b := 1",
			want: []string{
				"prog.tri:1:29: type mismatch: cannot assign integer to b of type boolean",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compile(t, tt.src, nil)
			assert.False(t, res.OK())
			assert.Nil(t, res.Code, "no code may be generated after a diagnostic")
			assert.Equal(t, tt.want, res.Diagnostics.Messages())
			require.Error(t, res.Diagnostics.Err())
		})
	}
}

func TestRunStopsAtStage(t *testing.T) {
	src := "putint(1)"
	tests := []struct {
		last                     Stage
		program, info, generated bool
	}{
		{Scan, false, false, false},
		{Parse, true, false, false},
		{Check, true, true, false},
		{Generate, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.last.String(), func(t *testing.T) {
			res, err := Run("", strings.NewReader(src), nil, tt.last)
			require.NoError(t, err)
			assert.NotEmpty(t, res.Tokens)
			assert.Equal(t, tt.program, res.Program != nil)
			assert.Equal(t, tt.info, res.Info != nil)
			assert.Equal(t, tt.generated, res.Code != nil)
		})
	}
}

func TestCompileLenient(t *testing.T) {
	src := "if true then pass else pass"

	strict := compile(t, src, nil)
	assert.Equal(t, []string{"prog.tri:1:28: expected 'endif' but found end of text"}, strict.Diagnostics.Messages())

	cfg := config.Default()
	cfg.Lenient = true
	lenient := compile(t, src, cfg)
	assert.True(t, lenient.OK())
	assert.NotNil(t, lenient.Code)
}

func TestCompileErrorLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxErrors = 2

	res, err := Run("", strings.NewReader(strings.Repeat("if ", 10)), cfg, Parse)
	require.NoError(t, err)
	msgs := res.Diagnostics.Messages()
	require.Len(t, msgs, 3)
	assert.True(t, strings.HasSuffix(msgs[2], "too many errors; aborting parse"))
}

func TestCompileReadError(t *testing.T) {
	_, err := Compile("broken.tri", iotest.ErrReader(assert.AnError), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading broken.tri")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "scan", Scan.String())
	assert.Equal(t, "generate", Generate.String())
	assert.Equal(t, "stage?", Stage(42).String())
}

func TestResultProgramIsChecked(t *testing.T) {
	res := compile(t, "let const c ~ 'x' in put(c)", nil)
	require.True(t, res.OK())

	syntax.Inspect(res.Program, func(n syntax.Node) bool {
		if id, ok := n.(*syntax.Ident); ok {
			assert.NotNil(t, id.Decl, "unresolved %s at %s", id.Value, id.Pos())
		}
		return true
	})
}
