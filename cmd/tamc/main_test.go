package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

// execute runs the command line args and returns stdout, stderr and the
// command's error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompileCommand(t *testing.T) {
	src := writeTempFile(t, "ok.tri", "let var x : integer in { x := 2; putint(x) }")

	out, errOut, err := execute(t, "compile", src)
	require.NoError(t, err)
	assert.Equal(t, `0: PUSH 1
1: LOADL 2
2: STORE(1) 0[SB]
3: LOAD(1) 0[SB]
4: CALL putint
5: POP(0) 1
6: HALT
`, out)
	assert.Equal(t, src+": 7 instructions, 1 words of storage\n", errOut)
}

func TestCompileCommandOutputFile(t *testing.T) {
	src := writeTempFile(t, "ok.tri", "putint(1)")
	dst := filepath.Join(t.TempDir(), "ok.tam")
	cfg := writeTempFile(t, "tamc.yaml", "listing: false\n")

	out, _, err := execute(t, "compile", "--config", cfg, "-o", dst, src)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "0: LOADL 1\n1: CALL putint\n2: HALT\n", string(b))
}

func TestCompileCommandDiagnostics(t *testing.T) {
	src := writeTempFile(t, "bad.tri", "if 1 then pass else pass endif")

	out, errOut, err := execute(t, "compile", src)
	assert.Equal(t, errDiagnostics, err)
	assert.Empty(t, out)
	assert.Equal(t, src+":1:4: non-boolean condition in if command (type integer)\n", errOut)
}

func TestCompileCommandReportsEveryDiagnostic(t *testing.T) {
	src := writeTempFile(t, "bad.tri", "putint(x); putint(y)")

	out, errOut, err := execute(t, "compile", src)
	assert.Equal(t, errDiagnostics, err)
	assert.Empty(t, out)
	assert.Equal(t, "2 errors occurred:\n"+
		"\t"+src+":1:8: undeclared identifier x\n"+
		"\t"+src+":1:19: undeclared identifier y\n", errOut)
}

func TestLenientFlag(t *testing.T) {
	src := writeTempFile(t, "short.tri", "if true then pass else pass")

	_, errOut, err := execute(t, "compile", src)
	assert.Equal(t, errDiagnostics, err)
	assert.Contains(t, errOut, "expected 'endif' but found end of text")

	_, _, err = execute(t, "compile", "--lenient", src)
	assert.NoError(t, err)
}

func TestTokensCommand(t *testing.T) {
	src := writeTempFile(t, "t.tri", "x := 'a'")

	out, errOut, err := execute(t, "tokens", src)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "POSITION")
	assert.Contains(t, out, `"x"`)
	assert.Contains(t, out, `"'a'"`)
	assert.Contains(t, out, src+":1:1")
}

func TestASTCommand(t *testing.T) {
	src := writeTempFile(t, "a.tri", "x := 1")

	tests := []struct {
		format string
		want   string
	}{
		{"text", "AssignCmd"},
		{"json", `"type": "AssignCmd"`},
		{"yaml", "type: AssignCmd"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := execute(t, "ast", "--format", tt.format, src)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, _, err := execute(t, "ast", "--format", "xml", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestCheckCommand(t *testing.T) {
	src := writeTempFile(t, "c.tri", "let var x : integer in x := 1")

	out, errOut, err := execute(t, "check", src)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "LetCmd")
	assert.Contains(t, out, "frame size: 1")

	bad := writeTempFile(t, "bad.tri", "y := 1")
	out, errOut, err = execute(t, "check", "-q", bad)
	assert.Equal(t, errDiagnostics, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "undeclared identifier y")
}

func TestMissingFile(t *testing.T) {
	_, _, err := execute(t, "compile", filepath.Join(t.TempDir(), "nope.tri"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening source")
}

func TestBadConfig(t *testing.T) {
	src := writeTempFile(t, "ok.tri", "pass")
	cfg := writeTempFile(t, "tamc.yaml", "maxErrors: -3\n")

	_, _, err := execute(t, "compile", "--config", cfg, src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxErrors must not be negative")
}

func TestArgsRequired(t *testing.T) {
	_, _, err := execute(t, "compile")
	assert.Error(t, err)
}
