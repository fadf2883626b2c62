package tam

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionString(t *testing.T) {
	tests := []struct {
		inst Instruction
		want string
	}{
		{Instruction{Op: LOAD, R: SB, N: 1, D: 3}, "LOAD(1) 3[SB]"},
		{Instruction{Op: LOADA, R: SB, D: 0}, "LOADA 0[SB]"},
		{Instruction{Op: LOADL, D: 42}, "LOADL 42"},
		{Instruction{Op: STORE, R: SB, N: 1, D: 2}, "STORE(1) 2[SB]"},
		{Instruction{Op: CALL, R: PB, N: int(SB), D: PrimAdd.Displacement()}, "CALL add"},
		{Instruction{Op: CALL, R: CB, N: int(LB), D: 17}, "CALL(LB) 17[CB]"},
		{Instruction{Op: PUSH, D: 2}, "PUSH 2"},
		{Instruction{Op: POP, N: 0, D: 2}, "POP(0) 2"},
		{Instruction{Op: JUMP, R: CB, D: 9}, "JUMP 9[CB]"},
		{Instruction{Op: JUMPIF, R: CB, N: 0, D: 12}, "JUMPIF(0) 12[CB]"},
		{Instruction{Op: HALT}, "HALT"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inst.String())
		})
	}
}

func TestPrimitiveTable(t *testing.T) {
	assert.Equal(t, 1, PrimID.Displacement())
	assert.Equal(t, 8, PrimAdd.Displacement())
	assert.Equal(t, 17, PrimEq.Displacement())
	assert.Equal(t, 26, PrimPutint.Displacement())
	assert.Equal(t, 28, PrimDispose.Displacement())

	p, ok := PrimitiveAt(16)
	assert.True(t, ok)
	assert.Equal(t, PrimGt, p)

	_, ok = PrimitiveAt(0)
	assert.False(t, ok)
	_, ok = PrimitiveAt(29)
	assert.False(t, ok)

	assert.True(t, PrimEq.NeedsSize())
	assert.True(t, PrimNe.NeedsSize())
	assert.False(t, PrimAdd.NeedsSize())
}

func TestProgramListing(t *testing.T) {
	p := &Program{Code: []Instruction{
		{Op: LOADL, D: 1},
		{Op: CALL, R: PB, N: int(SB), D: PrimPutint.Displacement()},
		{Op: HALT},
	}}

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "0: LOADL 1\n1: CALL putint\n2: HALT\n", p.String())
}

func TestProgramListingWidth(t *testing.T) {
	tests := []struct {
		n     int
		first string
		last  string
	}{
		{1, "0: HALT", "0: HALT"},
		{10, "0: HALT", "9: HALT"},
		{11, " 0: HALT", "10: HALT"},
		{101, "  0: HALT", "100: HALT"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			p := &Program{Code: make([]Instruction, tt.n)}
			for i := range p.Code {
				p.Code[i] = Instruction{Op: HALT}
			}
			lines := strings.Split(strings.TrimSuffix(p.String(), "\n"), "\n")
			require.Len(t, lines, tt.n)
			assert.Equal(t, tt.first, lines[0])
			assert.Equal(t, tt.last, lines[tt.n-1])
		})
	}

	assert.Empty(t, (&Program{}).String())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "JUMPIF", JUMPIF.String())
	assert.Equal(t, "unknown", Op(99).String())
	assert.Equal(t, "SB", SB.String())
	assert.Equal(t, "R?", Register(-1).String())
}
