package tam

import (
	"fmt"
	"io"
	"strings"
)

// Instruction is one TAM instruction in logical form.
type Instruction struct {
	Op Op
	R  Register // base register for LOAD, LOADA, STORE, CALL, JUMP, JUMPIF
	N  int      // size, count or test value
	D  int      // displacement, literal or address
}

// String renders the instruction in the conventional TAM listing syntax,
// e.g. "LOAD(1) 0[SB]", "CALL add", "JUMPIF(0) 12[CB]".
func (i Instruction) String() string {
	info := i.Op.Info()
	var b strings.Builder
	b.WriteString(info.Name)

	switch i.Op {
	case CALL:
		if i.R == PB {
			if p, ok := PrimitiveAt(i.D); ok {
				fmt.Fprintf(&b, " %s", p)
				return b.String()
			}
		}
		fmt.Fprintf(&b, "(%s) %d[%s]", Register(i.N), i.D, i.R)
		return b.String()
	case POP, RETURN:
		fmt.Fprintf(&b, "(%d) %d", i.N, i.D)
		return b.String()
	}

	if info.HasN {
		fmt.Fprintf(&b, "(%d)", i.N)
	}
	switch {
	case info.HasR:
		fmt.Fprintf(&b, " %d[%s]", i.D, i.R)
	case info.HasD:
		fmt.Fprintf(&b, " %d", i.D)
	}
	return b.String()
}

// Program is an ordered instruction sequence; the instruction at index i
// lives at code address i (relative to CB).
type Program struct {
	Code []Instruction
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Code)
}

// Fprint writes the listing of p to w, one instruction per line:
//
//	0: PUSH 1
//	1: LOADL 5
//	2: STORE(1) 0[SB]
func Fprint(w io.Writer, p *Program) error {
	width := 1
	if n := len(p.Code); n > 0 {
		width = len(fmt.Sprint(n - 1))
	}
	for addr, inst := range p.Code {
		if _, err := fmt.Fprintf(w, "%*d: %s\n", width, addr, inst); err != nil {
			return err
		}
	}
	return nil
}

// String returns the listing of p.
func (p *Program) String() string {
	var b strings.Builder
	_ = Fprint(&b, p)
	return b.String()
}
