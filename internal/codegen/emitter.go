package codegen

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/tamc/internal/contract"
	"github.com/you-not-fish/tamc/internal/tam"
)

// emitter accumulates TAM instructions. Forward jumps are emitted with a
// placeholder target and patched once the target address is known.
type emitter struct {
	code []tam.Instruction
}

// emit appends inst and returns its code address.
func (e *emitter) emit(inst tam.Instruction) int {
	addr := len(e.code)
	e.code = append(e.code, inst)
	if glog.V(7) {
		glog.V(7).Infof("emit %d: %s", addr, inst)
	}
	return addr
}

// here returns the address of the next instruction.
func (e *emitter) here() int {
	return len(e.code)
}

// emitJump emits JUMP to target.
func (e *emitter) emitJump(target int) int {
	return e.emit(tam.Instruction{Op: tam.JUMP, R: tam.CB, D: target})
}

// emitForward emits a JUMP (op == tam.JUMP) or JUMPIF(n) whose target is
// not known yet; patch fixes it.
func (e *emitter) emitForward(op tam.Op, n int) int {
	return e.emit(tam.Instruction{Op: op, R: tam.CB, N: n, D: -1})
}

// patch points the forward jump at addr to the next instruction.
func (e *emitter) patch(addr int) {
	contract.Assertf(addr >= 0 && addr < len(e.code), "patch address %d out of range", addr)
	inst := &e.code[addr]
	contract.Assertf(inst.Op.Info().IsJump && inst.D == -1, "patching %s at %d", inst, addr)
	inst.D = e.here()
}

// emitLoadL emits LOADL d.
func (e *emitter) emitLoadL(d int) {
	e.emit(tam.Instruction{Op: tam.LOADL, D: d})
}

// emitPrim emits a call of primitive routine p.
func (e *emitter) emitPrim(p tam.Primitive) {
	e.emit(tam.Instruction{Op: tam.CALL, R: tam.PB, N: int(tam.SB), D: p.Displacement()})
}

// emitPop emits POP(0) d, discarding d words. Nothing is emitted for d == 0.
func (e *emitter) emitPop(d int) {
	if d > 0 {
		e.emit(tam.Instruction{Op: tam.POP, N: 0, D: d})
	}
}
