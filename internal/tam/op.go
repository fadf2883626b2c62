// Package tam describes the Triangle Abstract Machine as seen by the code
// generator: its opcodes, registers and primitive routines.
//
// The machine itself (instruction encoding and execution) lives elsewhere;
// this package only owns the logical instruction sequence.
package tam

// Op is a TAM opcode.
type Op int

const (
	LOAD   Op = iota // LOAD(n) d[r]: push n words fetched from d[r]
	LOADA            // LOADA d[r]: push the address d[r]
	LOADI            // LOADI(n): pop an address, push n words from it
	LOADL            // LOADL d: push the literal d
	STORE            // STORE(n) d[r]: pop n words into d[r]
	STOREI           // STOREI(n): pop an address, pop n words into it
	CALL             // CALL(n) d[r]: call the routine at d[r]
	CALLI            // CALLI: call a closure popped from the stack
	RETURN           // RETURN(n) d: return n result words, pop d argument words
	PUSH             // PUSH d: reserve d words on the stack top
	POP              // POP(n) d: pop d words below the top n words
	JUMP             // JUMP d[r]
	JUMPI            // JUMPI: jump to an address popped from the stack
	JUMPIF           // JUMPIF(n) d[r]: pop a word, jump if it equals n
	HALT             // HALT
)

// OpInfo describes the operand shape of an opcode.
type OpInfo struct {
	Name    string
	HasN    bool // the n field is meaningful
	HasR    bool // the displacement is register-relative
	HasD    bool // the d field is meaningful
	IsJump  bool // d is a code address
	IsStore bool // writes memory
}

var opInfoTable = [...]OpInfo{
	LOAD:   {Name: "LOAD", HasN: true, HasR: true, HasD: true},
	LOADA:  {Name: "LOADA", HasR: true, HasD: true},
	LOADI:  {Name: "LOADI", HasN: true},
	LOADL:  {Name: "LOADL", HasD: true},
	STORE:  {Name: "STORE", HasN: true, HasR: true, HasD: true, IsStore: true},
	STOREI: {Name: "STOREI", HasN: true, IsStore: true},
	CALL:   {Name: "CALL", HasN: true, HasR: true, HasD: true},
	CALLI:  {Name: "CALLI"},
	RETURN: {Name: "RETURN", HasN: true, HasD: true},
	PUSH:   {Name: "PUSH", HasD: true},
	POP:    {Name: "POP", HasN: true, HasD: true},
	JUMP:   {Name: "JUMP", HasR: true, HasD: true, IsJump: true},
	JUMPI:  {Name: "JUMPI"},
	JUMPIF: {Name: "JUMPIF", HasN: true, HasR: true, HasD: true, IsJump: true},
	HALT:   {Name: "HALT"},
}

// String returns the mnemonic of the opcode.
func (o Op) String() string {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o].Name
	}
	return "unknown"
}

// Info returns the OpInfo for this opcode.
func (o Op) Info() OpInfo {
	if o >= 0 && int(o) < len(opInfoTable) {
		return opInfoTable[o]
	}
	return OpInfo{Name: "unknown"}
}

// Register is a TAM register number.
type Register int

const (
	CB Register = iota // code base
	CT                 // code top
	PB                 // primitives base
	PT                 // primitives top
	SB                 // stack base
	ST                 // stack top
	HB                 // heap base
	HT                 // heap top
	LB                 // local base
	L1                 // local base, one level out
	L2
	L3
	L4
	L5
	L6
	CP // code pointer
)

var registerNames = [...]string{
	CB: "CB", CT: "CT", PB: "PB", PT: "PT",
	SB: "SB", ST: "ST", HB: "HB", HT: "HT",
	LB: "LB", L1: "L1", L2: "L2", L3: "L3",
	L4: "L4", L5: "L5", L6: "L6", CP: "CP",
}

func (r Register) String() string {
	if r >= 0 && int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "R?"
}

// Word sizes and limits of the machine.
const (
	WordSize   = 1     // every scalar occupies one word
	MaxInt     = 32767 // largest integer literal representable in a word
	True       = 1
	False      = 0
	CodeSize   = 32768
	StackLimit = 32768
)
