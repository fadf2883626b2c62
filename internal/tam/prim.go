package tam

// Primitive identifies a primitive routine; its value is the routine's
// displacement from PB.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimID
	PrimNot
	PrimAnd
	PrimOr
	PrimSucc
	PrimPred
	PrimNeg
	PrimAdd
	PrimSub
	PrimMult
	PrimDiv
	PrimMod
	PrimLt
	PrimLe
	PrimGe
	PrimGt
	PrimEq
	PrimNe
	PrimEol
	PrimEof
	PrimGet
	PrimPut
	PrimGeteol
	PrimPuteol
	PrimGetint
	PrimPutint
	PrimNew
	PrimDispose
)

var primNames = [...]string{
	PrimNone:    "none",
	PrimID:      "id",
	PrimNot:     "not",
	PrimAnd:     "and",
	PrimOr:      "or",
	PrimSucc:    "succ",
	PrimPred:    "pred",
	PrimNeg:     "neg",
	PrimAdd:     "add",
	PrimSub:     "sub",
	PrimMult:    "mult",
	PrimDiv:     "div",
	PrimMod:     "mod",
	PrimLt:      "lt",
	PrimLe:      "le",
	PrimGe:      "ge",
	PrimGt:      "gt",
	PrimEq:      "eq",
	PrimNe:      "ne",
	PrimEol:     "eol",
	PrimEof:     "eof",
	PrimGet:     "get",
	PrimPut:     "put",
	PrimGeteol:  "geteol",
	PrimPuteol:  "puteol",
	PrimGetint:  "getint",
	PrimPutint:  "putint",
	PrimNew:     "new",
	PrimDispose: "dispose",
}

// String returns the routine name used in listings.
func (p Primitive) String() string {
	if p >= 0 && int(p) < len(primNames) {
		return primNames[p]
	}
	return "prim?"
}

// Displacement returns the routine's offset from PB.
func (p Primitive) Displacement() int {
	return int(p)
}

// NeedsSize reports whether the routine takes an extra size operand pushed
// after its arguments (the equality tests compare n-word values).
func (p Primitive) NeedsSize() bool {
	return p == PrimEq || p == PrimNe
}

// PrimitiveAt returns the primitive whose displacement from PB is d.
func PrimitiveAt(d int) (Primitive, bool) {
	if d <= int(PrimNone) || d >= len(primNames) {
		return PrimNone, false
	}
	return Primitive(d), true
}
