package ir

// Opcode identifies the operation an instruction performs.
type Opcode int

const (
	OpInvalid Opcode = iota
	OpPhi
	OpSelect
	OpInsertElement
	OpExtractElement
	OpBin
	OpCall
	OpRet
	OpDbgValue
)

func (o Opcode) String() string {
	switch o {
	case OpPhi:
		return "phi"
	case OpSelect:
		return "select"
	case OpInsertElement:
		return "insertelement"
	case OpExtractElement:
		return "extractelement"
	case OpBin:
		return "bin"
	case OpCall:
		return "call"
	case OpRet:
		return "ret"
	case OpDbgValue:
		return "dbg.value"
	default:
		return "op?"
	}
}

// BinKind enumerates supported binary operations.
type BinKind int

const (
	BinAdd BinKind = iota
	BinSub
	BinMul
	BinDiv
)

func (k BinKind) String() string {
	switch k {
	case BinAdd:
		return "add"
	case BinSub:
		return "sub"
	case BinMul:
		return "mul"
	case BinDiv:
		return "div"
	default:
		return "bin?"
	}
}

// Instr is a single instruction node. Instructions are values themselves and
// live on a doubly linked list inside their block. An instruction has zero or
// one debug location; absence is a normal state.
type Instr struct {
	valueBase
	Op       Opcode
	operands []Value

	blk        *Block
	prev, next *Instr
	loc        *DebugLoc

	// For OpBin.
	Bin BinKind
	// For OpCall.
	Callee string
	// For OpDbgValue: the source variable being described and the optional
	// bit-piece restriction. The tracked value is operand 0, behind the
	// metadata indirection.
	Var  *LocalVar
	Expr *Expr
}

func newInstr(op Opcode, t Type, name string, operands ...Value) *Instr {
	in := &Instr{valueBase: valueBase{typ: t, name: name}, Op: op}
	in.operands = make([]Value, len(operands))
	for i, v := range operands {
		in.operands[i] = v
		v.addUse(use{user: in, idx: i})
	}
	return in
}

// NewPhi creates a phi join of the incoming values.
func NewPhi(t Type, name string, incoming ...Value) *Instr {
	return newInstr(OpPhi, t, name, incoming...)
}

// NewSelect creates a value-level two-way conditional.
func NewSelect(name string, cond, ifTrue, ifFalse Value) *Instr {
	return newInstr(OpSelect, ifTrue.Type(), name, cond, ifTrue, ifFalse)
}

// NewInsertElement creates a vector insert: the result equals vec with the
// element at the constant index replaced by elt.
func NewInsertElement(name string, vec, elt, index Value) *Instr {
	return newInstr(OpInsertElement, vec.Type(), name, vec, elt, index)
}

// NewExtractElement creates a vector element read.
func NewExtractElement(name string, vec, index Value) *Instr {
	elem := vec.Type().(VectorType).Elem
	return newInstr(OpExtractElement, elem, name, vec, index)
}

// NewBin creates a binary arithmetic operation.
func NewBin(kind BinKind, name string, lhs, rhs Value) *Instr {
	in := newInstr(OpBin, lhs.Type(), name, lhs, rhs)
	in.Bin = kind
	return in
}

// NewCall creates a call to a named callee.
func NewCall(t Type, name, callee string, args ...Value) *Instr {
	in := newInstr(OpCall, t, name, args...)
	in.Callee = callee
	return in
}

// NewRet creates a return; v may be nil for a void return.
func NewRet(v Value) *Instr {
	if v == nil {
		return newInstr(OpRet, VoidType{}, "")
	}
	return newInstr(OpRet, VoidType{}, "", v)
}

// NewDebugValue creates a debug-value record binding v to the source variable
// lv, optionally restricted to the bit piece expr, at location loc. The
// tracked value goes through the context's metadata indirection so it can be
// found again via FindDebugValue-style lookups.
func NewDebugValue(ctx *Context, v Value, lv *LocalVar, expr *Expr, loc *DebugLoc) *Instr {
	mdv := ctx.MetadataValueFor(ctx.ValueMetaFor(v))
	in := newInstr(OpDbgValue, VoidType{}, "", mdv)
	in.Var = lv
	in.Expr = expr
	in.loc = loc
	return in
}

// AddOperand appends an operand. Used when wiring joins whose inputs are not
// all known at construction time.
func (in *Instr) AddOperand(v Value) {
	v.addUse(use{user: in, idx: len(in.operands)})
	in.operands = append(in.operands, v)
}

// NumOperands returns the operand count.
func (in *Instr) NumOperands() int { return len(in.operands) }

// Operand returns the i-th operand.
func (in *Instr) Operand(i int) Value { return in.operands[i] }

// SetOperand replaces the i-th operand, rewiring use lists. The old use is
// removed and the new one added before the slot is visible, so no caller can
// observe a half-updated edge.
func (in *Instr) SetOperand(i int, v Value) {
	old := in.operands[i]
	old.removeUse(use{user: in, idx: i})
	v.addUse(use{user: in, idx: i})
	in.operands[i] = v
}

// Loc returns the instruction's debug location, or nil.
func (in *Instr) Loc() *DebugLoc { return in.loc }

// SetLoc attaches a debug location.
func (in *Instr) SetLoc(loc *DebugLoc) { in.loc = loc }

// Parent returns the containing block, or nil when detached.
func (in *Instr) Parent() *Block { return in.blk }

// Function returns the containing function, or nil when detached.
func (in *Instr) Function() *Function {
	if in.blk == nil {
		return nil
	}
	return in.blk.fn
}

// Module returns the containing module, or nil when detached.
func (in *Instr) Module() *Module {
	f := in.Function()
	if f == nil {
		return nil
	}
	return f.mod
}

// Next returns the following instruction in the block, or nil.
func (in *Instr) Next() *Instr { return in.next }

// Prev returns the preceding instruction in the block, or nil.
func (in *Instr) Prev() *Instr { return in.prev }

// RemoveFromParent unlinks the instruction from its block. The instruction
// keeps its operands and uses and may be reinserted elsewhere.
func (in *Instr) RemoveFromParent() {
	b := in.blk
	if b == nil {
		return
	}
	if in.prev != nil {
		in.prev.next = in.next
	} else {
		b.head = in.next
	}
	if in.next != nil {
		in.next.prev = in.prev
	} else {
		b.tail = in.prev
	}
	in.blk, in.prev, in.next = nil, nil, nil
}

// InsertAfter links the instruction into pos's block immediately after pos.
// The instruction must be detached.
func (in *Instr) InsertAfter(pos *Instr) {
	b := pos.blk
	in.blk = b
	in.prev = pos
	in.next = pos.next
	if pos.next != nil {
		pos.next.prev = in
	} else {
		b.tail = in
	}
	pos.next = in
}
