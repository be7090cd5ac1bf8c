package ir

// Value is anything an instruction operand can reference: instructions,
// constants, arguments, globals and wrapped metadata. Every value keeps a
// reverse-edge list of the instructions using it.
type Value interface {
	Type() Type
	Name() string
	// Users returns the instructions using this value, one entry per operand
	// slot. The enumeration order is the order uses were added and carries no
	// semantic meaning.
	Users() []*Instr

	addUse(u use)
	removeUse(u use)
}

// use records one operand slot of a using instruction.
type use struct {
	user *Instr
	idx  int
}

// valueBase carries the type, name and use list shared by all values.
type valueBase struct {
	typ  Type
	name string
	uses []use
}

func (v *valueBase) Type() Type   { return v.typ }
func (v *valueBase) Name() string { return v.name }

func (v *valueBase) Users() []*Instr {
	out := make([]*Instr, len(v.uses))
	for i, u := range v.uses {
		out[i] = u.user
	}
	return out
}

func (v *valueBase) addUse(u use) { v.uses = append(v.uses, u) }

func (v *valueBase) removeUse(u use) {
	for i := range v.uses {
		if v.uses[i] == u {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}

// ConstInt is an integer constant.
type ConstInt struct {
	valueBase
	Val uint64
}

// NewConstInt creates an integer constant of type t.
func NewConstInt(t Type, val uint64) *ConstInt {
	return &ConstInt{valueBase: valueBase{typ: t}, Val: val}
}

// Undef is the undefined value of a given type.
type Undef struct{ valueBase }

// NewUndef creates an undefined value of type t.
func NewUndef(t Type) *Undef {
	return &Undef{valueBase: valueBase{typ: t}}
}

// Argument is a formal parameter of a function.
type Argument struct {
	valueBase
	fn *Function
}

// Parent returns the function the argument belongs to.
func (a *Argument) Parent() *Function { return a.fn }

// Global is a module-level variable.
type Global struct {
	valueBase
	mod *Module
}

// Parent returns the module the global belongs to.
func (g *Global) Parent() *Module { return g.mod }
