package ir

// Module is a compilation unit: globals, functions, debug tables and the
// target data layout. The module and everything it owns are mutated in place
// by at most one transformation at a time; that discipline is enforced by the
// host pipeline, not here.
type Module struct {
	Name string
	// Profile is the target profile recorded by the front end, e.g. "px_6_0".
	Profile string
	Layout  DataLayout

	Funcs   []*Function
	Globals []*Global
	// Debug is nil when the module was compiled without debug info.
	Debug *DebugInfo

	ctx    *Context
	target *TargetInfo
}

// NewModule creates an empty module bound to ctx.
func NewModule(ctx *Context, name string) *Module {
	return &Module{Name: name, ctx: ctx}
}

// Context returns the module's context.
func (m *Module) Context() *Context { return m.ctx }

// HasDebugInfo reports whether the front end recorded debug tables.
func (m *Module) HasDebugInfo() bool { return m.Debug != nil }

// NewFunction creates a function and appends it to the module.
func (m *Module) NewFunction(name string) *Function {
	f := &Function{Name: name, mod: m}
	m.Funcs = append(m.Funcs, f)
	return f
}

// NewGlobal creates a module-level variable.
func (m *Module) NewGlobal(t Type, name string) *Global {
	g := &Global{valueBase: valueBase{typ: t, name: name}, mod: m}
	m.Globals = append(m.Globals, g)
	return g
}

// Function is a collection of blocks plus an optional debug descriptor.
type Function struct {
	Name   string
	Params []*Argument
	Blocks []*Block
	// SP is the function's debug descriptor, nil without debug info.
	SP *Subprogram

	mod *Module
}

// Parent returns the containing module.
func (f *Function) Parent() *Module { return f.mod }

// NewParam creates a formal parameter.
func (f *Function) NewParam(t Type, name string) *Argument {
	a := &Argument{valueBase: valueBase{typ: t, name: name}, fn: f}
	f.Params = append(f.Params, a)
	return a
}

// NewBlock creates an empty block and appends it to the function.
func (f *Function) NewBlock(name string) *Block {
	b := &Block{Name: name, fn: f}
	f.Blocks = append(f.Blocks, b)
	return b
}
