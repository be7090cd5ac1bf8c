package ir

// Context owns the interned metadata wrappers and the installed diagnostic
// handler. One context serves one module graph; the engine is single-writer
// by contract, so no locking is done here.
type Context struct {
	valueMeta map[Value]*ValueMeta
	mdValue   map[Metadata]*MetadataValue
	handler   DiagnosticHandler
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		valueMeta: make(map[Value]*ValueMeta),
		mdValue:   make(map[Metadata]*MetadataValue),
	}
}

// ValueMetaFor returns the interned metadata wrapper for v, creating it on
// first use.
func (c *Context) ValueMetaFor(v Value) *ValueMeta {
	if vm, ok := c.valueMeta[v]; ok {
		return vm
	}
	vm := &ValueMeta{V: v}
	c.valueMeta[v] = vm
	return vm
}

// ValueMetaIfExists returns the interned metadata wrapper for v, or nil when
// v was never wrapped.
func (c *Context) ValueMetaIfExists(v Value) *ValueMeta {
	return c.valueMeta[v]
}

// MetadataValueFor returns the interned value wrapper for md, creating it on
// first use.
func (c *Context) MetadataValueFor(md Metadata) *MetadataValue {
	if mv, ok := c.mdValue[md]; ok {
		return mv
	}
	mv := &MetadataValue{valueBase: valueBase{typ: MetaType{}}, MD: md}
	c.mdValue[md] = mv
	return mv
}

// MetadataValueIfExists returns the interned value wrapper for md, or nil
// when md was never wrapped.
func (c *Context) MetadataValueIfExists(md Metadata) *MetadataValue {
	return c.mdValue[md]
}

// SetDiagnosticHandler installs the sink that receives diagnostics from this
// context. A nil handler silently drops them.
func (c *Context) SetDiagnosticHandler(h DiagnosticHandler) { c.handler = h }

// Diagnose forwards d to the installed handler, if any. Diagnosing never
// fails and never touches the instruction graph.
func (c *Context) Diagnose(d Diagnostic) {
	if c.handler != nil {
		c.handler.HandleDiagnostic(d)
	}
}
