package ir

// TargetInfo is the module-level pipeline state. It is materialized lazily
// from the fields the front end recorded on the module, and cached on it; an
// explicit optional field with a get-or-create accessor, not a global
// registry.
type TargetInfo struct {
	Profile string

	mod   *Module
	index *DebugIndex
}

// HasTargetInfo reports whether the module has materialized its target state.
func (m *Module) HasTargetInfo() bool { return m.target != nil }

// GetOrCreateTargetInfo materializes the target state on first call and
// returns the cached instance afterwards.
func (m *Module) GetOrCreateTargetInfo() *TargetInfo {
	if m.target == nil {
		m.target = &TargetInfo{Profile: m.Profile, mod: m}
	}
	return m.target
}

// GetOrCreateDebugIndex returns the cached debug-info index, building it on
// first call.
func (t *TargetInfo) GetOrCreateDebugIndex() *DebugIndex {
	if t.index == nil {
		t.index = BuildDebugIndex(t.mod)
	}
	return t.index
}
