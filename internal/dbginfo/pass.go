package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// LoadTargetInfoPass materializes the module's target state ahead of any
// transformation that relies on it. Idempotent: a module that already
// materialized its state is reported unchanged.
type LoadTargetInfoPass struct{}

// Name implements pass naming.
func (LoadTargetInfoPass) Name() string { return "prism-load-target-info" }

// Run materializes the target state if absent.
func (LoadTargetInfoPass) Run(m *ir.Module) (bool, error) {
	if !m.HasTargetInfo() {
		m.GetOrCreateTargetInfo()
		return true, nil
	}
	return false, nil
}

// ScatterPass applies ScatterDebugValue to every insertelement in the module.
// Only chain heads carrying a record actually scatter, so sweeping whole
// functions is safe; the pass still must not run twice over the same chain
// (see ScatterDebugValue).
type ScatterPass struct{}

// Name implements pass naming.
func (ScatterPass) Name() string { return "prism-scatter-dbg-values" }

// Run scatters every record-bearing vector construction chain in m.
func (ScatterPass) Run(m *ir.Module) (bool, error) {
	changed := false
	ctx := m.Context()
	for _, f := range m.Funcs {
		for _, b := range f.Blocks {
			for _, in := range b.Instrs() {
				if in.Op != ir.OpInsertElement {
					continue
				}
				if FindDebugValue(ctx, in) == nil {
					continue
				}
				ScatterDebugValue(ctx, in)
				changed = true
			}
		}
	}
	return changed, nil
}
