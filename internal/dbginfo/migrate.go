package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// MigrateDebugValue rebinds the debug-value record for old, if any, to track
// newVal instead, so the annotation follows a rewrite that replaced old's
// result. When newVal is itself an instruction the record is also moved to
// sit immediately after it, unless it already does. The record's variable,
// expression and location are untouched. No record bound to old: no-op.
func MigrateDebugValue(ctx *ir.Context, old, newVal ir.Value) {
	dv := FindDebugValue(ctx, old)
	if dv == nil {
		return
	}

	dv.SetOperand(0, ctx.MetadataValueFor(ctx.ValueMetaFor(newVal)))

	if ni, ok := newVal.(*ir.Instr); ok {
		if ni.Next() != dv {
			dv.RemoveFromParent()
			dv.InsertAfter(ni)
		}
	}
}
