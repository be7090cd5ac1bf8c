package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// FindDebugValue returns the debug-value record currently bound to v, or nil.
//
// The lookup goes through the interned metadata wrappers (value → value-as-
// metadata → metadata-as-value) and scans the final wrapper's users for a
// dbg.value record; it costs a scan of that user list, not a walk of the
// function. A miss at any level of the indirection means no record exists.
// At most one record per value is assumed; the first match wins.
func FindDebugValue(ctx *ir.Context, v ir.Value) *ir.Instr {
	vm := ctx.ValueMetaIfExists(v)
	if vm == nil {
		return nil
	}
	mdv := ctx.MetadataValueIfExists(vm)
	if mdv == nil {
		return nil
	}
	for _, u := range mdv.Users() {
		if u.Op == ir.OpDbgValue {
			return u
		}
	}
	return nil
}
