package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// ScatterDebugValue propagates the debug-value record bound to a vector down
// to the elements that built it through a chain of insertelement
// instructions.
//
// This runs after a vector-returning operation has been recomposed from
// scalars: keeping the record only on the composite value would lose it once
// later stages break the vector apart again. Each chain link yields a new
// record binding the inserted element under a bit-piece expression at
// index*elementWidth, composed with the original record's piece offset when
// it has one.
//
// The whole-vector record is left in place, so one call adds a full set of
// per-element records next to the coarse one. A second call over the same
// chain adds another set; callers run this exactly once per construction
// chain.
//
// No-op unless v is an insertelement result of vector type carrying a record.
func ScatterDebugValue(ctx *ir.Context, v ir.Value) {
	head, ok := v.(*ir.Instr)
	if !ok || head.Op != ir.OpInsertElement {
		return
	}
	vt, ok := head.Type().(ir.VectorType)
	if !ok {
		return
	}

	vecDV := FindDebugValue(ctx, v)
	if vecDV == nil {
		return
	}

	layout := vecDV.Module().Layout
	elemBits := layout.TypeSizeInBits(vt.Elem)

	parent := vecDV.Expr
	if parent != nil && !parent.IsBitPiece() {
		parent = nil
	}

	for {
		ie, ok := v.(*ir.Instr)
		if !ok || ie.Op != ir.OpInsertElement {
			break
		}
		elt := ie.Operand(1)
		idx := ie.Operand(2).(*ir.ConstInt).Val
		offsetBits := idx * elemBits

		if parent != nil {
			if offsetBits+elemBits > parent.BitPieceSize() {
				// A nested piece outside its parent's bounds means the chain
				// was built wrong; there is nothing sensible to emit.
				panic("dbginfo: nested bit piece exceeds the bounds of its parent")
			}
			offsetBits += parent.BitPieceOffset()
		}

		expr := ir.BitPieceExpr(offsetBits, elemBits)
		dv := ir.NewDebugValue(ctx, elt, vecDV.Var, expr, vecDV.Loc())
		dv.InsertAfter(ie)

		v = ie.Operand(0)
	}
}
