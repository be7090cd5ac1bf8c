package dbginfo

import (
	"testing"

	"github.com/prism-lang/prism/internal/ir"
)

func TestMigrateDebugValueNoRecordIsNoOp(t *testing.T) {
	ctx, _, b := newTestBlock(t)
	old := b.Append(ir.NewBin(ir.BinAdd, "old", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	repl := b.Append(ir.NewBin(ir.BinAdd, "new", ir.NewConstInt(i32, 3), ir.NewConstInt(i32, 4)))
	lenBefore := b.Len()

	MigrateDebugValue(ctx, old, repl)

	if b.Len() != lenBefore {
		t.Errorf("block mutated by a no-op migrate")
	}
	if FindDebugValue(ctx, repl) != nil {
		t.Errorf("migrate invented a record")
	}
}

func TestMigrateDebugValueRebindsAndMoves(t *testing.T) {
	ctx, _, b := newTestBlock(t)
	old := b.Append(ir.NewBin(ir.BinAdd, "old", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	lv := &ir.LocalVar{Name: "x"}
	loc := &ir.DebugLoc{Line: 7, Col: 2}
	expr := ir.BitPieceExpr(0, 32)
	dv := b.Append(ir.NewDebugValue(ctx, old, lv, expr, loc))
	repl := b.Append(ir.NewBin(ir.BinAdd, "new", ir.NewConstInt(i32, 3), ir.NewConstInt(i32, 4)))

	MigrateDebugValue(ctx, old, repl)

	if got := FindDebugValue(ctx, old); got != nil {
		t.Errorf("old value still reports record %v", got)
	}
	if got := FindDebugValue(ctx, repl); got != dv {
		t.Errorf("new value record = %v, want the migrated record", got)
	}
	if repl.Next() != dv {
		t.Errorf("record not repositioned after the new instruction")
	}
	if dv.Var != lv || dv.Expr != expr || dv.Loc() != loc {
		t.Errorf("migrate touched variable/expression/location")
	}
}

func TestMigrateDebugValueAlreadyAdjacent(t *testing.T) {
	ctx, _, b := newTestBlock(t)
	old := b.Append(ir.NewBin(ir.BinAdd, "old", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	repl := b.Append(ir.NewBin(ir.BinAdd, "new", ir.NewConstInt(i32, 3), ir.NewConstInt(i32, 4)))
	dv := ir.NewDebugValue(ctx, old, &ir.LocalVar{Name: "x"}, nil, nil)
	dv.InsertAfter(repl)
	tail := b.Append(ir.NewRet(repl))

	MigrateDebugValue(ctx, old, repl)

	if repl.Next() != dv || dv.Next() != tail {
		t.Errorf("already-adjacent record was repositioned")
	}
	if FindDebugValue(ctx, repl) != dv {
		t.Errorf("record not rebound")
	}
}

func TestMigrateDebugValueToNonInstruction(t *testing.T) {
	ctx, m, b := newTestBlock(t)
	f := m.Funcs[0]
	arg := f.NewParam(i32, "a")
	old := b.Append(ir.NewBin(ir.BinAdd, "old", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	dv := b.Append(ir.NewDebugValue(ctx, old, &ir.LocalVar{Name: "x"}, nil, nil))
	next := dv.Next()

	MigrateDebugValue(ctx, old, arg)

	if FindDebugValue(ctx, arg) != dv {
		t.Errorf("record not rebound to the argument")
	}
	if dv.Prev() != old || dv.Next() != next {
		t.Errorf("record moved although the new value is not an instruction")
	}
}
