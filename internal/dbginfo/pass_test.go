package dbginfo

import (
	"testing"

	"github.com/prism-lang/prism/internal/ir"
)

func TestLoadTargetInfoPassIdempotent(t *testing.T) {
	ctx := ir.NewContext()
	m := ir.NewModule(ctx, "test")
	m.Profile = "px_6_0"

	var p LoadTargetInfoPass
	changed, err := p.Run(m)
	if err != nil || !changed {
		t.Fatalf("first run = (%v, %v), want (true, nil)", changed, err)
	}
	if !m.HasTargetInfo() {
		t.Fatalf("target state not materialized")
	}

	changed, err = p.Run(m)
	if err != nil || changed {
		t.Fatalf("second run = (%v, %v), want (false, nil)", changed, err)
	}
}

func TestScatterPass(t *testing.T) {
	ctx, m, b := newTestBlock(t)
	links, _ := buildInsertChain(t, b, 32, 3)
	b.Append(ir.NewDebugValue(ctx, links[2], &ir.LocalVar{Name: "pos"}, nil, nil))

	var p ScatterPass
	changed, err := p.Run(m)
	if err != nil || !changed {
		t.Fatalf("run = (%v, %v), want (true, nil)", changed, err)
	}
	if got := countRecords(b); got != 4 {
		t.Errorf("record count = %d, want 4", got)
	}
}

func TestScatterPassNoRecords(t *testing.T) {
	_, m, b := newTestBlock(t)
	buildInsertChain(t, b, 32, 2)

	var p ScatterPass
	changed, err := p.Run(m)
	if err != nil || changed {
		t.Fatalf("run = (%v, %v), want (false, nil)", changed, err)
	}
}
