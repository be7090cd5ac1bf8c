package dbginfo

import (
	"fmt"
	"testing"

	"github.com/prism-lang/prism/internal/ir"
)

var i32 = ir.IntType{Bits: 32}

func newTestBlock(t *testing.T) (*ir.Context, *ir.Module, *ir.Block) {
	t.Helper()
	ctx := ir.NewContext()
	m := ir.NewModule(ctx, "test")
	f := m.NewFunction("main")
	return ctx, m, f.NewBlock("entry")
}

// recordingSink retains diagnostics for inspection.
type recordingSink struct{ diags []ir.Diagnostic }

func (r *recordingSink) HandleDiagnostic(d ir.Diagnostic) { r.diags = append(r.diags, d) }

func TestResolveLocReturnsExistingLocation(t *testing.T) {
	_, _, b := newTestBlock(t)
	in := b.Append(ir.NewBin(ir.BinAdd, "x", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	loc := &ir.DebugLoc{Line: 10, Col: 3}
	in.SetLoc(loc)

	if got := ResolveLoc(in); got != in {
		t.Fatalf("ResolveLoc = %v, want the instruction itself", got)
	}
}

func TestResolveLocFollowsPhiUser(t *testing.T) {
	_, _, b := newTestBlock(t)
	phi := b.Append(ir.NewPhi(i32, "p", ir.NewConstInt(i32, 1)))
	user := b.Append(ir.NewBin(ir.BinAdd, "u", phi, phi))
	user.SetLoc(&ir.DebugLoc{Line: 12, Col: 1})

	if got := ResolveLoc(phi); got != user {
		t.Fatalf("ResolveLoc = %v, want the located user", got)
	}
}

func TestResolveLocFollowsSelectUser(t *testing.T) {
	_, _, b := newTestBlock(t)
	cond := ir.NewConstInt(ir.IntType{Bits: 1}, 1)
	sel := b.Append(ir.NewSelect("s", cond, ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	user := b.Append(ir.NewRet(sel))
	user.SetLoc(&ir.DebugLoc{Line: 20, Col: 7})

	if got := ResolveLoc(sel); got != user {
		t.Fatalf("ResolveLoc = %v, want the located user", got)
	}
}

func TestResolveLocDoesNotFollowOtherOpcodes(t *testing.T) {
	_, _, b := newTestBlock(t)
	bin := b.Append(ir.NewBin(ir.BinAdd, "x", ir.NewConstInt(i32, 1), ir.NewConstInt(i32, 2)))
	user := b.Append(ir.NewRet(bin))
	user.SetLoc(&ir.DebugLoc{Line: 5, Col: 1})

	if got := ResolveLoc(bin); got != nil {
		t.Fatalf("ResolveLoc followed users of a non-phi/select: %v", got)
	}
}

// buildPhiChain builds phi0 ← phi1 ← ... ← phiN where each phi[i+1] uses
// phi[i], and returns the chain head first.
func buildPhiChain(b *ir.Block, n int) []*ir.Instr {
	chain := make([]*ir.Instr, 0, n)
	prev := b.Append(ir.NewPhi(i32, "p0", ir.NewConstInt(i32, 0)))
	chain = append(chain, prev)
	for i := 1; i < n; i++ {
		prev = b.Append(ir.NewPhi(i32, fmt.Sprintf("p%d", i), prev))
		chain = append(chain, prev)
	}
	return chain
}

func TestResolveLocDepthLimit(t *testing.T) {
	// A location 4 user hops away is found; 5 hops away is not.
	_, _, b := newTestBlock(t)
	chain := buildPhiChain(b, 6)
	chain[4].SetLoc(&ir.DebugLoc{Line: 44, Col: 1})
	if got := ResolveLoc(chain[0]); got != chain[4] {
		t.Errorf("ResolveLoc = %v, want the instruction 4 hops away", got)
	}

	_, _, b2 := newTestBlock(t)
	chain2 := buildPhiChain(b2, 6)
	chain2[5].SetLoc(&ir.DebugLoc{Line: 55, Col: 1})
	if got := ResolveLoc(chain2[0]); got != nil {
		t.Errorf("ResolveLoc = %v, want nil beyond the follow depth limit", got)
	}
}

func TestResolveLocTerminatesOnPhiCycle(t *testing.T) {
	_, _, b := newTestBlock(t)
	p1 := b.Append(ir.NewPhi(i32, "p1"))
	p2 := b.Append(ir.NewPhi(i32, "p2", p1))
	p1.AddOperand(p2)

	if got := ResolveLoc(p1); got != nil {
		t.Fatalf("ResolveLoc on a location-less cycle = %v, want nil", got)
	}
}
