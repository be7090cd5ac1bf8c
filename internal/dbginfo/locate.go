// Package dbginfo keeps debug metadata correct while Prism passes rewrite
// the instruction graph: it resolves best-effort source locations for
// diagnostics, relocates debug-value records when one value replaces another,
// and scatters a whole-vector record across the elements of a vector
// construction chain.
package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// maxFollowDepth bounds the user walk in ResolveLoc. The bound guarantees
// termination on graphs with cycles through phi joins.
const maxFollowDepth = 4

// ResolveLoc returns an instruction carrying a debug location that can stand
// in for in when attributing a diagnostic, or nil when none is found. The
// graph is never mutated.
//
// If in already has a location it is returned as is. Otherwise, only when in
// is a phi or a select, its users are searched: lowering commonly smears one
// source expression across location-less phi/select chains, and what consumes
// the result is a better attribution than what produced it. Any other opcode
// has no fallback. The first hit in user-list order wins; ties are not broken
// deterministically.
func ResolveLoc(in *ir.Instr) *ir.Instr {
	return followPhiSelect(in, 0)
}

func followPhiSelect(in *ir.Instr, depth int) *ir.Instr {
	if depth > maxFollowDepth {
		return nil
	}
	if in.Loc() != nil {
		return in
	}
	if in.Op == ir.OpPhi || in.Op == ir.OpSelect {
		for _, u := range in.Users() {
			if found := followPhiSelect(u, depth+1); found != nil {
				return found
			}
		}
	}
	return nil
}
