package ir

import (
	"fmt"
	"strings"
)

func (m *Module) String() string {
	if m == nil {
		return "<nil-module>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "module %s", m.Name)
	if m.Profile != "" {
		fmt.Fprintf(&b, " ; profile %s", m.Profile)
	}
	b.WriteByte('\n')
	for _, g := range m.Globals {
		fmt.Fprintf(&b, "global %s %s\n", g.Type(), refString(g))
	}
	for _, f := range m.Funcs {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (f *Function) String() string {
	if f == nil {
		return "<nil-func>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", p.Type(), refString(p))
	}
	b.WriteString(") {\n")
	for _, bb := range f.Blocks {
		b.WriteString(bb.String())
	}
	b.WriteString("}\n")
	return b.String()
}

func (b *Block) String() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	if b.Name != "" {
		fmt.Fprintf(&sb, "%s:\n", b.Name)
	}
	for in := b.head; in != nil; in = in.next {
		sb.WriteString("  ")
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (in *Instr) String() string {
	var b strings.Builder
	if in.name != "" {
		fmt.Fprintf(&b, "%s = ", refString(in))
	}
	switch in.Op {
	case OpBin:
		fmt.Fprintf(&b, "bin.%s", in.Bin)
	case OpCall:
		fmt.Fprintf(&b, "call %s", in.Callee)
	case OpDbgValue:
		b.WriteString("dbg.value")
	default:
		b.WriteString(in.Op.String())
	}
	if len(in.operands) > 0 {
		b.WriteByte(' ')
		for i, op := range in.operands {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(refString(op))
		}
	}
	if in.Op == OpDbgValue {
		if in.Var != nil {
			fmt.Fprintf(&b, " ; var %s", in.Var.Name)
		}
		if in.Expr.IsBitPiece() {
			fmt.Fprintf(&b, " piece(%d,%d)", in.Expr.BitPieceOffset(), in.Expr.BitPieceSize())
		}
	}
	if in.loc != nil {
		fmt.Fprintf(&b, " ; !%d:%d", in.loc.Line, in.loc.Col)
	}
	return b.String()
}

func refString(v Value) string {
	switch v := v.(type) {
	case *ConstInt:
		return fmt.Sprintf("%s %d", v.Type(), v.Val)
	case *Undef:
		return fmt.Sprintf("undef %s", v.Type())
	case *MetadataValue:
		if vm, ok := v.MD.(*ValueMeta); ok {
			return fmt.Sprintf("meta(%s)", refString(vm.V))
		}
		return "meta(?)"
	default:
		if v.Name() == "" {
			return "%?"
		}
		return "%" + v.Name()
	}
}
