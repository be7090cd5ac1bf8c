package dbginfo

import "github.com/prism-lang/prism/internal/ir"

// The emit helpers build diagnostics and hand them to the context's handler.
// They are pure reporting: the graph is never mutated and nothing here can
// fail. Worst case is a less precise, location-less diagnostic.

// ResourceMapErrorMessage is reported when a local resource handle cannot be
// proven to map to a single global resource.
const ResourceMapErrorMessage = "local resource not guaranteed to map to unique global resource."

// EmitErrorOnInstr reports an error attributed to in, resolving a nearby
// location through phi/select users when in has none.
func EmitErrorOnInstr(in *ir.Instr, msg string) {
	emitOnInstr(in, msg, ir.SeverityError)
}

// EmitWarningOnInstr reports a warning attributed to in.
func EmitWarningOnInstr(in *ir.Instr, msg string) {
	emitOnInstr(in, msg, ir.SeverityWarning)
}

// EmitResourceMapError reports the canonical resource-mapping error at in.
func EmitResourceMapError(in *ir.Instr) {
	EmitErrorOnInstr(in, ResourceMapErrorMessage)
}

func emitOnInstr(in *ir.Instr, msg string, sev ir.Severity) {
	loc := in.Loc()
	if loc == nil && (in.Op == ir.OpPhi || in.Op == ir.OpSelect) {
		if located := followPhiSelect(in, 0); located != nil {
			emitOnInstr(located, msg, sev)
			return
		}
	}
	in.Module().Context().Diagnose(ir.Diagnostic{
		Fn:       in.Function(),
		Loc:      loc,
		Severity: sev,
		Msg:      msg,
	})
}

// EmitErrorOnFunction reports an error against f, locating it at the declared
// line of f's debug descriptor when one exists.
func EmitErrorOnFunction(ctx *ir.Context, f *ir.Function, msg string) {
	emitOnFunction(ctx, f, msg, ir.SeverityError)
}

// EmitWarningOnFunction reports a warning against f.
func EmitWarningOnFunction(ctx *ir.Context, f *ir.Function, msg string) {
	emitOnFunction(ctx, f, msg, ir.SeverityWarning)
}

func emitOnFunction(ctx *ir.Context, f *ir.Function, msg string, sev ir.Severity) {
	var loc *ir.DebugLoc
	if sp := f.SP; sp != nil {
		loc = &ir.DebugLoc{Line: sp.Line, Col: 0, Scope: sp}
	}
	ctx.Diagnose(ir.Diagnostic{Fn: f, Loc: loc, Severity: sev, Msg: msg})
}

// EmitErrorOnGlobal reports an error against g, attaching g's debug
// descriptor when the owning module has debug info and records one.
func EmitErrorOnGlobal(ctx *ir.Context, g *ir.Global, msg string) {
	emitOnGlobal(ctx, g, msg, ir.SeverityError)
}

// EmitWarningOnGlobal reports a warning against g.
func EmitWarningOnGlobal(ctx *ir.Context, g *ir.Global, msg string) {
	emitOnGlobal(ctx, g, msg, ir.SeverityWarning)
}

func emitOnGlobal(ctx *ir.Context, g *ir.Global, msg string, sev ir.Severity) {
	var desc *ir.GlobalVarDebug
	if g != nil {
		if m := g.Parent(); m != nil && m.HasDebugInfo() {
			// Use the cached index if the module materialized one.
			var idx *ir.DebugIndex
			if m.HasTargetInfo() {
				idx = m.GetOrCreateTargetInfo().GetOrCreateDebugIndex()
			} else {
				idx = ir.BuildDebugIndex(m)
			}
			desc = idx.FindGlobalDescriptor(g)
		}
	}
	ctx.Diagnose(ir.Diagnostic{Global: desc, Severity: sev, Msg: msg})
}

// EmitErrorOnContext reports a bare error with no function or location.
func EmitErrorOnContext(ctx *ir.Context, msg string) {
	ctx.Diagnose(ir.Diagnostic{Severity: ir.SeverityError, Msg: msg})
}

// EmitWarningOnContext reports a bare warning.
func EmitWarningOnContext(ctx *ir.Context, msg string) {
	ctx.Diagnose(ir.Diagnostic{Severity: ir.SeverityWarning, Msg: msg})
}

// EmitNoteOnContext reports a bare note.
func EmitNoteOnContext(ctx *ir.Context, msg string) {
	ctx.Diagnose(ir.Diagnostic{Severity: ir.SeverityNote, Msg: msg})
}
