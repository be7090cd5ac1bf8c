package diag

import (
	"strings"
	"testing"

	"github.com/prism-lang/prism/internal/ir"
)

func TestCollectorCountsAndLimits(t *testing.T) {
	c := NewCollector()
	c.SetErrorLimit(2)
	c.SetWarningLimit(1)

	for i := 0; i < 4; i++ {
		c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityError, Msg: "e"})
	}
	c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityWarning, Msg: "w"})
	c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityWarning, Msg: "w2"})
	c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityNote, Msg: "n"})

	if c.ErrorCount() != 2 {
		t.Errorf("error count = %d, want 2", c.ErrorCount())
	}
	if c.WarningCount() != 1 {
		t.Errorf("warning count = %d, want 1", c.WarningCount())
	}
	// Notes are not limited.
	if got := len(c.Diagnostics()); got != 4 {
		t.Errorf("retained = %d, want 4", got)
	}
	if !c.HasErrors() {
		t.Errorf("HasErrors = false")
	}
}

func TestCollectorSort(t *testing.T) {
	ctx := ir.NewContext()
	m := ir.NewModule(ctx, "test")
	fa := m.NewFunction("alpha")
	fb := m.NewFunction("beta")

	c := NewCollector()
	c.HandleDiagnostic(ir.Diagnostic{Fn: fb, Loc: &ir.DebugLoc{Line: 1}, Severity: ir.SeverityError, Msg: "3"})
	c.HandleDiagnostic(ir.Diagnostic{Fn: fa, Loc: &ir.DebugLoc{Line: 9}, Severity: ir.SeverityError, Msg: "2"})
	c.HandleDiagnostic(ir.Diagnostic{Fn: fa, Loc: &ir.DebugLoc{Line: 2}, Severity: ir.SeverityWarning, Msg: "1b"})
	c.HandleDiagnostic(ir.Diagnostic{Fn: fa, Loc: &ir.DebugLoc{Line: 2}, Severity: ir.SeverityError, Msg: "1a"})
	c.Sort()

	var got []string
	for _, d := range c.Diagnostics() {
		got = append(got, d.Msg)
	}
	want := []string{"1a", "1b", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	ctx := ir.NewContext()
	m := ir.NewModule(ctx, "test")
	f := m.NewFunction("main")

	out := Format(ir.Diagnostic{
		Fn:       f,
		Loc:      &ir.DebugLoc{Line: 12, Col: 5},
		Severity: ir.SeverityError,
		Msg:      "bad thing",
	}, false)
	for _, want := range []string{"error: bad thing", "--> main:12:5"} {
		if !strings.Contains(out, want) {
			t.Errorf("format missing %q:\n%s", want, out)
		}
	}

	out = Format(ir.Diagnostic{
		Global:   &ir.GlobalVarDebug{Name: "gCount", File: "demo.przm", Line: 3},
		Severity: ir.SeverityWarning,
		Msg:      "odd global",
	}, false)
	if !strings.Contains(out, "demo.przm:3 (global gCount)") {
		t.Errorf("global format wrong:\n%s", out)
	}

	out = Format(ir.Diagnostic{Severity: ir.SeverityNote, Msg: "just saying"}, false)
	if out != "note: just saying" {
		t.Errorf("bare format = %q", out)
	}
}

func TestFormatColorized(t *testing.T) {
	out := Format(ir.Diagnostic{Severity: ir.SeverityError, Msg: "x"}, true)
	if !strings.Contains(out, "\033[31m") || !strings.Contains(out, "\033[0m") {
		t.Errorf("colorized output missing escapes: %q", out)
	}
}

func TestFormatSummary(t *testing.T) {
	c := NewCollector()
	if got := FormatSummary(c); got != "No diagnostics." {
		t.Errorf("empty summary = %q", got)
	}
	c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityError, Msg: "e"})
	c.HandleDiagnostic(ir.Diagnostic{Severity: ir.SeverityWarning, Msg: "w"})
	if got := FormatSummary(c); got != "Found 1 error(s) and 1 warning(s)." {
		t.Errorf("summary = %q", got)
	}
}
