package diag

import (
	"fmt"
	"strings"

	"github.com/prism-lang/prism/internal/ir"
)

// Format renders one diagnostic in the compiler's console style:
//
//	error: message
//	  --> main:12:5
func Format(d ir.Diagnostic, colorize bool) string {
	var b strings.Builder

	if colorize {
		b.WriteString(colorFor(d.Severity))
	}
	b.WriteString(d.Severity.String())
	if colorize {
		b.WriteString("\033[0m")
	}
	b.WriteString(": " + d.Msg)

	switch {
	case d.Loc != nil:
		b.WriteString("\n  --> ")
		if d.Fn != nil {
			b.WriteString(d.Fn.Name)
		} else if d.Loc.Scope != nil {
			b.WriteString(d.Loc.Scope.Name)
		}
		fmt.Fprintf(&b, ":%d:%d", d.Loc.Line, d.Loc.Col)
	case d.Global != nil:
		fmt.Fprintf(&b, "\n  --> %s:%d (global %s)", d.Global.File, d.Global.Line, d.Global.Name)
	case d.Fn != nil:
		b.WriteString("\n  --> " + d.Fn.Name)
	}

	return b.String()
}

// FormatSummary renders the error/warning totals of a collector.
func FormatSummary(c *Collector) string {
	if len(c.Diagnostics()) == 0 {
		return "No diagnostics."
	}
	return fmt.Sprintf("Found %d error(s) and %d warning(s).", c.ErrorCount(), c.WarningCount())
}

func colorFor(s ir.Severity) string {
	switch s {
	case ir.SeverityError:
		return "\033[31m"
	case ir.SeverityWarning:
		return "\033[33m"
	case ir.SeverityNote:
		return "\033[34m"
	default:
		return ""
	}
}
