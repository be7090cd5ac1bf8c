// Package diag collects and formats diagnostics produced by the IR layer.
// It is the in-process sink behind ir.DiagnosticHandler; delivery to anything
// beyond the console is out of scope.
package diag

import (
	"sort"

	"github.com/prism-lang/prism/internal/ir"
)

// Collector receives diagnostics from an ir.Context and retains them for
// reporting, subject to per-severity limits.
type Collector struct {
	diags        []ir.Diagnostic
	errorCount   int
	warningCount int
	maxErrors    int
	maxWarnings  int
}

// NewCollector creates a collector with default limits.
func NewCollector() *Collector {
	return &Collector{maxErrors: 100, maxWarnings: 1000}
}

// SetErrorLimit caps the number of retained errors.
func (c *Collector) SetErrorLimit(n int) { c.maxErrors = n }

// SetWarningLimit caps the number of retained warnings.
func (c *Collector) SetWarningLimit(n int) { c.maxWarnings = n }

// HandleDiagnostic implements ir.DiagnosticHandler.
func (c *Collector) HandleDiagnostic(d ir.Diagnostic) {
	switch d.Severity {
	case ir.SeverityError:
		if c.errorCount >= c.maxErrors {
			return
		}
		c.errorCount++
	case ir.SeverityWarning:
		if c.warningCount >= c.maxWarnings {
			return
		}
		c.warningCount++
	}
	c.diags = append(c.diags, d)
}

// Diagnostics returns the retained diagnostics in arrival order (or sorted
// order after Sort).
func (c *Collector) Diagnostics() []ir.Diagnostic { return c.diags }

// ErrorCount returns the number of retained errors.
func (c *Collector) ErrorCount() int { return c.errorCount }

// WarningCount returns the number of retained warnings.
func (c *Collector) WarningCount() int { return c.warningCount }

// HasErrors reports whether any error was collected.
func (c *Collector) HasErrors() bool { return c.errorCount > 0 }

// Sort orders diagnostics by function, then location, then severity.
func (c *Collector) Sort() {
	sort.SliceStable(c.diags, func(i, j int) bool {
		a, b := c.diags[i], c.diags[j]

		an, bn := fnName(a), fnName(b)
		if an != bn {
			return an < bn
		}
		al, bl := locKey(a.Loc), locKey(b.Loc)
		if al != bl {
			return al < bl
		}
		return a.Severity < b.Severity
	})
}

func fnName(d ir.Diagnostic) string {
	if d.Fn != nil {
		return d.Fn.Name
	}
	return ""
}

func locKey(l *ir.DebugLoc) uint64 {
	if l == nil {
		return 0
	}
	return uint64(l.Line)<<32 | uint64(l.Col)
}
