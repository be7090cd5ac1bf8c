package ir

// Severity of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported event. Any of Fn, Loc and Global may be nil; a
// diagnostic with all three nil is a plain text message against the module.
type Diagnostic struct {
	Fn       *Function
	Loc      *DebugLoc
	Global   *GlobalVarDebug
	Severity Severity
	Msg      string
}

// DiagnosticHandler receives diagnostics routed through a Context. Handlers
// are responsible for formatting and delivery; the IR layer only constructs
// and forwards events.
type DiagnosticHandler interface {
	HandleDiagnostic(d Diagnostic)
}
