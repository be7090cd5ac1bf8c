package ir

// DebugLoc is a source location attached to an instruction: line, column and
// the enclosing scope, plus the inlining chain when the instruction was
// inlined. Most instructions created by lowering have none.
type DebugLoc struct {
	Line, Col uint32
	Scope     *Subprogram
	InlinedAt *DebugLoc
}

// Subprogram describes a source-level function.
type Subprogram struct {
	Name string
	File string
	Line uint32
}

// LocalVar describes a source-level variable or expression.
type LocalVar struct {
	Name  string
	Scope *Subprogram
	Line  uint32
}

// GlobalVarDebug describes a module-level variable.
type GlobalVarDebug struct {
	Name   string
	File   string
	Line   uint32
	Global *Global
}

// Expr is a debug expression attached to a debug-value record. Only bit
// pieces are modeled: a piece marks that the record covers the slice of the
// variable's storage starting at the offset and spanning the size, both in
// bits.
type Expr struct {
	pieceOff  uint64
	pieceSize uint64
	piece     bool
}

// BitPieceExpr builds a bit-piece expression.
func BitPieceExpr(offsetBits, sizeBits uint64) *Expr {
	return &Expr{pieceOff: offsetBits, pieceSize: sizeBits, piece: true}
}

// IsBitPiece reports whether the expression restricts the record to a piece
// of the variable's storage. Safe on a nil expression.
func (e *Expr) IsBitPiece() bool { return e != nil && e.piece }

// BitPieceOffset returns the piece offset in bits.
func (e *Expr) BitPieceOffset() uint64 { return e.pieceOff }

// BitPieceSize returns the piece size in bits.
func (e *Expr) BitPieceSize() uint64 { return e.pieceSize }

// DebugInfo is the per-module descriptor table produced by the front end.
// A module compiled without debug info has none (nil on the Module).
type DebugInfo struct {
	Subprograms []*Subprogram
	Globals     []*GlobalVarDebug
}

// DebugIndex answers descriptor lookups against a module's debug tables.
// Build it once and reuse it, or rebuild per query; it is a pure lookup
// structure either way.
type DebugIndex struct {
	globals map[*Global]*GlobalVarDebug
}

// BuildDebugIndex scans the module's debug tables into an index.
func BuildDebugIndex(m *Module) *DebugIndex {
	idx := &DebugIndex{globals: make(map[*Global]*GlobalVarDebug)}
	if m.Debug != nil {
		for _, g := range m.Debug.Globals {
			if g.Global != nil {
				idx.globals[g.Global] = g
			}
		}
	}
	return idx
}

// FindGlobalDescriptor returns the descriptor for g, or nil.
func (idx *DebugIndex) FindGlobalDescriptor(g *Global) *GlobalVarDebug {
	return idx.globals[g]
}
