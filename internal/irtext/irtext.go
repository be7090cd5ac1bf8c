// Package irtext decodes the textual Prism module format: a YAML description
// of globals, functions and instructions used by pipeline tools and test
// fixtures. The serialized binary image format stays behind the bitcode
// package's Decoder contract; this is the human-writable counterpart.
package irtext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/prism-lang/prism/internal/ir"
)

// ErrVersion is returned when a document declares a format version outside
// the supported range.
var ErrVersion = errors.New("irtext: unsupported format version")

// formatConstraint pins the accepted document format line.
var formatConstraint = mustConstraint("^1.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic("irtext: bad format constraint: " + err.Error())
	}
	return c
}

// Decoder adapts Decode to the bitcode loading contract.
type Decoder struct{}

// Decode implements bitcode.Decoder.
func (Decoder) Decode(data []byte, ctx *ir.Context) (*ir.Module, error) {
	return Decode(data, ctx)
}

type doc struct {
	Format    string      `yaml:"format"`
	Module    string      `yaml:"module"`
	Profile   string      `yaml:"profile"`
	Globals   []globalDoc `yaml:"globals"`
	Debug     *debugDoc   `yaml:"debug"`
	Functions []funcDoc   `yaml:"functions"`
}

type globalDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type debugDoc struct {
	Globals []globalDebugDoc `yaml:"globals"`
}

type globalDebugDoc struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Line   uint32 `yaml:"line"`
	Global string `yaml:"global"`
}

type funcDoc struct {
	Name       string     `yaml:"name"`
	Subprogram *spDoc     `yaml:"subprogram"`
	Params     []paramDoc `yaml:"params"`
	Blocks     []blockDoc `yaml:"blocks"`
}

type spDoc struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
	Line uint32 `yaml:"line"`
}

type paramDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type blockDoc struct {
	Name   string     `yaml:"name"`
	Instrs []instrDoc `yaml:"instrs"`
}

type instrDoc struct {
	Name     string   `yaml:"name"`
	Op       string   `yaml:"op"`
	Bin      string   `yaml:"bin"`
	Callee   string   `yaml:"callee"`
	Type     string   `yaml:"type"`
	Operands []string `yaml:"operands"`
	// For dbg.value records.
	Value string   `yaml:"value"`
	Var   string   `yaml:"var"`
	Piece []uint64 `yaml:"piece"`
	Loc   *locDoc  `yaml:"loc"`
}

type locDoc struct {
	Line uint32 `yaml:"line"`
	Col  uint32 `yaml:"col"`
}

// Decode parses a textual module into an IR module bound to ctx.
func Decode(data []byte, ctx *ir.Context) (*ir.Module, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("irtext: parse: %w", err)
	}

	ver, err := semver.NewVersion(d.Format)
	if err != nil {
		return nil, fmt.Errorf("irtext: bad format version %q: %w", d.Format, err)
	}
	if !formatConstraint.Check(ver) {
		return nil, fmt.Errorf("%w: %s (want %s)", ErrVersion, d.Format, formatConstraint)
	}

	m := ir.NewModule(ctx, d.Module)
	m.Profile = d.Profile

	globals := make(map[string]*ir.Global, len(d.Globals))
	for _, gd := range d.Globals {
		t, err := parseType(gd.Type)
		if err != nil {
			return nil, fmt.Errorf("irtext: global %s: %w", gd.Name, err)
		}
		globals[gd.Name] = m.NewGlobal(t, gd.Name)
	}

	var dbg ir.DebugInfo
	for _, fd := range d.Functions {
		if err := decodeFunction(ctx, m, fd, globals, &dbg); err != nil {
			return nil, err
		}
	}
	if d.Debug != nil {
		for _, gd := range d.Debug.Globals {
			desc := &ir.GlobalVarDebug{Name: gd.Name, File: gd.File, Line: gd.Line}
			if gd.Global != "" {
				g, ok := globals[gd.Global]
				if !ok {
					return nil, fmt.Errorf("irtext: debug global %s: unknown global %q", gd.Name, gd.Global)
				}
				desc.Global = g
			}
			dbg.Globals = append(dbg.Globals, desc)
		}
	}
	if len(dbg.Subprograms) > 0 || len(dbg.Globals) > 0 {
		m.Debug = &dbg
	}
	return m, nil
}

func decodeFunction(ctx *ir.Context, m *ir.Module, fd funcDoc, globals map[string]*ir.Global, dbg *ir.DebugInfo) error {
	f := m.NewFunction(fd.Name)

	var sp *ir.Subprogram
	if fd.Subprogram != nil {
		name := fd.Subprogram.Name
		if name == "" {
			name = fd.Name
		}
		sp = &ir.Subprogram{Name: name, File: fd.Subprogram.File, Line: fd.Subprogram.Line}
		f.SP = sp
		dbg.Subprograms = append(dbg.Subprograms, sp)
	}

	syms := make(map[string]ir.Value)
	for name, g := range globals {
		syms[name] = g
	}
	for _, pd := range fd.Params {
		t, err := parseType(pd.Type)
		if err != nil {
			return fmt.Errorf("irtext: %s: param %s: %w", fd.Name, pd.Name, err)
		}
		syms[pd.Name] = f.NewParam(t, pd.Name)
	}

	for _, bd := range fd.Blocks {
		b := f.NewBlock(bd.Name)
		for _, id := range bd.Instrs {
			in, err := decodeInstr(ctx, id, sp, syms)
			if err != nil {
				return fmt.Errorf("irtext: %s/%s: %w", fd.Name, bd.Name, err)
			}
			b.Append(in)
			if id.Name != "" {
				syms[id.Name] = in
			}
		}
	}
	return nil
}

func decodeInstr(ctx *ir.Context, id instrDoc, sp *ir.Subprogram, syms map[string]ir.Value) (*ir.Instr, error) {
	ops, err := parseOperands(id.Operands, syms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id.Op, err)
	}

	var in *ir.Instr
	switch id.Op {
	case "phi":
		t, err := parseType(id.Type)
		if err != nil {
			return nil, fmt.Errorf("phi %s: %w", id.Name, err)
		}
		in = ir.NewPhi(t, id.Name, ops...)
	case "select":
		if len(ops) != 3 {
			return nil, fmt.Errorf("select %s: want 3 operands, got %d", id.Name, len(ops))
		}
		in = ir.NewSelect(id.Name, ops[0], ops[1], ops[2])
	case "insertelement":
		if len(ops) != 3 {
			return nil, fmt.Errorf("insertelement %s: want 3 operands, got %d", id.Name, len(ops))
		}
		in = ir.NewInsertElement(id.Name, ops[0], ops[1], ops[2])
	case "extractelement":
		if len(ops) != 2 {
			return nil, fmt.Errorf("extractelement %s: want 2 operands, got %d", id.Name, len(ops))
		}
		in = ir.NewExtractElement(id.Name, ops[0], ops[1])
	case "bin":
		if len(ops) != 2 {
			return nil, fmt.Errorf("bin %s: want 2 operands, got %d", id.Name, len(ops))
		}
		kind, err := parseBinKind(id.Bin)
		if err != nil {
			return nil, err
		}
		in = ir.NewBin(kind, id.Name, ops[0], ops[1])
	case "call":
		t, err := parseType(id.Type)
		if err != nil {
			return nil, fmt.Errorf("call %s: %w", id.Name, err)
		}
		in = ir.NewCall(t, id.Name, id.Callee, ops...)
	case "ret":
		var v ir.Value
		if len(ops) > 0 {
			v = ops[0]
		}
		in = ir.NewRet(v)
	case "dbg.value":
		v, err := parseOperand(id.Value, syms)
		if err != nil {
			return nil, fmt.Errorf("dbg.value: %w", err)
		}
		var expr *ir.Expr
		switch len(id.Piece) {
		case 0:
		case 2:
			expr = ir.BitPieceExpr(id.Piece[0], id.Piece[1])
		default:
			return nil, fmt.Errorf("dbg.value: piece wants [offset, size], got %d entries", len(id.Piece))
		}
		lv := &ir.LocalVar{Name: id.Var, Scope: sp}
		in = ir.NewDebugValue(ctx, v, lv, expr, decodeLoc(id.Loc, sp))
		return in, nil
	default:
		return nil, fmt.Errorf("unknown op %q", id.Op)
	}

	if loc := decodeLoc(id.Loc, sp); loc != nil {
		in.SetLoc(loc)
	}
	return in, nil
}

func decodeLoc(ld *locDoc, sp *ir.Subprogram) *ir.DebugLoc {
	if ld == nil {
		return nil
	}
	return &ir.DebugLoc{Line: ld.Line, Col: ld.Col, Scope: sp}
}

func parseBinKind(s string) (ir.BinKind, error) {
	switch s {
	case "", "add":
		return ir.BinAdd, nil
	case "sub":
		return ir.BinSub, nil
	case "mul":
		return ir.BinMul, nil
	case "div":
		return ir.BinDiv, nil
	default:
		return 0, fmt.Errorf("unknown bin kind %q", s)
	}
}

func parseOperands(srcs []string, syms map[string]ir.Value) ([]ir.Value, error) {
	out := make([]ir.Value, 0, len(srcs))
	for _, s := range srcs {
		v, err := parseOperand(s, syms)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// parseOperand accepts "%name" references, "undef <type>" and typed integer
// literals like "i32 5".
func parseOperand(s string, syms map[string]ir.Value) (ir.Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, errors.New("empty operand")
	case strings.HasPrefix(s, "%"):
		v, ok := syms[s[1:]]
		if !ok {
			return nil, fmt.Errorf("unknown value %q", s)
		}
		return v, nil
	case strings.HasPrefix(s, "undef "):
		t, err := parseType(strings.TrimPrefix(s, "undef "))
		if err != nil {
			return nil, err
		}
		return ir.NewUndef(t), nil
	default:
		tstr, lit, ok := strings.Cut(s, " ")
		if !ok {
			return nil, fmt.Errorf("bad operand %q", s)
		}
		t, err := parseType(tstr)
		if err != nil {
			return nil, err
		}
		if _, ok := t.(ir.IntType); !ok {
			return nil, fmt.Errorf("literal %q: only integer constants are supported", s)
		}
		val, err := strconv.ParseUint(strings.TrimSpace(lit), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("literal %q: %w", s, err)
		}
		return ir.NewConstInt(t, val), nil
	}
}

// parseType accepts iN, fN, void and <N x elem>.
func parseType(s string) (ir.Type, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, errors.New("missing type")
	case s == "void":
		return ir.VoidType{}, nil
	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
		lenStr, elemStr, ok := strings.Cut(inner, " x ")
		if !ok {
			return nil, fmt.Errorf("bad vector type %q", s)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(lenStr), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad vector length in %q: %w", s, err)
		}
		elem, err := parseType(elemStr)
		if err != nil {
			return nil, err
		}
		return ir.VectorType{Elem: elem, Len: uint32(n)}, nil
	case s[0] == 'i' || s[0] == 'f':
		bits, err := strconv.ParseUint(s[1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad type %q", s)
		}
		if s[0] == 'i' {
			return ir.IntType{Bits: uint32(bits)}, nil
		}
		return ir.FloatType{Bits: uint32(bits)}, nil
	default:
		return nil, fmt.Errorf("bad type %q", s)
	}
}
