// Package ir defines the typed instruction graph shared by Prism's lowering
// and cleanup passes, together with the metadata and debug-info descriptors
// that ride along with it. It is SSA-lite: values are produced once, and
// every value keeps reverse edges to the instructions that use it.
package ir

import "fmt"

// Type classifies a value. Types are small immutable values and are compared
// structurally.
type Type interface {
	String() string
	isType()
}

// IntType is an integer of a fixed bit width.
type IntType struct{ Bits uint32 }

// FloatType is a floating-point number of a fixed bit width.
type FloatType struct{ Bits uint32 }

// VectorType is a fixed-length vector of a scalar element type.
type VectorType struct {
	Elem Type
	Len  uint32
}

// VoidType is the type of instructions that produce no value.
type VoidType struct{}

// MetaType is the type of metadata wrapped as a value.
type MetaType struct{}

func (IntType) isType()    {}
func (FloatType) isType()  {}
func (VectorType) isType() {}
func (VoidType) isType()   {}
func (MetaType) isType()   {}

func (t IntType) String() string   { return fmt.Sprintf("i%d", t.Bits) }
func (t FloatType) String() string { return fmt.Sprintf("f%d", t.Bits) }
func (t VectorType) String() string {
	return fmt.Sprintf("<%d x %s>", t.Len, t.Elem)
}
func (VoidType) String() string { return "void" }
func (MetaType) String() string { return "metadata" }

// DataLayout answers size queries against the target's data layout rules.
type DataLayout struct{}

// TypeSizeInBits returns the storage size of t in bits.
func (dl DataLayout) TypeSizeInBits(t Type) uint64 {
	switch t := t.(type) {
	case IntType:
		return uint64(t.Bits)
	case FloatType:
		return uint64(t.Bits)
	case VectorType:
		return uint64(t.Len) * dl.TypeSizeInBits(t.Elem)
	default:
		return 0
	}
}
