package ir

// Metadata is the root of the metadata hierarchy. Metadata nodes are not
// values; a node has to be wrapped in a MetadataValue before an instruction
// can reference it as an operand.
type Metadata interface{ isMetadata() }

// ValueMeta wraps an ordinary value so it can participate as metadata.
// Instances are interned per value in the Context; the wrapper does not own
// the value and the value does not know about the wrapper.
type ValueMeta struct{ V Value }

func (*ValueMeta) isMetadata() {}

// MetadataValue wraps a metadata node back into a value so instructions can
// take it as an operand. Interned per metadata node in the Context. Being a
// value, it has a use list: the debug-value records tracking a value are
// found among the users of its MetadataValue.
type MetadataValue struct {
	valueBase
	MD Metadata
}
