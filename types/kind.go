// Package types defines the core types shared across the ddm library.
// This package exists so that the public document package and internal
// validation helpers can agree on value kinds and schema shapes without
// circular dependencies.
package types

// Kind classifies the runtime shape of a document value.
type Kind int

const (
	// KindNull is the kind of a nil value
	KindNull Kind = iota
	// KindBool is the kind of boolean values
	KindBool
	// KindNumber covers all integer and floating point values
	KindNumber
	// KindString is the kind of string values
	KindString
	// KindSequence is the kind of ordered heterogeneous sequences
	KindSequence
	// KindDocument is the kind of nested documents
	KindDocument
)

var kindNames = map[Kind]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindDocument: "document",
}

// String returns the canonical name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Schema maps document keys to an expected Kind or, for nested documents,
// to a nested Schema. Schema validation is permissive of extra document
// keys: it only requires that every schema key exists with a matching kind.
type Schema map[string]any
