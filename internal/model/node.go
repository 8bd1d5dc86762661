// Package model defines the data structures for debug-info metadata graphs.
package model

// FieldKind discriminates the payload carried by a Field.
type FieldKind int

// Available FieldKind values.
const (
	// FieldAbsent marks an optional slot that was never set.
	FieldAbsent FieldKind = iota
	// FieldInt carries a 64-bit integer.
	FieldInt
	// FieldString carries a string.
	FieldString
	// FieldNode carries a reference to another metadata node.
	FieldNode
	// FieldEntity carries a reference to a program entity (function, global).
	FieldEntity
)

// Field is one positional slot of a metadata node. The meaning of each
// position is fixed per tag; the typed views in internal/domain own that
// schema.
type Field struct {
	Kind   FieldKind
	Int    int64
	Str    string
	Node   *Node
	Entity Entity
}

// Node is a generic metadata record: an integer tag plus an ordered list of
// heterogeneous fields. Nodes are immutable once built and owned by whoever
// constructed the graph; views hold non-owning references. Two nodes are
// equal iff they are the same *Node — there is no structural equality.
type Node struct {
	Tag    uint32
	Fields []Field
}

// NewNode builds a node from a tag and its positional fields.
func NewNode(tag uint32, fields ...Field) *Node {
	return &Node{Tag: tag, Fields: fields}
}

// Field returns the field at index i, or an absent field when the index is
// past the end. Trailing optional slots are routinely omitted by producers.
func (n *Node) Field(i int) Field {
	if n == nil || i < 0 || i >= len(n.Fields) {
		return Field{}
	}

	return n.Fields[i]
}

// NumFields returns the number of stored fields.
func (n *Node) NumFields() int {
	if n == nil {
		return 0
	}

	return len(n.Fields)
}

// Absent returns an unset field.
func Absent() Field { return Field{} }

// Int wraps an integer field value.
func Int(v int64) Field { return Field{Kind: FieldInt, Int: v} }

// Str wraps a string field value.
func Str(s string) Field { return Field{Kind: FieldString, Str: s} }

// Ref wraps a node-reference field value. A nil node yields an absent field.
func Ref(n *Node) Field {
	if n == nil {
		return Field{}
	}

	return Field{Kind: FieldNode, Node: n}
}

// EntityRef wraps a program-entity reference field value.
func EntityRef(e Entity) Field {
	if e == nil {
		return Field{}
	}

	return Field{Kind: FieldEntity, Entity: e}
}
