package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Location is a view over a source-location attachment. Location nodes are
// untagged; their shape alone identifies them.
type Location struct {
	Descriptor
}

// NewLocation wraps a node as a location view.
func NewLocation(n *model.Node) Location {
	return Location{NewDescriptor(n)}
}

// Line returns the source line.
func (l Location) Line() uint32 { return uint32(l.uintField(0)) }

// Column returns the source column.
func (l Location) Column() uint32 { return uint32(l.uintField(1)) }

// Scope returns the scope the location points into.
func (l Location) Scope() Scope { return Scope{l.descriptorField(2)} }

// OrigLocation returns the pre-inlining location for inlined code, or an
// invalid location.
func (l Location) OrigLocation() Location {
	return Location{l.descriptorField(3)}
}

// Filename returns the file name of the location's scope.
func (l Location) Filename() string { return l.Scope().Filename() }

// Directory returns the directory of the location's scope.
func (l Location) Directory() string { return l.Scope().Directory() }

// Verify checks that the node has the fixed four-slot location shape with a
// scope present.
func (l Location) Verify() bool {
	if !l.IsValid() || l.Node().NumFields() != 4 {
		return false
	}

	return l.nodeField(2) != nil
}

// ImportedEntity is a view over an imported module or declaration (a C++
// using directive or similar).
type ImportedEntity struct {
	Descriptor
}

// NewImportedEntity wraps a node as an imported-entity view.
func NewImportedEntity(n *model.Node) ImportedEntity {
	return ImportedEntity{NewDescriptor(n)}
}

// Context returns the scope the import appears in.
func (ie ImportedEntity) Context() Scope { return Scope{ie.descriptorField(0)} }

// Entity returns the imported descriptor.
func (ie ImportedEntity) Entity() Descriptor { return ie.descriptorField(1) }

// Line returns the line of the import.
func (ie ImportedEntity) Line() uint32 { return uint32(ie.uintField(2)) }

// Name returns the local alias name, if any.
func (ie ImportedEntity) Name() string { return ie.stringField(3) }

// Verify checks that the node is a well-formed imported entity with both a
// context and an imported descriptor.
func (ie ImportedEntity) Verify() bool {
	return ie.IsImportedEntity() && ie.nodeField(0) != nil && ie.nodeField(1) != nil
}
