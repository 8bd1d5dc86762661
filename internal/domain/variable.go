package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Variable is a view over a local or argument variable descriptor.
type Variable struct {
	Descriptor
}

// NewVariable wraps a node as a variable view.
func NewVariable(n *model.Node) Variable {
	return Variable{NewDescriptor(n)}
}

// Context returns the scope the variable lives in.
func (v Variable) Context() Scope { return Scope{v.descriptorField(0)} }

// Name returns the variable name.
func (v Variable) Name() string { return v.stringField(1) }

// File returns the file the variable is declared in.
func (v Variable) File() File { return File{Scope{v.descriptorField(2)}} }

// Line returns the declaration line. Line and argument number share one
// packed field: the low 24 bits hold the line.
func (v Variable) Line() uint32 {
	return uint32(v.uintField(3)) & 0x00FFFFFF
}

// ArgNumber returns the 1-based argument index from the top byte of the
// packed line field, or 0 for non-argument variables.
func (v Variable) ArgNumber() uint32 {
	return uint32(v.uintField(3)) >> 24
}

// VarType returns the variable's type descriptor.
func (v Variable) VarType() Type { return Type{Scope{v.descriptorField(4)}} }

// Flags returns the raw flags bit-set.
func (v Variable) Flags() uint32 { return uint32(v.uintField(5)) }

func (v Variable) hasFlag(mask uint32) bool { return v.Flags()&mask != 0 }

// IsArtificial reports a compiler-generated variable.
func (v Variable) IsArtificial() bool { return v.hasFlag(FlagArtificial) }

// IsObjectPointer reports the implicit object parameter (this/self).
func (v Variable) IsObjectPointer() bool { return v.hasFlag(FlagObjectPointer) }

// IsIndirect reports whether the variable is represented through a pointer.
func (v Variable) IsIndirect() bool { return v.hasFlag(FlagIndirectVariable) }

// InlinedAt returns the location the variable was inlined at, or nil.
func (v Variable) InlinedAt() *model.Node { return v.nodeField(6) }

// NumAddrElements returns the number of complex-address elements.
func (v Variable) NumAddrElements() int {
	if !v.IsValid() {
		return 0
	}

	if n := v.Node().NumFields() - 7; n > 0 {
		return n
	}

	return 0
}

// AddrElement returns the complex-address element at index i.
func (v Variable) AddrElement(i int) uint64 { return v.uintField(i + 7) }

// HasComplexAddress reports whether the variable carries indirect-address
// elements.
func (v Variable) HasComplexAddress() bool { return v.NumAddrElements() > 0 }

// IsBlockByrefVariable reports whether the variable was declared __block.
func (v Variable) IsBlockByrefVariable() bool {
	return v.VarType().IsBlockByrefStruct()
}

// Verify checks that the node is a well-formed variable: correct tag, a
// node-shaped context and a type node present.
func (v Variable) Verify() bool {
	return v.IsVariable() && v.nodeShaped(0) && v.nodeField(4) != nil
}

// GlobalVariable is a view over a global-variable descriptor.
type GlobalVariable struct {
	Descriptor
}

// NewGlobalVariable wraps a node as a global-variable view.
func NewGlobalVariable(n *model.Node) GlobalVariable {
	return GlobalVariable{NewDescriptor(n)}
}

// Context returns the scope the global is declared in.
func (gv GlobalVariable) Context() Scope { return Scope{gv.descriptorField(1)} }

// Name returns the global's name.
func (gv GlobalVariable) Name() string { return gv.stringField(2) }

// DisplayName returns the human-readable name.
func (gv GlobalVariable) DisplayName() string { return gv.stringField(3) }

// LinkageName returns the mangled linkage name.
func (gv GlobalVariable) LinkageName() string { return gv.stringField(4) }

// File returns the file the global is declared in.
func (gv GlobalVariable) File() File { return File{Scope{gv.descriptorField(5)}} }

// Line returns the declaration line.
func (gv GlobalVariable) Line() uint32 { return uint32(gv.uintField(6)) }

// VarType returns the global's type descriptor.
func (gv GlobalVariable) VarType() Type { return Type{Scope{gv.descriptorField(7)}} }

// IsLocalToUnit reports whether the global is local to its compile unit.
func (gv GlobalVariable) IsLocalToUnit() bool { return gv.boolField(8) }

// IsDefinition reports whether this descriptor is a definition.
func (gv GlobalVariable) IsDefinition() bool { return gv.boolField(9) }

// Global returns the program global value this descriptor describes, or nil.
func (gv GlobalVariable) Global() model.Entity { return gv.entityField(10) }

// StaticDataMemberDeclaration returns the static-member declaration this
// global definition corresponds to.
func (gv GlobalVariable) StaticDataMemberDeclaration() DerivedType {
	return DerivedType{Type{Scope{gv.descriptorField(11)}}}
}

// Verify checks that the node is a well-formed global variable: correct tag,
// a name and a type node present.
func (gv GlobalVariable) Verify() bool {
	return gv.IsGlobalVariable() && gv.Name() != "" && gv.nodeField(7) != nil
}
