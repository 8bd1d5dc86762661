package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Subprogram is a view over a function's debug descriptor.
type Subprogram struct {
	Scope
}

// NewSubprogram wraps a node as a subprogram view.
func NewSubprogram(n *model.Node) Subprogram {
	return Subprogram{NewScope(n)}
}

// Context returns the reference to the scope the subprogram is declared in.
func (sp Subprogram) Context() ScopeRef { return sp.scopeRefField(1) }

// Name returns the subprogram name.
func (sp Subprogram) Name() string { return sp.stringField(2) }

// DisplayName returns the human-readable name.
func (sp Subprogram) DisplayName() string { return sp.stringField(3) }

// LinkageName returns the mangled linkage name.
func (sp Subprogram) LinkageName() string { return sp.stringField(4) }

// Line returns the declaration line.
func (sp Subprogram) Line() uint32 { return uint32(sp.uintField(5)) }

// FnType returns the subprogram's type descriptor. The producer emits it as
// a subroutine composite, but a subprogram may also point straight at the
// type it constructs.
func (sp Subprogram) FnType() CompositeType {
	return CompositeType{DerivedType{Type{Scope{sp.descriptorField(6)}}}}
}

// IsLocalToUnit reports whether the subprogram is local to its compile unit,
// like a C static function.
func (sp Subprogram) IsLocalToUnit() bool { return sp.boolField(7) }

// IsDefinition reports whether this descriptor is a definition rather than a
// declaration.
func (sp Subprogram) IsDefinition() bool { return sp.boolField(8) }

// Virtuality returns the DWARF virtuality code.
func (sp Subprogram) Virtuality() uint32 { return uint32(sp.uintField(9)) }

// VirtualIndex returns the vtable slot index.
func (sp Subprogram) VirtualIndex() uint32 { return uint32(sp.uintField(10)) }

// ContainingType returns the reference to the type holding this method's
// vtable.
func (sp Subprogram) ContainingType() TypeRef { return sp.typeRefField(11) }

// Flags returns the raw flags bit-set.
func (sp Subprogram) Flags() uint32 { return uint32(sp.uintField(12)) }

func (sp Subprogram) hasFlag(mask uint32) bool { return sp.Flags()&mask != 0 }

// IsArtificial reports a compiler-generated subprogram.
func (sp Subprogram) IsArtificial() bool { return sp.hasFlag(FlagArtificial) }

// IsPrivate reports the private access specifier.
func (sp Subprogram) IsPrivate() bool { return sp.hasFlag(FlagPrivate) }

// IsProtected reports the protected access specifier.
func (sp Subprogram) IsProtected() bool { return sp.hasFlag(FlagProtected) }

// IsExplicit reports an explicit constructor.
func (sp Subprogram) IsExplicit() bool { return sp.hasFlag(FlagExplicit) }

// IsPrototyped reports a prototyped signature.
func (sp Subprogram) IsPrototyped() bool { return sp.hasFlag(FlagPrototyped) }

// IsOptimized reports whether the enclosing function was optimized.
func (sp Subprogram) IsOptimized() bool { return sp.boolField(13) }

// Function returns the program function this descriptor describes, or nil
// for declarations.
func (sp Subprogram) Function() *model.Function {
	fn, _ := sp.entityField(14).(*model.Function)
	return fn
}

// Describes reports whether this subprogram carries the debug information
// for fn.
func (sp Subprogram) Describes(fn *model.Function) bool {
	return fn != nil && sp.Function() == fn
}

// TemplateParams returns the template-parameter list.
func (sp Subprogram) TemplateParams() Array { return Array{sp.descriptorField(15)} }

// FunctionDeclaration returns the declaration this definition refers to.
func (sp Subprogram) FunctionDeclaration() Subprogram {
	return Subprogram{Scope{sp.descriptorField(16)}}
}

// Variables returns the list of local variables retained for this
// subprogram.
func (sp Subprogram) Variables() Array { return Array{sp.descriptorField(17)} }

// ScopeLine returns the line where the subprogram's scope begins, which may
// differ from the declaration line.
func (sp Subprogram) ScopeLine() uint32 { return uint32(sp.uintField(18)) }

// Verify checks that the node is a well-formed subprogram: correct tag, a
// reference-shaped context and a type slot that is absent or a type node.
func (sp Subprogram) Verify() bool {
	if !sp.IsSubprogram() || !sp.refShaped(1) {
		return false
	}

	if n := sp.nodeField(6); n != nil && !NewDescriptor(n).IsType() {
		return false
	}

	return sp.nodeShaped(6)
}
