package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Type is the shared view over all type variants.
type Type struct {
	Scope
}

// NewType wraps a node as a type view.
func NewType(n *model.Node) Type {
	return Type{NewScope(n)}
}

// Context returns the scope the type is declared in.
func (t Type) Context() ScopeRef { return t.scopeRefField(1) }

// Name returns the type name.
func (t Type) Name() string { return t.stringField(2) }

// Line returns the declaration line.
func (t Type) Line() uint32 { return uint32(t.uintField(3)) }

// SizeInBits returns the type's size.
func (t Type) SizeInBits() uint64 { return t.uintField(4) }

// AlignInBits returns the type's alignment.
func (t Type) AlignInBits() uint64 { return t.uintField(5) }

// OffsetInBits returns the member offset. Only member descriptors carry a
// meaningful value here.
func (t Type) OffsetInBits() uint64 { return t.uintField(6) }

// Flags returns the raw flags bit-set.
func (t Type) Flags() uint32 { return uint32(t.uintField(7)) }

func (t Type) hasFlag(mask uint32) bool { return t.Flags()&mask != 0 }

// IsPrivate reports the private access specifier.
func (t Type) IsPrivate() bool { return t.hasFlag(FlagPrivate) }

// IsProtected reports the protected access specifier.
func (t Type) IsProtected() bool { return t.hasFlag(FlagProtected) }

// IsForwardDecl reports whether this is a forward declaration.
func (t Type) IsForwardDecl() bool { return t.hasFlag(FlagFwdDecl) }

// IsAppleBlockExtension reports the Apple Blocks extension.
func (t Type) IsAppleBlockExtension() bool { return t.hasFlag(FlagAppleBlock) }

// IsBlockByrefStruct reports a block-byref structure.
func (t Type) IsBlockByrefStruct() bool { return t.hasFlag(FlagBlockByrefStruct) }

// IsVirtual reports virtual inheritance.
func (t Type) IsVirtual() bool { return t.hasFlag(FlagVirtual) }

// IsArtificial reports a compiler-generated type.
func (t Type) IsArtificial() bool { return t.hasFlag(FlagArtificial) }

// IsObjectPointer reports an object-pointer type.
func (t Type) IsObjectPointer() bool { return t.hasFlag(FlagObjectPointer) }

// IsObjcClassComplete reports a completed Objective-C class.
func (t Type) IsObjcClassComplete() bool { return t.hasFlag(FlagObjcClassComplete) }

// IsVector reports a vector type.
func (t Type) IsVector() bool { return t.hasFlag(FlagVector) }

// IsStaticMember reports a static member.
func (t Type) IsStaticMember() bool { return t.hasFlag(FlagStaticMember) }

// Verify checks that the node is a well-formed type: a type tag, a
// reference-shaped context and a node-shaped file link.
func (t Type) Verify() bool {
	return t.IsType() && t.refShaped(1) && t.nodeShaped(0)
}

// BasicType is a view over a basic type like 'int' or 'float'.
type BasicType struct {
	Type
}

// NewBasicType wraps a node as a basic-type view.
func NewBasicType(n *model.Node) BasicType {
	return BasicType{NewType(n)}
}

// Encoding returns the DWARF attribute encoding.
func (t BasicType) Encoding() uint32 { return uint32(t.uintField(8)) }

// Verify checks that the node is a well-formed basic type.
func (t BasicType) Verify() bool {
	return t.IsBasicType() && t.refShaped(1)
}

// DerivedType is a view over a qualified, pointer, reference, typedef or
// member type.
type DerivedType struct {
	Type
}

// NewDerivedType wraps a node as a derived-type view.
func NewDerivedType(n *model.Node) DerivedType {
	return DerivedType{NewType(n)}
}

// BaseType returns the reference to the type this one derives from.
func (t DerivedType) BaseType() TypeRef { return t.typeRefField(8) }

// ClassType returns the containing class for pointer-to-member types.
func (t DerivedType) ClassType() TypeRef { return t.typeRefField(9) }

// Constant returns the program constant backing a static member, or nil.
func (t DerivedType) Constant() model.Entity { return t.entityField(9) }

// Verify checks that the node is a well-formed derived type with a
// reference-shaped base-type slot.
func (t DerivedType) Verify() bool {
	return t.IsDerivedType() && t.refShaped(1) && t.refShaped(8)
}

// CompositeType is a view over a type with nested descriptors: structs,
// classes, unions, arrays, enums and subroutine types.
type CompositeType struct {
	DerivedType
}

// NewCompositeType wraps a node as a composite-type view.
func NewCompositeType(n *model.Node) CompositeType {
	return CompositeType{NewDerivedType(n)}
}

// Elements returns the member/element descriptor list.
func (t CompositeType) Elements() Array { return Array{t.descriptorField(9)} }

// RuntimeLang returns the runtime language code.
func (t CompositeType) RuntimeLang() uint32 { return uint32(t.uintField(10)) }

// ContainingType returns the reference to the holder of this type's vtable.
func (t CompositeType) ContainingType() TypeRef { return t.typeRefField(11) }

// TemplateParams returns the template-parameter list.
func (t CompositeType) TemplateParams() Array { return Array{t.descriptorField(12)} }

// Identifier returns the unique identifier naming this type across
// translation units, or "" when the type is only referenced directly.
func (t CompositeType) Identifier() string { return t.stringField(13) }

// Verify checks that the node is a well-formed composite type.
func (t CompositeType) Verify() bool {
	if !t.IsCompositeType() || !t.refShaped(1) || !t.refShaped(8) {
		return false
	}

	if !t.nodeShaped(9) || !t.refShaped(11) {
		return false
	}

	switch t.field(13).Kind {
	case model.FieldAbsent, model.FieldString:
		return true
	default:
		return false
	}
}

// Subrange represents an array bound: a lower bound and an element count.
type Subrange struct {
	Descriptor
}

// NewSubrange wraps a node as a subrange view.
func NewSubrange(n *model.Node) Subrange {
	return Subrange{NewDescriptor(n)}
}

// Lo returns the lower bound.
func (s Subrange) Lo() int64 { return s.intField(0) }

// Count returns the element count; -1 marks an open range.
func (s Subrange) Count() int64 { return s.intField(1) }

// Verify checks that the node is a well-formed subrange.
func (s Subrange) Verify() bool { return s.IsSubrange() }

// Enumerator is one name/value pair of an enumeration type.
type Enumerator struct {
	Descriptor
}

// NewEnumerator wraps a node as an enumerator view.
func NewEnumerator(n *model.Node) Enumerator {
	return Enumerator{NewDescriptor(n)}
}

// Name returns the enumerator name.
func (e Enumerator) Name() string { return e.stringField(0) }

// Value returns the enumerator value.
func (e Enumerator) Value() int64 { return e.intField(1) }

// Verify checks that the node is a well-formed enumerator with a name.
func (e Enumerator) Verify() bool {
	return e.IsEnumerator() && e.Name() != ""
}

// TemplateTypeParameter is a view over a template type parameter.
type TemplateTypeParameter struct {
	Descriptor
}

// NewTemplateTypeParameter wraps a node as a template-type-parameter view.
func NewTemplateTypeParameter(n *model.Node) TemplateTypeParameter {
	return TemplateTypeParameter{NewDescriptor(n)}
}

// Context returns the scope the parameter belongs to.
func (p TemplateTypeParameter) Context() ScopeRef { return p.scopeRefField(0) }

// Name returns the parameter name.
func (p TemplateTypeParameter) Name() string { return p.stringField(1) }

// ParamType returns the reference to the substituted type.
func (p TemplateTypeParameter) ParamType() TypeRef { return p.typeRefField(2) }

// Line returns the instantiation line.
func (p TemplateTypeParameter) Line() uint32 { return uint32(p.uintField(4)) }

// Column returns the instantiation column.
func (p TemplateTypeParameter) Column() uint32 { return uint32(p.uintField(5)) }

// Verify checks that the node is a well-formed template type parameter.
func (p TemplateTypeParameter) Verify() bool {
	return p.IsTemplateTypeParameter() && p.refShaped(0) && p.refShaped(2)
}

// TemplateValueParameter is a view over a template value parameter,
// including the GNU template-template and parameter-pack forms.
type TemplateValueParameter struct {
	Descriptor
}

// NewTemplateValueParameter wraps a node as a template-value-parameter view.
func NewTemplateValueParameter(n *model.Node) TemplateValueParameter {
	return TemplateValueParameter{NewDescriptor(n)}
}

// Context returns the scope the parameter belongs to.
func (p TemplateValueParameter) Context() ScopeRef { return p.scopeRefField(0) }

// Name returns the parameter name.
func (p TemplateValueParameter) Name() string { return p.stringField(1) }

// ParamType returns the reference to the parameter's type.
func (p TemplateValueParameter) ParamType() TypeRef { return p.typeRefField(2) }

// Value returns the substituted value field.
func (p TemplateValueParameter) Value() model.Field { return p.field(3) }

// Line returns the instantiation line.
func (p TemplateValueParameter) Line() uint32 { return uint32(p.uintField(5)) }

// Column returns the instantiation column.
func (p TemplateValueParameter) Column() uint32 { return uint32(p.uintField(6)) }

// Verify checks that the node is a well-formed template value parameter.
func (p TemplateValueParameter) Verify() bool {
	return p.IsTemplateValueParameter() && p.refShaped(0) && p.refShaped(2)
}
