package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Descriptor is a thin lens over a metadata node. It interprets positional
// fields on demand and must not be cached across graph changes — rebuild it
// from the node instead. The zero Descriptor is invalid.
type Descriptor struct {
	node *model.Node
}

// NewDescriptor wraps a node. A nil node yields an invalid descriptor whose
// accessors return zero values.
func NewDescriptor(n *model.Node) Descriptor {
	return Descriptor{node: n}
}

// IsValid reports whether the descriptor wraps a node. Accessors on an
// invalid descriptor return zero values; callers are expected to check
// validity first.
func (d Descriptor) IsValid() bool { return d.node != nil }

// Node returns the underlying node. Identity comparisons between descriptors
// go through this pointer.
func (d Descriptor) Node() *model.Node { return d.node }

// Same reports whether two descriptors view the identical node.
func (d Descriptor) Same(other Descriptor) bool { return d.node == other.node }

// Tag returns the node's tag with any encoding-version bits masked off.
func (d Descriptor) Tag() uint32 {
	if d.node == nil {
		return 0
	}

	return d.node.Tag &^ VersionMask
}

func (d Descriptor) field(i int) model.Field {
	if d.node == nil {
		return model.Field{}
	}

	return d.node.Field(i)
}

func (d Descriptor) stringField(i int) string {
	f := d.field(i)
	if f.Kind != model.FieldString {
		return ""
	}

	return f.Str
}

func (d Descriptor) intField(i int) int64 {
	f := d.field(i)
	if f.Kind != model.FieldInt {
		return 0
	}

	return f.Int
}

func (d Descriptor) uintField(i int) uint64 {
	return uint64(d.intField(i))
}

func (d Descriptor) boolField(i int) bool {
	return d.intField(i) != 0
}

func (d Descriptor) nodeField(i int) *model.Node {
	f := d.field(i)
	if f.Kind != model.FieldNode {
		return nil
	}

	return f.Node
}

func (d Descriptor) descriptorField(i int) Descriptor {
	return NewDescriptor(d.nodeField(i))
}

func (d Descriptor) entityField(i int) model.Entity {
	f := d.field(i)
	if f.Kind != model.FieldEntity {
		return nil
	}

	return f.Entity
}

// scopeRefField decodes a field that may hold either a scope node or a type
// identifier string.
func (d Descriptor) scopeRefField(i int) ScopeRef {
	switch f := d.field(i); f.Kind {
	case model.FieldNode:
		return ScopeRef{node: f.Node}
	case model.FieldString:
		return ScopeRef{ident: f.Str}
	default:
		return ScopeRef{}
	}
}

// typeRefField decodes a field that may hold either a type node or a type
// identifier string.
func (d Descriptor) typeRefField(i int) TypeRef {
	switch f := d.field(i); f.Kind {
	case model.FieldNode:
		return TypeRef{node: f.Node}
	case model.FieldString:
		return TypeRef{ident: f.Str}
	default:
		return TypeRef{}
	}
}

// refShaped reports whether field i can legally encode a reference: absent,
// a node, or an identifier string. Used by Verify implementations to tell
// "optional and unset" apart from "present with the wrong shape".
func (d Descriptor) refShaped(i int) bool {
	switch d.field(i).Kind {
	case model.FieldAbsent, model.FieldNode, model.FieldString:
		return true
	default:
		return false
	}
}

// nodeShaped reports whether field i is absent or a node reference.
func (d Descriptor) nodeShaped(i int) bool {
	switch d.field(i).Kind {
	case model.FieldAbsent, model.FieldNode:
		return true
	default:
		return false
	}
}

// IsBasicType reports whether the node is a basic or unspecified type.
func (d Descriptor) IsBasicType() bool {
	switch d.Tag() {
	case TagBaseType, TagUnspecifiedType:
		return d.node != nil
	default:
		return false
	}
}

// IsDerivedType reports whether the node is a derived type. Composite types
// are modelled as derived types and therefore also satisfy this predicate.
func (d Descriptor) IsDerivedType() bool {
	if d.node == nil {
		return false
	}

	switch d.Tag() {
	case TagTypedef, TagPointerType, TagReferenceType, TagRvalueReferenceType,
		TagConstType, TagVolatileType, TagRestrictType, TagMember,
		TagInheritance, TagPtrToMemberType, TagFriend:
		return true
	default:
		return d.IsCompositeType()
	}
}

// IsCompositeType reports whether the node is a composite type.
func (d Descriptor) IsCompositeType() bool {
	if d.node == nil {
		return false
	}

	switch d.Tag() {
	case TagArrayType, TagStructureType, TagUnionType, TagClassType,
		TagEnumerationType, TagSubroutineType:
		return true
	default:
		return false
	}
}

// IsType reports whether the node is any type variant.
func (d Descriptor) IsType() bool {
	return d.IsBasicType() || d.IsDerivedType()
}

// IsSubprogram reports whether the node is a subprogram.
func (d Descriptor) IsSubprogram() bool {
	return d.node != nil && d.Tag() == TagSubprogram
}

// IsGlobalVariable reports whether the node is a global-variable descriptor.
func (d Descriptor) IsGlobalVariable() bool {
	return d.node != nil && d.Tag() == TagVariable
}

// IsVariable reports whether the node is a local or argument variable.
func (d Descriptor) IsVariable() bool {
	switch d.Tag() {
	case TagAutoVariable, TagArgVariable:
		return d.node != nil
	default:
		return false
	}
}

// IsCompileUnit reports whether the node is a compile unit.
func (d Descriptor) IsCompileUnit() bool {
	return d.node != nil && d.Tag() == TagCompileUnit
}

// IsFile reports whether the node is a file descriptor.
func (d Descriptor) IsFile() bool {
	return d.node != nil && d.Tag() == TagFileType
}

// IsNamespace reports whether the node is a namespace.
func (d Descriptor) IsNamespace() bool {
	return d.node != nil && d.Tag() == TagNamespace
}

// IsLexicalBlockFile reports whether the node is the file-change wrapper
// around a lexical block. The wrapper shares the lexical-block tag and is
// told apart by its narrower field layout.
func (d Descriptor) IsLexicalBlockFile() bool {
	return d.node != nil && d.Tag() == TagLexicalBlock && d.node.NumFields() == 2
}

// IsLexicalBlock reports whether the node is a lexical block proper.
func (d Descriptor) IsLexicalBlock() bool {
	return d.node != nil && d.Tag() == TagLexicalBlock && d.node.NumFields() > 2
}

// IsScope reports whether the node is any scope variant. Types count as
// scopes since nested types scope their members.
func (d Descriptor) IsScope() bool {
	if d.node == nil {
		return false
	}

	switch d.Tag() {
	case TagCompileUnit, TagLexicalBlock, TagSubprogram, TagNamespace,
		TagFileType:
		return true
	default:
		return d.IsType()
	}
}

// IsSubrange reports whether the node is an array subrange.
func (d Descriptor) IsSubrange() bool {
	return d.node != nil && d.Tag() == TagSubrangeType
}

// IsEnumerator reports whether the node is an enumerator.
func (d Descriptor) IsEnumerator() bool {
	return d.node != nil && d.Tag() == TagEnumerator
}

// IsTemplateTypeParameter reports whether the node is a template type
// parameter.
func (d Descriptor) IsTemplateTypeParameter() bool {
	return d.node != nil && d.Tag() == TagTemplateTypeParam
}

// IsTemplateValueParameter reports whether the node is a template value
// parameter, including the GNU template-template and parameter-pack forms.
func (d Descriptor) IsTemplateValueParameter() bool {
	switch d.Tag() {
	case TagTemplateValueParam, TagGNUTemplateTemplate, TagGNUTemplateParamPack:
		return d.node != nil
	default:
		return false
	}
}

// IsUnspecifiedParameter reports whether the node marks unspecified
// parameters (varargs).
func (d Descriptor) IsUnspecifiedParameter() bool {
	return d.node != nil && d.Tag() == TagUnspecifiedParams
}

// IsImportedEntity reports whether the node is an imported declaration or
// module.
func (d Descriptor) IsImportedEntity() bool {
	switch d.Tag() {
	case TagImportedDeclaration, TagImportedModule:
		return d.node != nil
	default:
		return false
	}
}

// Verify checks structural well-formedness by dispatching to the variant the
// tag selects. It is advisory: traversal never calls it, so tooling can
// report every malformed node instead of stopping at the first.
func (d Descriptor) Verify() bool {
	switch {
	case !d.IsValid():
		return false
	case d.IsCompositeType():
		return CompositeType{DerivedType{Type{Scope{d}}}}.Verify()
	case d.IsDerivedType():
		return DerivedType{Type{Scope{d}}}.Verify()
	case d.IsBasicType():
		return BasicType{Type{Scope{d}}}.Verify()
	case d.IsSubprogram():
		return Subprogram{Scope{d}}.Verify()
	case d.IsGlobalVariable():
		return GlobalVariable{d}.Verify()
	case d.IsVariable():
		return Variable{d}.Verify()
	case d.IsCompileUnit():
		return CompileUnit{Scope{d}}.Verify()
	case d.IsFile():
		return File{Scope{d}}.Verify()
	case d.IsNamespace():
		return Namespace{Scope{d}}.Verify()
	case d.IsLexicalBlockFile():
		return LexicalBlockFile{Scope{d}}.Verify()
	case d.IsLexicalBlock():
		return LexicalBlock{Scope{d}}.Verify()
	case d.IsSubrange():
		return Subrange{d}.Verify()
	case d.IsEnumerator():
		return Enumerator{d}.Verify()
	case d.IsTemplateTypeParameter():
		return TemplateTypeParameter{d}.Verify()
	case d.IsTemplateValueParameter():
		return TemplateValueParameter{d}.Verify()
	case d.IsImportedEntity():
		return ImportedEntity{d}.Verify()
	case d.IsUnspecifiedParameter():
		return true
	default:
		return false
	}
}
