// Package domain contains the typed view layer, reference resolution and the
// deduplicating debug-info finder.
package domain

// VersionMask covers the encoding-version bits a producer may fold into the
// tag field. Tag() strips them before classification.
const VersionMask uint32 = 0xFFFF << 16

// DWARF tags used by the view layer. Values follow the DWARF spec plus the
// vendor range for local/argument variables.
const (
	TagArrayType            uint32 = 0x0001
	TagClassType            uint32 = 0x0002
	TagEnumerationType      uint32 = 0x0004
	TagFormalParameter      uint32 = 0x0005
	TagImportedDeclaration  uint32 = 0x0008
	TagLexicalBlock         uint32 = 0x000b
	TagMember               uint32 = 0x000d
	TagPointerType          uint32 = 0x000f
	TagReferenceType        uint32 = 0x0010
	TagCompileUnit          uint32 = 0x0011
	TagStructureType        uint32 = 0x0013
	TagSubroutineType       uint32 = 0x0015
	TagTypedef              uint32 = 0x0016
	TagUnionType            uint32 = 0x0017
	TagUnspecifiedParams    uint32 = 0x0018
	TagInheritance          uint32 = 0x001c
	TagPtrToMemberType      uint32 = 0x001f
	TagSubrangeType         uint32 = 0x0021
	TagBaseType             uint32 = 0x0024
	TagConstType            uint32 = 0x0026
	TagEnumerator           uint32 = 0x0028
	TagFileType             uint32 = 0x0029
	TagFriend               uint32 = 0x002a
	TagNamespace            uint32 = 0x0039
	TagSubprogram           uint32 = 0x002e
	TagTemplateTypeParam    uint32 = 0x002f
	TagTemplateValueParam   uint32 = 0x0030
	TagVariable             uint32 = 0x0034
	TagVolatileType         uint32 = 0x0035
	TagRestrictType         uint32 = 0x0037
	TagImportedModule       uint32 = 0x003a
	TagUnspecifiedType      uint32 = 0x003b
	TagRvalueReferenceType  uint32 = 0x0042
	TagAutoVariable         uint32 = 0x0100
	TagArgVariable          uint32 = 0x0101
	TagGNUTemplateTemplate  uint32 = 0x4106
	TagGNUTemplateParamPack uint32 = 0x4107
)

// Flags is the bit-set field shared by types, subprograms and variables.
// Each named accessor is a mask test; there is no independent storage.
const (
	FlagPrivate           = 1 << 0
	FlagProtected         = 1 << 1
	FlagFwdDecl           = 1 << 2
	FlagAppleBlock        = 1 << 3
	FlagBlockByrefStruct  = 1 << 4
	FlagVirtual           = 1 << 5
	FlagArtificial        = 1 << 6
	FlagExplicit          = 1 << 7
	FlagPrototyped        = 1 << 8
	FlagObjcClassComplete = 1 << 9
	FlagObjectPointer     = 1 << 10
	FlagVector            = 1 << 11
	FlagStaticMember      = 1 << 12
	FlagIndirectVariable  = 1 << 13
)

var tagNames = map[uint32]string{
	TagArrayType:            "array_type",
	TagClassType:            "class_type",
	TagEnumerationType:      "enumeration_type",
	TagFormalParameter:      "formal_parameter",
	TagImportedDeclaration:  "imported_declaration",
	TagLexicalBlock:         "lexical_block",
	TagMember:               "member",
	TagPointerType:          "pointer_type",
	TagReferenceType:        "reference_type",
	TagCompileUnit:          "compile_unit",
	TagStructureType:        "structure_type",
	TagSubroutineType:       "subroutine_type",
	TagTypedef:              "typedef",
	TagUnionType:            "union_type",
	TagUnspecifiedParams:    "unspecified_parameters",
	TagInheritance:          "inheritance",
	TagPtrToMemberType:      "ptr_to_member_type",
	TagSubrangeType:         "subrange_type",
	TagBaseType:             "base_type",
	TagConstType:            "const_type",
	TagEnumerator:           "enumerator",
	TagFileType:             "file_type",
	TagFriend:               "friend",
	TagNamespace:            "namespace",
	TagSubprogram:           "subprogram",
	TagTemplateTypeParam:    "template_type_parameter",
	TagTemplateValueParam:   "template_value_parameter",
	TagVariable:             "variable",
	TagVolatileType:         "volatile_type",
	TagRestrictType:         "restrict_type",
	TagImportedModule:       "imported_module",
	TagUnspecifiedType:      "unspecified_type",
	TagRvalueReferenceType:  "rvalue_reference_type",
	TagAutoVariable:         "auto_variable",
	TagArgVariable:          "arg_variable",
	TagGNUTemplateTemplate:  "GNU_template_template_param",
	TagGNUTemplateParamPack: "GNU_template_parameter_pack",
}

var tagValues = invertTagNames()

func invertTagNames() map[string]uint32 {
	m := make(map[string]uint32, len(tagNames))
	for tag, name := range tagNames {
		m[name] = tag
	}

	return m
}

// TagName returns the symbolic name for a tag, or "" for untagged nodes and
// unknown values.
func TagName(tag uint32) string {
	return tagNames[tag&^VersionMask]
}

// TagByName resolves a symbolic tag name. The second result reports whether
// the name is known.
func TagByName(name string) (uint32, bool) {
	tag, ok := tagValues[name]
	return tag, ok
}
