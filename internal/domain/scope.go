package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Scope is the base view for lexical and program-structural containers:
// files, compile units, subprograms, lexical blocks and namespaces. Types
// are scopes too, since nested types scope their members.
type Scope struct {
	Descriptor
}

// NewScope wraps a node as a scope view.
func NewScope(n *model.Node) Scope {
	return Scope{NewDescriptor(n)}
}

// Context returns the parent-scope reference for this scope, or an empty
// reference for scopes without one (files, compile units).
func (s Scope) Context() ScopeRef {
	switch {
	case s.IsType():
		return Type{s}.Context()
	case s.IsSubprogram():
		return Subprogram{s}.Context()
	case s.IsLexicalBlockFile():
		return ScopeRef{node: LexicalBlockFile{s}.Context().Node()}
	case s.IsLexicalBlock():
		return ScopeRef{node: LexicalBlock{s}.Context().Node()}
	case s.IsNamespace():
		return ScopeRef{node: Namespace{s}.Context().Node()}
	default:
		return ScopeRef{}
	}
}

// Name returns the scope's name when the variant has one, else "".
func (s Scope) Name() string {
	switch {
	case s.IsType():
		return Type{s}.Name()
	case s.IsSubprogram():
		return Subprogram{s}.Name()
	case s.IsNamespace():
		return Namespace{s}.Name()
	default:
		return ""
	}
}

// File returns the file descriptor this scope belongs to. For file scopes
// that is the scope itself; lexical blocks, namespaces, subprograms, types
// and compile units keep a file reference in their first slot.
func (s Scope) File() File {
	if s.IsFile() {
		return File{s}
	}

	return File{Scope{s.descriptorField(0)}}
}

// Filename returns the name of the file this scope belongs to.
func (s Scope) Filename() string { return s.File().Filename() }

// Directory returns the directory of the file this scope belongs to.
func (s Scope) Directory() string { return s.File().Directory() }

// Ref generates a reference to this scope. Uniqued composite types are
// referenced through their identifier instead of the node itself so that
// type graphs stay separable across translation units.
func (s Scope) Ref() ScopeRef {
	if s.IsCompositeType() {
		if id := (CompositeType{DerivedType{Type{s}}}).Identifier(); id != "" {
			return ScopeRef{ident: id}
		}
	}

	return ScopeRef{node: s.Node()}
}

// File is a view over a source-file descriptor.
type File struct {
	Scope
}

// NewFile wraps a node as a file view.
func NewFile(n *model.Node) File {
	return File{NewScope(n)}
}

// Filename returns the file's base name.
func (f File) Filename() string { return f.stringField(0) }

// Directory returns the file's directory.
func (f File) Directory() string { return f.stringField(1) }

// Verify checks that the node is a well-formed file descriptor.
func (f File) Verify() bool {
	return f.IsFile() && f.field(0).Kind == model.FieldString
}

// CompileUnit is a view over a compile-unit descriptor. Compile units anchor
// the module-level lists the finder walks.
type CompileUnit struct {
	Scope
}

// NewCompileUnit wraps a node as a compile-unit view.
func NewCompileUnit(n *model.Node) CompileUnit {
	return CompileUnit{NewScope(n)}
}

// Language returns the source-language code.
func (cu CompileUnit) Language() uint32 { return uint32(cu.uintField(1)) }

// Producer returns the producer string.
func (cu CompileUnit) Producer() string { return cu.stringField(2) }

// IsOptimized reports whether the unit was compiled with optimizations.
func (cu CompileUnit) IsOptimized() bool { return cu.boolField(3) }

// Flags returns the command-line flags string.
func (cu CompileUnit) Flags() string { return cu.stringField(4) }

// RuntimeVersion returns the language runtime version.
func (cu CompileUnit) RuntimeVersion() uint32 { return uint32(cu.uintField(5)) }

// EnumTypes returns the unit's enumeration-type list.
func (cu CompileUnit) EnumTypes() Array { return Array{cu.descriptorField(6)} }

// RetainedTypes returns the unit's retained-type list. Identifier-map
// building scans this list.
func (cu CompileUnit) RetainedTypes() Array { return Array{cu.descriptorField(7)} }

// Subprograms returns the unit's subprogram list.
func (cu CompileUnit) Subprograms() Array { return Array{cu.descriptorField(8)} }

// GlobalVariables returns the unit's global-variable list.
func (cu CompileUnit) GlobalVariables() Array { return Array{cu.descriptorField(9)} }

// ImportedEntities returns the unit's imported-entity list.
func (cu CompileUnit) ImportedEntities() Array { return Array{cu.descriptorField(10)} }

// SplitDebugFilename returns the split-debug output file name.
func (cu CompileUnit) SplitDebugFilename() string { return cu.stringField(11) }

// Verify checks that the node is a well-formed compile unit: correct tag and
// node-shaped (or absent) list fields.
func (cu CompileUnit) Verify() bool {
	if !cu.IsCompileUnit() {
		return false
	}

	for _, i := range []int{6, 7, 8, 9, 10} {
		if !cu.nodeShaped(i) {
			return false
		}
	}

	return true
}

// LexicalBlock is a view over a lexical block.
type LexicalBlock struct {
	Scope
}

// NewLexicalBlock wraps a node as a lexical-block view.
func NewLexicalBlock(n *model.Node) LexicalBlock {
	return LexicalBlock{NewScope(n)}
}

// Context returns the enclosing scope.
func (b LexicalBlock) Context() Scope { return Scope{b.descriptorField(1)} }

// Line returns the block's starting line.
func (b LexicalBlock) Line() uint32 { return uint32(b.uintField(2)) }

// Column returns the block's starting column.
func (b LexicalBlock) Column() uint32 { return uint32(b.uintField(3)) }

// Verify checks that the node is a well-formed lexical block with an
// enclosing scope.
func (b LexicalBlock) Verify() bool {
	return b.IsLexicalBlock() && b.nodeField(1) != nil
}

// LexicalBlockFile wraps a lexical block whose contents moved to a different
// file (e.g. via #include inside a block). It shares the block's tag and
// delegates most queries to the wrapped block.
type LexicalBlockFile struct {
	Scope
}

// NewLexicalBlockFile wraps a node as a lexical-block-file view.
func NewLexicalBlockFile(n *model.Node) LexicalBlockFile {
	return LexicalBlockFile{NewScope(n)}
}

// WrappedScope returns the lexical block this wrapper refers to.
func (b LexicalBlockFile) WrappedScope() LexicalBlock {
	return LexicalBlock{Scope{b.descriptorField(1)}}
}

// Context returns the wrapped block when it is already a subprogram, else
// the wrapped block's own context. The wrapper itself never appears in a
// scope chain.
func (b LexicalBlockFile) Context() Scope {
	sc := b.WrappedScope()
	if sc.IsSubprogram() {
		return sc.Scope
	}

	return sc.Context()
}

// Line returns the wrapped block's starting line.
func (b LexicalBlockFile) Line() uint32 { return b.WrappedScope().Line() }

// Column returns the wrapped block's starting column.
func (b LexicalBlockFile) Column() uint32 { return b.WrappedScope().Column() }

// Verify checks that the node is a well-formed block-file wrapper.
func (b LexicalBlockFile) Verify() bool {
	return b.IsLexicalBlockFile() && b.nodeField(1) != nil
}

// Namespace is a view over a namespace descriptor.
type Namespace struct {
	Scope
}

// NewNamespace wraps a node as a namespace view.
func NewNamespace(n *model.Node) Namespace {
	return Namespace{NewScope(n)}
}

// Context returns the enclosing scope.
func (ns Namespace) Context() Scope { return Scope{ns.descriptorField(1)} }

// Name returns the namespace name. Anonymous namespaces have an empty name.
func (ns Namespace) Name() string { return ns.stringField(2) }

// Line returns the declaration line.
func (ns Namespace) Line() uint32 { return uint32(ns.uintField(3)) }

// Verify checks that the node is a well-formed namespace.
func (ns Namespace) Verify() bool {
	return ns.IsNamespace() && ns.nodeShaped(1)
}

// Array is a view over an untagged node holding a list of descriptors, such
// as a compile unit's retained-type list or a composite type's members.
type Array struct {
	Descriptor
}

// NewArray wraps a node as an array view.
func NewArray(n *model.Node) Array {
	return Array{NewDescriptor(n)}
}

// NumElements returns the element count. An invalid array has zero elements.
func (a Array) NumElements() int {
	if !a.IsValid() {
		return 0
	}

	return a.Node().NumFields()
}

// Element returns the descriptor at index i.
func (a Array) Element(i int) Descriptor {
	return a.descriptorField(i)
}
