package domain

import (
	"fmt"

	"difind.dev/pkg/difind/internal/model"
)

// TypeIdentifierMap maps a composite type's identifier to its canonical
// defining node. Build one per collection session with
// BuildTypeIdentifierMap; the underlying graph may change between sessions,
// so the map must not be persisted across them.
type TypeIdentifierMap map[string]*model.Node

// TypeRef is a reference to a type that is either a direct node link or a
// textual identifier naming a uniqued composite type in another translation
// unit. The zero TypeRef is empty and resolves to an invalid view.
type TypeRef struct {
	node  *model.Node
	ident string
}

// DirectTypeRef builds a direct reference to a type node.
func DirectTypeRef(n *model.Node) TypeRef { return TypeRef{node: n} }

// NamedTypeRef builds an identifier reference.
func NamedTypeRef(ident string) TypeRef { return TypeRef{ident: ident} }

// IsValid reports whether the reference points at anything.
func (r TypeRef) IsValid() bool { return r.node != nil || r.ident != "" }

// IsNamed reports whether the reference goes through a type identifier.
func (r TypeRef) IsNamed() bool { return r.node == nil && r.ident != "" }

// Resolve returns the type view the reference denotes. Direct references
// resolve to the identical node without touching the map. An identifier with
// no map entry means the producer emitted a reference without registering
// the definition; that graph is inconsistent and Resolve panics rather than
// silently binding the wrong type.
func (r TypeRef) Resolve(m TypeIdentifierMap) Type {
	if r.node != nil {
		return NewType(r.node)
	}

	if r.ident == "" {
		return Type{}
	}

	n, ok := m[r.ident]
	if !ok {
		panic(fmt.Sprintf("debug info: type identifier %q is not in the identifier map", r.ident))
	}

	t := NewType(n)
	if !t.IsType() {
		panic(fmt.Sprintf("debug info: identifier map entry %q is not a type", r.ident))
	}

	return t
}

// Name returns the referenced type's name without requiring a map: the
// underlying type name for a direct reference, the identifier itself for a
// named one. Diagnostics use this when full resolution is not needed.
func (r TypeRef) Name() string {
	if r.node != nil {
		return NewType(r.node).Name()
	}

	return r.ident
}

// ScopeRef is the scope counterpart of TypeRef: scope context fields may
// name a uniqued composite type instead of linking it directly.
type ScopeRef struct {
	node  *model.Node
	ident string
}

// DirectScopeRef builds a direct reference to a scope node.
func DirectScopeRef(n *model.Node) ScopeRef { return ScopeRef{node: n} }

// NamedScopeRef builds an identifier reference.
func NamedScopeRef(ident string) ScopeRef { return ScopeRef{ident: ident} }

// IsValid reports whether the reference points at anything.
func (r ScopeRef) IsValid() bool { return r.node != nil || r.ident != "" }

// IsNamed reports whether the reference goes through a type identifier.
func (r ScopeRef) IsNamed() bool { return r.node == nil && r.ident != "" }

// Resolve returns the scope view the reference denotes, with the same
// contract as TypeRef.Resolve.
func (r ScopeRef) Resolve(m TypeIdentifierMap) Scope {
	if r.node != nil {
		return NewScope(r.node)
	}

	if r.ident == "" {
		return Scope{}
	}

	n, ok := m[r.ident]
	if !ok {
		panic(fmt.Sprintf("debug info: type identifier %q is not in the identifier map", r.ident))
	}

	s := NewScope(n)
	if !s.IsType() {
		panic(fmt.Sprintf("debug info: identifier map entry %q is not a type", r.ident))
	}

	return s
}

// Name returns the referenced scope's name without requiring a map.
func (r ScopeRef) Name() string {
	if r.node != nil {
		return NewScope(r.node).Name()
	}

	return r.ident
}

// BuildTypeIdentifierMap scans the retained-type lists of the given
// compile-unit nodes and registers every composite type that carries a
// non-empty identifier. Identifiers are unique across a well-formed module;
// on a duplicate the first registration wins (the duplicate is a producer
// bug surfaced by verification tooling, not guarded here).
func BuildTypeIdentifierMap(cus []*model.Node) TypeIdentifierMap {
	m := make(TypeIdentifierMap)

	for _, cuNode := range cus {
		cu := NewCompileUnit(cuNode)
		retained := cu.RetainedTypes()

		for i := 0; i < retained.NumElements(); i++ {
			elem := retained.Element(i)
			if !elem.IsCompositeType() {
				continue
			}

			ct := CompositeType{DerivedType{Type{Scope{elem}}}}

			id := ct.Identifier()
			if id == "" {
				continue
			}

			if _, seen := m[id]; !seen {
				m[id] = ct.Node()
			}
		}
	}

	return m
}
