package domain

// EnclosingSubprogram walks a scope chain upward until it reaches the
// subprogram enclosing the scope, resolving context references against the
// given identifier map. It returns an invalid view when the chain ends
// without one (e.g. at a compile unit).
func EnclosingSubprogram(s Scope, m TypeIdentifierMap) Subprogram {
	for s.IsValid() {
		if s.IsSubprogram() {
			return Subprogram{s}
		}

		if s.IsCompileUnit() || s.IsFile() {
			return Subprogram{}
		}

		s = s.Context().Resolve(m)
	}

	return Subprogram{}
}

// EnclosingSubprogramAt walks the scope chain of a location attachment.
func EnclosingSubprogramAt(loc Location, m TypeIdentifierMap) Subprogram {
	if !loc.IsValid() {
		return Subprogram{}
	}

	return EnclosingSubprogram(loc.Scope(), m)
}

// UnderlyingCompositeType follows a derived-type chain (typedefs,
// qualifiers, pointers) down to the composite type underneath, resolving
// base-type references against the given identifier map. It returns an
// invalid view when the chain bottoms out elsewhere.
func UnderlyingCompositeType(t Type, m TypeIdentifierMap) CompositeType {
	for t.IsValid() {
		if t.IsCompositeType() {
			return CompositeType{DerivedType{t}}
		}

		if !t.IsDerivedType() {
			break
		}

		t = DerivedType{t}.BaseType().Resolve(m)
	}

	return CompositeType{}
}
