package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

type sessionState int

const (
	sessionIdle sessionState = iota
	sessionCollecting
	sessionDone
)

// Finder lists every debug-info node reachable from a module. The module
// pass walks the compile-unit anchors; ProcessDeclare, ProcessValue and
// ProcessLocation fold in the nodes reachable from per-instruction
// attachments. All passes of one session share a single visited-set, so
// entry points that alias the same nodes contribute each node exactly once,
// in first-discovery order.
//
// A Finder runs one session at a time and is not safe for concurrent use;
// independent sessions need independent Finder instances. Reset starts a
// fresh session.
type Finder struct {
	cus    []*model.Node
	sps    []*model.Node
	gvs    []*model.Node
	types  []*model.Node
	scopes []*model.Node

	seen map[*model.Node]struct{}

	typeMap      TypeIdentifierMap
	typeMapReady bool

	state sessionState
}

// NewFinder returns a Finder with an empty session.
func NewFinder() *Finder {
	return &Finder{seen: make(map[*model.Node]struct{})}
}

// Reset clears all five collections, the visited-set and the identifier
// map, returning the finder to an idle session.
func (f *Finder) Reset() {
	f.cus = nil
	f.sps = nil
	f.gvs = nil
	f.types = nil
	f.scopes = nil
	f.seen = make(map[*model.Node]struct{})
	f.typeMap = nil
	f.typeMapReady = false
	f.state = sessionIdle
}

// begin enters the collecting state and builds the identifier map on the
// first pass of a session. The graph must not change for the rest of the
// session, so later passes reuse the map.
func (f *Finder) begin(mod *model.Module) {
	f.state = sessionCollecting

	if !f.typeMapReady {
		f.typeMap = BuildTypeIdentifierMap(mod.DebugCompileUnits())
		f.typeMapReady = true
	}
}

// ProcessModule walks every compile-unit anchor of the module and collects
// the debug-info nodes reachable from their enumerated types, retained
// types, subprograms and global variables.
func (f *Finder) ProcessModule(mod *model.Module) {
	f.begin(mod)
	defer func() { f.state = sessionDone }()

	for _, cuNode := range mod.DebugCompileUnits() {
		cu := NewCompileUnit(cuNode)
		f.addCompileUnit(cu)

		enums := cu.EnumTypes()
		for i := 0; i < enums.NumElements(); i++ {
			f.processType(Type{Scope{enums.Element(i)}})
		}

		retained := cu.RetainedTypes()
		for i := 0; i < retained.NumElements(); i++ {
			f.processType(Type{Scope{retained.Element(i)}})
		}

		sps := cu.Subprograms()
		for i := 0; i < sps.NumElements(); i++ {
			f.processSubprogram(Subprogram{Scope{sps.Element(i)}})
		}

		gvs := cu.GlobalVariables()
		for i := 0; i < gvs.NumElements(); i++ {
			gv := GlobalVariable{gvs.Element(i)}
			if f.addGlobalVariable(gv) {
				f.processScope(gv.Context())
				f.processType(gv.VarType())
			}
		}
	}
}

// ProcessDeclare folds in the nodes reachable from a debug-declare
// instruction's described variable.
func (f *Finder) ProcessDeclare(mod *model.Module, inst *model.Instruction) {
	f.processVariable(mod, inst.DebugVariable())
}

// ProcessValue folds in the nodes reachable from a debug-value
// instruction's described variable.
func (f *Finder) ProcessValue(mod *model.Module, inst *model.Instruction) {
	f.processVariable(mod, inst.DebugVariable())
}

func (f *Finder) processVariable(mod *model.Module, n *model.Node) {
	if n == nil {
		return
	}

	f.begin(mod)
	defer func() { f.state = sessionDone }()

	v := NewVariable(n)
	if !v.IsVariable() {
		return
	}

	if !f.markSeen(n) {
		return
	}

	f.processScope(v.Context())
	f.processType(v.VarType())
}

// ProcessLocation folds in the scope chain of a source-location attachment,
// following the original-location chain of inlined code.
func (f *Finder) ProcessLocation(mod *model.Module, loc Location) {
	if !loc.IsValid() {
		return
	}

	f.begin(mod)
	f.processScope(loc.Scope())
	f.state = sessionDone

	f.ProcessLocation(mod, loc.OrigLocation())
}

// processType records a type and recurses into its context, its base type,
// its members and its containing type.
func (f *Finder) processType(t Type) {
	if !f.addType(t) {
		return
	}

	f.processScope(t.Context().Resolve(f.typeMap))

	switch {
	case t.IsCompositeType():
		ct := CompositeType{DerivedType{t}}
		f.processType(ct.BaseType().Resolve(f.typeMap))

		elems := ct.Elements()
		for i := 0; i < elems.NumElements(); i++ {
			elem := elems.Element(i)

			switch {
			case elem.IsType():
				f.processType(Type{Scope{elem}})
			case elem.IsSubprogram():
				f.processSubprogram(Subprogram{Scope{elem}})
			}
		}

		f.processType(ct.ContainingType().Resolve(f.typeMap))
	case t.IsDerivedType():
		f.processType(DerivedType{t}.BaseType().Resolve(f.typeMap))
	}
}

// processScope classifies a scope and records it, then walks its context
// chain. The visited-set makes re-entrant chains terminate: a node already
// seen is never examined again.
func (f *Finder) processScope(s Scope) {
	if !s.IsValid() {
		return
	}

	if s.IsType() {
		f.processType(Type{s})
		return
	}

	if s.IsCompileUnit() {
		f.addCompileUnit(CompileUnit{s})
		return
	}

	if s.IsSubprogram() {
		f.processSubprogram(Subprogram{s})
		return
	}

	if !f.addScope(s) {
		return
	}

	switch {
	case s.IsLexicalBlockFile():
		f.processScope(LexicalBlockFile{s}.Context())
	case s.IsLexicalBlock():
		f.processScope(LexicalBlock{s}.Context())
	case s.IsNamespace():
		f.processScope(Namespace{s}.Context())
	}
}

// processSubprogram records a subprogram and recurses into its context, its
// type and its template parameters' constituent types.
func (f *Finder) processSubprogram(sp Subprogram) {
	if !f.addSubprogram(sp) {
		return
	}

	f.processScope(sp.Context().Resolve(f.typeMap))
	f.processType(sp.FnType().Type)

	tparams := sp.TemplateParams()
	for i := 0; i < tparams.NumElements(); i++ {
		param := tparams.Element(i)

		switch {
		case param.IsTemplateTypeParameter():
			ttp := TemplateTypeParameter{param}
			f.processType(ttp.ParamType().Resolve(f.typeMap))
		case param.IsTemplateValueParameter():
			tvp := TemplateValueParameter{param}
			f.processType(tvp.ParamType().Resolve(f.typeMap))
		}
	}
}

// markSeen records a node in the visited-set, reporting whether it was new.
func (f *Finder) markSeen(n *model.Node) bool {
	if _, ok := f.seen[n]; ok {
		return false
	}

	f.seen[n] = struct{}{}

	return true
}

// addCompileUnit records a compile unit. Compile units are scope variants,
// so they are listed in the scopes collection as well.
func (f *Finder) addCompileUnit(cu CompileUnit) bool {
	if !cu.IsCompileUnit() {
		return false
	}

	if !f.markSeen(cu.Node()) {
		return false
	}

	f.cus = append(f.cus, cu.Node())
	f.scopes = append(f.scopes, cu.Node())

	return true
}

// addSubprogram records a subprogram in both the subprogram and scope
// collections.
func (f *Finder) addSubprogram(sp Subprogram) bool {
	if !sp.IsSubprogram() {
		return false
	}

	if !f.markSeen(sp.Node()) {
		return false
	}

	f.sps = append(f.sps, sp.Node())
	f.scopes = append(f.scopes, sp.Node())

	return true
}

// addGlobalVariable records a global-variable descriptor.
func (f *Finder) addGlobalVariable(gv GlobalVariable) bool {
	if !gv.IsGlobalVariable() {
		return false
	}

	if !f.markSeen(gv.Node()) {
		return false
	}

	f.gvs = append(f.gvs, gv.Node())

	return true
}

// addType records a type. Malformed type nodes are still recorded as long
// as their tag matches; verification is layered on top, never here.
func (f *Finder) addType(t Type) bool {
	if !t.IsType() {
		return false
	}

	if !f.markSeen(t.Node()) {
		return false
	}

	f.types = append(f.types, t.Node())

	return true
}

// addScope records a file, lexical block or namespace scope.
func (f *Finder) addScope(s Scope) bool {
	if !s.IsScope() {
		return false
	}

	if !f.markSeen(s.Node()) {
		return false
	}

	f.scopes = append(f.scopes, s.Node())

	return true
}

// CompileUnits returns the collected compile units in first-discovery
// order. The returned slice is owned by the finder; callers must not
// modify it.
func (f *Finder) CompileUnits() []*model.Node { return f.cus }

// Subprograms returns the collected subprograms in first-discovery order.
func (f *Finder) Subprograms() []*model.Node { return f.sps }

// GlobalVariables returns the collected global variables in first-discovery
// order.
func (f *Finder) GlobalVariables() []*model.Node { return f.gvs }

// Types returns the collected types in first-discovery order.
func (f *Finder) Types() []*model.Node { return f.types }

// Scopes returns the collected scopes in first-discovery order.
func (f *Finder) Scopes() []*model.Node { return f.scopes }

// CompileUnitCount returns the number of collected compile units.
func (f *Finder) CompileUnitCount() int { return len(f.cus) }

// SubprogramCount returns the number of collected subprograms.
func (f *Finder) SubprogramCount() int { return len(f.sps) }

// GlobalVariableCount returns the number of collected global variables.
func (f *Finder) GlobalVariableCount() int { return len(f.gvs) }

// TypeCount returns the number of collected types.
func (f *Finder) TypeCount() int { return len(f.types) }

// ScopeCount returns the number of collected scopes.
func (f *Finder) ScopeCount() int { return len(f.scopes) }

// TypeMap returns the identifier map built for the current session, or nil
// before the first pass.
func (f *Finder) TypeMap() TypeIdentifierMap { return f.typeMap }
