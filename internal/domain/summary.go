package domain

import (
	"fmt"

	"difind.dev/pkg/difind/internal/model"
)

// Summarize reduces a finished finder session to a serializable report. Each
// collected node becomes an entry with its display name, symbolic tag, a
// variant-specific detail string and its advisory verification result.
func Summarize(graph string, mod *model.Module, f *Finder) model.Report {
	rep := model.Report{Graph: graph}
	if mod != nil {
		rep.Module = mod.Name
	}

	for _, n := range f.CompileUnits() {
		cu := NewCompileUnit(n)
		rep.CompileUnits = append(rep.CompileUnits, entry(
			cu.Descriptor, cu.Filename(), cu.Producer(),
		))
	}

	for _, n := range f.Subprograms() {
		sp := NewSubprogram(n)
		rep.Subprograms = append(rep.Subprograms, entry(
			sp.Descriptor, sp.Name(), fmt.Sprintf("%s:%d", sp.Filename(), sp.Line()),
		))
	}

	for _, n := range f.GlobalVariables() {
		gv := NewGlobalVariable(n)
		rep.GlobalVariables = append(rep.GlobalVariables, entry(
			gv.Descriptor, gv.Name(), gv.LinkageName(),
		))
	}

	for _, n := range f.Types() {
		t := NewType(n)
		rep.Types = append(rep.Types, entry(
			t.Descriptor, t.Name(), fmt.Sprintf("%d bits", t.SizeInBits()),
		))
	}

	for _, n := range f.Scopes() {
		s := NewScope(n)
		rep.Scopes = append(rep.Scopes, entry(
			s.Descriptor, s.Name(), s.Filename(),
		))
	}

	return rep
}

func entry(d Descriptor, name, detail string) model.Entry {
	return model.Entry{
		Name:     name,
		Tag:      TagName(d.Tag()),
		Detail:   detail,
		Verified: d.Verify(),
	}
}
