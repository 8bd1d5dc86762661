package domain

import (
	"testing"

	"difind.dev/pkg/difind/internal/model"
)

func TestSummarize(t *testing.T) {
	g := buildScenario()

	f := NewFinder()
	f.ProcessModule(g.mod)

	rep := Summarize("demo.yaml", g.mod, f)

	if rep.Graph != "demo.yaml" || rep.Module != "demo" {
		t.Errorf("report header = %q/%q, want demo.yaml/demo", rep.Graph, rep.Module)
	}

	if got := rep.TotalEntries(); got != 9 {
		t.Fatalf("TotalEntries() = %d, want 9", got)
	}

	cu := rep.CompileUnits[0]
	if cu.Name != "main.c" || cu.Tag != "compile_unit" || !cu.Verified {
		t.Errorf("compile-unit entry = %+v", cu)
	}

	sp := rep.Subprograms[0]
	if sp.Name != "main" || sp.Detail != "main.c:5" {
		t.Errorf("subprogram entry = %+v", sp)
	}

	if len(rep.Malformed()) != 0 {
		t.Errorf("Malformed() = %v for a well-formed graph", rep.Malformed())
	}
}

func TestSummarizeFlagsMalformedNodes(t *testing.T) {
	file := testFile("a.c", "/src")

	// A global-variable descriptor without a type node fails verification but
	// is still collected and reported.
	bad := model.NewNode(TagVariable,
		model.Absent(),
		model.Absent(),
		model.Str("bad"),
		model.Str("bad"),
		model.Str("_bad"),
		model.Ref(file),
		model.Int(2),
	)

	cu := testCompileUnit(file, nil, nil, nil, testArray(bad))
	mod := &model.Module{Name: "m", CompileUnits: []*model.Node{cu}}

	f := NewFinder()
	f.ProcessModule(mod)

	rep := Summarize("bad.yaml", mod, f)

	malformed := rep.Malformed()
	if len(malformed) != 1 || malformed[0].Name != "bad" {
		t.Fatalf("Malformed() = %v, want the one bad global", malformed)
	}
}
