package domain

import (
	"testing"

	"difind.dev/pkg/difind/internal/model"
)

func TestTypeRefDirectResolve(t *testing.T) {
	file := testFile("main.c", "/src")
	cu := testCompileUnit(file, nil, nil, nil, nil)
	basic := testBasicType(file, cu, "int", 32)

	ref := DirectTypeRef(basic)
	if !ref.IsValid() || ref.IsNamed() {
		t.Fatalf("direct ref: valid=%v named=%v, want valid direct", ref.IsValid(), ref.IsNamed())
	}

	// Direct references never consult the map.
	if got := ref.Resolve(nil).Node(); got != basic {
		t.Error("direct resolution does not yield the identical node")
	}
}

func TestTypeRefNamedResolve(t *testing.T) {
	file := testFile("main.c", "/src")
	cu := testCompileUnit(file, nil, nil, nil, nil)
	strct := testStruct(file, model.Ref(cu), "S", nil, "_ZTS1S")

	m := TypeIdentifierMap{"_ZTS1S": strct}

	ref := NamedTypeRef("_ZTS1S")
	if !ref.IsNamed() {
		t.Fatal("named ref reports direct")
	}

	if got := ref.Resolve(m).Node(); got != strct {
		t.Error("named resolution does not yield the registered node")
	}
}

func TestTypeRefEmpty(t *testing.T) {
	var ref TypeRef

	if ref.IsValid() {
		t.Error("zero ref reports valid")
	}

	if got := ref.Resolve(nil); got.IsValid() {
		t.Error("empty ref resolves to a valid view")
	}
}

func TestTypeRefName(t *testing.T) {
	file := testFile("main.c", "/src")
	cu := testCompileUnit(file, nil, nil, nil, nil)
	basic := testBasicType(file, cu, "int", 32)

	if got := DirectTypeRef(basic).Name(); got != "int" {
		t.Errorf("direct Name() = %q, want %q", got, "int")
	}

	// Name never needs the map for named references.
	if got := NamedTypeRef("_ZTS1S").Name(); got != "_ZTS1S" {
		t.Errorf("named Name() = %q, want %q", got, "_ZTS1S")
	}
}

func TestTypeRefResolveMissingIdentifierPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve did not panic on a missing identifier")
		}
	}()

	NamedTypeRef("_ZTS7Missing").Resolve(TypeIdentifierMap{})
}

func TestTypeRefResolveNonTypeEntryPanics(t *testing.T) {
	file := testFile("main.c", "/src")

	defer func() {
		if recover() == nil {
			t.Error("Resolve did not panic on a non-type map entry")
		}
	}()

	NamedTypeRef("bogus").Resolve(TypeIdentifierMap{"bogus": file})
}

func TestScopeRefResolve(t *testing.T) {
	file := testFile("main.c", "/src")
	cu := testCompileUnit(file, nil, nil, nil, nil)
	strct := testStruct(file, model.Ref(cu), "S", nil, "_ZTS1S")

	m := TypeIdentifierMap{"_ZTS1S": strct}

	if got := DirectScopeRef(cu).Resolve(m).Node(); got != cu {
		t.Error("direct scope resolution does not yield the identical node")
	}

	if got := NamedScopeRef("_ZTS1S").Resolve(m).Node(); got != strct {
		t.Error("named scope resolution does not yield the registered node")
	}
}

func TestBuildTypeIdentifierMap(t *testing.T) {
	file := testFile("main.c", "/src")

	uniqued := testStruct(file, model.Absent(), "S", nil, "_ZTS1S")
	anon := testStruct(file, model.Absent(), "T", nil, "")
	basic := testBasicType(file, nil, "int", 32)

	cu := testCompileUnit(file, nil, testArray(uniqued, anon, basic), nil, nil)

	m := BuildTypeIdentifierMap([]*model.Node{cu})

	if len(m) != 1 {
		t.Fatalf("map has %d entries, want 1", len(m))
	}

	if m["_ZTS1S"] != uniqued {
		t.Error("identifier does not map to its defining node")
	}
}

func TestBuildTypeIdentifierMapFirstRegistrationWins(t *testing.T) {
	file := testFile("a.c", "/src")

	first := testStruct(file, model.Absent(), "S", nil, "_ZTS1S")
	second := testStruct(file, model.Absent(), "S", nil, "_ZTS1S")

	cu1 := testCompileUnit(file, nil, testArray(first), nil, nil)
	cu2 := testCompileUnit(file, nil, testArray(second), nil, nil)

	m := BuildTypeIdentifierMap([]*model.Node{cu1, cu2})

	if m["_ZTS1S"] != first {
		t.Error("duplicate registration displaced the first definition")
	}
}

func TestBuildTypeIdentifierMapIgnoresMissingLists(t *testing.T) {
	file := testFile("a.c", "/src")
	cu := testCompileUnit(file, nil, nil, nil, nil)

	if m := BuildTypeIdentifierMap([]*model.Node{cu}); len(m) != 0 {
		t.Errorf("map has %d entries for a unit without retained types, want 0", len(m))
	}
}
