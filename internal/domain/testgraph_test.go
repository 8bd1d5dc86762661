package domain

import (
	"difind.dev/pkg/difind/internal/model"
)

// Builders for the metadata graphs the tests walk. Fields follow the view
// layer's positional schema; trailing optional slots are simply omitted.

func testFile(name, dir string) *model.Node {
	return model.NewNode(TagFileType, model.Str(name), model.Str(dir))
}

// testCompileUnit builds a compile unit with the given list nodes. Any list
// may be nil.
func testCompileUnit(file, enums, retained, sps, gvs *model.Node) *model.Node {
	return model.NewNode(TagCompileUnit,
		model.Ref(file),
		model.Int(12), // DW_LANG_C99
		model.Str("difind-test 1.0"),
		model.Int(0),
		model.Str(""),
		model.Int(0),
		model.Ref(enums),
		model.Ref(retained),
		model.Ref(sps),
		model.Ref(gvs),
	)
}

func testArray(elems ...*model.Node) *model.Node {
	fields := make([]model.Field, len(elems))
	for i, e := range elems {
		fields[i] = model.Ref(e)
	}

	return model.NewNode(0, fields...)
}

func testBasicType(file, context *model.Node, name string, size int64) *model.Node {
	return model.NewNode(TagBaseType,
		model.Ref(file),
		model.Ref(context),
		model.Str(name),
		model.Int(0),
		model.Int(size),
		model.Int(size),
		model.Int(0),
		model.Int(0),
		model.Int(5), // DW_ATE_signed
	)
}

// testStruct builds a composite structure type. context may be a node or an
// identifier field; identifier may be empty.
func testStruct(file *model.Node, context model.Field, name string, members *model.Node, identifier string) *model.Node {
	id := model.Absent()
	if identifier != "" {
		id = model.Str(identifier)
	}

	return model.NewNode(TagStructureType,
		model.Ref(file),
		context,
		model.Str(name),
		model.Int(1),
		model.Int(64),
		model.Int(32),
		model.Int(0),
		model.Int(0),
		model.Absent(),
		model.Ref(members),
		model.Int(0),
		model.Absent(),
		model.Absent(),
		id,
	)
}

// testDerived builds a derived type (typedef, pointer, qualifier, member)
// whose base-type slot holds the given field.
func testDerived(tag uint32, file, context *model.Node, name string, base model.Field) *model.Node {
	return model.NewNode(tag,
		model.Ref(file),
		model.Ref(context),
		model.Str(name),
		model.Int(0),
		model.Int(0),
		model.Int(0),
		model.Int(0),
		model.Int(0),
		base,
	)
}

// testSubprogram builds a subprogram definition. context may hold a node or
// an identifier; fnType is the type slot node.
func testSubprogram(file *model.Node, context model.Field, name string, fnType *model.Node, fn *model.Function) *model.Node {
	return model.NewNode(TagSubprogram,
		model.Ref(file),
		context,
		model.Str(name),
		model.Str(name),
		model.Str(""),
		model.Int(5),
		model.Ref(fnType),
		model.Int(1),
		model.Int(1),
		model.Int(0),
		model.Int(0),
		model.Absent(),
		model.Int(0),
		model.Int(0),
		model.EntityRef(fn),
	)
}

func testGlobalVariable(file, context, typ *model.Node, name string, gv *model.GlobalValue) *model.Node {
	return model.NewNode(TagVariable,
		model.Absent(),
		model.Ref(context),
		model.Str(name),
		model.Str(name),
		model.Str("_"+name),
		model.Ref(file),
		model.Int(2),
		model.Ref(typ),
		model.Int(1),
		model.Int(1),
		model.EntityRef(gv),
	)
}

// testLocalVariable builds an auto/arg variable; typ may be a node or an
// identifier field, line carries the packed line/arg value.
func testLocalVariable(tag uint32, file, context *model.Node, name string, packed int64, typ model.Field) *model.Node {
	return model.NewNode(tag,
		model.Ref(context),
		model.Str(name),
		model.Ref(file),
		model.Int(packed),
		typ,
		model.Int(0),
	)
}

func testLexicalBlock(file, context *model.Node, line, col int64) *model.Node {
	return model.NewNode(TagLexicalBlock,
		model.Ref(file),
		model.Ref(context),
		model.Int(line),
		model.Int(col),
	)
}

func testNamespace(file, context *model.Node, name string) *model.Node {
	return model.NewNode(TagNamespace,
		model.Ref(file),
		model.Ref(context),
		model.Str(name),
		model.Int(1),
	)
}

func testLocation(line, col int64, scope, orig *model.Node) *model.Node {
	return model.NewNode(0,
		model.Int(line),
		model.Int(col),
		model.Ref(scope),
		model.Ref(orig),
	)
}

// nodesEqual reports whether got lists exactly the wanted nodes in order.
func nodesEqual(got []*model.Node, want ...*model.Node) bool {
	if len(got) != len(want) {
		return false
	}

	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}
