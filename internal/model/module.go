package model

// Entity is a reference to a program-level object (a function or a global
// value) from the metadata graph. The finder never looks inside entities;
// they exist so descriptor fields can point back into the program.
type Entity interface {
	EntityName() string
}

// GlobalValue is a named program global referenced by global-variable
// descriptors.
type GlobalValue struct {
	Name string
}

// EntityName returns the global's name.
func (g *GlobalValue) EntityName() string { return g.Name }

// InstKind classifies an instruction's debug role.
type InstKind int

// Available InstKind values.
const (
	// InstPlain is an ordinary instruction with no variable attachment.
	InstPlain InstKind = iota
	// InstDeclare is a debug-declare intrinsic describing a variable address.
	InstDeclare
	// InstValue is a debug-value intrinsic describing a variable value.
	InstValue
)

// Instruction is the narrow slice of an instruction the finder consumes: its
// optional described-variable attachment and its optional source location.
type Instruction struct {
	Kind     InstKind
	Variable *Node // described variable for declare/value instructions
	Loc      *Node // source-location attachment
}

// DebugVariable returns the described variable node for declare/value
// instructions, or nil.
func (i *Instruction) DebugVariable() *Node {
	if i == nil || (i.Kind != InstDeclare && i.Kind != InstValue) {
		return nil
	}

	return i.Variable
}

// DebugLoc returns the instruction's source-location node, or nil.
func (i *Instruction) DebugLoc() *Node {
	if i == nil {
		return nil
	}

	return i.Loc
}

// Function is a program function carrying instructions. It doubles as the
// program entity subprogram descriptors point at.
type Function struct {
	Name         string
	Instructions []*Instruction
}

// EntityName returns the function's name.
func (f *Function) EntityName() string { return f.Name }

// Module is the program representation the finder inspects. Only the
// compile-unit anchor list and the per-instruction attachments are visible
// to the traversal; everything else about the program stays outside.
type Module struct {
	Name         string
	CompileUnits []*Node
	Functions    []*Function
	Globals      []*GlobalValue
}

// DebugCompileUnits enumerates the module's compile-unit anchor nodes.
func (m *Module) DebugCompileUnits() []*Node {
	if m == nil {
		return nil
	}

	return m.CompileUnits
}
