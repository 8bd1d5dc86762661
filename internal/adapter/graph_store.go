// Package adapter contains filesystem adapters for the difind CLI.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"difind.dev/pkg/difind/internal/domain"
	"difind.dev/pkg/difind/internal/model"
)

// graphSpec is the on-disk YAML shape of a metadata graph fixture: a node
// table keyed by local id, the compile-unit anchor list, and the narrow
// program slice (functions with instruction attachments, global values).
type graphSpec struct {
	Module       string              `yaml:"module"`
	Nodes        map[string]nodeSpec `yaml:"nodes"`
	CompileUnits []string            `yaml:"compile_units"`
	Functions    []functionSpec      `yaml:"functions"`
	Globals      []string            `yaml:"globals"`
}

type nodeSpec struct {
	Tag    string      `yaml:"tag"`
	Fields []fieldSpec `yaml:"fields"`
}

// fieldSpec is a tagged-union field: exactly one key set, or none for an
// absent slot.
type fieldSpec struct {
	Int    *int64  `yaml:"int"`
	Str    *string `yaml:"str"`
	Node   *string `yaml:"node"`
	Entity *string `yaml:"entity"`
}

type functionSpec struct {
	Name         string            `yaml:"name"`
	Instructions []instructionSpec `yaml:"instructions"`
}

type instructionSpec struct {
	Declare string `yaml:"declare"`
	Value   string `yaml:"value"`
	Loc     string `yaml:"loc"`
}

// GraphFileStore loads metadata graphs from YAML files on the local
// filesystem.
type GraphFileStore struct{}

// NewGraphFileStore constructs a GraphFileStore.
func NewGraphFileStore() *GraphFileStore {
	return &GraphFileStore{}
}

// Load reads a graph file and reconstructs the module together with its
// metadata nodes. Node references are resolved in a second pass so fixture
// order never matters, and cyclic graphs load fine.
func (s *GraphFileStore) Load(ctx context.Context, path string) (*model.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph %s: %w", path, err)
	}

	mod, err := decodeGraph(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode graph %s: %w", path, err)
	}

	slog.Debug("graph loaded", "path", path, "module", mod.Name)

	return mod, nil
}

func decodeGraph(raw []byte) (*model.Module, error) {
	var spec graphSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}

	entities := make(map[string]model.Entity, len(spec.Functions)+len(spec.Globals))

	mod := &model.Module{Name: spec.Module}

	for _, name := range spec.Globals {
		g := &model.GlobalValue{Name: name}
		mod.Globals = append(mod.Globals, g)
		entities[name] = g
	}

	for _, fs := range spec.Functions {
		fn := &model.Function{Name: fs.Name}
		mod.Functions = append(mod.Functions, fn)
		entities[fs.Name] = fn
	}

	// First pass: allocate every node so references can be linked
	// regardless of declaration order.
	nodes := make(map[string]*model.Node, len(spec.Nodes))
	for id, ns := range spec.Nodes {
		tag, err := parseTag(ns.Tag)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}

		nodes[id] = &model.Node{Tag: tag, Fields: make([]model.Field, len(ns.Fields))}
	}

	// Second pass: fill fields.
	for id, ns := range spec.Nodes {
		n := nodes[id]

		for i, fs := range ns.Fields {
			field, err := decodeField(fs, nodes, entities)
			if err != nil {
				return nil, fmt.Errorf("node %s field %d: %w", id, i, err)
			}

			n.Fields[i] = field
		}
	}

	for _, id := range spec.CompileUnits {
		n, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("compile unit %s: unknown node", id)
		}

		mod.CompileUnits = append(mod.CompileUnits, n)
	}

	for fi, fs := range spec.Functions {
		fn := mod.Functions[fi]

		for ii, is := range fs.Instructions {
			inst, err := decodeInstruction(is, nodes)
			if err != nil {
				return nil, fmt.Errorf("function %s instruction %d: %w", fs.Name, ii, err)
			}

			fn.Instructions = append(fn.Instructions, inst)
		}
	}

	return mod, nil
}

func parseTag(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}

	if tag, ok := domain.TagByName(s); ok {
		return tag, nil
	}

	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown tag %q", s)
	}

	return uint32(v), nil
}

func decodeField(fs fieldSpec, nodes map[string]*model.Node, entities map[string]model.Entity) (model.Field, error) {
	set := 0
	for _, present := range []bool{fs.Int != nil, fs.Str != nil, fs.Node != nil, fs.Entity != nil} {
		if present {
			set++
		}
	}

	if set > 1 {
		return model.Field{}, fmt.Errorf("more than one field kind set")
	}

	switch {
	case fs.Int != nil:
		return model.Int(*fs.Int), nil
	case fs.Str != nil:
		return model.Str(*fs.Str), nil
	case fs.Node != nil:
		n, ok := nodes[*fs.Node]
		if !ok {
			return model.Field{}, fmt.Errorf("unknown node %q", *fs.Node)
		}

		return model.Ref(n), nil
	case fs.Entity != nil:
		e, ok := entities[*fs.Entity]
		if !ok {
			return model.Field{}, fmt.Errorf("unknown entity %q", *fs.Entity)
		}

		return model.EntityRef(e), nil
	default:
		return model.Absent(), nil
	}
}

func decodeInstruction(is instructionSpec, nodes map[string]*model.Node) (*model.Instruction, error) {
	if is.Declare != "" && is.Value != "" {
		return nil, fmt.Errorf("instruction cannot be both declare and value")
	}

	inst := &model.Instruction{Kind: model.InstPlain}

	lookup := func(id string) (*model.Node, error) {
		n, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("unknown node %q", id)
		}

		return n, nil
	}

	var err error

	if is.Declare != "" {
		inst.Kind = model.InstDeclare
		if inst.Variable, err = lookup(is.Declare); err != nil {
			return nil, err
		}
	}

	if is.Value != "" {
		inst.Kind = model.InstValue
		if inst.Variable, err = lookup(is.Value); err != nil {
			return nil, err
		}
	}

	if is.Loc != "" {
		if inst.Loc, err = lookup(is.Loc); err != nil {
			return nil, err
		}
	}

	return inst, nil
}
