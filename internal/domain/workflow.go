package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"difind.dev/pkg/difind/internal/model"
)

// GraphStore abstracts how metadata graphs are read from disk so the
// workflow can be tested without touching the filesystem.
type GraphStore interface {
	// Load reads a graph file and reconstructs the module with its
	// metadata nodes.
	Load(ctx context.Context, path string) (*model.Module, error)
}

// ReportStore persists finder reports.
type ReportStore interface {
	// Save writes a report below dir and returns the written path.
	Save(dir string, report model.Report) (string, error)
}

// UI renders finder results. Implementations range from plain tables to an
// interactive browser.
type UI interface {
	DisplayReports(ctx context.Context, reports []model.Report) error
	DisplayVerification(ctx context.Context, reports []model.Report) error
	Browse(ctx context.Context, reports []model.Report) error
}

// DumpArgs parameterizes the dump workflow.
type DumpArgs struct {
	Paths      []string
	ReportsDir string // empty disables report persistence
}

// VerifyArgs parameterizes the verification workflow.
type VerifyArgs struct {
	Paths []string
}

// ViewArgs parameterizes the interactive browser workflow.
type ViewArgs struct {
	Path string
}

// Workflow ties graph loading, collection and presentation together.
type Workflow interface {
	Dump(ctx context.Context, args DumpArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	graphs  GraphStore
	reports ReportStore
	ui      UI
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(graphs GraphStore, reports ReportStore, ui UI) Workflow {
	return &workflow{graphs: graphs, reports: reports, ui: ui}
}

// Dump collects every debug-info node reachable in each input graph and
// renders the five collections, persisting a report per graph.
func (w *workflow) Dump(ctx context.Context, args DumpArgs) error {
	reports, err := w.collect(ctx, args.Paths)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayReports(ctx, reports); err != nil {
		return err
	}

	if args.ReportsDir == "" {
		return nil
	}

	for _, rep := range reports {
		path, err := w.reports.Save(args.ReportsDir, rep)
		if err != nil {
			return fmt.Errorf("failed to save report for %s: %w", rep.Graph, err)
		}

		slog.Debug("report saved", "graph", rep.Graph, "path", path)
	}

	return nil
}

// Verify collects each input graph and reports the nodes whose advisory
// well-formedness check fails. It returns an error when any node is
// malformed so the CLI exits non-zero.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	reports, err := w.collect(ctx, args.Paths)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayVerification(ctx, reports); err != nil {
		return err
	}

	malformed := 0
	for _, rep := range reports {
		malformed += len(rep.Malformed())
	}

	if malformed > 0 {
		return fmt.Errorf("%d malformed debug-info node(s)", malformed)
	}

	return nil
}

// View collects a single graph and opens the interactive browser.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.collect(ctx, []string{args.Path})
	if err != nil {
		return err
	}

	return w.ui.Browse(ctx, reports)
}

// collect loads and traverses the given graphs concurrently. Finder sessions
// are single-threaded, so every graph gets its own Finder instance; only the
// result slice is shared, written at distinct indices.
func (w *workflow) collect(ctx context.Context, paths []string) ([]model.Report, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no graph files given")
	}

	reports := make([]model.Report, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			mod, err := w.graphs.Load(groupCtx, path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", path, err)
			}

			finder := NewFinder()
			runSession(finder, mod)
			reports[i] = Summarize(path, mod, finder)

			slog.Debug("graph collected",
				"graph", path,
				"compile_units", finder.CompileUnitCount(),
				"subprograms", finder.SubprogramCount(),
				"globals", finder.GlobalVariableCount(),
				"types", finder.TypeCount(),
				"scopes", finder.ScopeCount(),
			)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// runSession drives one full session: the module pass plus the declare,
// value and location passes over every instruction.
func runSession(f *Finder, mod *model.Module) {
	f.ProcessModule(mod)

	for _, fn := range mod.Functions {
		for _, inst := range fn.Instructions {
			switch inst.Kind {
			case model.InstDeclare:
				f.ProcessDeclare(mod, inst)
			case model.InstValue:
				f.ProcessValue(mod, inst)
			}

			if loc := inst.DebugLoc(); loc != nil {
				f.ProcessLocation(mod, NewLocation(loc))
			}
		}
	}
}
