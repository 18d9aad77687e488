// Package engine orchestrates rename batches.
//
// One cycle runs: open the directory, build a plan from a fresh listing,
// optionally show the plan, ask the injected Confirmer once, then hand
// the plan to the executor. Multi-replace runs one full cycle per pair,
// re-reading the listing before each plan. Everything is synchronous and
// single-threaded; the gap between planning and execution is covered
// only by the executor's per-entry re-checks.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/minjipark/renamer/internal/executor"
	"github.com/minjipark/renamer/internal/fsops"
	"github.com/minjipark/renamer/internal/planner"
	"github.com/minjipark/renamer/internal/transform"
	"github.com/minjipark/renamer/internal/workdir"
)

// Confirmer asks the user to accept a plan.
type Confirmer interface {
	// Confirm puts prompt to the user and reports acceptance.
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Engine ties the planner and executor together.
type Engine struct {
	fs       fsops.FS
	planner  *planner.Planner
	executor *executor.Executor
	confirm  Confirmer
	out      io.Writer
}

// New creates a new Engine. Plan previews and notices are written to out.
func New(fs fsops.FS, search planner.Searcher, confirm Confirmer, out io.Writer) *Engine {
	return &Engine{
		fs:       fs,
		planner:  planner.New(fs, search),
		executor: executor.New(fs),
		confirm:  confirm,
		out:      out,
	}
}

// Replace runs one cycle replacing req.From with req.To in filenames.
func (e *Engine) Replace(ctx context.Context, req *ReplaceRequest) (*RenameResult, error) {
	return e.run(ctx, req.Dir, transform.Replace{From: req.From, To: req.To}, req.Display)
}

// ReplaceMany applies each pair as an independent cycle, in order. Each
// cycle re-reads the directory, so later pairs see earlier renames.
func (e *Engine) ReplaceMany(ctx context.Context, req *ReplaceManyRequest) ([]*RenameResult, error) {
	results := make([]*RenameResult, 0, len(req.Pairs))
	for _, pair := range req.Pairs {
		result, err := e.run(ctx, req.Dir, transform.Replace{From: pair.From, To: pair.To}, req.Display)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// AddPrefix runs one cycle prepending req.Text to filenames.
func (e *Engine) AddPrefix(ctx context.Context, req *PrefixRequest) (*RenameResult, error) {
	return e.run(ctx, req.Dir, transform.Prefix{Text: req.Text}, req.Display)
}

// AddSuffix runs one cycle inserting req.Text before extensions.
func (e *Engine) AddSuffix(ctx context.Context, req *SuffixRequest) (*RenameResult, error) {
	return e.run(ctx, req.Dir, transform.Suffix{Text: req.Text}, req.Display)
}

// Enumerate runs one cycle numbering every filename.
func (e *Engine) Enumerate(ctx context.Context, req *EnumerateRequest) (*RenameResult, error) {
	return e.run(ctx, req.Dir, transform.Enumerate{Start: req.Start, Separator: req.Separator}, req.Display)
}

// Rebase runs one cycle renaming every file to req.Base plus a number.
func (e *Engine) Rebase(ctx context.Context, req *RebaseRequest) (*RenameResult, error) {
	return e.run(ctx, req.Dir, transform.Rebase{Base: req.Base}, req.Display)
}

// FromContent runs one cycle deriving new names from file contents.
func (e *Engine) FromContent(ctx context.Context, req *FromContentRequest) (*RenameResult, error) {
	position := req.Position
	if position == "" {
		position = transform.PositionEnd
	}
	return e.run(ctx, req.Dir, transform.ContentMatch{Pattern: req.Pattern, Position: position}, req.Display)
}

// Show returns the directory's current listing.
func (e *Engine) Show(ctx context.Context, req *ShowRequest) (*ShowResult, error) {
	dir, err := workdir.Open(req.Dir, e.fs)
	if err != nil {
		return nil, err
	}

	names, err := dir.Filenames()
	if err != nil {
		return nil, err
	}

	return &ShowResult{Dir: dir.Path(), Filenames: names}, nil
}

// Algorithm steps:
// 1. Open and validate the directory
// 2. Build the plan from a fresh listing (notices ride on the plan)
// 3. Preview the plan if requested
// 4. Ask for confirmation once (skipped for an empty plan)
// 5. Execute entry by entry, collecting outcomes
func (e *Engine) run(ctx context.Context, dirPath string, rule transform.Rule, display bool) (*RenameResult, error) {
	dir, err := workdir.Open(dirPath, e.fs)
	if err != nil {
		return nil, err
	}

	plan, err := e.planner.Build(dir, rule)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}

	result := &RenameResult{
		Dir:      dir.Path(),
		Plan:     plan,
		Outcomes: []executor.Outcome{},
	}

	if plan.Empty() {
		return result, nil
	}

	if display {
		for _, entry := range plan.Entries {
			fmt.Fprintf(e.out, "%s\t->\t%s\n", entry.Old, entry.New)
		}
	}

	outcomes, err := e.executor.Execute(plan, dir, func() bool {
		result.Confirmed = e.confirm.Confirm("Make these changes?")
		return result.Confirmed
	})
	result.Outcomes = outcomes
	if err != nil {
		return result, err
	}

	return result, nil
}
