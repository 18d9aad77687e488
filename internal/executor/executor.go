// Package executor applies rename plans to the filesystem.
//
// Execution asks for confirmation once per plan, then walks the plan in
// order. Each entry is checked against live filesystem state immediately
// before its rename, not pre-validated in bulk, so concurrent changes
// between planning and execution surface as per-entry skips rather than
// clobbered files. Entries are independent: a skip never aborts the
// batch, and applied entries are never rolled back.
package executor

import (
	"fmt"

	"github.com/minjipark/renamer/internal/fsops"
	"github.com/minjipark/renamer/internal/planner"
	"github.com/minjipark/renamer/internal/workdir"
)

// Status is the per-entry result of executing a plan.
type Status string

// Status constants
const (
	StatusApplied              Status = "applied"
	StatusSkippedMissingSource Status = "skipped_missing_source"
	StatusSkippedTargetExists  Status = "skipped_target_exists"
)

// Outcome records what happened to one plan entry.
type Outcome struct {
	// Old is the filename the entry started from
	Old string `json:"old"`

	// New is the filename the entry proposed
	New string `json:"new"`

	// Status is the per-entry result
	Status Status `json:"status"`
}

// Executor applies plans.
type Executor struct {
	fs fsops.FS
}

// New creates a new Executor.
func New(fs fsops.FS) *Executor {
	return &Executor{fs: fs}
}

// Execute applies plan inside dir after a single confirmation.
//
// If confirm returns false, nothing is touched and the outcome list is
// empty. An unexpected rename failure (one not covered by the existence
// pre-checks) aborts the batch; the outcomes recorded so far are
// returned alongside the error.
func (e *Executor) Execute(plan *planner.Plan, dir *workdir.Directory, confirm func() bool) ([]Outcome, error) {
	if !confirm() {
		return []Outcome{}, nil
	}

	outcomes := make([]Outcome, 0, plan.Len())
	for _, entry := range plan.Entries {
		oldPath := dir.Join(entry.Old)
		newPath := dir.Join(entry.New)

		exists, err := e.fs.Exists(oldPath)
		if err != nil {
			return outcomes, fmt.Errorf("failed to check source %q: %w", entry.Old, err)
		}
		if !exists {
			outcomes = append(outcomes, Outcome{Old: entry.Old, New: entry.New, Status: StatusSkippedMissingSource})
			continue
		}

		exists, err = e.fs.Exists(newPath)
		if err != nil {
			return outcomes, fmt.Errorf("failed to check destination %q: %w", entry.New, err)
		}
		if exists {
			outcomes = append(outcomes, Outcome{Old: entry.Old, New: entry.New, Status: StatusSkippedTargetExists})
			continue
		}

		if err := e.fs.Rename(oldPath, newPath); err != nil {
			return outcomes, fmt.Errorf("failed to rename %q to %q: %w", entry.Old, entry.New, err)
		}
		outcomes = append(outcomes, Outcome{Old: entry.Old, New: entry.New, Status: StatusApplied})
	}

	return outcomes, nil
}
