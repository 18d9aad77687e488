package engine

import (
	"github.com/minjipark/renamer/internal/executor"
	"github.com/minjipark/renamer/internal/planner"
)

// RenameResult is the outcome of one plan/confirm/execute cycle.
type RenameResult struct {
	// Dir is the target directory
	Dir string `json:"dir"`

	// Plan is the proposed mapping that was put to the user
	Plan *planner.Plan `json:"plan"`

	// Confirmed is true if the user accepted the plan
	Confirmed bool `json:"confirmed"`

	// Outcomes is the ordered per-entry result list (empty when the plan
	// was empty or declined)
	Outcomes []executor.Outcome `json:"outcomes"`
}

// Applied counts the entries that were actually renamed.
func (r *RenameResult) Applied() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == executor.StatusApplied {
			n++
		}
	}
	return n
}

// ShowResult is the current listing of a directory.
type ShowResult struct {
	// Dir is the target directory
	Dir string `json:"dir"`

	// Filenames is the listing in snapshot order
	Filenames []string `json:"filenames"`
}
