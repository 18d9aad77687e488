// Package planner handles the planning phase of a rename batch.
//
// The planner turns a directory snapshot and a rule into a deterministic
// Plan: one pass over the snapshot, applying the rule's applicability
// predicate per filename. It never mutates the filesystem; for
// content-match rules it reads file contents through the FS abstraction
// and delegates pattern matching to a Searcher.
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minjipark/renamer/internal/fsops"
	"github.com/minjipark/renamer/internal/transform"
	"github.com/minjipark/renamer/internal/workdir"
)

// matchExtension is the only extension considered by content-match rules.
const matchExtension = ".txt"

// Planner builds rename plans.
type Planner struct {
	fs     fsops.FS
	search Searcher
}

// New creates a new Planner.
func New(fs fsops.FS, search Searcher) *Planner {
	return &Planner{
		fs:     fs,
		search: search,
	}
}

// Build computes the plan for applying rule to the directory's current
// listing. The listing is read fresh; entries keep listing order.
func (p *Planner) Build(dir *workdir.Directory, rule transform.Rule) (*Plan, error) {
	names, err := dir.Filenames()
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	plan := NewPlan()

	switch r := rule.(type) {
	case transform.Replace:
		for _, name := range names {
			if !strings.Contains(name, r.From) {
				continue
			}
			if err := p.add(plan, name, transform.ReplaceSubstring(name, r.From, r.To)); err != nil {
				return nil, err
			}
		}

	case transform.Prefix:
		for _, name := range names {
			if strings.HasPrefix(name, r.Text) {
				continue
			}
			if err := p.add(plan, name, transform.WithPrefix(name, r.Text)); err != nil {
				return nil, err
			}
		}

	case transform.Suffix:
		for _, name := range names {
			if strings.HasSuffix(name, r.Text) {
				continue
			}
			next, err := transform.WithSuffix(name, r.Text)
			if err != nil {
				return nil, err
			}
			if err := p.add(plan, name, next); err != nil {
				return nil, err
			}
		}

	case transform.Enumerate:
		// Every entry is numbered, in listing order, no filtering.
		for i, name := range names {
			if err := p.add(plan, name, transform.Enumerated(name, i, r.Start, r.Separator)); err != nil {
				return nil, err
			}
		}

	case transform.Rebase:
		for i, name := range names {
			ext, err := transform.Extension(name)
			if err != nil {
				return nil, err
			}
			if err := p.add(plan, name, r.Base+strconv.Itoa(i+1)+ext); err != nil {
				return nil, err
			}
		}

	case transform.ContentMatch:
		for _, name := range names {
			if !strings.HasSuffix(name, matchExtension) {
				plan.AddNotice(fmt.Sprintf("skipping %s: not a %s file", name, matchExtension))
				continue
			}

			data, err := p.fs.ReadFile(dir.Join(name))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", name, err)
			}

			matched, ok, err := p.search.FirstGroup(r.Pattern, string(data))
			if err != nil {
				return nil, err
			}
			if !ok {
				// No match: excluded silently, no notice.
				continue
			}

			next, err := transform.ContentDerived(name, matched, r.Position)
			if err != nil {
				return nil, err
			}
			if err := p.add(plan, name, next); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("unsupported rule kind %q", rule.Kind())
	}

	return plan, nil
}

// add records one proposed rename, dropping no-ops and rejecting names
// that would escape the directory.
func (p *Planner) add(plan *Plan, old, next string) error {
	if next == old {
		return nil
	}
	if err := p.fs.ValidateName(next); err != nil {
		return fmt.Errorf("refusing to rename %q to %q: %w", old, next, err)
	}
	plan.Add(old, next)
	return nil
}
