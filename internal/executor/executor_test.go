package executor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjipark/renamer/internal/fsops"
	"github.com/minjipark/renamer/internal/planner"
	"github.com/minjipark/renamer/internal/workdir"
)

func setupDir(t *testing.T, names ...string) *workdir.Directory {
	t.Helper()
	tmp := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte(name), 0644))
	}
	dir, err := workdir.Open(tmp, fsops.NewRealFS())
	require.NoError(t, err)
	return dir
}

func listing(t *testing.T, dir *workdir.Directory) []string {
	t.Helper()
	names, err := dir.Filenames()
	require.NoError(t, err)
	return names
}

func accept() bool  { return true }
func decline() bool { return false }

func TestExecute_AppliesInPlanOrder(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	plan := planner.NewPlan()
	plan.Add("a.txt", "x.txt")
	plan.Add("b.txt", "y.txt")

	outcomes, err := New(fsops.NewRealFS()).Execute(plan, dir, accept)
	require.NoError(t, err)

	assert.Equal(t, []Outcome{
		{Old: "a.txt", New: "x.txt", Status: StatusApplied},
		{Old: "b.txt", New: "y.txt", Status: StatusApplied},
	}, outcomes)
	assert.Equal(t, []string{"x.txt", "y.txt"}, listing(t, dir))
}

func TestExecute_DeclineLeavesFilesystemUntouched(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")
	before := listing(t, dir)

	plan := planner.NewPlan()
	plan.Add("a.txt", "x.txt")
	plan.Add("b.txt", "y.txt")

	outcomes, err := New(fsops.NewRealFS()).Execute(plan, dir, decline)
	require.NoError(t, err)

	assert.Empty(t, outcomes)
	assert.Equal(t, before, listing(t, dir))
}

func TestExecute_SkipsMissingSource(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")

	plan := planner.NewPlan()
	plan.Add("gone.txt", "x.txt")
	plan.Add("b.txt", "y.txt")

	outcomes, err := New(fsops.NewRealFS()).Execute(plan, dir, accept)
	require.NoError(t, err)

	// A missing source skips that entry only; the batch continues.
	assert.Equal(t, []Outcome{
		{Old: "gone.txt", New: "x.txt", Status: StatusSkippedMissingSource},
		{Old: "b.txt", New: "y.txt", Status: StatusApplied},
	}, outcomes)
}

func TestExecute_SkipsTargetCreatedAfterPlanning(t *testing.T) {
	dir := setupDir(t, "a.txt")

	plan := planner.NewPlan()
	plan.Add("a.txt", "taken.txt")

	// The destination appears between planning and execution; the
	// per-entry re-check must refuse the rename.
	require.NoError(t, os.WriteFile(dir.Join("taken.txt"), []byte("occupied"), 0644))

	outcomes, err := New(fsops.NewRealFS()).Execute(plan, dir, accept)
	require.NoError(t, err)

	assert.Equal(t, []Outcome{
		{Old: "a.txt", New: "taken.txt", Status: StatusSkippedTargetExists},
	}, outcomes)

	data, err := os.ReadFile(dir.Join("taken.txt"))
	require.NoError(t, err)
	assert.Equal(t, "occupied", string(data))
}

func TestExecute_ConfirmAskedOncePerPlan(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt", "c.txt")

	plan := planner.NewPlan()
	plan.Add("a.txt", "x.txt")
	plan.Add("b.txt", "y.txt")
	plan.Add("c.txt", "z.txt")

	calls := 0
	_, err := New(fsops.NewRealFS()).Execute(plan, dir, func() bool {
		calls++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
