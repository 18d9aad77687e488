package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears persistent flag state between Execute calls, since
// cobra only overwrites values that appear in the new argument list.
func resetFlags() {
	jsonOutput = false
	assumeYes = false
	quiet = false
	replacePairs = nil
	enumStart = 1
	enumSep = "_"
	enumBasename = ""
	fromFilePosition = "end"
}

func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tmp := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, name), []byte(content), 0644))
	}
	return tmp
}

func listing(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return bufOut.String() + bufErr.String(), err
}

func TestReplaceCommand(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"draft_a.txt": "",
		"final_b.txt": "",
	})

	_, err := runCommand(t, "replace", dir, "draft", "final", "--yes", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, []string{"final_a.txt", "final_b.txt"}, listing(t, dir))
}

func TestReplaceCommand_Pairs(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"old_draft.txt": "",
	})

	_, err := runCommand(t, "replace", dir,
		"--pair", "old=new",
		"--pair", "new_draft=final",
		"--yes", "--quiet")
	require.NoError(t, err)

	assert.Equal(t, []string{"final.txt"}, listing(t, dir))
}

func TestReplaceCommand_PairsWithPositionalsRejected(t *testing.T) {
	dir := setupTestDir(t, nil)

	_, err := runCommand(t, "replace", dir, "a", "b", "--pair", "x=y", "--yes")
	require.Error(t, err)
}

func TestPrefixCommand(t *testing.T) {
	dir := setupTestDir(t, map[string]string{"a.txt": ""})

	_, err := runCommand(t, "prefix", dir, "new_", "--yes", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"new_a.txt"}, listing(t, dir))
}

func TestSuffixCommand_JSONOutput(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"report.csv":  "",
		"summary.csv": "",
	})

	output, err := runCommand(t, "suffix", dir, "_v2", "--yes", "--json")
	require.NoError(t, err)

	assert.Equal(t, []string{"report_v2.csv", "summary_v2.csv"}, listing(t, dir))

	var result struct {
		Confirmed bool `json:"confirmed"`
		Plan      struct {
			Entries []struct {
				Old string `json:"old"`
				New string `json:"new"`
			} `json:"entries"`
		} `json:"plan"`
		Outcomes []struct {
			Status string `json:"status"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.True(t, result.Confirmed)
	require.Len(t, result.Plan.Entries, 2)
	assert.Equal(t, "report.csv", result.Plan.Entries[0].Old)
	assert.Equal(t, "report_v2.csv", result.Plan.Entries[0].New)
	for _, outcome := range result.Outcomes {
		assert.Equal(t, "applied", outcome.Status)
	}
}

func TestEnumCommand(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"a.txt": "",
		"b.txt": "",
	})

	_, err := runCommand(t, "enum", dir, "--start", "5", "--yes", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt_5", "b.txt_6"}, listing(t, dir))
}

func TestEnumCommand_Basename(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"holiday.jpg": "",
		"work.jpg":    "",
	})

	_, err := runCommand(t, "enum", dir, "--basename", "img", "--yes", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg"}, listing(t, dir))
}

func TestFromFileCommand(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"city_1.txt": "zip: 49001\n",
	})

	_, err := runCommand(t, "from-file", dir, `zip: (\d+)`, "--yes", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{"city_149001.txt"}, listing(t, dir))
}

func TestFromFileCommand_InvalidPosition(t *testing.T) {
	dir := setupTestDir(t, nil)

	_, err := runCommand(t, "from-file", dir, `(x)`, "--position", "middle", "--yes")
	require.Error(t, err)
}

func TestShowCommand_JSONOutput(t *testing.T) {
	dir := setupTestDir(t, map[string]string{
		"b.txt": "",
		"a.txt": "",
	})

	output, err := runCommand(t, "show", dir, "--json")
	require.NoError(t, err)

	var result struct {
		Dir       string   `json:"dir"`
		Filenames []string `json:"filenames"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, dir, result.Dir)
	assert.Equal(t, []string{"a.txt", "b.txt"}, result.Filenames)
}

func TestCommands_MissingDirectoryFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := runCommand(t, "show", missing)
	require.Error(t, err)

	_, err = runCommand(t, "replace", missing, "a", "b", "--yes")
	require.Error(t, err)
}
