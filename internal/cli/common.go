package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
	"github.com/minjipark/renamer/internal/executor"
	"github.com/minjipark/renamer/internal/fsops"
	"github.com/minjipark/renamer/internal/planner"
)

// newEngine creates an engine with real implementations of all
// dependencies. Plan previews go to the command's stdout so tests can
// capture them.
func newEngine(cmd *cobra.Command) *engine.Engine {
	fs := fsops.NewRealFS()
	search := planner.NewRegexpSearcher()

	var confirm engine.Confirmer
	if assumeYes {
		confirm = engine.ConfirmerFunc(func(string) bool { return true })
	} else {
		confirm = engine.ConfirmerFunc(promptConfirm)
	}

	return engine.New(fs, search, confirm, cmd.OutOrStdout())
}

// promptConfirm prompts the user for a yes/no confirmation. Only a
// literal "y" confirms; anything else declines. A non-interactive stdin
// always declines, so scripted runs must pass --yes.
func promptConfirm(prompt string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		PrintWarning("stdin is not a terminal; declining (use --yes to apply without prompting)")
		return false
	}

	fmt.Printf("%s (y/n): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "y"
}

// displayPlans reports whether plans should be previewed before the
// confirmation prompt.
func displayPlans() bool {
	return !quiet && !jsonOutput
}

// outputJSON outputs a value as JSON to the command's stdout.
func outputJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportResult renders one rename cycle's result.
func reportResult(cmd *cobra.Command, result *engine.RenameResult) error {
	if jsonOutput {
		return outputJSON(cmd, result)
	}

	for _, notice := range result.Plan.Notices {
		PrintWarning(notice)
	}

	if result.Plan.Empty() {
		PrintEmptyState("Nothing to rename.")
		return nil
	}

	if !result.Confirmed {
		PrintWarning("Changes discarded")
		return nil
	}

	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case executor.StatusSkippedMissingSource:
			PrintWarning(fmt.Sprintf("%q no longer exists, skipped", outcome.Old))
		case executor.StatusSkippedTargetExists:
			PrintWarning(fmt.Sprintf("%q already exists, skipped", outcome.New))
		}
	}

	PrintSuccess(fmt.Sprintf("Renamed %s", PrintCount(result.Applied(), "file", "files")))
	return nil
}
