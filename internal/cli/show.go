package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show <dir>",
	Short: "List the directory's current filenames",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine(cmd)

		result, err := eng.Show(context.Background(), &engine.ShowRequest{Dir: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd, result)
		}

		PrintSection(fmt.Sprintf("Directory: %q", result.Dir))
		if len(result.Filenames) == 0 {
			PrintEmptyState("Directory is empty.")
			return nil
		}
		PrintNumberedList(result.Filenames)
		return nil
	},
}
