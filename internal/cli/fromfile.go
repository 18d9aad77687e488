package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
	"github.com/minjipark/renamer/internal/transform"
)

var fromFilePosition string

var fromFileCmd = &cobra.Command{
	Use:   "from-file <dir> <pattern>",
	Short: "Derive new names from text found inside each file",
	Long: `Search each .txt file in <dir> for <pattern> and join the first
match's first capture group onto the filename.

With --position end (the default) the matched text goes before the
extension; with --position start it is prepended. Non-.txt files are
skipped with a notice, and files whose content does not match are left
out of the plan.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var position transform.Position
		switch fromFilePosition {
		case "start":
			position = transform.PositionStart
		case "end":
			position = transform.PositionEnd
		default:
			return fmt.Errorf("invalid --position %q: expected start or end", fromFilePosition)
		}

		eng := newEngine(cmd)
		result, err := eng.FromContent(context.Background(), &engine.FromContentRequest{
			Dir:      args[0],
			Pattern:  args[1],
			Position: position,
			Display:  displayPlans(),
		})
		if err != nil {
			return err
		}
		return reportResult(cmd, result)
	},
}

func init() {
	fromFileCmd.Flags().StringVar(&fromFilePosition, "position", "end", "Where to join the matched text (start or end)")
}
