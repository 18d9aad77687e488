package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
)

var (
	enumStart    int
	enumSep      string
	enumBasename string
)

var enumCmd = &cobra.Command{
	Use:   "enum <dir>",
	Short: "Number every file in the directory",
	Long: `Number every file in <dir> in listing order.

By default the separator and number are appended after the extension
("name.txt" becomes "name.txt_1"): this mirrors the tool renamer
replaces, numbers included. Use --basename to instead rename every file
to <base><N><ext>, numbering from 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine(cmd)
		ctx := context.Background()

		if enumBasename != "" {
			result, err := eng.Rebase(ctx, &engine.RebaseRequest{
				Dir:     args[0],
				Base:    enumBasename,
				Display: displayPlans(),
			})
			if err != nil {
				return err
			}
			return reportResult(cmd, result)
		}

		result, err := eng.Enumerate(ctx, &engine.EnumerateRequest{
			Dir:       args[0],
			Start:     enumStart,
			Separator: enumSep,
			Display:   displayPlans(),
		})
		if err != nil {
			return err
		}
		return reportResult(cmd, result)
	},
}

func init() {
	enumCmd.Flags().IntVar(&enumStart, "start", 1, "Number given to the first file")
	enumCmd.Flags().StringVar(&enumSep, "sep", "_", "Separator inserted before the number")
	enumCmd.Flags().StringVar(&enumBasename, "basename", "", "Rename every file to <base><N><ext> instead of appending numbers")
}
