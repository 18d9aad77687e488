package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix <dir> <text>",
	Short: "Prepend text to every filename",
	Long: `Prepend <text> to the filenames of <dir>.

Filenames that already start with <text> are left alone, so running the
same prefix twice is a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine(cmd)

		result, err := eng.AddPrefix(context.Background(), &engine.PrefixRequest{
			Dir:     args[0],
			Text:    args[1],
			Display: displayPlans(),
		})
		if err != nil {
			return err
		}
		return reportResult(cmd, result)
	},
}
