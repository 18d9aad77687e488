package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
)

var suffixCmd = &cobra.Command{
	Use:   "suffix <dir> <text>",
	Short: "Insert text between each filename's stem and extension",
	Long: `Insert <text> before the extension of each filename in <dir>.

Filenames already ending in <text> are left alone. Every affected file
must have an extension; a filename without a "." aborts the plan before
anything is renamed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine(cmd)

		result, err := eng.AddSuffix(context.Background(), &engine.SuffixRequest{
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
