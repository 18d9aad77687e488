package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minjipark/renamer/internal/engine"
)

var replacePairs []string

var replaceCmd = &cobra.Command{
	Use:   "replace <dir> [<from> <to>]",
	Short: "Replace a substring in every filename that contains it",
	Long: `Replace every occurrence of a substring in the filenames of <dir>.

Filenames not containing <from> are left alone. With repeated --pair
flags, each from=to pair runs as its own plan/confirm cycle in the order
given, re-reading the directory between cycles.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine(cmd)
		ctx := context.Background()

		if len(replacePairs) > 0 {
			if len(args) != 1 {
				return fmt.Errorf("--pair cannot be combined with positional <from> <to>")
			}
			pairs := make([]engine.ReplacePair, 0, len(replacePairs))
			for _, raw := range replacePairs {
				from, to, ok := strings.Cut(raw, "=")
				if !ok || from == "" {
					return fmt.Errorf("invalid --pair %q: expected from=to", raw)
				}
				pairs = append(pairs, engine.ReplacePair{From: from, To: to})
			}

			results, err := eng.ReplaceMany(ctx, &engine.ReplaceManyRequest{
				Dir:     args[0],
				Pairs:   pairs,
				Display: displayPlans(),
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(cmd, results)
			}
			for _, result := range results {
				if err := reportResult(cmd, result); err != nil {
					return err
				}
			}
			return nil
		}

		if len(args) != 3 {
			return fmt.Errorf("expected <dir> <from> <to>")
		}

		result, err := eng.Replace(ctx, &engine.ReplaceRequest{
			Dir:     args[0],
			From:    args[1],
			To:      args[2],
			Display: displayPlans(),
		})
		if err != nil {
			return err
		}
		return reportResult(cmd, result)
	},
}

func init() {
	replaceCmd.Flags().StringArrayVar(&replacePairs, "pair", nil, "Replacement as from=to (repeatable, applied in order)")
}
