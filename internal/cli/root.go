package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	assumeYes  bool
	quiet      bool
)

// rootCmd is the root command for renamer.
var rootCmd = &cobra.Command{
	Use:     "renamer",
	Version: "dev",
	Short:   "Pattern-based bulk renaming for a single directory",
	Long: `renamer bulk-renames the files in one directory using pattern-based
transformations: substring replace, prefix/suffix addition, enumeration,
and content-derived renaming.

Every operation builds a plan first and asks for confirmation before
touching the filesystem. Renames never cross directories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Apply the plan without prompting")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not preview the plan before confirming")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "rename-ops",
		Title: "Rename Operations:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the renamer CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Rename Operations commands
	replaceCmd.GroupID = "rename-ops"
	prefixCmd.GroupID = "rename-ops"
	suffixCmd.GroupID = "rename-ops"
	enumCmd.GroupID = "rename-ops"
	fromFileCmd.GroupID = "rename-ops"
	showCmd.GroupID = "rename-ops"
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(prefixCmd)
	rootCmd.AddCommand(suffixCmd)
	rootCmd.AddCommand(enumCmd)
	rootCmd.AddCommand(fromFileCmd)
	rootCmd.AddCommand(showCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
