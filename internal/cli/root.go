package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootFlag  string
	quietFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lintcat",
	Short: "Extract lint metadata from declaration macros in a source tree",
	Long: `lintcat scans a tree of Rust source files for declare_clippy_lint!
and declare_deprecated_lint! invocations and reports the extracted lint
metadata: name, group, description, deprecation reason and source module.

Configuration is read from .lintcat/config.yml in the working directory,
with LINTCAT_* environment variables taking precedence.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "directory tree to scan (overrides scan.root)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")
}
