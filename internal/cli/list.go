package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lintcat/lintcat/internal/lint"
)

var (
	allFlag    bool
	formatFlag string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List lints extracted from the source tree",
	Long: `List scans the configured source tree and prints every extracted
lint. By default deprecated lints and internal-only groups are filtered
out; --all includes them.

Examples:
  # List usable lints as a table
  lintcat list

  # Include deprecated and internal lints
  lintcat list --all

  # Machine-readable output for another tool
  lintcat list --format json --quiet

  # Scan a different tree
  lintcat list --root ../rust-clippy/clippy_lints/src
`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&allFlag, "all", false, "include deprecated and internal lints")
	listCmd.Flags().StringVar(&formatFlag, "format", "table", "output format: table or json")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	records, err := scanRecords(ctx)
	if err != nil {
		return err
	}

	if !allFlag {
		records = lint.Usable(records)
	}

	switch formatFlag {
	case "table":
		renderTable(cmd.OutOrStdout(), records)
	case "json":
		return renderJSON(cmd.OutOrStdout(), records)
	default:
		return fmt.Errorf("unknown format %q (want table or json)", formatFlag)
	}
	return nil
}
