package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lintcat/lintcat/internal/lint"
)

var groupsAllFlag bool

// groupsCmd represents the groups command
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show lint counts per group",
	Long: `Groups scans the configured source tree and prints how many lints
each group contains. By default deprecated lints and internal-only groups
are filtered out first; --all counts everything, including the Deprecated
bucket.`,
	RunE: runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().BoolVar(&groupsAllFlag, "all", false, "include deprecated and internal lints")
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	records, err := scanRecords(ctx)
	if err != nil {
		return err
	}

	if !groupsAllFlag {
		records = lint.Usable(records)
	}

	renderGroups(cmd.OutOrStdout(), lint.ByGroup(records))
	return nil
}
