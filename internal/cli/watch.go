package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lintcat/lintcat/internal/lint"
	"github.com/lintcat/lintcat/internal/scanner"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source tree and rescan on changes",
	Long: `Watch performs an initial scan, then keeps watching the source tree
and rescans after each batch of changes, printing a summary line per
rescan. Ctrl+C stops it.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s, err := newScanner(newProgressReporter(quietFlag))
	if err != nil {
		return err
	}

	records, err := s.Scan(ctx)
	if err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}
	fmt.Printf("Found %d lints (%d usable)\n", len(records), len(lint.Usable(records)))

	w, err := scanner.NewWatcher(s, func(records []lint.Record) {
		log.Printf("%d lints (%d usable)", len(records), len(lint.Usable(records)))
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	w.Start(ctx)
	defer w.Stop()

	if !quietFlag {
		log.Printf("Watching %s for changes...", s.Root())
	}

	<-ctx.Done()
	return nil
}
