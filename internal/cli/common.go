package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lintcat/lintcat/internal/config"
	"github.com/lintcat/lintcat/internal/lint"
	"github.com/lintcat/lintcat/internal/scanner"
)

// newScanner loads configuration, applies CLI overrides, and builds the
// scanner for this invocation.
func newScanner(progress scanner.Progress) (*scanner.Scanner, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	root := cfg.Scan.Root
	if rootFlag != "" {
		root = rootFlag
	}

	discovery, err := scanner.NewDiscovery(cfg.Scan.Extension, cfg.Scan.Ignore)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern: %w", err)
	}

	return scanner.New(root, discovery, cfg.Scan.Workers, progress), nil
}

// scanRecords performs one full scan with the configured progress output.
func scanRecords(ctx context.Context) ([]lint.Record, error) {
	s, err := newScanner(newProgressReporter(quietFlag))
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx)
}
