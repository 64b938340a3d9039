package config

import (
	"fmt"
	"strings"
)

// Validate checks constraints the loader cannot express.
func Validate(cfg *Config) error {
	if cfg.Scan.Root == "" {
		return fmt.Errorf("scan.root must not be empty")
	}
	if !strings.HasPrefix(cfg.Scan.Extension, ".") {
		return fmt.Errorf("scan.extension must start with a dot, got %q", cfg.Scan.Extension)
	}
	if cfg.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be at least 1, got %d", cfg.Scan.Workers)
	}
	return nil
}
