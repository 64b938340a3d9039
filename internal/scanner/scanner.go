package scanner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/lintcat/lintcat/internal/lint"
)

// Progress receives scan lifecycle notifications. OnFileScanned may be
// called from multiple goroutines.
type Progress interface {
	OnDiscoveryComplete(files int)
	OnFileScanned(path string)
}

// NoOpProgress ignores all notifications.
type NoOpProgress struct{}

func (NoOpProgress) OnDiscoveryComplete(int) {}
func (NoOpProgress) OnFileScanned(string)    {}

// Scanner walks a source tree and extracts lint records from every file
// carrying the configured extension.
type Scanner struct {
	root      string
	discovery *Discovery
	workers   int
	progress  Progress
}

// New creates a Scanner rooted at root. workers bounds the number of
// concurrent file reads; progress may be nil.
func New(root string, discovery *Discovery, workers int, progress Progress) *Scanner {
	if progress == nil {
		progress = NoOpProgress{}
	}
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		root:      root,
		discovery: discovery,
		workers:   workers,
		progress:  progress,
	}
}

// Root returns the directory the scanner walks.
func (s *Scanner) Root() string {
	return s.root
}

// Scan enumerates matching files under the root and returns the
// concatenation of each file's records in traversal order. Files that
// vanish, cannot be read, or are not valid UTF-8 are skipped; only a
// missing or unreadable root is fatal.
func (s *Scanner) Scan(ctx context.Context) ([]lint.Record, error) {
	files, err := s.discoverFiles()
	if err != nil {
		return nil, err
	}
	s.progress.OnDiscoveryComplete(len(files))

	// Per-file extraction is independent, so it runs on a bounded group.
	// Results land in an index-addressed slice, keeping the output order
	// identical to a sequential walk.
	perFile := make([][]lint.Record, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perFile[i] = s.scanFile(file)
			s.progress.OnFileScanned(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := []lint.Record{}
	for _, recs := range perFile {
		records = append(records, recs...)
	}
	return records, nil
}

// discoverFiles walks the tree and collects matching file paths in
// lexical order. Unreadable subtrees below the root are skipped.
func (s *Scanner) discoverFiles() ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("scan root %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s: not a directory", s.root)
	}

	var files []string
	err = filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if path != s.root && s.discovery.ShouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.discovery.Matches(relPath) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// scanFile reads one file and extracts its records. Any failure skips the
// file: a single bad entry must not abort the scan.
func (s *Scanner) scanFile(path string) []lint.Record {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: skipping %s: %v", path, err)
		return nil
	}
	if !utf8.Valid(data) {
		log.Printf("Warning: skipping %s: not valid UTF-8", path)
		return nil
	}
	return lint.Parse(string(data), moduleName(path))
}

// moduleName derives the module identifier from a file path: the base
// name without its extension.
func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
