package scanner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lintcat/lintcat/internal/lint"
)

// Watcher rescans the tree whenever matching files change and hands the
// fresh record set to a callback.
type Watcher struct {
	scanner      *Scanner
	watcher      *fsnotify.Watcher
	onRescan     func([]lint.Record)
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewWatcher creates a watcher over the scanner's root. onRescan is
// invoked after each debounced batch of changes with the full rescan
// result.
func NewWatcher(s *Scanner, onRescan func([]lint.Record)) (*Watcher, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, fmt.Errorf("watch root %s: %w", s.root, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		scanner:      s,
		watcher:      fw,
		onRescan:     onRescan,
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(s.root); err != nil {
		fw.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the watcher and waits for the event loop to finish.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	rescanCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			// New directories join the watch set immediately.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						log.Printf("Warning: failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			// Reset the debounce timer, draining it if it already fired.
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case rescanCh <- struct{}{}:
				default:
				}
			})

		case <-rescanCh:
			w.triggerRescan(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// triggerRescan runs a full scan and delivers the result.
func (w *Watcher) triggerRescan(ctx context.Context) {
	start := time.Now()

	records, err := w.scanner.Scan(ctx)
	if err != nil {
		log.Printf("Error during rescan: %v", err)
		return
	}

	log.Printf("Rescan complete in %v (%d lints)", time.Since(start), len(records))
	if w.onRescan != nil {
		w.onRescan(records)
	}
}

// shouldProcessEvent reports whether an event concerns a scannable file
// or a directory that may contain some.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	relPath, err := filepath.Rel(w.scanner.root, event.Name)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	if w.scanner.discovery.ShouldIgnore(relPath) {
		return false
	}
	if w.scanner.discovery.Matches(relPath) {
		return true
	}

	// Directory events (and removals, where no stat is possible) pass
	// through: a removed directory may have held matching files.
	info, err := os.Stat(event.Name)
	return err != nil || info.IsDir()
}

// addDirectoriesRecursively adds all non-ignored directories in the tree
// to the watch set. Failures on individual directories are logged, not
// fatal.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("Warning: error accessing %s: %v", path, err)
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		relPath, relErr := filepath.Rel(w.scanner.root, path)
		if relErr == nil && path != w.scanner.root {
			if w.scanner.discovery.ShouldIgnore(filepath.ToSlash(relPath)) {
				return filepath.SkipDir
			}
		}

		if err := w.watcher.Add(path); err != nil {
			log.Printf("Warning: failed to watch directory %s: %v", path, err)
			return nil
		}

		return nil
	})
}
