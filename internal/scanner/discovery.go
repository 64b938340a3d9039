package scanner

import (
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern keeps the pattern text next to its compiled glob so the
// **/ fallback in matchesAny can consult it.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery decides which entries of the tree are scanned: files carrying
// the configured extension that no ignore pattern matches.
type Discovery struct {
	extension string
	ignore    []compiledPattern
}

// NewDiscovery compiles the ignore patterns for the given source-file
// extension (with leading dot, e.g. ".rs").
func NewDiscovery(extension string, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{extension: extension}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignore = append(d.ignore, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Matches reports whether the file at relPath (slash-separated, relative
// to the scan root) should be scanned.
func (d *Discovery) Matches(relPath string) bool {
	return strings.HasSuffix(relPath, d.extension) && !d.ShouldIgnore(relPath)
}

// ShouldIgnore checks relPath against the ignore patterns. A bare
// directory path is also tried with a /** suffix so a rule like
// "target/**" prunes the "target" directory itself.
func (d *Discovery) ShouldIgnore(relPath string) bool {
	if d.matchesAny(relPath) {
		return true
	}
	return d.matchesAny(relPath + "/**")
}

// matchesAny checks a path against every ignore pattern. Root-level paths
// (no slash) are additionally tried against patterns with their **/ prefix
// stripped, so "**/*.txt" matches "notes.txt" as users expect.
func (d *Discovery) matchesAny(path string) bool {
	for _, cp := range d.ignore {
		if cp.glob.Match(path) {
			return true
		}
	}

	if !strings.Contains(path, "/") {
		for _, cp := range d.ignore {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}

	return false
}
