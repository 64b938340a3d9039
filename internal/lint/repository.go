package lint

import "strings"

// internalPrefix marks groups used only to lint the linter itself.
// Matched as a prefix, so "internal_style" is internal too.
const internalPrefix = "internal"

// Usable returns the records that are neither deprecated nor in an
// internal-only group, preserving input order.
func Usable(records []Record) []Record {
	usable := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Deprecation == nil && !strings.HasPrefix(r.Group, internalPrefix) {
			usable = append(usable, r)
		}
	}
	return usable
}

// ByGroup buckets records by their group label. Relative order within a
// bucket follows the input; duplicate names are retained.
func ByGroup(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		groups[r.Group] = append(groups[r.Group], r)
	}
	return groups
}
