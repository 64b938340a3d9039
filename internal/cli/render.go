package cli

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/lintcat/lintcat/internal/lint"
)

// renderTable prints records as a table: name, group and module first,
// the (possibly long) description last.
func renderTable(w io.Writer, records []lint.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Group", "Module", "Description"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Name, r.Group, r.Module, r.Description})
	}
	t.Render()
}

type recordJSON struct {
	Name        string  `json:"name"`
	Group       string  `json:"group"`
	Description string  `json:"description"`
	Deprecation *string `json:"deprecation,omitempty"`
	Module      string  `json:"module"`
}

// renderJSON prints records as an indented JSON array.
func renderJSON(w io.Writer, records []lint.Record) error {
	out := make([]recordJSON, 0, len(records))
	for _, r := range records {
		out = append(out, recordJSON{
			Name:        r.Name,
			Group:       r.Group,
			Description: r.Description,
			Deprecation: r.Deprecation,
			Module:      r.Module,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// renderGroups prints one row per group with its lint count. Group order
// in the mapping is unspecified, so rows are sorted for stable output.
func renderGroups(w io.Writer, groups map[string][]lint.Record) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Group", "Lints"})
	for _, name := range names {
		t.AppendRow(table.Row{name, len(groups[name])})
	}
	t.Render()
}
