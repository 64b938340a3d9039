package lint

import (
	"regexp"
	"strings"
)

// nlEscapeRE matches a source-level line continuation: a backslash, the
// newline it escapes, and the indentation of the wrapped line.
var nlEscapeRE = regexp.MustCompile(`\\\n\s*`)

// Record is one lint definition extracted from source.
type Record struct {
	Name        string
	Group       string
	Description string
	Deprecation *string
	Module      string
}

// New builds a Record for an active declaration. Names use an uppercase
// convention in source; the canonical form is lowercase.
func New(name, group, desc, module string) Record {
	return Record{
		Name:        strings.ToLower(name),
		Group:       group,
		Description: Normalize(desc),
		Module:      module,
	}
}

// NewDeprecated builds a Record for a deprecated declaration. The reason
// doubles as the description, and the group is the literal "Deprecated".
func NewDeprecated(name, reason, module string) Record {
	desc := Normalize(reason)
	return Record{
		Name:        strings.ToLower(name),
		Group:       "Deprecated",
		Description: desc,
		Deprecation: &desc,
		Module:      module,
	}
}

// Deprecated reports whether the record came from a deprecated declaration.
func (r Record) Deprecated() bool {
	return r.Deprecation != nil
}

// Normalize turns captured declaration text into display text: escaped
// quotes become literal quotes, then line continuations are removed.
// Un-escaping runs first so a `\"` directly before a newline is not
// mistaken for a continuation. Everything else (backticks, markup) is
// kept verbatim, and normalizing twice is a no-op.
func Normalize(s string) string {
	return nlEscapeRE.ReplaceAllString(strings.ReplaceAll(s, `\"`, `"`), "")
}
