package lint

import "regexp"

// The two declaration shapes. Either bracket style is legal around the
// body, tokens may be separated by arbitrary whitespace, and descriptions
// may span lines and contain escaped characters (hence the
// `[^"\\]|\\[\s\S]` alternation).
var (
	activeRE = regexp.MustCompile(
		`declare_clippy_lint!\s*[{(]\s*` +
			`pub\s+(?P<name>[A-Z_][A-Z_0-9]*)\s*,\s*` +
			`(?P<cat>[a-z_]+)\s*,\s*` +
			`"(?P<desc>(?:[^"\\]|\\[\s\S])*)"\s*[})]`)

	deprecatedRE = regexp.MustCompile(
		`declare_deprecated_lint!\s*[{(]\s*` +
			`pub\s+(?P<name>[A-Z_][A-Z_0-9]*)\s*,\s*` +
			`"(?P<desc>(?:[^"\\]|\\[\s\S])*)"\s*[})]`)
)

// Parse extracts every lint declaration from one file's text. Active
// declarations come first in textual order, then deprecated ones, also in
// textual order. Text that is not a declaration, including near-miss
// syntax with the wrong token shapes, produces nothing: non-matching is
// the expected outcome, not an error. Duplicate names are preserved.
func Parse(content, module string) []Record {
	var records []Record
	for _, m := range activeRE.FindAllStringSubmatch(content, -1) {
		records = append(records, New(m[1], m[2], m[3], module))
	}
	for _, m := range deprecatedRE.FindAllStringSubmatch(content, -1) {
		records = append(records, NewDeprecated(m[1], m[2], module))
	}
	return records
}
