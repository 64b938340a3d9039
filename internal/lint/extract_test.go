package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	content := `
declare_clippy_lint! {
    pub PTR_ARG,
    style,
    "really long \
     text"
}

declare_clippy_lint!{
    pub DOC_MARKDOWN,
    pedantic,
    "single line"
}

/// some doc comment
declare_deprecated_lint! {
    pub SHOULD_ASSERT_EQ,
    "` + "`assert!()`" + ` will be more flexible with RFC 2011"
}
`

	want := []Record{
		New("ptr_arg", "style", "really long text", "module_name"),
		New("doc_markdown", "pedantic", "single line", "module_name"),
		NewDeprecated("should_assert_eq", "`assert!()` will be more flexible with RFC 2011", "module_name"),
	}
	require.Equal(t, want, Parse(content, "module_name"))
}

// Deprecated declarations sort after active ones no matter where they
// appear in the text.
func TestParseDeprecatedLast(t *testing.T) {
	t.Parallel()

	content := `
declare_clippy_lint! {
    pub PTR_ARG,
    style,
    "first active"
}

declare_deprecated_lint! {
    pub SHOULD_ASSERT_EQ,
    "deprecated in the middle"
}

declare_clippy_lint! {
    pub DOC_MARKDOWN,
    pedantic,
    "second active"
}
`

	records := Parse(content, "m")
	require.Len(t, records, 3)
	assert.Equal(t, "ptr_arg", records[0].Name)
	assert.Equal(t, "doc_markdown", records[1].Name)
	assert.Equal(t, "should_assert_eq", records[2].Name)
	assert.True(t, records[2].Deprecated())
}

func TestParseParenDelimiters(t *testing.T) {
	t.Parallel()

	content := `
declare_clippy_lint!(
    pub NEEDLESS_BOOL,
    complexity,
    "parenthesized form"
)
declare_deprecated_lint!( pub OLD_LINT, "gone" )
`

	want := []Record{
		New("needless_bool", "complexity", "parenthesized form", "m"),
		NewDeprecated("old_lint", "gone", "m"),
	}
	require.Equal(t, want, Parse(content, "m"))
}

func TestParseEscapedQuotesAndNewlinesInDescription(t *testing.T) {
	t.Parallel()

	content := `
declare_clippy_lint! {
    pub APPROX_CONSTANT,
    correctness,
    "the \"approximate\" value spans \
     two source lines"
}
`

	records := Parse(content, "approx_const")
	require.Len(t, records, 1)
	assert.Equal(t, `the "approximate" value spans two source lines`, records[0].Description)
	assert.Equal(t, "approx_const", records[0].Module)
}

func TestParseIgnoresNearMisses(t *testing.T) {
	t.Parallel()

	content := `
// lowercase name
declare_clippy_lint! {
    pub ptr_arg,
    style,
    "nope"
}

// uppercase category
declare_clippy_lint! {
    pub PTR_ARG,
    Style,
    "nope"
}

// missing category
declare_clippy_lint! {
    pub PTR_ARG,
    "nope"
}

// prose that mentions declare_clippy_lint! without a declaration
`

	assert.Empty(t, Parse(content, "m"))
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Parse("", "m"))
	assert.Empty(t, Parse("fn main() {}\n", "m"))
}

func TestParseKeepsDuplicates(t *testing.T) {
	t.Parallel()

	content := `
declare_clippy_lint! { pub PTR_ARG, style, "one" }
declare_clippy_lint! { pub PTR_ARG, style, "one" }
`

	records := Parse(content, "m")
	require.Len(t, records, 2)
	assert.Equal(t, records[0], records[1])
}
