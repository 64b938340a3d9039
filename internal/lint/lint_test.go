package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "escaped quote",
			input: `checks for \"magic\" numbers`,
			want:  `checks for "magic" numbers`,
		},
		{
			name:  "line continuation",
			input: "really long \\\n     text",
			want:  "really long text",
		},
		{
			name:  "escaped quote before continuation",
			input: "ends with \\\"quote\\\" \\\n    and wraps",
			want:  `ends with "quote" and wraps`,
		},
		{
			name:  "multiple continuations",
			input: "one \\\n  two \\\n  three",
			want:  "one two three",
		},
		{
			name:  "backticks kept verbatim",
			input: "`assert!()` will be more flexible with RFC 2011",
			want:  "`assert!()` will be more flexible with RFC 2011",
		},
		{
			name:  "no-op",
			input: "plain text",
			want:  "plain text",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			// Already-normalized text passes through unchanged.
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestNewFoldsNameToLowercase(t *testing.T) {
	t.Parallel()

	r := New("PTR_ARG", "style", "text", "ptr")
	assert.Equal(t, "ptr_arg", r.Name)

	d := NewDeprecated("SHOULD_ASSERT_EQ", "reason", "misc")
	assert.Equal(t, "should_assert_eq", d.Name)
}

func TestNewDeprecatedSetsReasonAndGroup(t *testing.T) {
	t.Parallel()

	r := NewDeprecated("SHOULD_ASSERT_EQ", "use \\\"assert\\\" instead", "misc")
	require.NotNil(t, r.Deprecation)
	assert.Equal(t, `use "assert" instead`, r.Description)
	assert.Equal(t, r.Description, *r.Deprecation)
	assert.Equal(t, "Deprecated", r.Group)
	assert.True(t, r.Deprecated())

	active := New("PTR_ARG", "style", "text", "ptr")
	assert.Nil(t, active.Deprecation)
	assert.False(t, active.Deprecated())
}
