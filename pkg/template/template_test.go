package template

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		template Template
		want     string
	}{
		{
			name:     "date_groups",
			pattern:  `^(\w+)_(\d{4})_(\d{2})\.txt$`,
			input:    "report_2024_07.txt",
			template: "$(1)-$(2)-$(3).bak",
			want:     "report-2024-07.bak",
		},
		{
			name:     "whole_match",
			pattern:  `\d+`,
			input:    "track12.mp3",
			template: "[$(0)]",
			want:     "[12]",
		},
		{
			name:     "repeated_token",
			pattern:  `^(a+)$`,
			input:    "aaa",
			template: "$(1)-$(1)-$(1)",
			want:     "aaa-aaa-aaa",
		},
		{
			name:     "absent_group_left_literal",
			pattern:  `^(foo)?bar$`,
			input:    "bar",
			template: "$(1)end",
			want:     "$(1)end",
		},
		{
			name:     "absent_group_with_present_neighbour",
			pattern:  `^(x)?(\d+)$`,
			input:    "42",
			template: "$(1)$(2)",
			want:     "$(1)42",
		},
		{
			name:     "empty_group_is_present",
			pattern:  `^(\d*)x$`,
			input:    "x",
			template: "<$(1)>",
			want:     "<>",
		},
		{
			name:     "index_beyond_groups_left_literal",
			pattern:  `^(a)$`,
			input:    "a",
			template: "$(1)$(7)",
			want:     "a$(7)",
		},
		{
			name:     "no_placeholders",
			pattern:  `.*`,
			input:    "anything",
			template: "fixed.txt",
			want:     "fixed.txt",
		},
		{
			name:     "malformed_tokens_untouched",
			pattern:  `^(a)$`,
			input:    "a",
			template: "$1 $( 1) $(1",
			want:     "$1 $( 1) $(1",
		},
		{
			name:     "double_digit_index",
			pattern:  `^(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)(k)$`,
			input:    "abcdefghijk",
			template: "$(11)$(1)",
			want:     "ka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			captures, ok := Captures(re, tt.input)
			require.True(t, ok, "pattern should match")
			assert.Equal(t, tt.want, Substitute(tt.template, captures))
		})
	}
}

// Text inserted by a pass is re-scanned only by later (higher index) passes.
func TestSubstitute_PassOrder(t *testing.T) {
	re := regexp.MustCompile(`^(.*)_(.*)$`)

	t.Run("lower_capture_contains_higher_token", func(t *testing.T) {
		captures, ok := Captures(re, "$(2)_x")
		require.True(t, ok)
		assert.Equal(t, "x-x", Substitute("$(1)-$(2)", captures))
	})

	t.Run("higher_capture_contains_lower_token", func(t *testing.T) {
		captures, ok := Captures(re, "a_$(1)")
		require.True(t, ok)
		assert.Equal(t, "$(1)+a", Substitute("$(2)+$(1)", captures))
	})

	t.Run("whole_match_contains_group_token", func(t *testing.T) {
		captures, ok := Captures(regexp.MustCompile(`^\$\((\d)\)$`), "$(1)")
		require.True(t, ok)
		assert.Equal(t, "1", Substitute("$(0)", captures))
	})
}

func TestCaptures(t *testing.T) {
	t.Run("no_match", func(t *testing.T) {
		captures, ok := Captures(regexp.MustCompile(`^x`), "abc")
		assert.False(t, ok)
		assert.Nil(t, captures)
	})

	t.Run("unanchored_leftmost_match", func(t *testing.T) {
		captures, ok := Captures(regexp.MustCompile(`(\d)(\d)`), "a12b34")
		require.True(t, ok)
		assert.Equal(t, CaptureSet{
			{Text: "12", Present: true},
			{Text: "1", Present: true},
			{Text: "2", Present: true},
		}, captures)
	})

	t.Run("optional_group_absent", func(t *testing.T) {
		captures, ok := Captures(regexp.MustCompile(`^(foo)?(bar)$`), "bar")
		require.True(t, ok)
		require.Len(t, captures, 3)
		assert.True(t, captures[0].Present)
		assert.False(t, captures[1].Present)
		assert.Equal(t, Capture{Text: "bar", Present: true}, captures[2])
	})
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		want     []int
	}{
		{name: "none", template: "plain.txt", want: nil},
		{name: "sorted_distinct", template: "$(2)$(0)$(2)-$(1)", want: []int{0, 1, 2}},
		{name: "ignores_malformed", template: "$1 $(a) $(3", want: nil},
		{name: "ignores_overflow", template: "$(99999999999999999999999)$(4)", want: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Placeholders(tt.template))
		})
	}
}
