package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 🧪 TestDefaultFormatter tests the plain formatter output
func TestDefaultFormatter(t *testing.T) {
	f := NewDefaultFormatter(false)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "changed", got: f.FormatChanged("old.txt", "new.txt"), want: "old.txt -> new.txt"},
		{name: "unchanged", got: f.FormatUnchanged("same.txt"), want: "same.txt unchanged"},
		{name: "failed", got: f.FormatFailed("bad.txt", assert.AnError), want: "bad.txt: " + assert.AnError.Error()},
		{name: "failed_without_error", got: f.FormatFailed("bad.txt", nil), want: "bad.txt"},
		{name: "summary", got: f.FormatSummary(Totals{Matched: 2, Changed: 3}), want: "5 files matched, 3 files renamed, 0 errors"},
		{name: "summary_with_errors", got: f.FormatSummary(Totals{Failed: 1}), want: "1 files matched, 0 files renamed, 1 errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDefaultFormatter_Colored(t *testing.T) {
	f := NewDefaultFormatter(true)

	got := f.FormatChanged("old.txt", "new.txt")
	assert.Contains(t, got, "\x1b[", "colored output should contain escape codes")
	assert.True(t, len(got) > len("old.txt -> new.txt"))
	assert.Contains(t, got, "old.txt")
	assert.Contains(t, got, "new.txt")
}
