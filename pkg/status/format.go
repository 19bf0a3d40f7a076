package status

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Formatter defines how per-entry lines and the summary are formatted
type Formatter interface {
	// FormatChanged formats a renamed entry
	FormatChanged(oldName, newName string) string

	// FormatUnchanged formats a matched entry whose name did not change
	FormatUnchanged(name string) string

	// FormatFailed formats an entry whose rename failed
	FormatFailed(name string, err error) string

	// FormatSummary formats the end of run summary
	FormatSummary(t Totals) string
}

// DefaultFormatter produces the plain "<old> -> <new>" style lines, with
// optional color on the separators and annotations
type DefaultFormatter struct {
	arrow *color.Color
	faint *color.Color
	fail  *color.Color
	good  *color.Color
}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter(colored bool) *DefaultFormatter {
	f := &DefaultFormatter{
		arrow: color.New(color.FgCyan),
		faint: color.New(color.Faint),
		fail:  color.New(color.FgRed),
		good:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{f.arrow, f.faint, f.fail, f.good} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

func (f *DefaultFormatter) FormatChanged(oldName, newName string) string {
	return fmt.Sprintf("%s %s %s", oldName, f.arrow.Sprint("->"), newName)
}

func (f *DefaultFormatter) FormatUnchanged(name string) string {
	return fmt.Sprintf("%s %s", name, f.faint.Sprint("unchanged"))
}

func (f *DefaultFormatter) FormatFailed(name string, err error) string {
	if err == nil {
		return name
	}
	return fmt.Sprintf("%s: %s", name, f.fail.Sprint(err.Error()))
}

func (f *DefaultFormatter) FormatSummary(t Totals) string {
	if t.Failed > 0 {
		return f.fail.Sprint(t.Summary())
	}
	return f.good.Sprint(t.Summary())
}

// 🎨 ShouldColor reports whether output to file should be colored
func ShouldColor(file *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
