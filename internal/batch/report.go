package batch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders the progress and summary lines of the tools.
type Styles struct {
	OK      lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
	Heading lipgloss.Style
}

// DefaultStyles returns the styles used by all tools. Colors degrade to plain
// text when the output is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Heading: lipgloss.NewStyle().Bold(true),
	}
}

// SummaryLabels holds the wording of a final tally.
type SummaryLabels struct {
	Title   string // e.g. "Conversion complete!"
	Success string // format with one %d verb
	Errors  string // format with one %d verb; printed only when Errors > 0
}

// PrintSummary writes a blank line, the title, the success count and, when
// non-zero, the error count.
func (st Styles) PrintSummary(w io.Writer, s Summary, labels SummaryLabels) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Heading.Render(labels.Title))
	fmt.Fprintln(w, st.OK.Render(fmt.Sprintf(labels.Success, s.Success)))
	if s.Errors > 0 {
		fmt.Fprintln(w, st.Fail.Render(fmt.Sprintf(labels.Errors, s.Errors)))
	}
}
