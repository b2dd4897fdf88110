package pretty

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/gomdparse/pkg/diag"
)

// defaultWidth is used when the terminal width cannot be determined.
const defaultWidth = 100

// FormatMessage formats a single parse message for terminal output.
func (s *Styles) FormatMessage(m diag.Message, width int) string {
	location := s.Location.Render(fmt.Sprintf("line %d", m.Line))
	severity := s.FormatSeverity(m.Severity)

	text := m.Text
	if maxText := width - 24; maxText > 20 && len(text) > maxText {
		text = text[:maxText-3] + "..."
	}

	return fmt.Sprintf("  %s  %s  %s", location, severity, s.Message.Render(text))
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev diag.Severity) string {
	switch sev {
	case diag.SeverityError:
		return s.Error.Render("error")
	case diag.SeverityWarning:
		return s.Warning.Render("warning")
	case diag.SeverityDeprecation:
		return s.Deprecation.Render("deprecation")
	default:
		return string(sev)
	}
}

// PrintMessages writes every message to w, one per line, truncated to
// the terminal width when w is a terminal.
func (s *Styles) PrintMessages(w io.Writer, messages []diag.Message) {
	width := terminalWidth(w)
	for _, m := range messages {
		fmt.Fprintln(w, s.FormatMessage(m, width))
	}
}

// PrintStatus writes a one-line summary of the parse outcome.
func (s *Styles) PrintStatus(w io.Writer, status diag.Status, count int) {
	if status == diag.StatusOK {
		fmt.Fprintln(w, s.Success.Render("ok"))
		return
	}
	fmt.Fprintf(w, "%s (%d %s)\n",
		s.Error.Render("error"), count, pluralize("message", count))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
