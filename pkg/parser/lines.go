package parser

import "strings"

// Line is one source line paired with its 1-based line number.
type Line struct {
	Text   string
	Number int
}

// IsBlank reports whether the line contains only whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// SplitLines splits input into an ordered line sequence, handling both LF
// and CRLF endings. Line numbers are 1-based.
func SplitLines(input string) []Line {
	if input == "" {
		return nil
	}

	raw := strings.Split(input, "\n")
	// A trailing newline produces an empty final element, not a line.
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{
			Text:   strings.TrimSuffix(text, "\r"),
			Number: i + 1,
		}
	}
	return lines
}

// indentWidth returns the width of the line's leading whitespace, with
// tabs counted as advancing to the next multiple of 4.
func indentWidth(s string) int {
	width := 0
	for _, r := range s {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4 - width%4
		default:
			return width
		}
	}
	return width
}

// stripIndent removes up to width columns of leading whitespace.
func stripIndent(s string, width int) string {
	removed := 0
	for i, r := range s {
		if removed >= width {
			return s[i:]
		}
		switch r {
		case ' ':
			removed++
		case '\t':
			removed += 4 - removed%4
		default:
			return s[i:]
		}
	}
	return ""
}
