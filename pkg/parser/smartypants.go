package parser

import "strings"

// Smartypants substitutions run as a final pass over plain text nodes
// only, never inside code spans or verbatim blocks: straight quotes
// become curly quotes, double and triple dashes become en and em dashes,
// and three dots become an ellipsis glyph.

const (
	leftDouble  = "“"
	rightDouble = "”"
	leftSingle  = "‘"
	rightSingle = "’"
	enDash      = "–"
	emDash      = "—"
	ellipsis    = "…"
)

func smartypants(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch ch {
		case '-':
			switch {
			case strings.HasPrefix(text[i:], "---"):
				b.WriteString(emDash)
				i += 2
			case strings.HasPrefix(text[i:], "--"):
				b.WriteString(enDash)
				i++
			default:
				b.WriteByte(ch)
			}
		case '.':
			if strings.HasPrefix(text[i:], "...") {
				b.WriteString(ellipsis)
				i += 2
			} else {
				b.WriteByte(ch)
			}
		case '"':
			if opensQuote(text, i) {
				b.WriteString(leftDouble)
			} else {
				b.WriteString(rightDouble)
			}
		case '\'':
			if opensQuote(text, i) {
				b.WriteString(leftSingle)
			} else {
				b.WriteString(rightSingle)
			}
		default:
			b.WriteByte(ch)
		}
	}

	return b.String()
}

// opensQuote reports whether a quote at position i starts a quotation:
// at text start or after whitespace or an opening bracket.
func opensQuote(text string, i int) bool {
	if i == 0 {
		return true
	}
	return strings.IndexByte(" \t\n([{", text[i-1]) >= 0
}
