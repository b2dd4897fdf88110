package parser

import (
	"regexp"
	"strings"
)

// Verbatim HTML capture. Any tag name is accepted; the capture is driven
// purely by the opening tag recurring as a matching closing tag at the
// start of a later line, so no tag vocabulary is maintained.

var (
	htmlOpenRe        = regexp.MustCompile(`^\s{0,3}<([a-zA-Z][a-zA-Z0-9-]*)((?:\s[^>]*?)?)(/?)>(.*)$`)
	htmlCommentOpenRe = regexp.MustCompile(`^\s*<!--(.*)$`)
)

const commentClose = "-->"

// isHTMLBlockStart reports whether a line opens a verbatim HTML capture.
func isHTMLBlockStart(text string) bool {
	return htmlOpenRe.MatchString(text)
}

// isHTMLCommentStart reports whether a line opens an HTML comment.
func isHTMLCommentStart(text string) bool {
	return htmlCommentOpenRe.MatchString(text)
}

// scanHTMLBlock consumes a verbatim HTML block starting at lines[start].
// It returns the block and the index of the first unconsumed line.
//
// Shapes handled:
//   - <tag ... />                  one-line node with no children
//   - <tag>inner</tag>trailing     one-line node, children [inner]
//   - <tag>rest ... </tag>trail    multi-line capture; "rest" on the
//     opening line and every interior line become verbatim children;
//     text after the closing tag becomes trailing text.
//
// A block still open at end-of-input is closed implicitly with a warning.
func scanHTMLBlock(lines []Line, start int, ctx *Context) (*HTMLBlock, int) {
	opening := lines[start]
	m := htmlOpenRe.FindStringSubmatch(opening.Text)
	tag, selfClose, rest := m[1], m[3], m[4]

	block := &HTMLBlock{Line: opening.Number, Tag: tag}

	if selfClose == "/" {
		block.Trailing = strings.TrimSpace(rest)
		return block, start + 1
	}

	closeTag := "</" + tag + ">"

	// Opening and closing tag on the same line.
	if idx := indexFold(rest, closeTag); idx >= 0 {
		if inner := rest[:idx]; inner != "" {
			block.Lines = append(block.Lines, inner)
		}
		block.Trailing = strings.TrimSpace(rest[idx+len(closeTag):])
		return block, start + 1
	}

	if rest != "" {
		block.Lines = append(block.Lines, rest)
	}

	for i := start + 1; i < len(lines); i++ {
		text := lines[i].Text
		if trimmed := strings.TrimLeft(text, " \t"); hasPrefixFold(trimmed, closeTag) {
			block.Trailing = strings.TrimSpace(trimmed[len(closeTag):])
			return block, i + 1
		}
		block.Lines = append(block.Lines, text)
	}

	ctx.Warnf(opening.Number, "HTML block <%s> opened at line %d was not closed", tag, opening.Number)
	return block, len(lines)
}

// scanHTMLComment consumes an HTML comment starting at lines[start].
// Capture continues line by line until a line contains the close marker;
// trailing text on that line after the marker is discarded. A comment
// still open at end-of-input is closed implicitly with a warning.
func scanHTMLComment(lines []Line, start int, ctx *Context) (*HTMLComment, int) {
	opening := lines[start]
	m := htmlCommentOpenRe.FindStringSubmatch(opening.Text)
	first := m[1]

	comment := &HTMLComment{Line: opening.Number}

	if idx := strings.Index(first, commentClose); idx >= 0 {
		comment.Lines = append(comment.Lines, first[:idx])
		return comment, start + 1
	}
	comment.Lines = append(comment.Lines, first)

	for i := start + 1; i < len(lines); i++ {
		text := lines[i].Text
		if idx := strings.Index(text, commentClose); idx >= 0 {
			comment.Lines = append(comment.Lines, text[:idx])
			return comment, i + 1
		}
		comment.Lines = append(comment.Lines, text)
	}

	ctx.Warnf(opening.Number, "HTML comment opened at line %d was not closed", opening.Number)
	return comment, len(lines)
}

// indexFold is a case-insensitive strings.Index.
func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

// hasPrefixFold is a case-insensitive strings.HasPrefix.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
