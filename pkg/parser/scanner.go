package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	atxHeadingRe = regexp.MustCompile(`^\s{0,3}(#{1,6})(?:\s+(.*?))?\s*$`)
	setextRe     = regexp.MustCompile(`^\s{0,3}(=+|-+)\s*$`)
	fenceRe      = regexp.MustCompile("^\\s{0,3}(`{3,}|~{3,})\\s*(\\S*)\\s*$")
	thematicRe   = regexp.MustCompile(`^\s{0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`)
	listItemRe   = regexp.MustCompile(`^(\s{0,3})([-+*]|\d{1,9}[.)])(?:(\s+)(.*))?$`)
	quoteRe      = regexp.MustCompile(`^\s{0,3}>\s?(.*)$`)
)

// ScanDocument runs the single-pass block classifier over the input and
// resolves pending IALs, returning the finalized top-level block tree.
func ScanDocument(input string, ctx *Context) []Block {
	blocks := scanBlocks(SplitLines(input), ctx)
	return resolveIALs(blocks, ctx)
}

// scanner tracks the state of one pass over a line sequence.
type scanner struct {
	ctx    *Context
	blocks []Block

	// para is the open paragraph absorbing continuation lines.
	para *Paragraph

	// blankBefore is true at document start and after a blank line.
	blankBefore bool
}

// scanBlocks classifies a line sequence into a block tree. It is called
// once per document and recursively for list item and blockquote bodies,
// each with the original line numbers preserved.
func scanBlocks(lines []Line, ctx *Context) []Block {
	s := &scanner{ctx: ctx, blankBefore: true}

	for i := 0; i < len(lines); {
		line := lines[i]

		if line.IsBlank() {
			s.closePara()
			s.blankBefore = true
			i++
			continue
		}

		// A setext underline converts the open paragraph into a heading.
		if s.para != nil {
			if m := setextRe.FindStringSubmatch(line.Text); m != nil {
				level := 2
				if m[1][0] == '=' {
					level = 1
				}
				s.emitSetextHeading(level)
				i = s.advance(i + 1)
				continue
			}
		}

		if fenceRe.MatchString(line.Text) {
			s.closePara()
			block, next := scanFence(lines, i, ctx)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		// An IAL line attaches to the block it directly follows; after a
		// blank line (or at document start) it is plain paragraph text.
		if content, ok := matchIALLine(line.Text); ok && !s.blankBefore && (len(s.blocks) > 0 || s.para != nil) {
			s.closePara()
			s.blocks = append(s.blocks, &PendingIAL{
				Line:  line.Number,
				Attrs: parseIALAttrs(content, line.Number, ctx),
			})
			i = s.advance(i + 1)
			continue
		}

		if isHTMLCommentStart(line.Text) {
			s.closePara()
			block, next := scanHTMLComment(lines, i, ctx)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		if isHTMLBlockStart(line.Text) {
			s.closePara()
			block, next := scanHTMLBlock(lines, i, ctx)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		if thematicRe.MatchString(line.Text) {
			s.closePara()
			s.blocks = append(s.blocks, &ThematicBreak{Line: line.Number})
			i = s.advance(i + 1)
			continue
		}

		// A list marker always starts or continues a list, even directly
		// under a paragraph line.
		if m := listItemRe.FindStringSubmatch(line.Text); m != nil {
			s.closePara()
			block, next := scanList(lines, i, ctx)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		if quoteRe.MatchString(line.Text) {
			s.closePara()
			block, next := scanQuote(lines, i, ctx)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		if table, next, ok := scanTable(lines, i, s.blankBefore, ctx); ok {
			s.closePara()
			s.blocks = append(s.blocks, table)
			i = s.advance(next)
			continue
		}

		if m := atxHeadingRe.FindStringSubmatch(line.Text); m != nil {
			s.closePara()
			s.blocks = append(s.blocks, &Heading{
				Line:  line.Number,
				Level: len(m[1]),
				Text:  strings.TrimRight(m[2], "# \t"),
			})
			i = s.advance(i + 1)
			continue
		}

		if s.para == nil && indentWidth(line.Text) >= 4 {
			block, next := scanIndentedCode(lines, i)
			s.blocks = append(s.blocks, block)
			i = s.advance(next)
			continue
		}

		if s.para == nil {
			s.para = &Paragraph{Line: line.Number}
		}
		s.para.Lines = append(s.para.Lines, strings.TrimLeft(line.Text, " \t"))
		s.blankBefore = false
		i++
	}

	s.closePara()
	return s.blocks
}

// advance marks the blank-line tracker after consuming a block and
// returns the next index unchanged.
func (s *scanner) advance(next int) int {
	s.blankBefore = false
	return next
}

func (s *scanner) closePara() {
	if s.para != nil {
		s.blocks = append(s.blocks, s.para)
		s.para = nil
	}
}

// emitSetextHeading converts the open paragraph into a heading.
func (s *scanner) emitSetextHeading(level int) {
	para := s.para
	s.para = nil
	s.blocks = append(s.blocks, &Heading{
		Line:  para.Line,
		Level: level,
		Text:  strings.Join(para.Lines, "\n"),
	})
}

// scanFence consumes a fenced code block. All lines are verbatim until a
// closing fence of the same character and equal or greater length, or
// end-of-input, which closes implicitly with a warning.
func scanFence(lines []Line, start int, ctx *Context) (*CodeBlock, int) {
	opening := lines[start]
	m := fenceRe.FindStringSubmatch(opening.Text)
	fence, lang := m[1], m[2]

	block := &CodeBlock{
		Line:     opening.Number,
		Fenced:   true,
		Language: lang,
	}

	closeRe := regexp.MustCompile(`^\s{0,3}` + regexp.QuoteMeta(string(fence[0])) +
		`{` + strconv.Itoa(len(fence)) + `,}\s*$`)

	for i := start + 1; i < len(lines); i++ {
		if closeRe.MatchString(lines[i].Text) {
			return block, i + 1
		}
		block.Lines = append(block.Lines, lines[i].Text)
	}

	ctx.Warnf(opening.Number, "Fenced code block opened at line %d was not closed", opening.Number)
	return block, len(lines)
}

// scanIndentedCode consumes an indented code block: 4+ leading spaces,
// ending at the first non-indented non-blank line. Interior blank lines
// are kept; trailing blanks are left for the outer scan.
func scanIndentedCode(lines []Line, start int) (*CodeBlock, int) {
	block := &CodeBlock{Line: lines[start].Number}

	var pendingBlanks int
	i := start
	for ; i < len(lines); i++ {
		line := lines[i]
		switch {
		case line.IsBlank():
			pendingBlanks++
		case indentWidth(line.Text) >= 4:
			for ; pendingBlanks > 0; pendingBlanks-- {
				block.Lines = append(block.Lines, "")
			}
			block.Lines = append(block.Lines, stripIndent(line.Text, 4))
		default:
			return block, i - pendingBlanks
		}
	}
	return block, i - pendingBlanks
}

// scanList consumes a list: consecutive items with the same ordered-ness.
// Item bodies are re-scanned recursively, so nested lists, quotes, and
// code blocks inside items work the same as at top level.
func scanList(lines []Line, start int, ctx *Context) (*List, int) {
	first := listItemRe.FindStringSubmatch(lines[start].Text)
	ordered := first[2][0] >= '0' && first[2][0] <= '9'

	list := &List{
		Line:    lines[start].Number,
		Ordered: ordered,
		Start:   1,
	}
	if ordered {
		if n, err := strconv.Atoi(first[2][:len(first[2])-1]); err == nil {
			list.Start = n
		}
	}

	i := start
	for i < len(lines) {
		m := listItemRe.FindStringSubmatch(lines[i].Text)
		if m == nil {
			break
		}
		markerOrdered := m[2][0] >= '0' && m[2][0] <= '9'
		if markerOrdered != ordered {
			break
		}

		item, next, sawBlank := scanListItem(lines, i, m, ctx)
		list.Items = append(list.Items, item)
		if sawBlank && next < len(lines) && listItemRe.MatchString(lines[next].Text) {
			list.Loose = true
		}
		if sawBlank && len(item.Blocks) > 1 {
			list.Loose = true
		}
		i = next
	}

	return list, i
}

// scanListItem consumes one item: the marker line plus continuation lines
// indented at least to the item's content column, plus lazy paragraph
// continuations. Returns whether a blank line was consumed.
func scanListItem(lines []Line, start int, m []string, ctx *Context) (*ListItem, int, bool) {
	contentCol := len(m[1]) + len(m[2]) + len(m[3])
	if m[3] == "" {
		contentCol++
	}

	body := []Line{{Text: m[4], Number: lines[start].Number}}
	sawBlank := false
	lazyOpen := m[4] != ""

	i := start + 1
	for i < len(lines) {
		line := lines[i]
		switch {
		case line.IsBlank():
			// Item continues only if a sufficiently indented line follows.
			j := i + 1
			for j < len(lines) && lines[j].IsBlank() {
				j++
			}
			if j >= len(lines) || indentWidth(lines[j].Text) < contentCol {
				return &ListItem{Line: lines[start].Number, Blocks: scanBlocks(body, ctx)}, i + 1, true
			}
			body = append(body, Line{Text: "", Number: line.Number})
			sawBlank = true
			lazyOpen = false
			i++
		case indentWidth(line.Text) >= contentCol:
			body = append(body, Line{Text: stripIndent(line.Text, contentCol), Number: line.Number})
			lazyOpen = true
			i++
		case listItemRe.MatchString(line.Text):
			return &ListItem{Line: lines[start].Number, Blocks: scanBlocks(body, ctx)}, i, sawBlank
		case lazyOpen && !quoteRe.MatchString(line.Text) && !fenceRe.MatchString(line.Text):
			// Lazy paragraph continuation.
			body = append(body, Line{Text: strings.TrimLeft(line.Text, " \t"), Number: line.Number})
			i++
		default:
			return &ListItem{Line: lines[start].Number, Blocks: scanBlocks(body, ctx)}, i, sawBlank
		}
	}

	return &ListItem{Line: lines[start].Number, Blocks: scanBlocks(body, ctx)}, i, sawBlank
}

// scanQuote consumes a blockquote: contiguous marker lines plus lazy
// continuations, ending at a blank line. One marker level is stripped and
// the interior re-scanned, so quotes nest.
func scanQuote(lines []Line, start int, ctx *Context) (*BlockQuote, int) {
	var body []Line

	i := start
	for i < len(lines) {
		line := lines[i]
		if line.IsBlank() {
			break
		}
		if m := quoteRe.FindStringSubmatch(line.Text); m != nil {
			body = append(body, Line{Text: m[1], Number: line.Number})
		} else {
			body = append(body, Line{Text: strings.TrimLeft(line.Text, " \t"), Number: line.Number})
		}
		i++
	}

	return &BlockQuote{
		Line:   lines[start].Number,
		Blocks: scanBlocks(body, ctx),
	}, i
}
