package parser

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// Inline span parsing. Each leaf block's text is parsed independently of
// every other block, which is what makes the per-block concurrent fan-out
// safe. Recognition order resolves overlaps: escapes, code spans,
// emphasis/strong, strikethrough, links/images, autolinks, raw inline
// HTML, with smartypants as a final text-level pass.

var (
	angleAutolinkRe = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9+.-]*:[^<>\s]+)>`)
	angleMailRe     = regexp.MustCompile(`^<([^<>\s@]+@[^<>\s@]+\.[^<>\s@]+)>`)
	inlineHTMLRe    = regexp.MustCompile(`^</?[a-zA-Z][a-zA-Z0-9-]*(?:\s[^<>]*)?/?>`)
	bareURLRe       = regexp.MustCompile(`^https?://[^\s<>]+`)
	linkTargetRe    = regexp.MustCompile(`^\s*<?([^\s>]*)>?(?:\s+"([^"]*)"|\s+'([^']*)')?\s*$`)
)

const escapable = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ParseInline parses one leaf block's text into an ordered inline node
// sequence. line is the block's starting line, used for diagnostics.
func ParseInline(text string, line int, ctx *Context) []*ast.Node {
	p := &inlineParser{ctx: ctx, line: line, src: text}
	return p.run()
}

type inlineParser struct {
	ctx  *Context
	line int
	src  string
	pos  int
	out  []*ast.Node
	text strings.Builder
}

func (p *inlineParser) run() []*ast.Node {
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		switch ch {
		case '\\':
			p.parseEscape()
		case '`':
			p.parseCodeSpan()
		case '*', '_':
			p.parseEmphasis(ch)
		case '~':
			p.parseStrikethrough()
		case '[':
			p.parseLinkOrImage(false)
		case '!':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '[' {
				p.pos++
				p.parseLinkOrImage(true)
			} else {
				p.literal(1)
			}
		case '<':
			p.parseAngle()
		case '\n':
			p.parseLineBreak()
		case 'h':
			if p.ctx.Options.PureLinks && p.atWordStart() {
				if m := bareURLRe.FindString(p.src[p.pos:]); m != "" {
					p.emitBareLink(m)
					continue
				}
			}
			p.literal(1)
		default:
			p.literal(1)
		}
	}
	p.flushText()
	return p.out
}

// literal copies n source bytes into the text buffer.
func (p *inlineParser) literal(n int) {
	p.text.WriteString(p.src[p.pos : p.pos+n])
	p.pos += n
}

// flushText emits the buffered text as a leaf node, applying smartypants
// when enabled. Code spans and verbatim content never pass through here.
func (p *inlineParser) flushText() {
	if p.text.Len() == 0 {
		return
	}
	text := p.text.String()
	p.text.Reset()
	if p.ctx.Options.Smartypants {
		text = smartypants(text)
	}
	p.out = append(p.out, ast.Text(text))
}

func (p *inlineParser) emit(n *ast.Node) {
	p.flushText()
	p.out = append(p.out, n)
}

func (p *inlineParser) parseEscape() {
	if p.pos+1 >= len(p.src) {
		p.literal(1)
		return
	}
	next := p.src[p.pos+1]
	if next == '\n' {
		// Backslash before a newline is a hard break.
		p.pos += 2
		p.emit(ast.Element("br"))
		return
	}
	if strings.IndexByte(escapable, next) >= 0 {
		p.text.WriteByte(next)
		p.pos += 2
		return
	}
	p.literal(1)
}

// parseCodeSpan handles a backtick run closed by an equal-length run.
// An unclosed run stays literal text.
func (p *inlineParser) parseCodeSpan() {
	n := runLength(p.src, p.pos, '`')
	open := p.pos + n

	for i := open; i < len(p.src); i++ {
		if p.src[i] != '`' {
			continue
		}
		m := runLength(p.src, i, '`')
		if m == n {
			content := p.src[open:i]
			p.emit(ast.Element("code", ast.Text(content)))
			p.pos = i + m
			return
		}
		i += m - 1
	}

	p.literal(n)
}

// parseEmphasis handles * and _ delimiter runs with flanking checks:
// an opener must precede non-space, a closer must follow non-space, and
// underscores do not open intraword.
func (p *inlineParser) parseEmphasis(ch byte) {
	n := runLength(p.src, p.pos, ch)

	if !p.canOpen(ch, n) {
		p.literal(n)
		return
	}

	want := n
	if want > 3 {
		want = 3
	}

	for count := want; count >= 1; count-- {
		closeAt := p.findClose(ch, count, p.pos+n)
		if closeAt < 0 {
			continue
		}
		inner := p.src[p.pos+count : closeAt]
		children := ParseInline(inner, p.line, p.ctx)

		var node *ast.Node
		switch count {
		case 3:
			node = ast.Element("strong", ast.Element("em", children...))
		case 2:
			node = ast.Element("strong", children...)
		default:
			node = ast.Element("em", children...)
		}
		p.emit(node)
		p.pos = closeAt + count
		return
	}

	p.literal(n)
}

func (p *inlineParser) canOpen(ch byte, n int) bool {
	after := p.pos + n
	if after >= len(p.src) || p.src[after] == ' ' || p.src[after] == '\n' {
		return false
	}
	if ch == '_' && p.pos > 0 && isAlnum(p.src[p.pos-1]) {
		return false
	}
	return true
}

// findClose locates a closing delimiter run of at least count characters
// whose preceding character is not whitespace. Returns -1 if none.
func (p *inlineParser) findClose(ch byte, count int, from int) int {
	for i := from; i < len(p.src); i++ {
		if p.src[i] == '\\' {
			i++
			continue
		}
		if p.src[i] != ch {
			continue
		}
		m := runLength(p.src, i, ch)
		prev := p.src[i-1]
		if m >= count && prev != ' ' && prev != '\n' && i > from {
			return i
		}
		i += m - 1
	}
	return -1
}

func (p *inlineParser) parseStrikethrough() {
	if !p.ctx.Options.GFM || runLength(p.src, p.pos, '~') < 2 {
		p.literal(1)
		return
	}
	if close := strings.Index(p.src[p.pos+2:], "~~"); close >= 0 {
		inner := p.src[p.pos+2 : p.pos+2+close]
		p.emit(ast.Element("del", ParseInline(inner, p.line, p.ctx)...))
		p.pos += 2 + close + 2
		return
	}
	p.literal(2)
}

// parseLinkOrImage handles [text](url "title"){: ial} and the image form.
// Anything that fails to complete stays literal.
func (p *inlineParser) parseLinkOrImage(isImage bool) {
	label, afterLabel, ok := matchBrackets(p.src, p.pos)
	if !ok || afterLabel >= len(p.src) || p.src[afterLabel] != '(' {
		if isImage {
			p.text.WriteByte('!')
		}
		p.literal(1)
		return
	}

	target, afterTarget, ok := matchParens(p.src, afterLabel)
	if !ok {
		if isImage {
			p.text.WriteByte('!')
		}
		p.literal(1)
		return
	}

	url, title := splitLinkTarget(target)

	var node *ast.Node
	if isImage {
		node = ast.Element("img")
		node.SetAttr("src", url)
		node.SetAttr("alt", label)
		if title != "" {
			node.SetAttr("title", title)
		}
	} else {
		node = ast.Element("a", ParseInline(label, p.line, p.ctx)...)
		node.SetAttr("href", url)
		if title != "" {
			node.SetAttr("title", title)
		}
	}

	p.pos = afterTarget

	// Optional trailing IAL; a backslash-escaped one stays literal text.
	if m := ialTrailerRe.FindStringSubmatch(p.src[p.pos:]); m != nil {
		node.MergeAttrs(parseIALAttrs(m[1], p.line, p.ctx))
		p.pos += len(m[0])
	}

	p.emit(node)
}

// parseAngle handles <scheme:...> and <user@host> autolinks, then raw
// inline HTML tags passed through verbatim.
func (p *inlineParser) parseAngle() {
	rest := p.src[p.pos:]

	if m := angleAutolinkRe.FindStringSubmatch(rest); m != nil {
		node := ast.Element("a", ast.Text(m[1]))
		node.SetAttr("href", m[1])
		p.emit(node)
		p.pos += len(m[0])
		return
	}
	if m := angleMailRe.FindStringSubmatch(rest); m != nil {
		node := ast.Element("a", ast.Text(m[1]))
		node.SetAttr("href", "mailto:"+m[1])
		p.emit(node)
		p.pos += len(m[0])
		return
	}
	if m := inlineHTMLRe.FindString(rest); m != "" {
		p.emit(ast.RawText(m))
		p.pos += len(m)
		return
	}

	p.literal(1)
}

// parseLineBreak decides between hard and soft breaks at a newline.
func (p *inlineParser) parseLineBreak() {
	if p.ctx.Options.Breaks {
		p.trimTrailingSpaces()
		p.pos++
		p.emit(ast.Element("br"))
		return
	}

	buffered := p.text.String()
	if strings.HasSuffix(buffered, "  ") {
		p.text.Reset()
		p.text.WriteString(strings.TrimRight(buffered, " "))
		p.pos++
		p.emit(ast.Element("br"))
		return
	}

	p.literal(1)
}

func (p *inlineParser) trimTrailingSpaces() {
	buffered := strings.TrimRight(p.text.String(), " ")
	p.text.Reset()
	p.text.WriteString(buffered)
}

func (p *inlineParser) emitBareLink(url string) {
	url = strings.TrimRight(url, ".,;:!?)")
	node := ast.Element("a", ast.Text(url))
	node.SetAttr("href", url)
	p.emit(node)
	p.pos += len(url)
}

func (p *inlineParser) atWordStart() bool {
	return p.pos == 0 || !isAlnum(p.src[p.pos-1])
}

// matchBrackets returns the text inside a balanced [...] starting at
// open, and the index just past the closing bracket.
func matchBrackets(s string, open int) (string, int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// matchParens returns the text inside a balanced (...) starting at open,
// and the index just past the closing paren.
func matchParens(s string, open int) (string, int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1, true
			}
		case '\n':
			return "", 0, false
		}
	}
	return "", 0, false
}

// splitLinkTarget splits a link target into URL and optional title.
func splitLinkTarget(target string) (url, title string) {
	m := linkTargetRe.FindStringSubmatch(target)
	if m == nil {
		return strings.TrimSpace(target), ""
	}
	url = m[1]
	if m[2] != "" {
		title = m[2]
	} else {
		title = m[3]
	}
	return url, title
}

func runLength(s string, pos int, ch byte) int {
	n := 0
	for pos+n < len(s) && s[pos+n] == ch {
		n++
	}
	return n
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}
