package parser

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// ialLineRe matches a line that is nothing but an inline attribute list.
var ialLineRe = regexp.MustCompile(`^\s{0,3}\{:\s*(.*?)\s*\}\s*$`)

// ialTrailerRe matches an IAL trailing an inline element, e.g. a link.
var ialTrailerRe = regexp.MustCompile(`^\{:\s*(.*?)\s*\}`)

// ialNameRe constrains attribute names in name=value tokens.
var ialNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_:-]*$`)

// matchIALLine returns the token content of a whole-line IAL.
func matchIALLine(text string) (string, bool) {
	m := ialLineRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseIALAttrs tokenizes IAL content and converts each token to an
// attribute: ".class" adds to class, "#id" sets id, "name=value" (value
// optionally single- or double-quoted) sets name. Malformed tokens are
// individually dropped; a single warning lists them with the IAL's line
// number. The rest of a partially valid IAL still applies.
func parseIALAttrs(content string, line int, ctx *Context) []ast.Attr {
	var attrs []ast.Attr
	var illegal []string

	for _, tok := range splitIALTokens(content) {
		switch {
		case len(tok) > 1 && tok[0] == '.':
			attrs = append(attrs, ast.Attr{Name: "class", Value: tok[1:]})
		case len(tok) > 1 && tok[0] == '#':
			attrs = append(attrs, ast.Attr{Name: "id", Value: tok[1:]})
		default:
			name, value, ok := splitIALPair(tok)
			if !ok {
				illegal = append(illegal, tok)
				continue
			}
			attrs = append(attrs, ast.Attr{Name: name, Value: value})
		}
	}

	if len(illegal) > 0 {
		ctx.Warnf(line, "Illegal attributes [%s] ignored in IAL", quoteTokens(illegal))
	}
	return attrs
}

// splitIALPair splits a name=value token, unquoting the value.
func splitIALPair(tok string) (name, value string, ok bool) {
	eq := strings.IndexByte(tok, '=')
	if eq <= 0 {
		return "", "", false
	}
	name, value = tok[:eq], tok[eq+1:]
	if !ialNameRe.MatchString(name) {
		return "", "", false
	}
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return name, value, true
}

// splitIALTokens splits IAL content on whitespace, keeping quoted values
// (after '=') intact.
func splitIALTokens(content string) []string {
	var tokens []string
	var cur strings.Builder
	var quote byte

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(content); i++ {
		ch := content[i]
		switch {
		case quote != 0:
			cur.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
			cur.WriteByte(ch)
		case ch == ' ' || ch == '\t':
			flush()
		default:
			cur.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// quoteTokens formats tokens as a quoted, comma-separated list for
// diagnostic messages: `"a", "b"`.
func quoteTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(tok)
		b.WriteByte('"')
	}
	return b.String()
}

// resolveIALs consumes every PendingIAL in a block sequence, merging its
// attributes into the preceding block. It recurses into lists and quotes.
// A PendingIAL with no attachable predecessor is dropped with a warning,
// so it never silently vanishes.
func resolveIALs(blocks []Block, ctx *Context) []Block {
	out := blocks[:0]
	for _, b := range blocks {
		switch t := b.(type) {
		case *PendingIAL:
			if len(out) == 0 || !mergeIAL(out[len(out)-1], t.Attrs) {
				if len(t.Attrs) > 0 {
					ctx.Warnf(t.Line, "IAL attributes [%s] could not be attached to a block",
						quoteTokens(attrTokens(t.Attrs)))
				}
			}
		case *List:
			for _, item := range t.Items {
				item.Blocks = resolveIALs(item.Blocks, ctx)
			}
			out = append(out, b)
		case *BlockQuote:
			t.Blocks = resolveIALs(t.Blocks, ctx)
			out = append(out, b)
		default:
			out = append(out, b)
		}
	}
	return out
}

// attrTokens reconstructs the printable form of parsed attributes.
func attrTokens(attrs []ast.Attr) []string {
	tokens := make([]string, 0, len(attrs))
	for _, a := range attrs {
		switch a.Name {
		case "class":
			tokens = append(tokens, "."+a.Value)
		case "id":
			tokens = append(tokens, "#"+a.Value)
		default:
			tokens = append(tokens, a.Name+"="+a.Value)
		}
	}
	return tokens
}
