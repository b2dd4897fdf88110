// Package render serializes the gomdparse AST to HTML. Text leaves are
// HTML-escaped by default; nodes flagged verbatim emit their children
// raw and unescaped. No sanitization is performed: feeding untrusted
// Markdown into render and publishing the result is the caller's
// responsibility to guard.
package render

import (
	"html"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// voidElements render self-closing with no child content.
var voidElements = map[string]bool{
	"hr":  true,
	"br":  true,
	"img": true,
}

// containerElements place each child on its own line.
var containerElements = map[string]bool{
	"ul":         true,
	"ol":         true,
	"blockquote": true,
	"table":      true,
	"thead":      true,
	"tbody":      true,
	"tr":         true,
}

// HTML renders a document-level node sequence, one block per line.
func HTML(nodes []*ast.Node) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeNode(&b, n)
	}
	if len(nodes) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *ast.Node) {
	if n.IsText() {
		if n.Meta.Verbatim {
			b.WriteString(n.Literal)
		} else {
			b.WriteString(html.EscapeString(n.Literal))
		}
		return
	}

	if n.Meta.Comment {
		writeComment(b, n)
		return
	}
	if n.Meta.Verbatim {
		writeVerbatim(b, n)
		return
	}

	if voidElements[n.Name] {
		b.WriteByte('<')
		b.WriteString(n.Name)
		writeAttrs(b, n.Attrs)
		b.WriteString(" />")
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Name)
	writeAttrs(b, n.Attrs)
	b.WriteByte('>')

	if containerElements[n.Name] {
		b.WriteByte('\n')
		for _, c := range n.Children {
			writeNode(b, c)
			b.WriteByte('\n')
		}
	} else {
		for _, c := range n.Children {
			writeNode(b, c)
		}
	}

	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// writeVerbatim reproduces a captured HTML block: the node's children
// are raw source lines emitted unescaped between the original tags.
func writeVerbatim(b *strings.Builder, n *ast.Node) {
	if len(n.Children) == 0 {
		b.WriteByte('<')
		b.WriteString(n.Name)
		writeAttrs(b, n.Attrs)
		b.WriteString(" />")
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Name)
	writeAttrs(b, n.Attrs)
	b.WriteByte('>')
	b.WriteByte('\n')
	for _, c := range n.Children {
		b.WriteString(c.Literal)
		b.WriteByte('\n')
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

func writeComment(b *strings.Builder, n *ast.Node) {
	b.WriteString("<!--")
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Literal)
	}
	b.WriteString("-->")
}

func writeAttrs(b *strings.Builder, attrs []ast.Attr) {
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
}
