package parser

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/langdetect"
)

// AssembleBlock materializes the AST for one block, invoking the inline
// parser where the block carries text. Verbatim and comment blocks bypass
// inline parsing entirely. The result is a slice because an HTML block
// can spill text trailing its closing tag into a sibling leaf.
func AssembleBlock(b Block, ctx *Context) []*ast.Node {
	switch t := b.(type) {
	case *Paragraph:
		return []*ast.Node{assembleParagraph(t, ctx)}
	case *Heading:
		node := ast.Element("h"+strconv.Itoa(t.Level), ParseInline(t.Text, t.Line, ctx)...)
		node.MergeAttrs(t.IALAttrs)
		return []*ast.Node{node}
	case *List:
		return []*ast.Node{assembleList(t, ctx)}
	case *BlockQuote:
		node := ast.Element("blockquote", AssembleAll(t.Blocks, ctx)...)
		node.MergeAttrs(t.IALAttrs)
		return []*ast.Node{node}
	case *CodeBlock:
		return []*ast.Node{assembleCode(t, ctx)}
	case *Table:
		return []*ast.Node{assembleTable(t, ctx)}
	case *HTMLBlock:
		return assembleHTML(t)
	case *HTMLComment:
		node := ast.Element("comment", textLeaves(t.Lines)...)
		node.Meta.Comment = true
		return []*ast.Node{node}
	case *ThematicBreak:
		return []*ast.Node{ast.Element("hr")}
	default:
		// PendingIAL is consumed by resolveIALs and never reaches here.
		return nil
	}
}

// AssembleAll assembles a block sequence in order.
func AssembleAll(blocks []Block, ctx *Context) []*ast.Node {
	var nodes []*ast.Node
	for _, b := range blocks {
		nodes = append(nodes, AssembleBlock(b, ctx)...)
	}
	return nodes
}

func assembleParagraph(p *Paragraph, ctx *Context) *ast.Node {
	node := ast.Element("p", ParseInline(strings.Join(p.Lines, "\n"), p.Line, ctx)...)
	node.MergeAttrs(p.IALAttrs)
	return node
}

func assembleList(list *List, ctx *Context) *ast.Node {
	name := "ul"
	if list.Ordered {
		name = "ol"
	}
	node := ast.Element(name)
	if list.Ordered && list.Start != 1 {
		node.SetAttr("start", strconv.Itoa(list.Start))
	}

	for _, item := range list.Items {
		li := ast.Element("li")
		if list.Loose {
			li.AppendChildren(AssembleAll(item.Blocks, ctx)...)
		} else {
			// Tight lists inline item paragraphs directly.
			for _, b := range item.Blocks {
				if para, ok := b.(*Paragraph); ok {
					li.AppendChildren(ParseInline(strings.Join(para.Lines, "\n"), para.Line, ctx)...)
					continue
				}
				li.AppendChildren(AssembleBlock(b, ctx)...)
			}
		}
		node.AppendChild(li)
	}

	node.MergeAttrs(list.IALAttrs)
	return node
}

func assembleCode(cb *CodeBlock, ctx *Context) *ast.Node {
	content := strings.Join(cb.Lines, "\n")
	if content != "" {
		content += "\n"
	}

	lang := cb.Language
	if lang == "" && cb.Fenced && ctx.Options.DetectCodeLanguage {
		lang = langdetect.Detect([]byte(content))
	}

	code := ast.Element("code", ast.Text(content))
	if class := composeCodeClass(lang, ctx.Options.CodeClassPrefix); class != "" {
		code.SetAttr("class", class)
	}

	pre := ast.Element("pre", code)
	pre.MergeAttrs(cb.IALAttrs)
	return pre
}

// composeCodeClass builds the class value for a code block: the bare
// language name followed by prefix+language for each configured prefix
// token, space-joined in configured order.
func composeCodeClass(language, prefixes string) string {
	if language == "" {
		return ""
	}
	parts := []string{language}
	for _, prefix := range strings.Fields(prefixes) {
		parts = append(parts, prefix+language)
	}
	return strings.Join(parts, " ")
}

func assembleTable(t *Table, ctx *Context) *ast.Node {
	table := ast.Element("table")

	headRow := ast.Element("tr")
	for i, cell := range t.Header {
		th := ast.Element("th", ParseInline(cell, t.Line, ctx)...)
		th.SetAttr("style", t.Aligns[i].Style())
		headRow.AppendChild(th)
	}
	table.AppendChild(ast.Element("thead", headRow))

	if len(t.Rows) > 0 {
		tbody := ast.Element("tbody")
		for _, row := range t.Rows {
			tr := ast.Element("tr")
			for i, cell := range row.Cells {
				td := ast.Element("td", ParseInline(cell, row.Line, ctx)...)
				td.SetAttr("style", t.Aligns[i].Style())
				tr.AppendChild(td)
			}
			tbody.AppendChild(tr)
		}
		table.AppendChild(tbody)
	}

	table.MergeAttrs(t.IALAttrs)
	return table
}

func assembleHTML(hb *HTMLBlock) []*ast.Node {
	node := ast.Element(hb.Tag, textLeaves(hb.Lines)...)
	node.Meta.Verbatim = true

	nodes := []*ast.Node{node}
	if hb.Trailing != "" {
		nodes = append(nodes, ast.Text(hb.Trailing))
	}
	return nodes
}

func textLeaves(lines []string) []*ast.Node {
	leaves := make([]*ast.Node, 0, len(lines))
	for _, l := range lines {
		leaves = append(leaves, ast.Text(l))
	}
	return leaves
}
