package parser_test

import (
	"testing"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

func assemble(t *testing.T, input string, mutate func(*config.Options)) []*ast.Node {
	t.Helper()
	opts := config.NewOptions()
	if mutate != nil {
		mutate(opts)
	}
	ctx := parser.NewContext(opts)
	blocks := parser.ScanDocument(input, ctx)
	return parser.AssembleAll(blocks, ctx)
}

func TestAssemble_Paragraph(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "plain text\n", nil)

	if len(nodes) != 1 || nodes[0].Name != "p" {
		t.Fatalf("nodes = %#v, want single p", nodes)
	}
	if nodes[0].InnerText() != "plain text" {
		t.Errorf("text = %q", nodes[0].InnerText())
	}
}

func TestAssemble_HeadingLevels(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "# One\n\n### Three\n", nil)

	if nodes[0].Name != "h1" || nodes[1].Name != "h3" {
		t.Errorf("heading tags = %q, %q", nodes[0].Name, nodes[1].Name)
	}
}

func TestAssemble_CodeClassComposition(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "```elixir\ndefmodule X do\n```\n", func(o *config.Options) {
		o.CodeClassPrefix = "lang- language-"
	})

	pre := nodes[0]
	if pre.Name != "pre" || len(pre.Children) != 1 {
		t.Fatalf("nodes = %#v, want pre > code", nodes)
	}
	code := pre.Children[0]
	class, _ := code.Attr("class")
	if class != "elixir lang-elixir language-elixir" {
		t.Errorf("class = %q, want %q", class, "elixir lang-elixir language-elixir")
	}
}

func TestAssemble_CodeWithoutLanguageHasNoClass(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "```\nsome code\n```\n", nil)

	code := nodes[0].Children[0]
	if _, ok := code.Attr("class"); ok {
		t.Error("unlabeled code block should carry no class")
	}
}

func TestAssemble_CodeContentKeepsTrailingNewline(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "```\nline one\nline two\n```\n", nil)

	code := nodes[0].Children[0]
	if code.InnerText() != "line one\nline two\n" {
		t.Errorf("code content = %q", code.InnerText())
	}
}

func TestAssemble_TightListInlinesText(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "- one\n- two\n", nil)

	ul := nodes[0]
	if ul.Name != "ul" || len(ul.Children) != 2 {
		t.Fatalf("nodes = %#v, want ul with two items", nodes)
	}
	li := ul.Children[0]
	if len(li.Children) != 1 || !li.Children[0].IsText() {
		t.Errorf("tight item = %#v, want bare text child", li)
	}
}

func TestAssemble_LooseListWrapsParagraphs(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "- one\n\n- two\n", nil)

	li := nodes[0].Children[0]
	if len(li.Children) != 1 || li.Children[0].Name != "p" {
		t.Errorf("loose item = %#v, want paragraph wrapper", li)
	}
}

func TestAssemble_OrderedListStartAttr(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "5. five\n6. six\n", nil)

	ol := nodes[0]
	if ol.Name != "ol" {
		t.Fatalf("nodes = %#v, want ol", nodes)
	}
	start, ok := ol.Attr("start")
	if !ok || start != "5" {
		t.Errorf("start = %q, want 5", start)
	}

	fromOne := assemble(t, "1. one\n", nil)
	if _, ok := fromOne[0].Attr("start"); ok {
		t.Error("start attribute should be omitted for lists starting at 1")
	}
}

func TestAssemble_TableCellStyles(t *testing.T) {
	t.Parallel()

	input := "a | b\n---: | :---:\n1 | 2\n"
	nodes := assemble(t, input, nil)

	table := nodes[0]
	if table.Name != "table" {
		t.Fatalf("nodes = %#v, want table", nodes)
	}

	ths := ast.FindByName(table, "th")
	if len(ths) != 2 {
		t.Fatalf("found %d th nodes, want 2", len(ths))
	}
	style, _ := ths[0].Attr("style")
	if style != "text-align: right;" {
		t.Errorf("th style = %q", style)
	}

	tds := ast.FindByName(table, "td")
	style, _ = tds[1].Attr("style")
	if style != "text-align: center;" {
		t.Errorf("td style = %q", style)
	}
}

func TestAssemble_IALMergesIntoNode(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "text\n{: .red #para}\n", nil)

	p := nodes[0]
	class, _ := p.Attr("class")
	id, _ := p.Attr("id")
	if class != "red" || id != "para" {
		t.Errorf("attrs = class %q id %q", class, id)
	}
}

func TestAssemble_IALClassConcatenatesWithGenerated(t *testing.T) {
	t.Parallel()

	// The code block generates class "go"; the IAL class is appended
	// after it. Non-class attributes from the IAL override instead.
	nodes := assemble(t, "```go\nx\n```\n{: .highlight}\n", nil)

	pre := nodes[0]
	class, ok := pre.Attr("class")
	if !ok || class != "highlight" {
		t.Errorf("pre class = %q, want highlight", class)
	}
	code := pre.Children[0]
	codeClass, _ := code.Attr("class")
	if codeClass != "go" {
		t.Errorf("code class = %q, want go", codeClass)
	}
}

func TestAssemble_HTMLBlockSpillsTrailingText(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "<div><span>\nsome</span><text>\n</div>more text\n", nil)

	if len(nodes) != 2 {
		t.Fatalf("nodes = %#v, want verbatim div + trailing text", nodes)
	}
	div := nodes[0]
	if div.Name != "div" || !div.Meta.Verbatim {
		t.Errorf("div = %#v, want verbatim element", div)
	}
	if len(div.Children) != 2 || div.Children[0].Literal != "<span>" {
		t.Errorf("div children = %#v", div.Children)
	}
	if !nodes[1].IsText() || nodes[1].Literal != "more text" {
		t.Errorf("trailing node = %#v", nodes[1])
	}
}

func TestAssemble_CommentNode(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "<!-- note -->\n", nil)

	comment := nodes[0]
	if comment.Name != "comment" || !comment.Meta.Comment {
		t.Fatalf("comment = %#v", comment)
	}
	if len(comment.Children) != 1 || comment.Children[0].Literal != " note " {
		t.Errorf("comment children = %#v", comment.Children)
	}
}

func TestAssemble_ThematicBreak(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "---\n", nil)
	if nodes[0].Name != "hr" {
		t.Errorf("nodes = %#v, want hr", nodes)
	}
}

func TestAssemble_BlockQuote(t *testing.T) {
	t.Parallel()

	nodes := assemble(t, "> quoted\n", nil)

	bq := nodes[0]
	if bq.Name != "blockquote" || len(bq.Children) != 1 || bq.Children[0].Name != "p" {
		t.Errorf("blockquote = %#v", bq)
	}
}
