package parser_test

import (
	"testing"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/diag"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

func TestIAL_AttachesToParagraph(t *testing.T) {
	t.Parallel()

	blocks, ctx := scan(t, "some text\n{: .red}\n")

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1: %#v", len(blocks), blocks)
	}
	p := blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 1 || p.IALAttrs[0] != (ast.Attr{Name: "class", Value: "red"}) {
		t.Errorf("IALAttrs = %v, want class=red", p.IALAttrs)
	}
	if len(ctx.Messages()) != 0 {
		t.Errorf("unexpected messages: %v", ctx.Messages())
	}
}

func TestIAL_AttachesToHeading(t *testing.T) {
	t.Parallel()

	blocks, _ := scan(t, "# Title\n{: #main .big}\n")

	h := blocks[0].(*parser.Heading)
	want := []ast.Attr{
		{Name: "id", Value: "main"},
		{Name: "class", Value: "big"},
	}
	if len(h.IALAttrs) != len(want) {
		t.Fatalf("IALAttrs = %v, want %v", h.IALAttrs, want)
	}
	for i, a := range want {
		if h.IALAttrs[i] != a {
			t.Errorf("IALAttrs[%d] = %v, want %v", i, h.IALAttrs[i], a)
		}
	}
}

func TestIAL_NameValueTokens(t *testing.T) {
	t.Parallel()

	blocks, ctx := scan(t, "text\n{: title=\"a b\" data-x=y}\n")

	p := blocks[0].(*parser.Paragraph)
	want := []ast.Attr{
		{Name: "title", Value: "a b"},
		{Name: "data-x", Value: "y"},
	}
	if len(p.IALAttrs) != len(want) {
		t.Fatalf("IALAttrs = %v, want %v", p.IALAttrs, want)
	}
	for i, a := range want {
		if p.IALAttrs[i] != a {
			t.Errorf("IALAttrs[%d] = %v, want %v", i, p.IALAttrs[i], a)
		}
	}
	if len(ctx.Messages()) != 0 {
		t.Errorf("unexpected messages: %v", ctx.Messages())
	}
}

func TestIAL_IllegalTokenWarning(t *testing.T) {
	t.Parallel()

	blocks, ctx := scan(t, "text\n{:hello}\n")

	p := blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 0 {
		t.Errorf("IALAttrs = %v, want none", p.IALAttrs)
	}

	messages := ctx.Messages()
	if len(messages) != 1 {
		t.Fatalf("messages = %v, want exactly one", messages)
	}
	want := `Illegal attributes ["hello"] ignored in IAL`
	if messages[0].Text != want {
		t.Errorf("warning = %q, want %q", messages[0].Text, want)
	}
	if messages[0].Line != 2 {
		t.Errorf("warning line = %d, want 2", messages[0].Line)
	}
	if ctx.Status() != diag.StatusError {
		t.Errorf("status = %v, want error", ctx.Status())
	}
}

func TestIAL_PartiallyValidStillApplies(t *testing.T) {
	t.Parallel()

	blocks, ctx := scan(t, "text\n{: bogus .keep}\n")

	p := blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 1 || p.IALAttrs[0].Value != "keep" {
		t.Errorf("IALAttrs = %v, want the valid class kept", p.IALAttrs)
	}
	messages := ctx.Messages()
	if len(messages) != 1 {
		t.Fatalf("messages = %v", messages)
	}
	if messages[0].Text != `Illegal attributes ["bogus"] ignored in IAL` {
		t.Errorf("warning = %q", messages[0].Text)
	}
}

func TestIAL_StandaloneIsPlainText(t *testing.T) {
	t.Parallel()

	blocks, ctx := scan(t, "{: .red}\n")

	p, ok := blocks[0].(*parser.Paragraph)
	if !ok {
		t.Fatalf("blocks[0] is %T, want *Paragraph", blocks[0])
	}
	if p.Lines[0] != "{: .red}" {
		t.Errorf("paragraph text = %q", p.Lines[0])
	}
	if len(ctx.Messages()) != 0 {
		t.Errorf("unexpected messages: %v", ctx.Messages())
	}
}

func TestIAL_BlankLineBreaksAttachment(t *testing.T) {
	t.Parallel()

	blocks, _ := scan(t, "text\n\n{: .red}\n")

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	p := blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 0 {
		t.Errorf("IAL across a blank line should not attach: %v", p.IALAttrs)
	}
	if _, ok := blocks[1].(*parser.Paragraph); !ok {
		t.Errorf("blocks[1] is %T, want literal *Paragraph", blocks[1])
	}
}

func TestIAL_EscapedLineStaysLiteral(t *testing.T) {
	t.Parallel()

	blocks, _ := scan(t, "text\n\\{: .red}\n")

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	p := blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 0 {
		t.Errorf("escaped IAL should not attach: %v", p.IALAttrs)
	}
	if len(p.Lines) != 2 || p.Lines[1] != "\\{: .red}" {
		t.Errorf("paragraph lines = %v", p.Lines)
	}
}

func TestIAL_AttachesToCodeBlock(t *testing.T) {
	t.Parallel()

	blocks, _ := scan(t, "```\ncode\n```\n{: .numbered}\n")

	cb := blocks[0].(*parser.CodeBlock)
	if len(cb.IALAttrs) != 1 || cb.IALAttrs[0].Value != "numbered" {
		t.Errorf("IALAttrs = %v, want class=numbered", cb.IALAttrs)
	}
}

func TestIAL_InsideBlockQuote(t *testing.T) {
	t.Parallel()

	blocks, _ := scan(t, "> quoted\n> {: .pull}\n")

	quote := blocks[0].(*parser.BlockQuote)
	if len(quote.Blocks) != 1 {
		t.Fatalf("quote has %d blocks: %#v", len(quote.Blocks), quote.Blocks)
	}
	p := quote.Blocks[0].(*parser.Paragraph)
	if len(p.IALAttrs) != 1 || p.IALAttrs[0].Value != "pull" {
		t.Errorf("IALAttrs = %v, want class=pull", p.IALAttrs)
	}
}
