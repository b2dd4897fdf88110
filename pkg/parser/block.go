package parser

import "github.com/yaklabco/gomdparse/pkg/ast"

// Block is the closed set of block-level constructs recognized by the
// tree builder. List and BlockQuote own nested Block sequences, so the
// builder output is a tree of typed blocks.
type Block interface {
	// Pos returns the 1-based source line where the block starts.
	Pos() int

	block()
}

// Paragraph is a run of plain text lines.
type Paragraph struct {
	Line     int
	Lines    []string
	IALAttrs []ast.Attr
}

// Heading is an ATX or setext heading with level 1-6.
type Heading struct {
	Line     int
	Level    int
	Text     string
	IALAttrs []ast.Attr
}

// List owns an ordered sequence of items.
type List struct {
	Line    int
	Ordered bool

	// Start is the first item's number for ordered lists.
	Start int

	// Loose is true when any blank line separates items; item content is
	// then wrapped in paragraph nodes.
	Loose bool

	Items    []*ListItem
	IALAttrs []ast.Attr
}

// ListItem owns the nested blocks of one list item.
type ListItem struct {
	Line   int
	Blocks []Block
}

// BlockQuote owns the nested blocks of one quote.
type BlockQuote struct {
	Line     int
	Blocks   []Block
	IALAttrs []ast.Attr
}

// CodeBlock is a fenced or indented code block with verbatim lines.
type CodeBlock struct {
	Line     int
	Fenced   bool
	Language string
	Lines    []string
	IALAttrs []ast.Attr
}

// Table is a detected pipe table: header cells, per-column alignments,
// and body rows.
type Table struct {
	Line     int
	Header   []string
	Aligns   []Alignment
	Rows     []TableRow
	IALAttrs []ast.Attr
}

// TableRow is one body row with its source line.
type TableRow struct {
	Line  int
	Cells []string
}

// HTMLBlock is a verbatim HTML capture: the tag name, every captured line
// between the opening and closing tag lines (exclusive), and any text
// trailing the closing tag on its line.
type HTMLBlock struct {
	Line     int
	Tag      string
	Lines    []string
	Trailing string
}

// HTMLComment is a verbatim comment capture.
type HTMLComment struct {
	Line  int
	Lines []string
}

// ThematicBreak is a horizontal rule line.
type ThematicBreak struct {
	Line int
}

// PendingIAL is an inline attribute list awaiting attachment to the block
// it follows. It is consumed by resolveIALs and never reaches the
// assembler.
type PendingIAL struct {
	Line  int
	Attrs []ast.Attr
}

func (b *Paragraph) Pos() int     { return b.Line }
func (b *Heading) Pos() int       { return b.Line }
func (b *List) Pos() int          { return b.Line }
func (b *BlockQuote) Pos() int    { return b.Line }
func (b *CodeBlock) Pos() int     { return b.Line }
func (b *Table) Pos() int         { return b.Line }
func (b *HTMLBlock) Pos() int     { return b.Line }
func (b *HTMLComment) Pos() int   { return b.Line }
func (b *ThematicBreak) Pos() int { return b.Line }
func (b *PendingIAL) Pos() int    { return b.Line }

func (*Paragraph) block()     {}
func (*Heading) block()       {}
func (*List) block()          {}
func (*BlockQuote) block()    {}
func (*CodeBlock) block()     {}
func (*Table) block()         {}
func (*HTMLBlock) block()     {}
func (*HTMLComment) block()   {}
func (*ThematicBreak) block() {}
func (*PendingIAL) block()    {}

// mergeIAL appends resolved IAL attributes to an attachable block.
// Returns false for block kinds that cannot carry attributes.
func mergeIAL(b Block, attrs []ast.Attr) bool {
	switch t := b.(type) {
	case *Paragraph:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	case *Heading:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	case *List:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	case *BlockQuote:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	case *CodeBlock:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	case *Table:
		t.IALAttrs = append(t.IALAttrs, attrs...)
	default:
		return false
	}
	return true
}
