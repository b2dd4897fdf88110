package parser

import (
	"regexp"
	"strings"
)

// Alignment is a table column alignment taken from the separator row.
// Plain dashes default to left.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Style returns the inline CSS declaration for the alignment.
func (a Alignment) Style() string {
	return "text-align: " + a.String() + ";"
}

var tableSepCellRe = regexp.MustCompile(`^:?-+:?$`)

// parseSeparatorRow parses a header separator row (dashes with optional
// alignment colons) into per-column alignments.
func parseSeparatorRow(text string) ([]Alignment, bool) {
	cells := splitBareRow(text)
	if len(cells) == 0 {
		return nil, false
	}

	aligns := make([]Alignment, 0, len(cells))
	for _, cell := range cells {
		if !tableSepCellRe.MatchString(cell) {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case right:
			aligns = append(aligns, AlignRight)
		default:
			aligns = append(aligns, AlignLeft)
		}
	}
	return aligns, true
}

// rowSplitter splits one table line into cells.
type rowSplitter func(string) []string

// splitBareRow splits on every interior bar. Leading and trailing bars
// are optional and trimmed, as is cell whitespace.
func splitBareRow(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = strings.TrimPrefix(text, "|")
	text = strings.TrimSuffix(text, "|")

	cells := strings.Split(text, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

var spacedBarRe = regexp.MustCompile(`\s\|\s`)

// splitStrictRow splits only on interior bars surrounded by spaces, so
// inline expressions like a|b are not misread as column delimiters.
// Leading and trailing bars are still trimmed.
func splitStrictRow(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = strings.TrimPrefix(text, "|")
	text = strings.TrimSuffix(text, "|")

	cells := spacedBarRe.Split(text, -1)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// scanTable tries to consume a table starting at lines[start]. Detection
// requires a preceding blank line (or document start) unless the lenient
// gfm_tables option is set, plus a header row immediately followed by a
// separator row with a matching column count.
//
// Body rows are normalized to the header column count: short rows are
// padded with empty cells, long rows truncated, each with a warning.
func scanTable(lines []Line, start int, blankBefore bool, ctx *Context) (*Table, int, bool) {
	if !blankBefore && !ctx.Options.GFMTables {
		return nil, start, false
	}
	if start+1 >= len(lines) {
		return nil, start, false
	}
	if !strings.Contains(lines[start].Text, "|") {
		return nil, start, false
	}

	aligns, ok := parseSeparatorRow(lines[start+1].Text)
	if !ok {
		return nil, start, false
	}

	split := chooseSplitter(lines[start].Text, len(aligns), ctx)
	header := split(lines[start].Text)
	if len(header) != len(aligns) {
		return nil, start, false
	}

	table := &Table{
		Line:   lines[start].Number,
		Header: header,
		Aligns: aligns,
	}

	next := start + 2
	for next < len(lines) {
		line := lines[next]
		if line.IsBlank() || !strings.Contains(line.Text, "|") {
			break
		}
		cells := normalizeRow(split(line.Text), len(aligns), line.Number, ctx)
		table.Rows = append(table.Rows, TableRow{Line: line.Number, Cells: cells})
		next++
	}

	return table, next, true
}

// chooseSplitter picks the cell splitter for one table. Lenient tables
// split on every bar. Strict tables prefer space-surrounded bars, falling
// back to bare bars when only those yield the separator's column count.
func chooseSplitter(header string, columns int, ctx *Context) rowSplitter {
	if ctx.Options.GFMTables {
		return splitBareRow
	}
	if len(splitStrictRow(header)) == columns {
		return splitStrictRow
	}
	return splitBareRow
}

// normalizeRow pads or truncates a body row to the expected column count,
// warning either way. Rows are never rejected.
func normalizeRow(cells []string, columns, line int, ctx *Context) []string {
	switch {
	case len(cells) < columns:
		ctx.Warnf(line, "Table row has %d columns, expected %d; padding with empty cells",
			len(cells), columns)
		for len(cells) < columns {
			cells = append(cells, "")
		}
	case len(cells) > columns:
		ctx.Warnf(line, "Table row has %d columns, expected %d; extra cells dropped",
			len(cells), columns)
		cells = cells[:columns]
	}
	return cells
}
