package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderTable pre-renders every cell to plain text (tables never
// wrap), measures its display width, then lays out the separator
// and body rows according to each column's alignment. This mirrors
// the teacher's own two-pass table renderer: first collect widths
// by rendering every cell once, then render again against the
// final column widths.
func renderTable(ctx *genContext, t *Table) PrintItems {
	var items PrintItems

	var headerCells [][]string
	if t.Header != nil {
		for _, c := range t.Header.Cells {
			headerCells = append(headerCells, []string{renderCell(ctx, c)})
		}
	}
	rowCells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		for _, c := range row.Cells {
			rowCells[i] = append(rowCells[i], renderCell(ctx, c))
		}
	}

	colCount := len(t.ColumnAlignment)
	widths := make([]int, colCount)
	for i, c := range headerCells {
		if i < colCount {
			widths[i] = maxInt(widths[i], runewidth.StringWidth(c[0]))
		}
	}
	for _, row := range rowCells {
		for i, c := range row {
			if i < colCount {
				widths[i] = maxInt(widths[i], runewidth.StringWidth(c))
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	writeRow := func(cells []string) {
		items.Str("|")
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			items.Str(" ")
			items.Str(padCell(cell, widths[i], t.ColumnAlignment[i]))
			items.Str(" |")
		}
	}

	if t.Header != nil {
		headerRow := make([]string, colCount)
		for i, c := range headerCells {
			if i < colCount {
				headerRow[i] = c[0]
			}
		}
		writeRow(headerRow)
		items.NewLine()
		items.Str("|")
		for i := 0; i < colCount; i++ {
			items.Str(" ")
			items.Str(alignmentMarker(t.ColumnAlignment[i], widths[i]))
			items.Str(" |")
		}
	}
	for i, row := range rowCells {
		if t.Header != nil || i > 0 {
			items.NewLine()
		}
		writeRow(row)
	}
	return items
}

func renderCell(ctx *genContext, cell *TableCell) string {
	items := genInlineChildren(ctx, cell.Children)
	return Print(items, PrintOptions{MaxWidth: 0, NewLine: "\n"})
}

func padCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad < 0 {
		pad = 0
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func alignmentMarker(align Alignment, width int) string {
	switch align {
	case AlignLeft:
		return ":" + strings.Repeat("-", width-1)
	case AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	case AlignRight:
		return strings.Repeat("-", width-1) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
