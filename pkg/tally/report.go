package tally

import (
	"fmt"
	"strings"
)

// Preview limits observed in the sales walkthrough.
const (
	PreviewSmall   = 3
	PreviewMedium  = 5
	PreviewDefault = 20
)

// RenderTable renders the first limit rows as a fixed-width grid with a
// header row and a rule line. limit <= 0 renders every row. Rendering
// has no side effects; the caller decides where the string goes.
func RenderTable(t *Table, limit int) string {
	headers := make([]string, len(t.Schema))
	for i, col := range t.Schema {
		headers[i] = col.Name
	}
	return renderGrid(headers, previewCells(t, limit))
}

// RenderResult renders the first limit groups of an aggregation as a
// two-column grid. limit <= 0 renders every group.
func RenderResult(r AggregationResult, limit int) string {
	groups := r
	if limit > 0 && limit < len(groups) {
		groups = groups[:limit]
	}

	cells := make([][]string, len(groups))
	for i, g := range groups {
		cells[i] = []string{g.Key, g.Total.String()}
	}
	return renderGrid([]string{"GROUP", "TOTAL"}, cells)
}

func previewCells(t *Table, limit int) [][]string {
	rows := t.rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for c, v := range row {
			cells[i][c] = v.String()
		}
	}
	return cells
}

// renderGrid pads each column to its widest cell, two spaces between
// columns, with a ─ rule under the header. The last column is not
// padded so lines carry no trailing whitespace.
func renderGrid(headers []string, cells [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)

	var b strings.Builder
	writeGridRow(&b, headers, widths)
	b.WriteString(strings.Repeat("─", total))
	b.WriteByte('\n')
	for _, row := range cells {
		writeGridRow(&b, row, widths)
	}
	return b.String()
}

func writeGridRow(b *strings.Builder, row []string, widths []int) {
	for c, cell := range row {
		if c == len(row)-1 {
			b.WriteString(cell)
		} else {
			fmt.Fprintf(b, "%-*s  ", widths[c], cell)
		}
	}
	b.WriteByte('\n')
}
