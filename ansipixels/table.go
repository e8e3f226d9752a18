package ansipixels

import "strings"

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type BorderStyle int

const (
	BorderNone         BorderStyle = iota // columns separated by spaces only
	BorderColumns                         // │ between columns
	BorderOuterColumns                    // outer box and │ between columns
)

// CreateTableLines formats the rows of table, one Alignment per column, and
// returns the lines and their common screen width. Every row must have
// len(alignment) cells.
func CreateTableLines(alignment []Alignment, columnSpacing int, table [][]string, border BorderStyle) ([]string, int) {
	ncols := len(alignment)
	widths := make([]int, ncols)
	for _, row := range table {
		if len(row) != ncols {
			panic("inconsistent number of columns in table")
		}
		for j, cell := range row {
			widths[j] = max(widths[j], ScreenWidth(cell))
		}
	}
	columns := border != BorderNone
	outer := border == BorderOuterColumns
	pad := ""
	sep := strings.Repeat(" ", columnSpacing)
	if columns {
		pad = sep
		sep = Vertical
	}
	lines := make([]string, 0, len(table)+2)
	if outer {
		lines = append(lines, horizontalBorder(widths, columnSpacing, SquareTopLeft, TopT, SquareTopRight))
	}
	var sb strings.Builder
	for _, row := range table {
		sb.Reset()
		if outer {
			sb.WriteString(Vertical)
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(pad)
			delta := widths[j] - ScreenWidth(cell)
			switch alignment[j] {
			case Left:
				sb.WriteString(cell + strings.Repeat(" ", delta))
			case Center:
				sb.WriteString(strings.Repeat(" ", delta/2) + cell + strings.Repeat(" ", delta-delta/2))
			case Right:
				sb.WriteString(strings.Repeat(" ", delta) + cell)
			}
			sb.WriteString(pad)
		}
		if outer {
			sb.WriteString(Vertical)
		}
		lines = append(lines, sb.String())
	}
	if outer {
		lines = append(lines, horizontalBorder(widths, columnSpacing, SquareBottomLeft, BottomT, SquareBottomRight))
	}
	total := (ncols - 1) * len(sep) // only ascii spaces when there are no column borders
	if columns {
		total = ncols - 1
	}
	for _, w := range widths {
		total += w + 2*len(pad)
	}
	if outer {
		total += 2
	}
	return lines, max(total, 0)
}

func horizontalBorder(widths []int, columnSpacing int, left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for j, w := range widths {
		if j > 0 {
			sb.WriteString(middle)
		}
		sb.WriteString(strings.Repeat(Horizontal, w+2*columnSpacing))
	}
	sb.WriteString(right)
	return sb.String()
}

// WriteTable draws the table horizontally centered starting at line y
// and returns its width.
func (ap *AnsiPixels) WriteTable(y int, alignment []Alignment, columnSpacing int, table [][]string, border BorderStyle) int {
	lines, width := CreateTableLines(alignment, columnSpacing, table, border)
	x := (ap.W - width) / 2
	for i, l := range lines {
		ap.WriteAtStr(x, y+i, l)
	}
	return width
}
