package glyphline

import (
	"math"
	"sort"
	"strings"
)

// Reconstruct groups a single page's glyphs into rows by Y proximity,
// rebuilds each row's text from left to right re-inserting spaces from
// X gaps, normalises symbol-font code points, and folds rows that sit
// well below the page's dominant font size into the preceding row as
// sub/superscripts. The returned lines are in page-local coordinates;
// callers apply Offset to place them in the document's global Y stream.
func Reconstruct(glyphs []Glyph) []VisualLine {
	if len(glyphs) == 0 {
		return nil
	}

	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})

	dominant := dominantSize(sorted)
	rows := groupRows(sorted)

	var lines []VisualLine
	for _, row := range rows {
		text, x0, top, bottom := reconstructRow(row)
		if strings.TrimSpace(text) == "" {
			continue
		}

		avg := averageSize(row)
		if len(lines) > 0 && avg > 0 && dominant > 0 && avg < smallRowSizeFraction*dominant {
			foldIntoPrevious(&lines[len(lines)-1], text, top, bottom)
			continue
		}

		lines = append(lines, VisualLine{Text: text, Top: top, Bottom: bottom, X0: x0})
	}

	return lines
}

// groupRows partitions Y-sorted glyphs into rows: a new row starts when
// a glyph's Top differs from its row's anchor (the row's first glyph's
// Top) by more than LineYTol.
func groupRows(sorted []Glyph) [][]Glyph {
	var rows [][]Glyph
	var cur []Glyph
	var anchor float64

	for _, g := range sorted {
		if len(cur) == 0 {
			cur = []Glyph{g}
			anchor = g.Top
			continue
		}
		if math.Abs(g.Top-anchor) > LineYTol {
			rows = append(rows, cur)
			cur = []Glyph{g}
			anchor = g.Top
			continue
		}
		cur = append(cur, g)
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}

// reconstructRow sorts a row by X0 and emits its text left to right,
// inserting a single space wherever the gap to the previous glyph
// exceeds a quarter of the current glyph's size.
func reconstructRow(row []Glyph) (text string, x0, top, bottom float64) {
	sorted := make([]Glyph, len(row))
	copy(sorted, row)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X0 < sorted[j].X0 })

	top = sorted[0].Top
	bottom = sorted[0].Bottom
	x0 = sorted[0].X0

	var b strings.Builder
	for i, g := range sorted {
		if g.Top < top {
			top = g.Top
		}
		if g.Bottom > bottom {
			bottom = g.Bottom
		}
		if i > 0 {
			gap := g.X0 - sorted[i-1].X1
			if gap > gapSpaceFraction*g.Size {
				b.WriteByte(' ')
			}
		}
		b.WriteString(normalizeSymbols(g.Text))
	}

	return strings.TrimSpace(b.String()), x0, top, bottom
}

// dominantSize is the median of the page's positive glyph sizes.
func dominantSize(glyphs []Glyph) float64 {
	sizes := make([]float64, 0, len(glyphs))
	for _, g := range glyphs {
		if g.Size > 0 {
			sizes = append(sizes, g.Size)
		}
	}
	if len(sizes) == 0 {
		return 0
	}
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}

// averageSize is the mean of a row's positive glyph sizes, or 0 if the
// row carries no usable size information.
func averageSize(row []Glyph) float64 {
	var sum float64
	var n int
	for _, g := range row {
		if g.Size > 0 {
			sum += g.Size
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// foldIntoPrevious appends a small row's text onto the preceding kept
// line as super/subscript digits and extends that line's Bottom.
func foldIntoPrevious(prev *VisualLine, text string, top, bottom float64) {
	prevCentre := (prev.Top + prev.Bottom) / 2
	rowCentre := (top + bottom) / 2
	superscript := rowCentre < prevCentre

	prev.Text += foldDigits(text, superscript)
	if bottom > prev.Bottom {
		prev.Bottom = bottom
	}
}
