// Package glyphline reconstructs proper visual text lines from raw
// per-glyph coordinates, the way an upstream PDF text layer that lacks
// word grouping exposes them: one record per character (or per short
// run), each carrying its own bounding box and font size.
package glyphline

// Glyph is a single character (or short run) as reported by the page
// access layer, before any line reconstruction.
type Glyph struct {
	Text         string
	X0, X1       float64
	Top, Bottom  float64
	Size         float64
}

// VisualLine is a reconstructed line of text in a page-local (later
// global) Y coordinate system, top-origin.
type VisualLine struct {
	Text        string
	Top, Bottom float64
	X0          float64
}

// LineYTol is the maximum difference, in points, between a glyph's top
// and its row's anchor top for the glyph to belong to that row.
const LineYTol = 5.0

// gapSpaceFraction is the fraction of the following glyph's size that
// an X gap must exceed before a space is inserted between glyphs.
const gapSpaceFraction = 0.25

// smallRowSizeFraction is the fraction of the page's dominant font size
// below which a row is considered a sub/superscript candidate.
const smallRowSizeFraction = 0.8

// Offset shifts every line's Top/Bottom by a page's global Y offset,
// turning page-local coordinates into the document-wide stream spec.md
// calls "global Y".
func Offset(lines []VisualLine, yOffset float64) []VisualLine {
	out := make([]VisualLine, len(lines))
	for i, l := range lines {
		l.Top += yOffset
		l.Bottom += yOffset
		out[i] = l
	}
	return out
}
