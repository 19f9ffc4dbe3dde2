package glyphline

import "testing"

func TestReconstructInsertsSpacesFromGaps(t *testing.T) {
	// "Hi" typeset as two glyphs with a wide gap before a second word.
	glyphs := []Glyph{
		{Text: "H", X0: 0, X1: 6, Top: 100, Bottom: 110, Size: 10},
		{Text: "i", X0: 6, X1: 10, Top: 100, Bottom: 110, Size: 10},
		{Text: "t", X0: 20, X1: 25, Top: 100, Bottom: 110, Size: 10},
		{Text: "h", X0: 25, X1: 31, Top: 100, Bottom: 110, Size: 10},
		{Text: "e", X0: 31, X1: 36, Top: 100, Bottom: 110, Size: 10},
		{Text: "r", X0: 36, X1: 41, Top: 100, Bottom: 110, Size: 10},
		{Text: "e", X0: 41, X1: 46, Top: 100, Bottom: 110, Size: 10},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got, want := lines[0].Text, "Hi there"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestReconstructSplitsRowsByYTolerance(t *testing.T) {
	glyphs := []Glyph{
		{Text: "A", X0: 0, X1: 6, Top: 100, Bottom: 110, Size: 10},
		{Text: "B", X0: 0, X1: 6, Top: 120, Bottom: 130, Size: 10},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "A" || lines[1].Text != "B" {
		t.Errorf("unexpected line texts: %q, %q", lines[0].Text, lines[1].Text)
	}
}

func TestReconstructNormalisesSymbolFont(t *testing.T) {
	glyphs := []Glyph{
		{Text: "", X0: 0, X1: 6, Top: 10, Bottom: 20, Size: 10},
		{Text: "4", X0: 6, X1: 12, Top: 10, Bottom: 20, Size: 10},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got, want := lines[0].Text, "√4"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestReconstructFoldsSuperscriptAboveBaseline(t *testing.T) {
	// A small row folds as superscript when its vertical centre sits
	// above the *already-kept* preceding row's centre. Since rows are
	// walked in ascending Top order, a row that starts a new kept line
	// necessarily has a centre at or below that line's own Top, so a
	// tall preceding baseline (extending well past the small row's
	// Bottom) is what actually produces the above-centre case here.
	glyphs := []Glyph{
		{Text: "v", X0: 0, X1: 6, Top: 100, Bottom: 130, Size: 10},
		{Text: "2", X0: 6, X1: 10, Top: 106, Bottom: 112, Size: 6},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 folded line, got %d", len(lines))
	}
	if got, want := lines[0].Text, "v²"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestReconstructFoldsSubscriptBelowBaseline(t *testing.T) {
	// baseline "m" at top=100..110 (centre 105); small "1" below it,
	// centred at top=108..116 (centre 112) -> subscript.
	glyphs := []Glyph{
		{Text: "m", X0: 0, X1: 6, Top: 100, Bottom: 110, Size: 10},
		{Text: "1", X0: 6, X1: 10, Top: 108, Bottom: 116, Size: 6},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 folded line, got %d", len(lines))
	}
	if got, want := lines[0].Text, "m₁"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestReconstructFoldsMultipleSmallRowsOntoSameLine(t *testing.T) {
	// A baseline row followed by two consecutive small rows (e.g. a
	// two-digit subscript split across Y by the upstream layer) both
	// fold onto the same kept line, in order.
	glyphs := []Glyph{
		{Text: "x", X0: 0, X1: 6, Top: 100, Bottom: 110, Size: 12},
		{Text: "y", X0: 6, X1: 12, Top: 100, Bottom: 110, Size: 12},
		{Text: "1", X0: 12, X1: 16, Top: 112, Bottom: 118, Size: 6},
		{Text: "2", X0: 16, X1: 20, Top: 119, Bottom: 125, Size: 6},
	}

	lines := Reconstruct(glyphs)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got, want := lines[0].Text, "xy₁₂"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestReconstructEmptyInput(t *testing.T) {
	if lines := Reconstruct(nil); lines != nil {
		t.Errorf("expected nil for empty input, got %v", lines)
	}
}

func TestOffsetShiftsCoordinates(t *testing.T) {
	lines := []VisualLine{{Text: "x", Top: 10, Bottom: 20, X0: 5}}
	offset := Offset(lines, 100)
	if offset[0].Top != 110 || offset[0].Bottom != 120 {
		t.Errorf("unexpected offset line: %+v", offset[0])
	}
	if lines[0].Top != 10 {
		t.Errorf("Offset mutated the input slice")
	}
}
