package mcqparse

import (
	"testing"

	"github.com/jeemock/mcqextract/internal/glyphline"
)

func vl(text string, top float64) glyphline.VisualLine {
	return glyphline.VisualLine{Text: text, Top: top, Bottom: top + 12, X0: 10}
}

func TestParseBasicQuestionWithOptions(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.1 What is the SI unit of force?", 0),
		vl("(A) Newton", 20),
		vl("(B) Joule", 40),
		vl("(C) Watt", 60),
		vl("(D) Pascal", 80),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.Num != "1" || r.Question != "What is the SI unit of force?" {
		t.Errorf("unexpected header: %+v", r)
	}
	if r.OptionA != "Newton" || r.OptionB != "Joule" || r.OptionC != "Watt" || r.OptionD != "Pascal" {
		t.Errorf("unexpected options: %+v", r)
	}
}

func TestParseFinalizesOnNewHeaderEvenIncomplete(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.1 First question", 0),
		vl("(A) only option", 20),
		vl("Q.2 Second question", 40),
		vl("(A) alpha", 60),
		vl("(B) beta", 80),
	}
	got := Parse(lines)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Num != "1" || got[0].OptionA != "only option" || got[0].OptionB != "" {
		t.Errorf("first record unexpected: %+v", got[0])
	}
	if got[1].Num != "2" || got[1].OptionA != "alpha" || got[1].OptionB != "beta" {
		t.Errorf("second record unexpected: %+v", got[1])
	}
}

func TestParseOCRSpacedHeaderOnlyInIdleState(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("1 1 2. A particle moves", 0),
		vl("(A) uniformly", 20),
		vl("2 3. not a new question", 40),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1 (spaced digits inside an open question must not start a new record)", len(got))
	}
	if got[0].Num != "112" {
		t.Errorf("got Num %q, want 112", got[0].Num)
	}
	want := "uniformly 2 3. not a new question"
	if got[0].OptionA != want {
		t.Errorf("OptionA = %q, want %q", got[0].OptionA, want)
	}
}

func TestParseRomanNumeralHeader(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("I. First statement question", 0),
		vl("(A) true", 20),
		vl("(B) false", 40),
		vl("II. Second statement question", 60),
		vl("(A) true", 80),
		vl("(B) false", 100),
	}
	got := Parse(lines)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Num != "I" || got[1].Num != "II" {
		t.Errorf("unexpected numerals: %q %q", got[0].Num, got[1].Num)
	}
}

func TestParseBulletOptionsFillInOrder(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.5 Pick the correct statement", 0),
		vl("- first", 20),
		vl("- second", 40),
		vl("- third", 60),
		vl("- fourth", 80),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.OptionA != "first" || r.OptionB != "second" || r.OptionC != "third" || r.OptionD != "fourth" {
		t.Errorf("unexpected bullet assignment: %+v", r)
	}
}

func TestParseStopsAtAnswerKey(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.1 Only question", 0),
		vl("(A) x", 20),
		vl("ANSWERS AND SOLUTIONS", 40),
		vl("Q.2 Should never appear", 60),
		vl("(A) y", 80),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1 (everything after the stop marker must be discarded)", len(got))
	}
}

func TestParseOptionContinuationMerges(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.1 Evaluate the expression", 0),
		vl("(A) first part", 20),
		vl("continued text", 40),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].OptionA != "first part continued text" {
		t.Errorf("OptionA = %q, want merged continuation", got[0].OptionA)
	}
}

func TestParseMultiLineQuestionBody(t *testing.T) {
	lines := []glyphline.VisualLine{
		vl("Q.1 A block of mass m", 0),
		vl("slides down a frictionless incline", 20),
		vl("(A) g sin theta", 40),
		vl("(B) g cos theta", 60),
	}
	got := Parse(lines)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	want := "A block of mass m slides down a frictionless incline"
	if got[0].Question != want {
		t.Errorf("Question = %q, want %q", got[0].Question, want)
	}
}
