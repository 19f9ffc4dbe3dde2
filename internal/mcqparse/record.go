// Package mcqparse turns an ordered stream of visual lines into MCQ
// records via a small line-by-line state machine, the same shape as the
// teacher's lookup-application loop in ot/ot_shaper.go: walk a buffer
// once, mutate accumulator state, never look back past the current
// item.
package mcqparse

// Record is one extracted question, carrying both the fields destined
// for persistence and the bookkeeping (Num, YStart, YEnd, OptY) later
// stages (attach, screenshot) need and the store layer
// strips before insert.
type Record struct {
	Question string

	OptionA, OptionB, OptionC, OptionD string
	OptionAImage, OptionBImage, OptionCImage, OptionDImage string

	HasDiagram bool
	ImagePath  string

	// Num is the header's number token as written ("3", "212", "III").
	Num string

	// YStart/YEnd bound the question's block in the global Y stream,
	// used by attach to find the nearest image region.
	YStart, YEnd float64

	// OptY records the global Y of each option's first appearance,
	// keyed by letter "a".."d", for per-option image promotion.
	OptY map[string]float64
}

// optionText returns a pointer to the option field for letter, or nil
// for an unrecognised letter.
func (r *Record) optionText(letter string) *string {
	switch letter {
	case "a":
		return &r.OptionA
	case "b":
		return &r.OptionB
	case "c":
		return &r.OptionC
	case "d":
		return &r.OptionD
	default:
		return nil
	}
}

// OptionImageSlot returns a pointer to the option image field for
// letter ("a".."d"), or nil for an unrecognised letter — used by
// internal/attach when promoting a question-level image to a specific
// option.
func (r *Record) OptionImageSlot(letter string) *string {
	switch letter {
	case "a":
		return &r.OptionAImage
	case "b":
		return &r.OptionBImage
	case "c":
		return &r.OptionCImage
	case "d":
		return &r.OptionDImage
	default:
		return nil
	}
}

func (r *Record) hasOptionText(letter string) bool {
	p := r.optionText(letter)
	return p != nil && *p != ""
}

// countOptions reports how many of the four option slots are filled.
func (r *Record) countOptions() int {
	n := 0
	for _, l := range []string{"a", "b", "c", "d"} {
		if r.hasOptionText(l) {
			n++
		}
	}
	return n
}
