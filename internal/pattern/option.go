package pattern

import (
	"regexp"
	"strings"
)

var (
	optionLetterRE = regexp.MustCompile(`^\s*[(\[]?([A-Da-d])[)\].:]\s*[\-:]?\s*(.*)$`)
	optionRomanRE  = regexp.MustCompile(`(?i)^\s*\((i{1,3}|iv|v?i{0,3})\)\s*(.+)$`)
	optionNumericRE = regexp.MustCompile(`^\s*([1-4])[).]\s+(.+)$`)
	optionBulletRE  = regexp.MustCompile(`^\s*[•*\-\x{2013}]\s+(.+)$`)
)

var romanToLetter = map[string]string{
	"i": "a", "ii": "b", "iii": "c", "iv": "d",
}

var numericToLetter = map[string]string{
	"1": "a", "2": "b", "3": "c", "4": "d",
}

// MatchOptionLetter recognises the standard letter-option notations:
// A) A. A: (A) [A] a) (a). An empty body is allowed so a diagram-only
// option like "(A)" alone still produces a slot.
func MatchOptionLetter(line string) (OptionMatch, bool) {
	m := optionLetterRE.FindStringSubmatch(line)
	if m == nil {
		return OptionMatch{}, false
	}
	return OptionMatch{Letter: strings.ToLower(m[1]), Body: strings.TrimSpace(m[2])}, true
}

// MatchOptionRoman recognises "(i)".."(iv)" option labels; a body is
// required. Only meaningful while a question is already live — the
// caller enforces that.
func MatchOptionRoman(line string) (OptionMatch, bool) {
	m := optionRomanRE.FindStringSubmatch(line)
	if m == nil {
		return OptionMatch{}, false
	}
	letter, ok := romanToLetter[strings.ToLower(m[1])]
	if !ok {
		return OptionMatch{}, false
	}
	return OptionMatch{Letter: letter, Body: strings.TrimSpace(m[2])}, true
}

// MatchOptionNumeric recognises "1)"/"1." style numeric options. Only
// meaningful inside a live question.
func MatchOptionNumeric(line string) (OptionMatch, bool) {
	m := optionNumericRE.FindStringSubmatch(line)
	if m == nil {
		return OptionMatch{}, false
	}
	letter, ok := numericToLetter[m[1]]
	if !ok {
		return OptionMatch{}, false
	}
	return OptionMatch{Letter: letter, Body: strings.TrimSpace(m[2])}, true
}

// MatchOptionBullet recognises bullet/dash-led option lines. The caller
// assigns the body to the first empty option slot in order a..d — this
// matcher has no letter to resolve, so Letter is left empty.
func MatchOptionBullet(line string) (OptionMatch, bool) {
	m := optionBulletRE.FindStringSubmatch(line)
	if m == nil {
		return OptionMatch{}, false
	}
	return OptionMatch{Body: strings.TrimSpace(m[1])}, true
}
