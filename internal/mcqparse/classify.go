package mcqparse

import "github.com/jeemock/mcqextract/internal/pattern"

// optionAttempt is the result of trying every option notation against
// a line. Letter is "" for a bullet match, where the caller must assign
// the first free slot instead of a fixed letter.
type optionAttempt struct {
	Letter   string
	Body     string
	IsBullet bool
}

// tryOption attempts every option notation against line, in the same
// priority order as the header matchers: an explicit letter label
// (A)/(a)/A./A:) is recognised regardless of state, since it can never
// be confused with anything else; Roman, numeric, and bullet notations
// are only trusted once a question is already open, since on their own
// they are too easily confused with plain prose or question headers.
func tryOption(line string, inQuestion bool) (optionAttempt, bool) {
	if m, ok := pattern.MatchOptionLetter(line); ok {
		return optionAttempt{Letter: m.Letter, Body: m.Body}, true
	}
	if !inQuestion {
		return optionAttempt{}, false
	}
	if m, ok := pattern.MatchOptionRoman(line); ok {
		return optionAttempt{Letter: m.Letter, Body: m.Body}, true
	}
	if m, ok := pattern.MatchOptionNumeric(line); ok {
		return optionAttempt{Letter: m.Letter, Body: m.Body}, true
	}
	if m, ok := pattern.MatchOptionBullet(line); ok {
		return optionAttempt{Body: m.Body, IsBullet: true}, true
	}
	return optionAttempt{}, false
}
