package pattern

import "strings"

// MatchQuestionPrefixed recognises an explicit Q/Que/Question-prefixed
// numeric header. Always valid regardless of state — the prefix is an
// unambiguous signal.
func MatchQuestionPrefixed(line string) (QuestionMatch, bool) {
	m := questionPrefixedRE.FindStringSubmatch(line)
	if m == nil {
		return QuestionMatch{}, false
	}
	return QuestionMatch{Num: m[1], Body: strings.TrimSpace(m[2])}, true
}

// MatchQuestionBareNum recognises a bare numeric header with a mandatory
// delimiter. A bare number with no delimiter never matches, so a math
// continuation line like "2 should be ..." is never mistaken for a
// header.
func MatchQuestionBareNum(line string) (QuestionMatch, bool) {
	m := questionBareNumRE.FindStringSubmatch(line)
	if m == nil {
		return QuestionMatch{}, false
	}
	return QuestionMatch{Num: m[1], Body: strings.TrimSpace(m[2])}, true
}

// MatchQuestionOCRSpaced recognises digit groups separated by spaces
// (the OCR layer's habit of splitting a multi-digit number onto
// separate glyphs), collapsing them into one number token. A body is
// required.
func MatchQuestionOCRSpaced(line string) (QuestionMatch, bool) {
	m := questionOCRSpacedRE.FindStringSubmatch(line)
	if m == nil {
		return QuestionMatch{}, false
	}
	collapsed := strings.ReplaceAll(m[1], " ", "")
	return QuestionMatch{Num: collapsed, Body: strings.TrimSpace(m[2])}, true
}

// MatchQuestionRoman recognises a Roman-numeral header (I - XXX) with a
// required `.`/`:` delimiter and optional body. The numeral must not be
// directly followed by "(" — that shape belongs to an option label like
// "(i)", not a header.
func MatchQuestionRoman(line string) (QuestionMatch, bool) {
	loc := questionRomanBaseRE.FindStringSubmatchIndex(line)
	if loc == nil {
		return QuestionMatch{}, false
	}
	if followedByParen(line, loc[3]) {
		return QuestionMatch{}, false
	}
	return QuestionMatch{
		Num:  strings.ToUpper(line[loc[2]:loc[3]]),
		Body: strings.TrimSpace(line[loc[4]:loc[5]]),
	}, true
}

// MatchQNumOnly recognises a question-number-only line that explicitly
// carries a Q/Que/Question prefix — a bare number alone is never a
// header on its own (it would be indistinguishable from a math
// fragment).
func MatchQNumOnly(line string) (string, bool) {
	m := qNumOnlyRE.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchQNumRomanOnly recognises a bare Roman numeral line with no body.
func MatchQNumRomanOnly(line string) (string, bool) {
	loc := qNumRomanOnlyBaseRE.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", false
	}
	if followedByParen(line, loc[3]) {
		return "", false
	}
	return strings.ToUpper(line[loc[2]:loc[3]]), true
}

// followedByParen reports whether the rune immediately following byte
// offset idx in line is "(" — Go's RE2 engine has no lookahead, so the
// spec's "(?!\()" guard is applied as a post-match check instead.
func followedByParen(line string, idx int) bool {
	return idx < len(line) && line[idx] == '('
}
