package pattern

import "regexp"

var (
	stopRE            = regexp.MustCompile(`(?i)^\s*(?:answers?\s*(?:[&]|and)\s*solutions?|answer\s*key|answer\s*sheet|solutions?|explanations?|hints?)\b`)
	solutionColonRE   = regexp.MustCompile(`(?i)\bsolution\s*:`)
	noiseRE           = regexp.MustCompile(`(?i)^\s*(?:page\s*\d+|\d+\s*/\s*\d+|(?:www\.|http).*|\x{00A9}|copyright)\s*$`)
	answerOrSolutionRE = regexp.MustCompile(`(?i)\b(?:answer|solution)\b`)
)

// IsStop reports whether line begins an answer-key or solutions section.
func IsStop(line string) bool {
	return stopRE.MatchString(line)
}

// ContainsSolutionColon reports whether line contains a "solution:"
// marker anywhere — the second, looser stop trigger.
func ContainsSolutionColon(line string) bool {
	return solutionColonRE.MatchString(line)
}

// IsNoise reports whether line is a page footer/header artifact that
// should be silently skipped.
func IsNoise(line string) bool {
	return noiseRE.MatchString(line)
}

// MentionsAnswerOrSolution reports whether body text references
// "answer" or "solution" — used to suppress a numeric-header match
// whose body is actually an answer-key back-reference (e.g.
// "Q.1 Answer: (B)").
func MentionsAnswerOrSolution(body string) bool {
	return answerOrSolutionRE.MatchString(body)
}
