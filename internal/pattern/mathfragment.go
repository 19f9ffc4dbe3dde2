package pattern

import (
	"regexp"
	"strings"
)

// maxMathFragmentLen bounds how long a token may be and still be
// considered for stacked-fraction reconstruction during option-text
// merging (C3 §4.3) — long strings are prose, not formula fragments.
const maxMathFragmentLen = 28

var mathFragmentRE = regexp.MustCompile(`^[A-Za-z0-9\[\]()+\-\x{2212}=*/.:\s]+$`)

// LooksMathFragment reports whether s is short and made up only of the
// characters a stacked-fraction OCR split would plausibly produce.
func LooksMathFragment(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > maxMathFragmentLen {
		return false
	}
	return mathFragmentRE.MatchString(t)
}
