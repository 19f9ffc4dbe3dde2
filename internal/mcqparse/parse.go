package mcqparse

import (
	"strings"

	"github.com/jeemock/mcqextract/internal/glyphline"
	"github.com/jeemock/mcqextract/internal/pattern"
)

type state int

const (
	idle state = iota
	inQuestion
	inOptions
)

// Parse runs the coordinate-aware MCQ state machine over an ordered
// stream of visual lines (already in the document's global Y
// coordinate system) and returns one Record per question.
//
// A new question header unconditionally finalizes whatever question is
// currently open, even with zero options filled in — two questions are
// never merged, and a short or malformed question is still better
// surfaced than silently dropped.
func Parse(lines []glyphline.VisualLine) []Record {
	var out []Record
	var current *Record
	st := idle
	stopped := false
	lastOptionKey := ""

	finish := func() {
		if current == nil {
			return
		}
		current.OptionA = normalizeMathOptionText(current.OptionA)
		current.OptionB = normalizeMathOptionText(current.OptionB)
		current.OptionC = normalizeMathOptionText(current.OptionC)
		current.OptionD = normalizeMathOptionText(current.OptionD)
		out = append(out, *current)
		current = nil
		lastOptionKey = ""
	}

	for _, vl := range lines {
		line := strings.TrimSpace(vl.Text)
		if line == "" {
			continue
		}
		yTop, yBot := vl.Top, vl.Bottom

		if pattern.IsStop(line) {
			finish()
			stopped = true
		}
		if !stopped && pattern.ContainsSolutionColon(line) {
			finish()
			stopped = true
		}
		if stopped {
			continue
		}

		if pattern.IsNoise(line) {
			continue
		}

		if current != nil {
			current.YEnd = yBot
		}

		inQuestionCtx := (st == inQuestion || st == inOptions) && current != nil

		// Roman numeral headers take priority over every other
		// classification, in any state.
		if qRom, ok := pattern.MatchQuestionRoman(line); ok && qRom.Num != "" {
			finish()
			current = newRecord(qRom.Num, qRom.Body, yTop)
			st = inQuestion
			lastOptionKey = ""
			continue
		}
		if num, ok := pattern.MatchQNumRomanOnly(line); ok && num != "" {
			finish()
			current = newRecord(num, "", yTop)
			st = inQuestion
			lastOptionKey = ""
			continue
		}

		opt, optOk := tryOption(line, inQuestionCtx)

		numOnly, numOnlyOk := pattern.MatchQNumOnly(line)

		qm, qmOk := pattern.MatchQuestionPrefixed(line)
		if !qmOk {
			qm, qmOk = pattern.MatchQuestionBareNum(line)
		}
		if qmOk {
			if !pattern.ValidQuestionNumber(qm.Num) {
				qmOk = false
			}
			if qmOk && st == inOptions && current != nil && qm.Body == "" {
				qmOk = false
			}
			if qmOk && optOk {
				qmOk = false
			}
			if qmOk && pattern.MentionsAnswerOrSolution(qm.Body) {
				qmOk = false
			}
		}

		// OCR-spaced digit headers ("1 2") are only trusted in IDLE
		// state — inside a question, spaced digits are almost always a
		// subscript/superscript rendering (m₁ m₂ splitting onto a row
		// of its own), not a new question number.
		var ocr pattern.QuestionMatch
		ocrOk := false
		if st == idle && !qmOk && !optOk && !numOnlyOk {
			ocr, ocrOk = pattern.MatchQuestionOCRSpaced(line)
			if ocrOk && !pattern.ValidQuestionNumber(ocr.Num) {
				ocrOk = false
			}
		}

		switch {
		case numOnlyOk && !optOk:
			finish()
			current = newRecord(numOnly, "", yTop)
			st = inQuestion
			lastOptionKey = ""

		case qmOk && qm.Body != "":
			finish()
			current = newRecord(qm.Num, qm.Body, yTop)
			st = inQuestion
			lastOptionKey = ""

		case ocrOk:
			finish()
			current = newRecord(ocr.Num, ocr.Body, yTop)
			st = inQuestion
			lastOptionKey = ""

		case optOk && current != nil:
			if opt.IsBullet {
				if letter := assignBulletOption(current, opt.Body); letter != "" {
					lastOptionKey = letter
					if _, seen := current.OptY[letter]; !seen {
						current.OptY[letter] = yTop
					}
				}
			} else if _, seen := current.OptY[opt.Letter]; !seen {
				*current.optionText(opt.Letter) = opt.Body
				lastOptionKey = opt.Letter
				current.OptY[opt.Letter] = yTop
			}
			st = inOptions

		case current != nil:
			switch st {
			case inQuestion:
				sep := ""
				if current.Question != "" {
					sep = " "
				}
				current.Question += sep + line
			case inOptions:
				// A continuation line always merges into the last
				// option opened, regardless of its indent relative to
				// the option label.
				if _, open := current.OptY[lastOptionKey]; open {
					p := current.optionText(lastOptionKey)
					*p = appendOptionText(*p, line)
				}
			}
		}
	}

	finish()
	return out
}

func newRecord(num, text string, yTop float64) *Record {
	return &Record{
		Question: text,
		Num:      num,
		YStart:   yTop,
		YEnd:     yTop,
		OptY:     make(map[string]float64),
	}
}
