// Package quiz turns the paragraph stream of a document into a
// structured quiz and grades submissions against it.
//
// The document convention is line-oriented: a question line ("Q1.",
// "2)") followed by choice lines ("A) ...", "B. ..."), with the correct
// answer given either by an "Answer: X" line or by a trailing "*" /
// "(correct)" marker on one choice. Blank paragraphs separate
// questions; anything before the first question is title text.
package quiz

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MalformedQuizError reports a document that does not follow the quiz
// convention. Paragraph is the 0-based index of the offending paragraph
// in the input stream.
type MalformedQuizError struct {
	Reason    string
	Paragraph int
}

func (e *MalformedQuizError) Error() string {
	return fmt.Sprintf("malformed quiz: %s (paragraph %d)", e.Reason, e.Paragraph)
}

func malformed(reason string, idx int) *MalformedQuizError {
	return &MalformedQuizError{Reason: reason, Paragraph: idx}
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineQuestion
	lineChoice
	lineAnswer
	lineOther
)

// line is the classification of a single paragraph.
type line struct {
	kind   lineKind
	num    int    // lineQuestion
	label  string // lineChoice / lineAnswer, folded to uppercase
	text   string // prompt or choice text
	marked bool   // choice carried a correct marker
}

var (
	questionRe = regexp.MustCompile(`^(?i)q(\d+)[.:)]\s*(.*)$`)
	numberedRe = regexp.MustCompile(`^(\d+)[.)]\s*(.*)$`)
	choiceRe   = regexp.MustCompile(`^([A-Za-z])\s*[.):]\s*(.*)$`)
	answerRe   = regexp.MustCompile(`^(?i)answer\s*[.):]\s*([A-Za-z])$`)
)

const correctSuffix = "(correct)"

func classify(p string) line {
	if p == "" {
		return line{kind: lineBlank}
	}
	if m := questionRe.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return line{kind: lineQuestion, num: n, text: strings.TrimSpace(m[2])}
	}
	if m := numberedRe.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return line{kind: lineQuestion, num: n, text: strings.TrimSpace(m[2])}
	}
	if m := answerRe.FindStringSubmatch(p); m != nil {
		return line{kind: lineAnswer, label: strings.ToUpper(m[1])}
	}
	if m := choiceRe.FindStringSubmatch(p); m != nil {
		text := strings.TrimSpace(m[2])
		marked := false
		if strings.HasSuffix(text, "*") {
			marked = true
			text = strings.TrimSpace(strings.TrimSuffix(text, "*"))
		} else if n := len(text); n >= len(correctSuffix) && strings.EqualFold(text[n-len(correctSuffix):], correctSuffix) {
			marked = true
			text = strings.TrimSpace(text[:n-len(correctSuffix)])
		}
		return line{kind: lineChoice, label: strings.ToUpper(m[1]), text: text, marked: marked}
	}
	return line{kind: lineOther}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// Parse folds the paragraph stream into a Quiz. The input is expected
// to be normalized (trimmed, single-spaced) the way docs.Provider
// emits it; parsing the same stream twice yields the same Quiz.
func Parse(paragraphs []string) (Quiz, error) {
	var (
		qs []Question

		cur        *Question
		curStart   int    // paragraph index of the question line
		lastChoice int    // paragraph index of the latest choice line
		markLabel  string // label of a *-marked choice, "" if none
		ansLabel   string // label from an Answer line, "" if none
		ansIdx     int
		answered   bool // Answer line seen; choice block is closed
		lastNum    int
	)

	reset := func() {
		cur, markLabel, ansLabel, answered = nil, "", "", false
	}

	// finish validates and appends the open question.
	finish := func() *MalformedQuizError {
		if len(cur.Choices) < 2 {
			idx := curStart
			if len(cur.Choices) > 0 {
				idx = lastChoice
			}
			return malformed("fewer than two choices", idx)
		}
		correct := markLabel
		if answered {
			if markLabel != "" && markLabel != ansLabel {
				return malformed("answer mismatch", ansIdx)
			}
			correct = ansLabel
		}
		if correct == "" {
			return malformed("no correct answer indicated", lastChoice)
		}
		last := cur.Choices[len(cur.Choices)-1].Label
		if correct > last {
			return malformed("correct label does not match any choice", ansIdx)
		}
		cur.Correct = correct
		qs = append(qs, *cur)
		reset()
		return nil
	}

	for i, p := range paragraphs {
		ln := classify(p)
		switch ln.kind {
		case lineBlank:
			if cur != nil {
				if err := finish(); err != nil {
					return Quiz{}, err
				}
			}

		case lineQuestion:
			if cur != nil {
				if err := finish(); err != nil {
					return Quiz{}, err
				}
			}
			if ln.text == "" {
				return Quiz{}, malformed("question without a prompt", i)
			}
			if containsControl(ln.text) {
				return Quiz{}, malformed("control character in text", i)
			}
			if ln.num <= lastNum {
				return Quiz{}, malformed("question numbers not increasing", i)
			}
			cur = &Question{Number: ln.num, Prompt: ln.text}
			curStart, lastNum = i, ln.num

		case lineChoice:
			if cur == nil {
				if len(qs) == 0 {
					continue // preamble
				}
				return Quiz{}, malformed("choice line without a question", i)
			}
			if answered {
				return Quiz{}, malformed("choice after answer line", i)
			}
			if ln.text == "" {
				return Quiz{}, malformed("empty choice text", i)
			}
			if containsControl(ln.text) {
				return Quiz{}, malformed("control character in text", i)
			}
			want := string(rune('A' + len(cur.Choices)))
			if ln.label != want {
				for _, c := range cur.Choices {
					if c.Label == ln.label {
						return Quiz{}, malformed("duplicate choice label", i)
					}
				}
				return Quiz{}, malformed("non-contiguous choice labels", i)
			}
			if ln.marked {
				if markLabel != "" {
					return Quiz{}, malformed("multiple choices marked correct", i)
				}
				markLabel = ln.label
			}
			cur.Choices = append(cur.Choices, Choice{Label: ln.label, Text: ln.text})
			lastChoice = i

		case lineAnswer:
			if cur == nil {
				if len(qs) == 0 {
					continue // preamble
				}
				return Quiz{}, malformed("answer line without a question", i)
			}
			if answered {
				return Quiz{}, malformed("duplicate answer line", i)
			}
			ansLabel, ansIdx, answered = ln.label, i, true

		case lineOther:
			if cur == nil && len(qs) == 0 {
				continue // preamble
			}
			return Quiz{}, malformed("unrecognized paragraph", i)
		}
	}

	if cur != nil {
		if err := finish(); err != nil {
			return Quiz{}, err
		}
	}
	if len(qs) == 0 {
		idx := len(paragraphs) - 1
		if idx < 0 {
			idx = 0
		}
		return Quiz{}, malformed("no questions found", idx)
	}
	return Quiz{Questions: qs}, nil
}
