package eval

import (
	"strings"
)

// Answer is a parsed model verdict on a two-option question.
type Answer string

// Verdicts. Unclear marks a response no parsing stage could read.
const (
	AnswerA       Answer = "A"
	AnswerB       Answer = "B"
	AnswerValid   Answer = "VALID"
	AnswerInvalid Answer = "INVALID"
	AnswerUnclear Answer = "UNCLEAR"
)

// answerPatterns are checked in order after the direct and prefix
// stages. Longer phrasings come first so substring checks cannot
// shadow them.
var answerPatterns = []struct {
	needle string
	answer Answer
}{
	{"THE ANSWER IS A", AnswerA},
	{"THE ANSWER IS B", AnswerB},
	{"ANSWER: A", AnswerA},
	{"ANSWER: B", AnswerB},
	{"ANSWER IS A", AnswerA},
	{"ANSWER IS B", AnswerB},
	{"OPTION A", AnswerA},
	{"OPTION B", AnswerB},
	{"ARGUMENT A", AnswerA},
	{"ARGUMENT B", AnswerB},
	{"CHOOSE A", AnswerA},
	{"CHOOSE B", AnswerB},
	{"(A)", AnswerA},
	{"(B)", AnswerB},
}

// ParseAnswer extracts an A/B verdict from a model response. Stages run
// in order: the whole trimmed response is a single letter, the response
// starts with a letter followed by punctuation or space, a known answer
// phrase appears, and finally a standalone-letter count tiebreak. A
// response no stage can read returns AnswerUnclear.
func ParseAnswer(response string) Answer {
	text := strings.ToUpper(strings.TrimSpace(response))
	if text == "" {
		return AnswerUnclear
	}

	if text == "A" {
		return AnswerA
	}
	if text == "B" {
		return AnswerB
	}

	if len(text) >= 2 && (text[1] == '.' || text[1] == ')' || text[1] == ':' || text[1] == ',' || text[1] == ' ') {
		switch text[0] {
		case 'A':
			return AnswerA
		case 'B':
			return AnswerB
		}
	}

	for _, p := range answerPatterns {
		if strings.Contains(text, p.needle) {
			return p.answer
		}
	}

	countA := countStandalone(text, 'A')
	countB := countStandalone(text, 'B')
	switch {
	case countA > countB:
		return AnswerA
	case countB > countA:
		return AnswerB
	}
	return AnswerUnclear
}

// ParseVerdict extracts a valid/invalid verdict from a model response.
// INVALID is checked before VALID at every stage because one is a
// substring of the other.
func ParseVerdict(response string) Answer {
	text := strings.ToUpper(strings.TrimSpace(response))
	if text == "" {
		return AnswerUnclear
	}

	trimmed := strings.TrimRight(text, ".!,:")
	if trimmed == "INVALID" {
		return AnswerInvalid
	}
	if trimmed == "VALID" {
		return AnswerValid
	}

	if strings.HasPrefix(text, "INVALID") {
		return AnswerInvalid
	}
	if strings.HasPrefix(text, "VALID") {
		return AnswerValid
	}

	if strings.Contains(text, "NOT VALID") || strings.Contains(text, "INVALID") {
		return AnswerInvalid
	}
	if strings.Contains(text, "VALID") {
		return AnswerValid
	}
	return AnswerUnclear
}

// countStandalone counts occurrences of letter not embedded in a word.
func countStandalone(text string, letter byte) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] != letter {
			continue
		}
		before := i == 0 || !isWordByte(text[i-1])
		after := i == len(text)-1 || !isWordByte(text[i+1])
		if before && after {
			count++
		}
	}
	return count
}

func isWordByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '\''
}
