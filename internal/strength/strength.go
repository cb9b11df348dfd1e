// Package strength scores generated arguments on simple 0-1 heuristics:
// validity from the rule, plausibility and clarity from surface features
// of the text. The scores annotate exported records; nothing downstream
// branches on them.
package strength

import (
	"math"
	"strings"
)

// Report holds the heuristic scores for one argument.
type Report struct {
	// LogicalValidity is 1 for valid forms and 0.15 for fallacies; a
	// fallacy still reads as an argument, it just does not deliver.
	LogicalValidity float64 `json:"logical_validity"`

	// PremisePlausibility penalizes hedged or overlong premises.
	PremisePlausibility float64 `json:"premise_plausibility"`

	// LinguisticClarity rewards moderate sentence length and penalizes
	// connector pile-ups.
	LinguisticClarity float64 `json:"linguistic_clarity"`

	// Persuasiveness is the weighted composite of the other three.
	Persuasiveness float64 `json:"persuasiveness"`
}

var hedges = []string{
	"maybe", "perhaps", "possibly", "might", "could be", "probably",
	"quizá", "quizás", "tal vez", "posiblemente",
}

var connectors = []string{
	"therefore", "thus", "hence", "consequently", "moreover", "furthermore",
	"however", "because", "since", "accordingly",
	"por lo tanto", "así que", "en consecuencia", "además",
}

// Analyze scores an argument's text. Valid marks whether the argument
// follows its rule's valid form.
func Analyze(text string, valid bool) Report {
	report := Report{LogicalValidity: 0.15}
	if valid {
		report.LogicalValidity = 1
	}

	report.PremisePlausibility = plausibility(text)
	report.LinguisticClarity = clarity(text)
	report.Persuasiveness = clamp(
		0.5*report.LogicalValidity +
			0.25*report.PremisePlausibility +
			0.25*report.LinguisticClarity)

	return report
}

// plausibility starts at 1 and loses 0.15 per hedge word, floored at 0.2.
func plausibility(text string) float64 {
	lowered := strings.ToLower(text)
	score := 1.0
	for _, hedge := range hedges {
		score -= 0.15 * float64(strings.Count(lowered, hedge))
	}
	return math.Max(score, 0.2)
}

// clarity rates sentence length against a 6-22 word sweet spot and
// penalizes heavy connector density.
func clarity(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	score := 0.0
	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		switch {
		case words >= 6 && words <= 22:
			score += 1
		case words > 0:
			score += 0.6
		}
	}
	score /= float64(len(sentences))

	lowered := strings.ToLower(text)
	connectorCount := 0
	for _, connector := range connectors {
		connectorCount += strings.Count(lowered, connector)
	}
	if density := float64(connectorCount) / float64(len(sentences)); density > 1 {
		score -= 0.1 * (density - 1)
	}

	return clamp(score)
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
