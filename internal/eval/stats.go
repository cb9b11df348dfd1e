package eval

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"
)

// RuleStats tallies outcomes for one rule.
type RuleStats struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Abstains int `json:"abstains"`
	Errors   int `json:"errors"`
}

// Accuracy is correct over answered records; abstentions and errors
// count against it.
func (s RuleStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Stats summarizes an evaluation run.
type Stats struct {
	Model    string               `json:"model"`
	Style    PromptStyle          `json:"prompt_style"`
	Total    int                  `json:"total"`
	Correct  int                  `json:"correct"`
	Abstains int                  `json:"abstains"`
	Errors   int                  `json:"errors"`
	PerRule  map[string]RuleStats `json:"per_rule"`
	PerType  map[string]RuleStats `json:"per_type,omitempty"`
	Elapsed  time.Duration        `json:"elapsed_ns"`
}

// Accuracy is the overall fraction of correct verdicts.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summarize folds results into run statistics.
func Summarize(model string, style PromptStyle, results []Result) Stats {
	stats := Stats{
		Model:   model,
		Style:   style,
		Total:   len(results),
		PerRule: make(map[string]RuleStats),
	}
	for _, result := range results {
		rule := stats.PerRule[result.Rule]
		rule.Total++
		switch {
		case result.Err != "":
			stats.Errors++
			rule.Errors++
		case result.Answer == AnswerUnclear:
			stats.Abstains++
			rule.Abstains++
		case result.Correct:
			stats.Correct++
			rule.Correct++
		}
		stats.Elapsed += result.Latency
		stats.PerRule[result.Rule] = rule

		// Individual-mode runs also break down by expected verdict.
		if result.Expected == string(AnswerValid) || result.Expected == string(AnswerInvalid) {
			if stats.PerType == nil {
				stats.PerType = make(map[string]RuleStats)
			}
			typ := stats.PerType[result.Expected]
			typ.Total++
			switch {
			case result.Err != "":
				typ.Errors++
			case result.Answer == AnswerUnclear:
				typ.Abstains++
			case result.Correct:
				typ.Correct++
			}
			stats.PerType[result.Expected] = typ
		}
	}
	return stats
}

// WriteResultsJSON writes the stats and per-record results as one JSON
// document.
func WriteResultsJSON(w io.Writer, stats Stats, results []Result) error {
	doc := struct {
		Stats   Stats    `json:"stats"`
		Results []Result `json:"results"`
	}{Stats: stats, Results: results}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteResultsCSV writes per-record results as a CSV with a header row.
func WriteResultsCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "rule", "expected", "answer", "correct", "latency_ms", "error"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, result := range results {
		row := []string{
			result.ID,
			result.Rule,
			result.Expected,
			string(result.Answer),
			strconv.FormatBool(result.Correct),
			strconv.FormatInt(result.Latency.Milliseconds(), 10),
			result.Err,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", result.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RuleNames returns the rules in stats sorted by name, for stable
// report output.
func (s Stats) RuleNames() []string {
	names := make([]string, 0, len(s.PerRule))
	for name := range s.PerRule {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
