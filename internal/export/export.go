package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/strength"
	"github.com/peircelogic/arggen/internal/template"
)

// Record is one dataset row in the individual format: an argument plus
// the binary label an evaluator must recover.
type Record struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Label      string   `json:"label"`
	Rule       string   `json:"rule"`
	RuleShown  string   `json:"rule_displayed"`
	Language   string   `json:"language"`
	Complexity string   `json:"complexity,omitempty"`
	Domain     string   `json:"domain,omitempty"`
	Sentences  []string `json:"sentences,omitempty"`

	Strength *strength.Report `json:"strength,omitempty"`
}

// PairRecord is one dataset row in the paired format: both arguments of
// a matched pair with the answer key.
type PairRecord struct {
	ID        string `json:"id"`
	Rule      string `json:"rule"`
	Language  string `json:"language"`
	OptionA   string `json:"option_a"`
	OptionB   string `json:"option_b"`
	Answer    string `json:"answer"`
	ValidID   string `json:"valid_id"`
	FallacyID string `json:"fallacy_id"`
}

// FromArgument maps a generated argument to its dataset row.
func FromArgument(arg generate.Argument) Record {
	rec := Record{
		ID:        arg.ID,
		Text:      arg.Text,
		Label:     string(arg.Type),
		Rule:      arg.Rule,
		RuleShown: arg.DisplayRule(),
		Language:  arg.Language,
		Domain:    arg.Domain,
		Sentences: arg.Sentences,
		Strength:  arg.Strength,
	}
	if arg.Complexity.IsValid() {
		rec.Complexity = arg.Complexity.String()
	}
	return rec
}

// FromPair maps a matched pair to its dataset row. flip puts the valid
// argument in option B instead of A, so answer keys are balanced.
func FromPair(pair generate.Pair, flip bool) PairRecord {
	rec := PairRecord{
		ID:        pair.Valid.ID,
		Rule:      pair.Valid.Rule,
		Language:  pair.Valid.Language,
		ValidID:   pair.Valid.ID,
		FallacyID: pair.Invalid.ID,
	}
	if flip {
		rec.OptionA = pair.Invalid.Text
		rec.OptionB = pair.Valid.Text
		rec.Answer = "B"
	} else {
		rec.OptionA = pair.Valid.Text
		rec.OptionB = pair.Invalid.Text
		rec.Answer = "A"
	}
	return rec
}

// WriteJSONL writes arguments as one JSON object per line.
func WriteJSONL(w io.Writer, args []generate.Argument) error {
	enc := json.NewEncoder(w)
	for _, arg := range args {
		if err := enc.Encode(FromArgument(arg)); err != nil {
			return fmt.Errorf("encoding record %s: %w", arg.ID, err)
		}
	}
	return nil
}

// WritePairsJSONL writes matched pairs as one JSON object per line.
// Answer sides alternate A, B, A, B down the file.
func WritePairsJSONL(w io.Writer, pairs []generate.Pair) error {
	enc := json.NewEncoder(w)
	for i, pair := range pairs {
		if err := enc.Encode(FromPair(pair, i%2 == 1)); err != nil {
			return fmt.Errorf("encoding pair %s: %w", pair.Valid.ID, err)
		}
	}
	return nil
}

// WriteCSV writes arguments as a CSV with a header row.
func WriteCSV(w io.Writer, args []generate.Argument) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "text", "label", "rule", "rule_displayed", "language", "complexity", "domain"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, arg := range args {
		rec := FromArgument(arg)
		row := []string{rec.ID, rec.Text, rec.Label, rec.Rule, rec.RuleShown, rec.Language, rec.Complexity, rec.Domain}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePairsCSV writes matched pairs as a CSV with a header row.
func WritePairsCSV(w io.Writer, pairs []generate.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "rule", "language", "option_a", "option_b", "answer"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, pair := range pairs {
		rec := FromPair(pair, i%2 == 1)
		if err := cw.Write([]string{rec.ID, rec.Rule, rec.Language, rec.OptionA, rec.OptionB, rec.Answer}); err != nil {
			return fmt.Errorf("writing csv row %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// LabelCounts tallies valid and invalid rows in a record slice.
func LabelCounts(args []generate.Argument) (valid, invalid int) {
	for _, arg := range args {
		if arg.Type == template.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}

// formatShare renders a count as a percentage string for tables.
func formatShare(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64) + "%"
}
