package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/template"
)

func sampleArguments(n int) []generate.Argument {
	args := make([]generate.Argument, n)
	for i := range args {
		at := template.Valid
		if i%2 == 1 {
			at = template.Invalid
		}
		args[i] = generate.Argument{
			ID:       "arg-" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Rule:     "Modus Ponens",
			Type:     at,
			Language: "en",
			Text:     "If it rains, the ground is wet. It rains. Therefore, the ground is wet.",
		}
	}
	return args
}

func samplePairs(n int) []generate.Pair {
	pairs := make([]generate.Pair, n)
	for i := range pairs {
		pairs[i] = generate.Pair{
			Valid: generate.Argument{
				ID: "valid", Rule: "Modus Tollens", Type: template.Valid,
				Language: "en", Text: "valid argument text",
			},
			Invalid: generate.Argument{
				ID: "invalid", Rule: "Modus Tollens", Type: template.Invalid,
				Language: "en", Text: "fallacious argument text",
			},
		}
	}
	return pairs
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, sampleArguments(4)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	require.Equal(t, "invalid", rec.Label)
	require.Equal(t, "Affirming the Consequent", rec.RuleShown)
}

func TestWritePairsJSONLBalancesAnswers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePairsJSONL(&buf, samplePairs(4)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	answers := make([]string, 0, 4)
	for _, line := range lines {
		var rec PairRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		answers = append(answers, rec.Answer)
		if rec.Answer == "A" {
			require.Equal(t, "valid argument text", rec.OptionA)
		} else {
			require.Equal(t, "valid argument text", rec.OptionB)
		}
	}
	require.Equal(t, []string{"A", "B", "A", "B"}, answers)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleArguments(3)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "label", rows[0][2])
	require.Equal(t, "valid", rows[1][2])
	require.Equal(t, "invalid", rows[2][2])
}

func TestSplitPartitions(t *testing.T) {
	args := sampleArguments(20)
	rng := rand.New(rand.NewPCG(3, 5))

	splits, err := Split(rng, args, DefaultSplits)
	require.NoError(t, err)

	require.Len(t, splits.Train, 16)
	require.Len(t, splits.Validation, 2)
	require.Len(t, splits.Test, 2)

	seen := make(map[string]int)
	for _, split := range [][]generate.Argument{splits.Train, splits.Validation, splits.Test} {
		for _, arg := range split {
			seen[arg.ID]++
		}
	}
	require.Len(t, seen, 20)
	for id, n := range seen {
		require.Equal(t, 1, n, "record %s appears %d times", id, n)
	}
}

func TestSplitDeterministic(t *testing.T) {
	args := sampleArguments(10)

	a, err := Split(rand.New(rand.NewPCG(1, 1)), args, DefaultSplits)
	require.NoError(t, err)
	b, err := Split(rand.New(rand.NewPCG(1, 1)), args, DefaultSplits)
	require.NoError(t, err)

	for i := range a.Train {
		require.Equal(t, a.Train[i].ID, b.Train[i].ID)
	}
}

func TestSplitRatiosValidate(t *testing.T) {
	cases := []struct {
		ratios SplitRatios
		ok     bool
	}{
		{SplitRatios{0.8, 0.1, 0.1}, true},
		{SplitRatios{1, 0, 0}, true},
		{SplitRatios{0.5, 0.2, 0.2}, false},
		{SplitRatios{-0.1, 0.6, 0.5}, false},
	}
	for _, tc := range cases {
		err := tc.ratios.Validate()
		if tc.ok {
			require.NoError(t, err)
		} else {
			require.Error(t, err)
		}
	}
}

func TestWriteCard(t *testing.T) {
	args := sampleArguments(6)
	splits, err := Split(nil, args, DefaultSplits)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteCard(&buf, CardInfo{
		Name:      "Test Arguments",
		Language:  "en",
		Seed:      42,
		Arguments: args,
		Splits:    &splits,
	})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "---\n"))
	require.Contains(t, out, "task_categories:")
	require.Contains(t, out, "n<1K")
	require.Contains(t, out, "# Test Arguments")
	require.Contains(t, out, "| Modus Ponens | Affirming the Consequent | 6 |")
	require.Contains(t, out, "| train | 4 |")
	require.Contains(t, out, "Generation seed: 42")
}
