package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/template"
)

func sampleArgument(at template.ArgumentType) generate.Argument {
	return generate.Argument{
		ID:        "a1",
		Rule:      "Modus Ponens",
		Type:      at,
		Language:  "en",
		Sentences: []string{"it rains", "the ground is wet"},
		Text:      "If it rains, the ground is wet. It rains. Therefore, the ground is wet.",
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Fatalf("ParseFormat(%s): %v", f, err)
		}
		if got != f {
			t.Fatalf("ParseFormat(%s) = %s", f, got)
		}
	}
	if _, err := ParseFormat("interpretive-dance"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestMinimalIsBareText(t *testing.T) {
	r := New(FormatMinimal, false)
	arg := sampleArgument(template.Valid)

	out, err := r.Argument(arg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != arg.Text {
		t.Fatalf("minimal output = %q", out)
	}
}

func TestStandardShowsVerdict(t *testing.T) {
	r := New(FormatStandard, false)

	out, err := r.Argument(sampleArgument(template.Invalid))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Affirming the Consequent") {
		t.Fatalf("missing fallacy name:\n%s", out)
	}
	if !strings.Contains(out, "INVALID") {
		t.Fatalf("missing verdict:\n%s", out)
	}
}

func TestQuizHidesAnswer(t *testing.T) {
	r := New(FormatQuiz, false)

	out, err := r.Argument(sampleArgument(template.Invalid))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, leak := range []string{"INVALID", "VALID", "Affirming"} {
		if strings.Contains(out, leak) {
			t.Fatalf("quiz output leaks %q:\n%s", leak, out)
		}
	}
	if !strings.Contains(out, "logically valid?") {
		t.Fatalf("missing question:\n%s", out)
	}
}

func TestDetailedIncludesMetadata(t *testing.T) {
	r := New(FormatDetailed, false)

	out, err := r.Argument(sampleArgument(template.Valid))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"ID: a1", "Language: en", "Sentence 1: it rains", "Persuasiveness:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}

func TestJSONRoundTrips(t *testing.T) {
	r := New(FormatJSON, false)

	out, err := r.Argument(sampleArgument(template.Valid))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded generate.Argument
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded.ID != "a1" {
		t.Fatalf("round trip lost id: %+v", decoded)
	}
}

func TestComparativePair(t *testing.T) {
	r := New(FormatComparative, false)
	pair := generate.Pair{
		Valid:   sampleArgument(template.Valid),
		Invalid: sampleArgument(template.Invalid),
	}

	out, err := r.Pair(pair)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Argument A:", "Argument B:", "Answer:", "Affirming the Consequent"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
}

func TestColorDisabledLeavesPlainText(t *testing.T) {
	r := New(FormatStandard, false)

	out, err := r.Argument(sampleArgument(template.Valid))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escape codes: %q", out)
	}
}
