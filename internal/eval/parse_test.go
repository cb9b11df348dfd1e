package eval

import "testing"

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		response string
		want     Answer
	}{
		{"A", AnswerA},
		{"b", AnswerB},
		{" B ", AnswerB},
		{"A.", AnswerA},
		{"B) because the conclusion follows", AnswerB},
		{"A: the first argument is valid", AnswerA},
		{"A, since the premises entail the conclusion", AnswerA},
		{"The answer is B", AnswerB},
		{"Answer: A", AnswerA},
		{"I would choose Option B here", AnswerB},
		{"Argument A is the valid one", AnswerA},
		{"(B)", AnswerB},
		{"After consideration, argument B is logically valid while the other commits a fallacy", AnswerB},
		{"", AnswerUnclear},
		{"Both arguments look plausible to me", AnswerUnclear},
		{"Neither is valid", AnswerUnclear},
		{"It depends on the premises", AnswerUnclear},
	}
	for _, tc := range cases {
		if got := ParseAnswer(tc.response); got != tc.want {
			t.Fatalf("ParseAnswer(%q) = %s, want %s", tc.response, got, tc.want)
		}
	}
}

func TestParseAnswerCountTiebreak(t *testing.T) {
	// No pattern matches, but the letter B appears standalone more often.
	got := ParseAnswer("Comparing B against the other, B holds up")
	if got != AnswerB {
		t.Fatalf("tiebreak = %s, want B", got)
	}

	// Letters inside words do not count.
	got = ParseAnswer("Probably the better bet")
	if got != AnswerUnclear {
		t.Fatalf("embedded letters = %s, want UNCLEAR", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	rec := recordAB("first text", "second text")

	standard, err := BuildPrompt(PromptStandard, rec)
	if err != nil {
		t.Fatalf("standard: %v", err)
	}
	if want := "Argument A: first text"; !contains(standard, want) {
		t.Fatalf("standard prompt missing %q:\n%s", want, standard)
	}

	enhanced, err := BuildPrompt(PromptEnhanced, rec)
	if err != nil {
		t.Fatalf("enhanced: %v", err)
	}
	if !contains(enhanced, "logical structure") {
		t.Fatalf("enhanced prompt missing instruction:\n%s", enhanced)
	}

	if _, err := BuildPrompt("poetic", rec); err == nil {
		t.Fatal("unknown style should error")
	}
}

func TestParseVerdict(t *testing.T) {
	cases := []struct {
		response string
		want     Answer
	}{
		{"VALID", AnswerValid},
		{"valid.", AnswerValid},
		{"Invalid", AnswerInvalid},
		{"INVALID.", AnswerInvalid},
		{"Valid, because the conclusion follows.", AnswerValid},
		{"Invalid: the conclusion does not follow.", AnswerInvalid},
		{"The argument is not valid.", AnswerInvalid},
		{"This argument is invalid.", AnswerInvalid},
		{"The argument is logically valid.", AnswerValid},
		{"", AnswerUnclear},
		{"I cannot tell.", AnswerUnclear},
	}
	for _, tc := range cases {
		if got := ParseVerdict(tc.response); got != tc.want {
			t.Fatalf("ParseVerdict(%q) = %s, want %s", tc.response, got, tc.want)
		}
	}
}
