package linguistic

import (
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSelectStyleExplicit(t *testing.T) {
	available := []string{"simple", "formal", "emphatic"}

	got := SelectStyle(available, ComplexityBasic, "emphatic", testRand())
	if got != "emphatic" {
		t.Fatalf("expected explicit style emphatic, got %q", got)
	}
}

func TestSelectStyleExplicitUnavailable(t *testing.T) {
	available := []string{"simple", "formal"}

	// Unknown explicit style falls through to the complexity policy.
	got := SelectStyle(available, ComplexityBasic, "poetic", testRand())
	if got != "simple" {
		t.Fatalf("expected simple, got %q", got)
	}
}

func TestSelectStyleBasic(t *testing.T) {
	if got := SelectStyle([]string{"formal", "simple"}, ComplexityBasic, "", testRand()); got != "simple" {
		t.Fatalf("basic should prefer simple, got %q", got)
	}
	if got := SelectStyle([]string{"colloquial", "formal"}, ComplexityBasic, "", testRand()); got != "colloquial" {
		t.Fatalf("basic without simple should take the first style, got %q", got)
	}
}

func TestSelectStyleExpert(t *testing.T) {
	if got := SelectStyle([]string{"simple", "formal", "emphatic"}, ComplexityExpert, "", testRand()); got != "formal" {
		t.Fatalf("expert should prefer formal, got %q", got)
	}
	if got := SelectStyle([]string{"simple", "emphatic"}, ComplexityExpert, "", testRand()); got != "emphatic" {
		t.Fatalf("expert without formal should take the last style, got %q", got)
	}
}

func TestSelectStyleIntermediateIsUniform(t *testing.T) {
	available := []string{"simple", "formal", "emphatic"}
	rng := testRand()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[SelectStyle(available, ComplexityIntermediate, "", rng)] = true
	}
	if len(seen) != len(available) {
		t.Fatalf("expected all styles to appear, saw %v", seen)
	}
}

func TestSelectStyleEmpty(t *testing.T) {
	if got := SelectStyle(nil, ComplexityBasic, "", testRand()); got != "" {
		t.Fatalf("expected empty result for no styles, got %q", got)
	}
}

func TestParseComplexity(t *testing.T) {
	tests := []struct {
		in   string
		want ComplexityLevel
	}{
		{"basic", ComplexityBasic},
		{" Intermediate ", ComplexityIntermediate},
		{"ADVANCED", ComplexityAdvanced},
		{"expert", ComplexityExpert},
	}
	for _, tt := range tests {
		got, err := ParseComplexity(tt.in)
		if err != nil {
			t.Fatalf("ParseComplexity(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseComplexity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseComplexity("mythic"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
