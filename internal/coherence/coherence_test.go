package coherence

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func testScorer() *Scorer {
	return NewScorer(map[string][]string{
		"scientific": {"experiment", "hypothesis", "data"},
		"everyday":   {"rain", "coffee", "garden"},
	})
}

func TestDomains(t *testing.T) {
	s := testScorer()

	got := s.Domains("The experiment produced surprising data")
	if !reflect.DeepEqual(got, []string{"scientific"}) {
		t.Fatalf("domains = %v", got)
	}

	if got := s.Domains("nothing matches here"); len(got) != 0 {
		t.Fatalf("expected no domains, got %v", got)
	}

	// Keyword matching is case-insensitive.
	if got := s.Domains("RAIN is coming"); !reflect.DeepEqual(got, []string{"everyday"}) {
		t.Fatalf("domains = %v", got)
	}
}

func TestScore(t *testing.T) {
	s := testScorer()

	coherent := []string{
		"the experiment succeeded",
		"the data supports the hypothesis",
	}
	if got := s.Score(coherent); got != 1 {
		t.Fatalf("coherent pair scored %v", got)
	}

	mixed := []string{
		"the experiment succeeded",
		"the coffee is hot",
	}
	if got := s.Score(mixed); got != 0 {
		t.Fatalf("mixed pair scored %v", got)
	}

	if got := s.Score([]string{"single"}); got != 1 {
		t.Fatalf("single sentence scored %v", got)
	}
}

func TestSampleCoherentPrefersRelated(t *testing.T) {
	s := testScorer()
	pool := []string{
		"the experiment succeeded",
		"the data is conclusive",
		"the hypothesis held up",
		"the coffee is hot",
		"the garden is blooming",
		"rain fell overnight",
	}

	rng := rand.New(rand.NewPCG(9, 10))
	better := 0
	for i := 0; i < 30; i++ {
		plain := s.Score(s.SampleCoherent(rng, pool, 2, 1))
		retried := s.Score(s.SampleCoherent(rng, pool, 2, 8))
		if retried >= plain {
			better++
		}
	}
	if better < 20 {
		t.Fatalf("retried sampling rarely at least as coherent: %d/30", better)
	}
}
