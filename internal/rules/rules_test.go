package rules

import (
	"errors"
	"testing"
)

func TestRegistryComplete(t *testing.T) {
	all := All()
	if len(all) != 11 {
		t.Fatalf("expected 11 rules, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, rule := range all {
		if rule.Name == "" || rule.Counterpart == "" {
			t.Fatalf("incomplete rule: %+v", rule)
		}
		if rule.Sentences != 2 && rule.Sentences != 3 {
			t.Fatalf("%s: unexpected sentence count %d", rule.Name, rule.Sentences)
		}
		if seen[rule.Name] {
			t.Fatalf("duplicate rule %s", rule.Name)
		}
		seen[rule.Name] = true
	}
}

func TestGet(t *testing.T) {
	rule, err := Get("Modus Ponens")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rule.Counterpart != "Affirming the Consequent" {
		t.Fatalf("counterpart = %q", rule.Counterpart)
	}
	if rule.Structure != StructureConditional {
		t.Fatalf("structure = %q", rule.Structure)
	}

	_, err = Get("Modus Profundus")
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestBySentenceCount(t *testing.T) {
	two := BySentenceCount(2)
	three := BySentenceCount(3)
	if len(two)+len(three) != 11 {
		t.Fatalf("partition broken: %d + %d", len(two), len(three))
	}
	if len(three) != 5 {
		t.Fatalf("expected 5 three-sentence rules, got %d", len(three))
	}
}

func TestCounterpartOf(t *testing.T) {
	got, err := CounterpartOf("Constructive Dilemma")
	if err != nil {
		t.Fatalf("CounterpartOf: %v", err)
	}
	if got != "False Dilemma" {
		t.Fatalf("counterpart = %q", got)
	}
}
