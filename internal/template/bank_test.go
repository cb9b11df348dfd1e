package template

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/peircelogic/arggen/internal/linguistic"
)

func bankRand() *rand.Rand {
	return rand.New(rand.NewPCG(11, 13))
}

func taggedTemplate(text string, level linguistic.ComplexityLevel) *Template {
	return New(text, Metadata{Complexity: level})
}

func TestBankGetEmptyBucket(t *testing.T) {
	bank := NewBank()

	if got := bank.Templates("Modus Ponens", Valid); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}

	_, err := bank.Get("Modus Ponens", Valid)
	if !errors.Is(err, ErrNoTemplate) {
		t.Fatalf("expected ErrNoTemplate, got %v", err)
	}
	if !strings.Contains(err.Error(), "Modus Ponens (valid)") {
		t.Fatalf("diagnostic missing rule and type: %v", err)
	}
}

func TestBankComplexityFilter(t *testing.T) {
	bank := NewBank()
	basic := taggedTemplate("basic {p}", linguistic.ComplexityBasic)
	advanced := taggedTemplate("advanced {p}", linguistic.ComplexityAdvanced)
	bank.Add("Modus Ponens", Valid, basic)
	bank.Add("Modus Ponens", Valid, advanced)

	got, err := bank.Get("Modus Ponens", Valid,
		WithComplexity(linguistic.ComplexityAdvanced), WithRand(bankRand()))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != advanced {
		t.Fatalf("expected the advanced template, got %q", got.Text())
	}
}

func TestBankComplexityFallback(t *testing.T) {
	bank := NewBank()
	bank.Add("Modus Ponens", Valid, taggedTemplate("basic {p}", linguistic.ComplexityBasic))
	bank.Add("Modus Ponens", Valid, taggedTemplate("advanced {p}", linguistic.ComplexityAdvanced))

	// No expert template exists; the unfiltered bucket still serves.
	for i := 0; i < 20; i++ {
		got, err := bank.Get("Modus Ponens", Valid,
			WithComplexity(linguistic.ComplexityExpert), WithRand(bankRand()))
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got == nil {
			t.Fatal("fallback must return a template when any is registered")
		}
	}
}

func TestBankGenerateArgument(t *testing.T) {
	bank := NewBank()
	bank.Add("Modus Ponens", Valid, New("If {p}, then {q}. {P}. Therefore, {q}.", Metadata{}))

	got := bank.GenerateArgument("Modus Ponens", map[string]string{
		"p": "it rains",
		"q": "the ground is wet",
		"P": "It rains",
	}, Valid, GenerateOptions{Rand: bankRand()})

	want := "If it rains, then the ground is wet. It rains. Therefore, the ground is wet."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBankGenerateArgumentDiagnostic(t *testing.T) {
	bank := NewBank()

	got := bank.GenerateArgument("Modus Tollens", nil, Invalid, GenerateOptions{})
	if got != "No template found for Modus Tollens (invalid)" {
		t.Fatalf("unexpected diagnostic: %q", got)
	}
}

func TestBankStats(t *testing.T) {
	bank := NewBank()
	bank.Add("Modus Ponens", Valid, taggedTemplate("{p}", linguistic.ComplexityBasic))
	bank.Add("Modus Ponens", Valid, taggedTemplate("{q}", linguistic.ComplexityAdvanced))
	bank.Add("Modus Ponens", Invalid, taggedTemplate("{p}", linguistic.ComplexityBasic))
	bank.Add("Modus Tollens", Valid, taggedTemplate("{p}", linguistic.ComplexityBasic))

	stats := bank.Stats()
	if stats.TotalRules != 2 {
		t.Fatalf("TotalRules = %d, want 2", stats.TotalRules)
	}
	if stats.TotalTemplates != 4 {
		t.Fatalf("TotalTemplates = %d, want 4", stats.TotalTemplates)
	}
	mp := stats.PerRule["Modus Ponens"]
	if mp.Valid != 2 || mp.Invalid != 1 {
		t.Fatalf("Modus Ponens counts = %+v", mp)
	}
	if stats.PerRule["Modus Tollens"].Total() != 1 {
		t.Fatalf("Modus Tollens counts = %+v", stats.PerRule["Modus Tollens"])
	}
}

func TestBankRulesOrder(t *testing.T) {
	bank := NewBank()
	bank.Add("Modus Ponens", Valid, taggedTemplate("{p}", linguistic.ComplexityBasic))
	bank.Add("Modus Tollens", Valid, taggedTemplate("{p}", linguistic.ComplexityBasic))
	bank.Add("Modus Ponens", Invalid, taggedTemplate("{p}", linguistic.ComplexityBasic))

	rules := bank.Rules()
	if len(rules) != 2 || rules[0] != "Modus Ponens" || rules[1] != "Modus Tollens" {
		t.Fatalf("rules = %v", rules)
	}
}
