package template

import (
	"reflect"
	"testing"

	"github.com/peircelogic/arggen/internal/linguistic"
)

func TestBuilderKeepsVariationName(t *testing.T) {
	tmpl := NewBuilder().
		Static("If ").
		Variable("p").
		Static(", ").
		Variation("conclusion", "therefore", "thus").
		Static(" ").
		Variable("q").
		Static(".").
		Complexity(linguistic.ComplexityIntermediate).
		Build()

	var point *Component
	for i := range tmpl.Components() {
		if tmpl.Components()[i].Kind == KindVariation {
			point = &tmpl.Components()[i]
		}
	}
	if point == nil {
		t.Fatal("variation component missing")
	}
	if point.Name != "conclusion" {
		t.Fatalf("variation name lost: %q", point.Name)
	}
	if !reflect.DeepEqual(point.Choices, []string{"therefore", "thus"}) {
		t.Fatalf("choices = %v", point.Choices)
	}
}

func TestBuilderCanonicalText(t *testing.T) {
	tmpl := NewBuilder().
		Static("Either ").
		Variable("p").
		Static(" or ").
		Variable("q").
		Static(". ").
		Variation("marker", "Therefore", "Thus").
		Build()

	want := "Either {p} or {q}. [[Therefore|Thus]]"
	if tmpl.Text() != want {
		t.Fatalf("text = %q, want %q", tmpl.Text(), want)
	}
}

func TestBuilderRequiredVariables(t *testing.T) {
	tmpl := NewBuilder().
		Variable("p").
		Variation("link", "and {q}", "plus {r}").
		Conditional("formal", "note {s}", "").
		Build()

	want := []string{"p", "q", "r", "s"}
	if got := tmpl.RequiredVariables(); !reflect.DeepEqual(got, want) {
		t.Fatalf("required = %v, want %v", got, want)
	}
}

func TestBuilderMetadata(t *testing.T) {
	tmpl := NewBuilder().
		Static("x").
		Complexity(linguistic.ComplexityExpert).
		Domain("legal").
		Tag("structure", "premise-first").
		Build()

	meta := tmpl.Metadata()
	if meta.Complexity != linguistic.ComplexityExpert || meta.Domain != "legal" {
		t.Fatalf("metadata = %+v", meta)
	}
	if meta.Tag("structure") != "premise-first" {
		t.Fatalf("tags = %v", meta.Tags)
	}
}

func TestBuilderReuseIsIsolated(t *testing.T) {
	b := NewBuilder().Static("a")
	first := b.Build()
	b.Static("b")
	second := b.Build()

	if len(first.Components()) != 1 {
		t.Fatalf("first template grew: %+v", first.Components())
	}
	if len(second.Components()) != 2 {
		t.Fatalf("second template wrong: %+v", second.Components())
	}
}
