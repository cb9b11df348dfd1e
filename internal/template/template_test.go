package template

import (
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/peircelogic/arggen/internal/linguistic"
)

func testCtx(vars map[string]string, seed uint64) *RenderContext {
	return &RenderContext{
		Variables: vars,
		Rand:      rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func TestRequiredVariablesSpanAllChoices(t *testing.T) {
	// Variables referenced only inside unchosen variation branches still
	// count: the set is fixed at construction.
	tmpl := New("[[alpha {p}|beta {q}]]", Metadata{})

	want := []string{"p", "q"}
	if got := tmpl.RequiredVariables(); !reflect.DeepEqual(got, want) {
		t.Fatalf("required variables %v, want %v", got, want)
	}
}

func TestRequiredVariablesMixed(t *testing.T) {
	tmpl := New("If {p}, then [[surely {q}|{q} for certain]]. {r}.", Metadata{})

	want := []string{"p", "q", "r"}
	if got := tmpl.RequiredVariables(); !reflect.DeepEqual(got, want) {
		t.Fatalf("required variables %v, want %v", got, want)
	}
}

func TestRenderMissingBindingKeepsPlaceholder(t *testing.T) {
	tmpl := New("Hello {name}", Metadata{})

	if got := tmpl.Render(testCtx(nil, 1)); got != "Hello {name}" {
		t.Fatalf("got %q, want placeholder preserved", got)
	}
}

func TestRenderVariables(t *testing.T) {
	tmpl := New("If {p}, then {q}.", Metadata{})
	got := tmpl.Render(testCtx(map[string]string{
		"p": "it rains",
		"q": "the ground is wet",
	}, 1))

	if got != "If it rains, then the ground is wet." {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderVariationEndToEnd(t *testing.T) {
	tmpl := New("If {p}, then [[therefore|thus]] {q}.", Metadata{})
	vars := map[string]string{"p": "it rains", "q": "the ground is wet"}

	for seed := uint64(1); seed <= 25; seed++ {
		got := tmpl.Render(testCtx(vars, seed))
		if !strings.HasPrefix(got, "If it rains, then ") {
			t.Fatalf("bad prefix: %q", got)
		}
		if !strings.HasSuffix(got, " the ground is wet.") {
			t.Fatalf("bad suffix: %q", got)
		}
		hasTherefore := strings.Contains(got, "therefore")
		hasThus := strings.Contains(got, "thus")
		if hasTherefore == hasThus {
			t.Fatalf("expected exactly one connector in %q", got)
		}
	}
}

func TestRenderPinnedVariationIsDeterministic(t *testing.T) {
	tmpl := NewBuilder().
		Variation("conclusion", "Therefore", "Thus").
		Static(", {q}.").
		Build()

	for seed := uint64(1); seed <= 25; seed++ {
		ctx := testCtx(map[string]string{"q": "so it goes"}, seed)
		ctx.Choices = map[string]string{"conclusion": "Thus"}
		if got := tmpl.Render(ctx); got != "Thus, so it goes." {
			t.Fatalf("seed %d: got %q", seed, got)
		}
	}
}

func TestRenderPinnedVariationByIndex(t *testing.T) {
	tmpl := NewBuilder().
		Variation("marker", "therefore", "thus", "hence").
		Build()

	ctx := testCtx(nil, 1)
	ctx.Choices = map[string]string{"marker": "2"}
	if got := tmpl.Render(ctx); got != "hence" {
		t.Fatalf("got %q, want hence", got)
	}
}

func TestRenderIdempotentUnderPinning(t *testing.T) {
	tmpl := NewBuilder().
		Static("If ").
		Variable("p").
		Static(", ").
		Variation("conclusion", "therefore", "thus").
		Static(" ").
		Variable("q").
		Static(".").
		Build()

	vars := map[string]string{"p": "a", "q": "b"}
	first := tmpl.Render(&RenderContext{Variables: vars, Choices: map[string]string{"conclusion": "thus"}})
	second := tmpl.Render(&RenderContext{Variables: vars, Choices: map[string]string{"conclusion": "thus"}})
	if first != second {
		t.Fatalf("renders differ: %q vs %q", first, second)
	}
}

func TestRenderConditional(t *testing.T) {
	tmpl := NewBuilder().
		Conditional("formal", "It follows that {q}.", "So {q}.").
		Build()

	vars := map[string]string{"q": "pigs fly", "formal": "yes"}
	if got := tmpl.Render(&RenderContext{Variables: vars}); got != "It follows that pigs fly." {
		t.Fatalf("got %q", got)
	}

	// Absent key selects the else branch.
	if got := tmpl.Render(&RenderContext{Variables: map[string]string{"q": "pigs fly"}}); got != "So pigs fly." {
		t.Fatalf("got %q", got)
	}

	// "false" and "0" are falsy.
	vars["formal"] = "false"
	if got := tmpl.Render(&RenderContext{Variables: vars}); got != "So pigs fly." {
		t.Fatalf("got %q", got)
	}
}

func TestRenderRepeated(t *testing.T) {
	tmpl := NewBuilder().
		Static("Premises: ").
		Repeated("premises", "; ", "({item})").
		Build()

	ctx := &RenderContext{Lists: map[string][]string{"premises": {"a", "b", "c"}}}
	if got := tmpl.Render(ctx); got != "Premises: (a); (b); (c)" {
		t.Fatalf("got %q", got)
	}

	// Absent or empty list renders as nothing.
	if got := tmpl.Render(&RenderContext{}); got != "Premises: " {
		t.Fatalf("got %q", got)
	}
}

func TestRenderDoesNotMutateContext(t *testing.T) {
	tmpl := New("{p} and [[{q}|{q} too]]", Metadata{})
	vars := map[string]string{"p": "left", "q": "right"}
	ctx := testCtx(vars, 7)
	tmpl.Render(ctx)

	if len(ctx.Variables) != 2 || ctx.Variables["p"] != "left" || ctx.Variables["q"] != "right" {
		t.Fatalf("context mutated: %v", ctx.Variables)
	}
}

func TestValidate(t *testing.T) {
	if err := New("If {p}, then {q}.", Metadata{}).Validate(); err != nil {
		t.Fatalf("valid template rejected: %v", err)
	}

	if err := New("", Metadata{}).Validate(); err == nil {
		t.Fatal("empty template should be flagged")
	}

	broken := fromComponents("", []Component{{Kind: KindVariation}}, Metadata{})
	if err := broken.Validate(); err == nil {
		t.Fatal("variation without choices should be flagged")
	}
}

func TestMetadata(t *testing.T) {
	meta := Metadata{
		Complexity: linguistic.ComplexityAdvanced,
		Domain:     "scientific",
		Tags:       map[string]string{"structure": "conclusion-first"},
	}
	tmpl := New("{p}", meta)

	if tmpl.Metadata().Complexity != linguistic.ComplexityAdvanced {
		t.Fatalf("complexity lost: %v", tmpl.Metadata().Complexity)
	}
	if tmpl.Metadata().Tag("structure") != "conclusion-first" {
		t.Fatalf("tag lost: %v", tmpl.Metadata().Tags)
	}
}
