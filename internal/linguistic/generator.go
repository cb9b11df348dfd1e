package linguistic

import (
	"math/rand/v2"
	"strings"
)

// Generator produces natural-language phrasings of logical operations from a
// phrase library. It never fails: an absent style falls back to the family
// default, and an absent family passes the input through unchanged.
type Generator struct {
	library    *PhraseLibrary
	complexity ComplexityLevel
	rng        *rand.Rand
}

// NewGenerator creates a generator over a phrase library. A nil rng uses the
// shared top-level source; inject one for reproducible output.
func NewGenerator(library *PhraseLibrary, rng *rand.Rand) *Generator {
	return &Generator{library: library, rng: rng}
}

// SetComplexity sets the complexity level that biases style selection.
func (g *Generator) SetComplexity(level ComplexityLevel) {
	g.complexity = level
}

// Negate phrases the negation of a sentence. An empty style lets the
// selection policy choose one.
func (g *Generator) Negate(sentence, style string) string {
	pattern, ok := g.pick(KindNegation, style)
	if !ok {
		return sentence
	}
	return strings.ReplaceAll(pattern, "{sentence}", sentence)
}

// Conjoin phrases the conjunction of two sentences.
func (g *Generator) Conjoin(p, q, style string) string {
	pattern, ok := g.pick(KindConjunction, style)
	if !ok {
		return p + " and " + q
	}
	return substitute(pattern, "{p}", p, "{q}", q)
}

// Disjoin phrases the disjunction of two sentences.
func (g *Generator) Disjoin(p, q, style string) string {
	pattern, ok := g.pick(KindDisjunction, style)
	if !ok {
		return p + " or " + q
	}
	return substitute(pattern, "{p}", p, "{q}", q)
}

// Conditionalize phrases an if/then statement.
func (g *Generator) Conditionalize(antecedent, consequent, style string) string {
	pattern, ok := g.pick(KindConditional, style)
	if !ok {
		return "if " + antecedent + ", then " + consequent
	}
	return substitute(pattern, "{antecedent}", antecedent, "{consequent}", consequent)
}

// pick selects a style bucket and then one phrase from it. The second return
// is false when neither the selected style nor the family default has any
// phrases, signalling the caller to pass input through.
func (g *Generator) pick(kind VariationKind, style string) (string, bool) {
	styles := g.library.Styles(kind)
	if len(styles) == 0 {
		return "", false
	}

	selected := SelectStyle(styles, g.complexity, style, g.rng)
	phrases, ok := g.library.Phrases(kind, selected)
	if !ok || len(phrases) == 0 {
		phrases, ok = g.library.Phrases(kind, DefaultStyle(kind))
		if !ok || len(phrases) == 0 {
			return "", false
		}
	}

	return phrases[intN(g.rng, len(phrases))], true
}

func substitute(pattern string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(pattern)
}
