package generate

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/peircelogic/arggen/internal/language"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
)

// Variables builds the render bindings for one argument: the sampled
// sentences as P/Q/R in capitalized and lowercase forms, their negations,
// the compound statements the rule structure calls for, and the
// conclusion marker. Templates can then start or continue a sentence with
// any variable.
func Variables(pack *language.Pack, gen *linguistic.Generator, rng *rand.Rand, rule rules.Rule, sentences []string) map[string]string {
	vars := make(map[string]string)

	bind := func(upper, lower, sentence string) {
		capitalized := capitalize(sentence)
		vars[upper] = capitalized
		vars[lower] = lowercase(capitalized)
	}

	if len(sentences) >= 1 {
		bind("P", "p", sentences[0])
	}
	if len(sentences) >= 2 {
		bind("Q", "q", sentences[1])
	}
	if len(sentences) >= 3 {
		bind("R", "r", sentences[2])
	}

	if p, ok := vars["p"]; ok {
		bind("Negated_p", "negated_p", gen.Negate(p, ""))
	}
	if q, ok := vars["q"]; ok {
		bind("Negated_q", "negated_q", gen.Negate(q, ""))
	}
	if r, ok := vars["r"]; ok {
		bind("Negated_r", "negated_r", gen.Negate(r, ""))
	}

	bindCompounds(vars, gen, rule, bind)

	vars["conclusion"] = pack.ConclusionMarker(rng)
	return vars
}

// bindCompounds synthesizes the structure-specific compound statements
// from the lowercase sentence forms.
func bindCompounds(vars map[string]string, gen *linguistic.Generator, rule rules.Rule, bind func(upper, lower, sentence string)) {
	p, hasP := vars["p"]
	q, hasQ := vars["q"]
	r, hasR := vars["r"]

	switch rule.Structure {
	case rules.StructureConditional, rules.StructureConditionalNegation, rules.StructureMaterialConditional:
		if hasP && hasQ {
			bind("Conditional", "conditional", gen.Conditionalize(p, q, ""))
		}

	case rules.StructureConjunction, rules.StructureConjunctionElimination:
		if hasP && hasQ {
			bind("Conjunction", "conjunction", gen.Conjoin(p, q, ""))
		}

	case rules.StructureDisjunctive, rules.StructureDisjunctionElimination:
		if hasP && hasQ {
			bind("Disjunction", "disjunction", gen.Disjoin(p, q, ""))
		}

	case rules.StructureDisjunctionIntro:
		if hasP && hasQ {
			bind("Disjunction", "disjunction", gen.Disjoin(p, q, ""))
			bind("Conjunction", "conjunction", gen.Conjoin(p, q, ""))
		}

	case rules.StructureHypothetical:
		if hasP && hasQ && hasR {
			bind("Conditional1", "conditional1", gen.Conditionalize(p, q, ""))
			bind("Conditional2", "conditional2", gen.Conditionalize(q, r, ""))
			bind("Conditional3", "conditional3", gen.Conditionalize(p, r, ""))
		}

	case rules.StructureConstructiveDilemma:
		if hasP && hasQ && hasR {
			bind("Conditional1", "conditional1", gen.Conditionalize(p, r, ""))
			bind("Conditional2", "conditional2", gen.Conditionalize(q, r, ""))
			bind("Disjunction", "disjunction", gen.Disjoin(p, q, ""))
		}

	case rules.StructureDestructiveDilemma:
		if hasP && hasQ && hasR {
			bind("Conditional1", "conditional1", gen.Conditionalize(p, r, ""))
			bind("Conditional2", "conditional2", gen.Conditionalize(q, r, ""))
			negated := gen.Negate(r, "")
			bind("Negated_result1", "negated_result1", negated)
			bind("Negated_result2", "negated_result2", negated)
		}
	}
}

// capitalize upper-cases the first letter, the sentence-start form.
func capitalize(sentence string) string {
	runes := []rune(sentence)
	if len(runes) == 0 {
		return sentence
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// lowercase lower-cases the first letter for mid-sentence use, keeping a
// leading "I" as is.
func lowercase(sentence string) string {
	if sentence == "I" || strings.HasPrefix(sentence, "I ") || strings.HasPrefix(sentence, "I'") {
		return sentence
	}
	runes := []rune(sentence)
	if len(runes) == 0 {
		return sentence
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
