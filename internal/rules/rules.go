// Package rules defines the inference rule registry: eleven valid rules,
// each paired with the fallacy that mimics its surface form.
package rules

import (
	"errors"
	"fmt"
)

// Rule registry errors.
var (
	ErrUnknownRule = errors.New("unknown rule")
)

// Structure identifies the logical shape a rule's templates are built
// around, which drives how many sentences the caller must supply and which
// compound variables get synthesized.
type Structure string

// Rule structures.
const (
	StructureConditional            Structure = "conditional"
	StructureConditionalNegation    Structure = "conditional_negation"
	StructureDisjunctive            Structure = "disjunctive"
	StructureConjunction            Structure = "conjunction"
	StructureConjunctionElimination Structure = "conjunction_elimination"
	StructureDisjunctionIntro       Structure = "disjunction_intro"
	StructureDisjunctionElimination Structure = "disjunction_elimination"
	StructureHypothetical           Structure = "hypothetical"
	StructureMaterialConditional    Structure = "material_conditional"
	StructureConstructiveDilemma    Structure = "constructive_dilemma"
	StructureDestructiveDilemma     Structure = "destructive_dilemma"
)

// Rule describes one inference rule and its fallacy counterpart.
type Rule struct {
	// Name is the canonical rule name and the template bank key.
	Name string

	// Counterpart is the name of the matched invalid form.
	Counterpart string

	// Description sketches the valid and invalid schemas.
	Description string

	// Sentences is how many distinct sentences the rule consumes.
	Sentences int

	// Structure selects the compound variables synthesized before render.
	Structure Structure
}

var registry = []Rule{
	{
		Name:        "Modus Ponens",
		Counterpart: "Affirming the Consequent",
		Description: "If P→Q, P ∴ Q vs If P→Q, Q ∴ P",
		Sentences:   2,
		Structure:   StructureConditional,
	},
	{
		Name:        "Modus Tollens",
		Counterpart: "Denying the Antecedent",
		Description: "If P→Q, ¬Q ∴ ¬P vs If P→Q, ¬P ∴ ¬Q",
		Sentences:   2,
		Structure:   StructureConditionalNegation,
	},
	{
		Name:        "Disjunctive Syllogism",
		Counterpart: "Affirming a Disjunct",
		Description: "P∨Q, ¬P ∴ Q vs P∨Q, P ∴ ¬Q",
		Sentences:   2,
		Structure:   StructureDisjunctive,
	},
	{
		Name:        "Conjunction Introduction",
		Counterpart: "False Conjunction",
		Description: "P, Q ∴ P∧Q vs P ∴ P∧Q",
		Sentences:   2,
		Structure:   StructureConjunction,
	},
	{
		Name:        "Conjunction Elimination",
		Counterpart: "Composition Fallacy",
		Description: "P∧Q ∴ P vs group has P ∴ all have P",
		Sentences:   2,
		Structure:   StructureConjunctionElimination,
	},
	{
		Name:        "Disjunction Introduction",
		Counterpart: "Invalid Conjunction Introduction",
		Description: "P ∴ P∨Q vs P ∴ P∧Q",
		Sentences:   2,
		Structure:   StructureDisjunctionIntro,
	},
	{
		Name:        "Disjunction Elimination",
		Counterpart: "Invalid Disjunction Elimination",
		Description: "complete vs incomplete case analysis",
		Sentences:   3,
		Structure:   StructureDisjunctionElimination,
	},
	{
		Name:        "Hypothetical Syllogism",
		Counterpart: "Non Sequitur",
		Description: "P→Q, Q→R ∴ P→R vs P ∴ Q",
		Sentences:   3,
		Structure:   StructureHypothetical,
	},
	{
		Name:        "Material Conditional Introduction",
		Counterpart: "Invalid Material Conditional Introduction",
		Description: "valid conditional formation vs unwarranted variables",
		Sentences:   3,
		Structure:   StructureMaterialConditional,
	},
	{
		Name:        "Constructive Dilemma",
		Counterpart: "False Dilemma",
		Description: "P→R, Q→R, P∨Q ∴ R vs limited options",
		Sentences:   3,
		Structure:   StructureConstructiveDilemma,
	},
	{
		Name:        "Destructive Dilemma",
		Counterpart: "Invalid Destructive Dilemma",
		Description: "P→R, Q→R, ¬R ∴ ¬P∧¬Q vs invalid conclusion",
		Sentences:   3,
		Structure:   StructureDestructiveDilemma,
	},
}

// Get looks up a rule by its canonical name.
func Get(name string) (Rule, error) {
	for _, rule := range registry {
		if rule.Name == name {
			return rule, nil
		}
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// All returns every rule in registration order.
func All() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

// Names returns the canonical rule names in registration order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, rule := range registry {
		names = append(names, rule.Name)
	}
	return names
}

// BySentenceCount returns the rules consuming exactly count sentences.
func BySentenceCount(count int) []Rule {
	var out []Rule
	for _, rule := range registry {
		if rule.Sentences == count {
			out = append(out, rule)
		}
	}
	return out
}

// CounterpartOf returns the fallacy name matched to a valid rule.
func CounterpartOf(name string) (string, error) {
	rule, err := Get(name)
	if err != nil {
		return "", err
	}
	return rule.Counterpart, nil
}
