// Package domain produces domain-flavored template sets (everyday,
// scientific, business, academic) for the rules in the registry, built on
// demand and memoized in an LRU cache.
package domain

import (
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/template"
)

// Domain errors.
var (
	ErrUnknownDomain = errors.New("unknown domain")
)

// flavor holds the phrasing a domain wraps around the bare logical
// skeleton.
type flavor struct {
	// evidence introduces a premise.
	evidence []string
	// inference introduces the conclusion.
	inference []string
}

var flavors = map[string]flavor{
	"everyday": {
		evidence:  []string{"As it happens,", "You can see that", "Plainly,"},
		inference: []string{"So", "That means", "Clearly then,"},
	},
	"scientific": {
		evidence:  []string{"Observations confirm that", "The data show that", "Measurements indicate that"},
		inference: []string{"We conclude that", "The evidence entails that", "It follows that"},
	},
	"business": {
		evidence:  []string{"The report states that", "Our figures show that", "Management confirms that"},
		inference: []string{"Accordingly,", "The bottom line is that", "We therefore project that"},
	},
	"academic": {
		evidence:  []string{"The literature establishes that", "It is well documented that", "Prior work shows that"},
		inference: []string{"It follows that", "One must conclude that", "Hence"},
	},
}

// Names returns the supported domain names, sorted.
func Names() []string {
	names := make([]string, 0, len(flavors))
	for name := range flavors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type cacheKey struct {
	domain     string
	rule       string
	at         template.ArgumentType
	complexity linguistic.ComplexityLevel
}

// Set hands out domain-flavored templates, generating each (domain, rule,
// type, complexity) combination once and caching it.
type Set struct {
	cache *lru.Cache[cacheKey, []*template.Template]
}

// NewSet creates a set with the given cache capacity.
func NewSet(capacity int) (*Set, error) {
	cache, err := lru.New[cacheKey, []*template.Template](capacity)
	if err != nil {
		return nil, fmt.Errorf("create domain cache: %w", err)
	}
	return &Set{cache: cache}, nil
}

// Templates returns the flavored templates for one combination, generating
// them on a cache miss.
func (s *Set) Templates(domain string, rule rules.Rule, at template.ArgumentType, level linguistic.ComplexityLevel) ([]*template.Template, error) {
	fl, ok := flavors[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}

	key := cacheKey{domain: domain, rule: rule.Name, at: at, complexity: level}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	generated := build(fl, domain, rule, at, level)
	s.cache.Add(key, generated)
	return generated, nil
}

// Fill adds flavored templates for every rule to a bank. The generation
// entry point for domain-specific banks.
func (s *Set) Fill(bank *template.Bank, domain string, level linguistic.ComplexityLevel) error {
	for _, rule := range rules.All() {
		for _, at := range []template.ArgumentType{template.Valid, template.Invalid} {
			templates, err := s.Templates(domain, rule, at, level)
			if err != nil {
				return err
			}
			for _, tmpl := range templates {
				bank.Add(rule.Name, at, tmpl)
			}
		}
	}
	return nil
}

// build assembles one flavored template for a combination. The logical
// skeleton comes from the rule structure; the domain contributes its
// evidence and inference phrasings as named variation points.
func build(fl flavor, domain string, rule rules.Rule, at template.ArgumentType, level linguistic.ComplexityLevel) []*template.Template {
	b := template.NewBuilder().
		Complexity(level).
		Domain(domain).
		Tag("generated", "domain")

	premises, conclusion := skeleton(rule, at)
	for _, premise := range premises {
		b.Variation("evidence", fl.evidence...).Text(" " + premise + ". ")
	}
	b.Variation("inference", fl.inference...).Text(" " + conclusion + ".")

	return []*template.Template{b.Build()}
}

// skeleton returns the lowercase premise and conclusion fragments for a
// rule structure. Variables match the vocabulary the variable preparer
// emits.
func skeleton(rule rules.Rule, at template.ArgumentType) (premises []string, conclusion string) {
	valid := at == template.Valid

	switch rule.Structure {
	case rules.StructureConditional:
		if valid {
			return []string{"{conditional}", "{p}"}, "{q}"
		}
		return []string{"{conditional}", "{q}"}, "{p}"

	case rules.StructureConditionalNegation:
		if valid {
			return []string{"{conditional}", "{negated_q}"}, "{negated_p}"
		}
		return []string{"{conditional}", "{negated_p}"}, "{negated_q}"

	case rules.StructureDisjunctive:
		if valid {
			return []string{"{disjunction}", "{negated_p}"}, "{q}"
		}
		return []string{"{disjunction}", "{p}"}, "{negated_q}"

	case rules.StructureConjunction:
		if valid {
			return []string{"{p}", "{q}"}, "{conjunction}"
		}
		return []string{"{p}"}, "{conjunction}"

	case rules.StructureConjunctionElimination:
		if valid {
			return []string{"{conjunction}"}, "{p}"
		}
		return []string{"{conjunction}"}, "{p} on its own establishes that {q}"

	case rules.StructureDisjunctionIntro:
		if valid {
			return []string{"{p}"}, "{disjunction}"
		}
		return []string{"{p}"}, "{conjunction}"

	case rules.StructureDisjunctionElimination:
		if valid {
			return []string{"{disjunction}", "if {p}, then {r}", "if {q}, then {r}"}, "{r}"
		}
		return []string{"{disjunction}", "if {p}, then {r}"}, "{r}"

	case rules.StructureHypothetical:
		if valid {
			return []string{"{conditional1}", "{conditional2}"}, "{conditional3}"
		}
		return []string{"{conditional1}", "{r}"}, "{q}"

	case rules.StructureMaterialConditional:
		if valid {
			return []string{"{q}"}, "if {p}, then {q}"
		}
		return []string{"{q}"}, "if {p}, then {r}"

	case rules.StructureConstructiveDilemma:
		if valid {
			return []string{"{conditional1}", "{conditional2}", "{disjunction}"}, "{r}"
		}
		return []string{"{disjunction}", "{negated_p}"}, "{q} is the only remaining option"

	case rules.StructureDestructiveDilemma:
		if valid {
			return []string{"{conditional1}", "{conditional2}", "{negated_result1}"}, "neither {p} nor {q}"
		}
		return []string{"{conditional1}", "{conditional2}", "{negated_result1}"}, "{p}"
	}

	// Unreached for registered rules; degrade like render does.
	return []string{"{p}"}, "{q}"
}
