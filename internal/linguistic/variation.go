package linguistic

import (
	"fmt"
	"strings"
)

// VariationKind identifies a family of phrase patterns.
type VariationKind string

// Supported variation families.
const (
	KindNegation    VariationKind = "negation"
	KindConjunction VariationKind = "conjunction"
	KindDisjunction VariationKind = "disjunction"
	KindConditional VariationKind = "conditional"
)

// Kinds returns the variation families in declaration order.
func Kinds() []VariationKind {
	return []VariationKind{KindNegation, KindConjunction, KindDisjunction, KindConditional}
}

// DefaultStyle returns the fallback style name for a variation family.
// Negation falls back to "simple"; everything else to "standard".
func DefaultStyle(kind VariationKind) string {
	if kind == KindNegation {
		return "simple"
	}
	return "standard"
}

// StyleBucket is a named group of interchangeable phrase patterns. Patterns
// use {sentence}, {p}/{q}, or {antecedent}/{consequent} slots depending on
// the family they belong to.
type StyleBucket struct {
	Name    string
	Phrases []string
}

// PhraseLibrary holds the phrase buckets for one language, keyed by
// variation family. Bucket order within a family is the declared order and
// drives the first/last fallbacks in style selection.
type PhraseLibrary struct {
	buckets map[VariationKind][]StyleBucket
}

// NewPhraseLibrary returns an empty library.
func NewPhraseLibrary() *PhraseLibrary {
	return &PhraseLibrary{buckets: make(map[VariationKind][]StyleBucket)}
}

// AddStyle appends a style bucket to a family. Re-adding an existing style
// replaces its phrases in place, preserving the declared order.
func (l *PhraseLibrary) AddStyle(kind VariationKind, style string, phrases ...string) {
	style = strings.TrimSpace(style)
	for i, bucket := range l.buckets[kind] {
		if bucket.Name == style {
			l.buckets[kind][i].Phrases = phrases
			return
		}
	}
	l.buckets[kind] = append(l.buckets[kind], StyleBucket{Name: style, Phrases: phrases})
}

// Styles returns the style names declared for a family, in order.
func (l *PhraseLibrary) Styles(kind VariationKind) []string {
	buckets := l.buckets[kind]
	names := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		names = append(names, bucket.Name)
	}
	return names
}

// Phrases returns the phrase patterns for a family and style. The second
// return is false when the style is not declared.
func (l *PhraseLibrary) Phrases(kind VariationKind, style string) ([]string, bool) {
	for _, bucket := range l.buckets[kind] {
		if bucket.Name == style {
			return bucket.Phrases, true
		}
	}
	return nil, false
}

// Validate checks that every declared bucket has at least one phrase and
// that every phrase carries the slots its family requires.
func (l *PhraseLibrary) Validate() error {
	required := map[VariationKind][]string{
		KindNegation:    {"{sentence}"},
		KindConjunction: {"{p}", "{q}"},
		KindDisjunction: {"{p}", "{q}"},
		KindConditional: {"{antecedent}", "{consequent}"},
	}

	for kind, buckets := range l.buckets {
		for _, bucket := range buckets {
			if len(bucket.Phrases) == 0 {
				return fmt.Errorf("%s style %q has no phrases", kind, bucket.Name)
			}
			for _, phrase := range bucket.Phrases {
				for _, slot := range required[kind] {
					if !strings.Contains(phrase, slot) {
						return fmt.Errorf("%s style %q phrase %q is missing %s", kind, bucket.Name, phrase, slot)
					}
				}
			}
		}
	}
	return nil
}
