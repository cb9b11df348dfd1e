// Package linguistic provides complexity levels, phrase style selection, and
// the variation generator that turns sentences into negated, conjoined,
// disjoined, and conditional phrasings.
package linguistic

import (
	"fmt"
	"strings"
)

// ComplexityLevel orders generated arguments from plain to formal phrasing.
type ComplexityLevel int

// Complexity levels, ordered.
const (
	ComplexityUnset ComplexityLevel = iota
	ComplexityBasic
	ComplexityIntermediate
	ComplexityAdvanced
	ComplexityExpert
)

var complexityNames = map[ComplexityLevel]string{
	ComplexityBasic:        "basic",
	ComplexityIntermediate: "intermediate",
	ComplexityAdvanced:     "advanced",
	ComplexityExpert:       "expert",
}

// String returns the lowercase level name, or "unset".
func (c ComplexityLevel) String() string {
	if name, ok := complexityNames[c]; ok {
		return name
	}
	return "unset"
}

// IsValid reports whether c is one of the four defined levels.
func (c ComplexityLevel) IsValid() bool {
	_, ok := complexityNames[c]
	return ok
}

// ParseComplexity converts a level name to a ComplexityLevel.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseComplexity(name string) (ComplexityLevel, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range complexityNames {
		if levelName == cleaned {
			return level, nil
		}
	}
	return ComplexityUnset, fmt.Errorf("unknown complexity level %q", name)
}

// Complexities returns the defined levels in ascending order.
func Complexities() []ComplexityLevel {
	return []ComplexityLevel{
		ComplexityBasic,
		ComplexityIntermediate,
		ComplexityAdvanced,
		ComplexityExpert,
	}
}
