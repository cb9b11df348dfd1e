package template

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/peircelogic/arggen/internal/linguistic"
)

// Bank errors.
var (
	ErrNoTemplate = errors.New("no template found")
)

// ArgumentType distinguishes valid-inference templates from their matched
// fallacies.
type ArgumentType string

// Argument types.
const (
	Valid   ArgumentType = "valid"
	Invalid ArgumentType = "invalid"
)

type bankKey struct {
	rule string
	at   ArgumentType
}

// Bank is the template registry, keyed by (rule name, argument type).
// Buckets are append-only during setup and read-only afterwards, so one
// bank can serve many concurrent generators.
type Bank struct {
	mu      sync.RWMutex
	buckets map[bankKey][]*Template
	rules   []string
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{buckets: make(map[bankKey][]*Template)}
}

// Add appends a template to the bucket for a rule and argument type.
func (b *Bank) Add(rule string, at ArgumentType, tmpl *Template) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := bankKey{rule: rule, at: at}
	if len(b.buckets[key]) == 0 && !b.hasRuleLocked(rule) {
		b.rules = append(b.rules, rule)
	}
	b.buckets[key] = append(b.buckets[key], tmpl)
}

func (b *Bank) hasRuleLocked(rule string) bool {
	for _, name := range b.rules {
		if name == rule {
			return true
		}
	}
	return false
}

// Templates returns the bucket for a rule and argument type; absent buckets
// yield an empty slice, never an error.
func (b *Bank) Templates(rule string, at ArgumentType) []*Template {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bucket := b.buckets[bankKey{rule: rule, at: at}]
	out := make([]*Template, len(bucket))
	copy(out, bucket)
	return out
}

// Rules returns the registered rule names in registration order.
func (b *Bank) Rules() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.rules))
	copy(out, b.rules)
	return out
}

// GetOption adjusts template selection.
type GetOption func(*getOptions)

type getOptions struct {
	complexity linguistic.ComplexityLevel
	rng        *rand.Rand
}

// WithComplexity restricts selection to templates tagged with the level.
// When no template in the bucket matches, selection falls back to the whole
// bucket: a caller always gets a template when the rule has any.
func WithComplexity(level linguistic.ComplexityLevel) GetOption {
	return func(o *getOptions) { o.complexity = level }
}

// WithRand injects the randomness source used to pick within a bucket.
func WithRand(rng *rand.Rand) GetOption {
	return func(o *getOptions) { o.rng = rng }
}

// Get picks one template for a rule and argument type, at random within the
// (possibly complexity-filtered) bucket. An empty bucket returns
// ErrNoTemplate wrapped with the rule and type.
func (b *Bank) Get(rule string, at ArgumentType, opts ...GetOption) (*Template, error) {
	var options getOptions
	for _, opt := range opts {
		opt(&options)
	}

	candidates := b.Templates(rule, at)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for %s (%s)", ErrNoTemplate, rule, at)
	}

	if options.complexity.IsValid() {
		filtered := make([]*Template, 0, len(candidates))
		for _, tmpl := range candidates {
			if tmpl.Metadata().Complexity == options.complexity {
				filtered = append(filtered, tmpl)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if options.rng != nil {
		return candidates[options.rng.IntN(len(candidates))], nil
	}
	return candidates[rand.IntN(len(candidates))], nil
}

// GenerateOptions adjusts a GenerateArgument call.
type GenerateOptions struct {
	// Complexity filters template selection; unset means any.
	Complexity linguistic.ComplexityLevel

	// Preferences pins named variation points to specific choices.
	Preferences map[string]string

	// Rand is the randomness source for template and variation selection.
	Rand *rand.Rand
}

// GenerateArgument is the bank's single entry point for callers assembling
// arguments: select a template and render it against the variable bindings.
// When no template is registered for the rule and type it returns a
// readable diagnostic instead of failing, keeping batch loops alive.
func (b *Bank) GenerateArgument(rule string, variables map[string]string, at ArgumentType, opts GenerateOptions) string {
	tmpl, err := b.Get(rule, at, WithComplexity(opts.Complexity), WithRand(opts.Rand))
	if err != nil {
		return fmt.Sprintf("No template found for %s (%s)", rule, at)
	}

	return tmpl.Render(&RenderContext{
		Variables: variables,
		Choices:   opts.Preferences,
		Rand:      opts.Rand,
	})
}

// RuleCount holds per-type template counts for one rule.
type RuleCount struct {
	Valid   int
	Invalid int
}

// Total returns the rule's combined template count.
func (c RuleCount) Total() int { return c.Valid + c.Invalid }

// BankStats summarizes the bank's contents.
type BankStats struct {
	TotalRules     int
	TotalTemplates int
	PerRule        map[string]RuleCount
}

// Stats reports rule and template counts.
func (b *Bank) Stats() BankStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := BankStats{PerRule: make(map[string]RuleCount, len(b.rules))}
	stats.TotalRules = len(b.rules)
	for key, bucket := range b.buckets {
		count := stats.PerRule[key.rule]
		switch key.at {
		case Valid:
			count.Valid += len(bucket)
		case Invalid:
			count.Invalid += len(bucket)
		}
		stats.PerRule[key.rule] = count
		stats.TotalTemplates += len(bucket)
	}
	return stats
}
