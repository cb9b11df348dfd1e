package generate

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/peircelogic/arggen/internal/coherence"
	"github.com/peircelogic/arggen/internal/corpus"
	"github.com/peircelogic/arggen/internal/domain"
	"github.com/peircelogic/arggen/internal/language"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/strength"
	"github.com/peircelogic/arggen/internal/template"
)

// Argument is one generated natural-language argument.
type Argument struct {
	ID         string                     `json:"id"`
	Rule       string                     `json:"rule"`
	Type       template.ArgumentType      `json:"type"`
	Language   string                     `json:"language"`
	Complexity linguistic.ComplexityLevel `json:"complexity"`
	Sentences  []string                   `json:"sentences"`
	Text       string                     `json:"text"`
	Domain     string                     `json:"domain,omitempty"`
	Tags       []string                   `json:"tags,omitempty"`
	Strength   *strength.Report           `json:"strength,omitempty"`
}

// DisplayRule is the rule name shown to readers: the logical rule for
// valid arguments, the paired fallacy for invalid ones.
func (a Argument) DisplayRule() string {
	if a.Type == template.Invalid {
		if fallacy, err := rules.CounterpartOf(a.Rule); err == nil {
			return fallacy
		}
	}
	return a.Rule
}

// Generator assembles arguments from a language pack and its template
// bank. Methods take the randomness source so callers control
// determinism per batch.
type Generator struct {
	pack      *language.Pack
	bank      *template.Bank
	scorer    *coherence.Scorer
	domains   *domain.Set
	sentences []string
}

// domainCacheSize covers every (domain, rule, type, complexity)
// combination with room to spare.
const domainCacheSize = 512

// NewGenerator wires a generator for one language. userDirs are extra
// template pack directories merged over the builtin packs.
func NewGenerator(code string, userDirs ...string) (*Generator, error) {
	pack, err := language.Get(code)
	if err != nil {
		return nil, err
	}
	bank, err := language.BuildBank(code, userDirs...)
	if err != nil {
		return nil, err
	}
	domains, err := domain.NewSet(domainCacheSize)
	if err != nil {
		return nil, err
	}
	return &Generator{
		pack:      pack,
		bank:      bank,
		scorer:    coherence.NewScorer(pack.DomainKeywords),
		domains:   domains,
		sentences: pack.Corpus,
	}, nil
}

// SetSentences replaces the builtin corpus with a custom sentence pool.
func (g *Generator) SetSentences(pool []string) {
	g.sentences = pool
}

// Bank exposes the generator's template bank for inspection commands.
func (g *Generator) Bank() *template.Bank { return g.bank }

// Pack exposes the generator's language pack.
func (g *Generator) Pack() *language.Pack { return g.pack }

// Options adjusts a single Generate call.
type Options struct {
	// Complexity steers both template filtering and variation style.
	Complexity linguistic.ComplexityLevel

	// Preferences pins named variation points, value or index.
	Preferences map[string]string

	// Sentences overrides corpus sampling; must cover the rule's arity.
	Sentences []string

	// Coherent samples sentences by shared-domain affinity instead of
	// uniformly.
	Coherent bool

	// Domain renders through the named domain's flavored template set
	// instead of the language bank.
	Domain string

	// Strength attaches heuristic strength scores to the argument.
	Strength bool
}

// coherenceAttempts is the best-of-N budget for coherent sampling.
const coherenceAttempts = 12

// Generate produces one argument for a rule. Sentence sampling, template
// choice and variation choices all draw from rng.
func (g *Generator) Generate(rng *rand.Rand, ruleName string, at template.ArgumentType, opts Options) (Argument, error) {
	rule, err := rules.Get(ruleName)
	if err != nil {
		return Argument{}, err
	}

	sentences := opts.Sentences
	if len(sentences) < rule.Sentences {
		if opts.Coherent {
			sentences = g.scorer.SampleCoherent(rng, g.sentences, rule.Sentences, coherenceAttempts)
		} else {
			sentences = corpus.Sample(rng, g.sentences, rule.Sentences)
		}
	} else {
		sentences = sentences[:rule.Sentences]
	}

	gen := linguistic.NewGenerator(g.pack.Library, rng)
	gen.SetComplexity(opts.Complexity)
	vars := Variables(g.pack, gen, rng, rule, sentences)

	var text string
	if opts.Domain != "" {
		text, err = g.renderDomain(rng, rule, at, vars, opts)
		if err != nil {
			return Argument{}, err
		}
	} else {
		text = g.bank.GenerateArgument(rule.Name, vars, at, template.GenerateOptions{
			Complexity:  opts.Complexity,
			Preferences: opts.Preferences,
			Rand:        rng,
		})
	}

	arg := Argument{
		ID:         uuid.NewString(),
		Rule:       rule.Name,
		Type:       at,
		Language:   g.pack.Code,
		Complexity: opts.Complexity,
		Sentences:  sentences,
		Text:       text,
	}
	if opts.Domain != "" {
		arg.Domain = opts.Domain
	} else if opts.Coherent {
		if domains := g.scorer.Domains(text); len(domains) > 0 {
			arg.Domain = domains[0]
		}
	}
	if opts.Strength {
		report := strength.Analyze(text, at == template.Valid)
		arg.Strength = &report
	}
	return arg, nil
}

// renderDomain renders through a flavored template set, picking one of the
// domain's templates for the rule and type.
func (g *Generator) renderDomain(rng *rand.Rand, rule rules.Rule, at template.ArgumentType, vars map[string]string, opts Options) (string, error) {
	candidates, err := g.domains.Templates(opts.Domain, rule, at, opts.Complexity)
	if err != nil {
		return "", err
	}
	tmpl := candidates[rng.IntN(len(candidates))]
	return tmpl.Render(&template.RenderContext{
		Variables: vars,
		Choices:   opts.Preferences,
		Rand:      rng,
	}), nil
}

// Pair holds a valid argument and its matched fallacy.
type Pair struct {
	Valid   Argument `json:"valid"`
	Invalid Argument `json:"invalid"`
}

// GeneratePair produces a valid argument and the paired fallacy. When
// shared is true both draw from the same sampled sentences, so the pair
// differs only in logical form.
func (g *Generator) GeneratePair(rng *rand.Rand, ruleName string, shared bool, opts Options) (Pair, error) {
	valid, err := g.Generate(rng, ruleName, template.Valid, opts)
	if err != nil {
		return Pair{}, err
	}

	invalidOpts := opts
	if shared {
		invalidOpts.Sentences = valid.Sentences
	}
	invalid, err := g.Generate(rng, ruleName, template.Invalid, invalidOpts)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Valid: valid, Invalid: invalid}, nil
}
