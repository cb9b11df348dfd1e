package generate

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/peircelogic/arggen/internal/corpus"
	"github.com/peircelogic/arggen/internal/domain"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/template"
)

// ErrUnknownPreset marks a preset name with no registered mix.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names a ready-made rule mix.
type Preset struct {
	Name        string
	Description string
	Proportions map[string]float64
}

var presets = []Preset{
	{
		Name:        "basic-logic",
		Description: "The two conditional workhorses plus disjunctive syllogism",
		Proportions: map[string]float64{
			"Modus Ponens":          0.4,
			"Modus Tollens":         0.4,
			"Disjunctive Syllogism": 0.2,
		},
	},
	{
		Name:        "conjunctive-disjunctive",
		Description: "Conjunction and disjunction rules only",
		Proportions: map[string]float64{
			"Conjunction Introduction": 0.25,
			"Conjunction Elimination":  0.25,
			"Disjunction Introduction": 0.25,
			"Disjunctive Syllogism":    0.25,
		},
	},
	{
		Name:        "conditional-heavy",
		Description: "Conditional reasoning in all its forms",
		Proportions: map[string]float64{
			"Modus Ponens":                      0.3,
			"Modus Tollens":                     0.3,
			"Hypothetical Syllogism":            0.2,
			"Material Conditional Introduction": 0.2,
		},
	},
	{
		Name:        "balanced",
		Description: "Every rule, equally weighted",
		Proportions: balancedProportions(),
	},
}

func balancedProportions() map[string]float64 {
	names := rules.Names()
	share := 1.0 / float64(len(names))
	out := make(map[string]float64, len(names))
	for _, name := range names {
		out[name] = share
	}
	return out
}

// Presets returns the registered presets.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a preset.
func PresetByName(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
}

// DatasetSpec describes one dataset generation run.
type DatasetSpec struct {
	// Count is the number of arguments, or pairs when Pairs is set.
	Count int

	// Language is the language pack code.
	Language string

	// Complexity steers templates and variation styles; unset means any.
	Complexity linguistic.ComplexityLevel

	// Proportions maps rule names to their share of Count. Empty means
	// the balanced preset.
	Proportions map[string]float64

	// Pairs generates matched valid/fallacy pairs instead of a stream of
	// standalone valid and invalid arguments.
	Pairs bool

	// SharedSentences makes each pair reuse one sentence sample.
	SharedSentences bool

	// Coherent samples sentences by shared-domain affinity.
	Coherent bool

	// Domain renders every argument through the named domain's flavored
	// template set. Empty means the language bank.
	Domain string

	// SentencesFile replaces the builtin corpus with a newline-separated
	// sentence file.
	SentencesFile string

	// Strength attaches heuristic strength scores to every argument.
	Strength bool

	// Seed fixes the randomness source; zero draws a fresh one.
	Seed uint64

	// TemplateDirs are extra template pack directories.
	TemplateDirs []string
}

// Validate rejects specs a run cannot honor.
func (s DatasetSpec) Validate() error {
	var errs []error
	if s.Count <= 0 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", s.Count))
	}
	if s.Language == "" {
		errs = append(errs, errors.New("language is required"))
	}
	if len(s.Proportions) > 0 {
		var sum float64
		for name, share := range s.Proportions {
			if _, err := rules.Get(name); err != nil {
				errs = append(errs, err)
			}
			if share < 0 {
				errs = append(errs, fmt.Errorf("proportion for %s is negative", name))
			}
			sum += share
		}
		if sum < 0.999 || sum > 1.001 {
			errs = append(errs, fmt.Errorf("proportions sum to %.3f, want 1", sum))
		}
	}
	if s.Domain != "" {
		if !slices.Contains(domain.Names(), s.Domain) {
			errs = append(errs, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, s.Domain))
		}
	}
	return errors.Join(errs...)
}

// Dataset is the result of one generation run.
type Dataset struct {
	Spec      DatasetSpec `json:"spec"`
	Arguments []Argument  `json:"arguments,omitempty"`
	Pairs     []Pair      `json:"pairs,omitempty"`
}

// Size returns the number of generated records.
func (d *Dataset) Size() int {
	if len(d.Pairs) > 0 {
		return len(d.Pairs)
	}
	return len(d.Arguments)
}

// Progress reports per-record progress to the caller; done counts
// completed records out of total.
type Progress func(done, total int)

// Apportion turns proportions into integer per-rule counts via largest
// remainder, so counts always sum to total. Rules are processed in
// sorted-name order for stable output.
func Apportion(proportions map[string]float64, total int) map[string]int {
	names := make([]string, 0, len(proportions))
	for name := range proportions {
		names = append(names, name)
	}
	sort.Strings(names)

	type slot struct {
		name      string
		count     int
		remainder float64
	}
	slots := make([]slot, 0, len(names))
	assigned := 0
	for _, name := range names {
		exact := proportions[name] * float64(total)
		count := int(exact)
		slots = append(slots, slot{name: name, count: count, remainder: exact - float64(count)})
		assigned += count
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].remainder > slots[j].remainder
	})
	for i := 0; assigned < total && len(slots) > 0; i = (i + 1) % len(slots) {
		slots[i].count++
		assigned++
	}

	out := make(map[string]int, len(slots))
	for _, s := range slots {
		if s.count > 0 {
			out[s.name] = s.count
		}
	}
	return out
}

// GenerateDataset runs one full generation pass. progress may be nil.
func GenerateDataset(spec DatasetSpec, progress Progress) (*Dataset, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset spec: %w", err)
	}

	gen, err := NewGenerator(spec.Language, spec.TemplateDirs...)
	if err != nil {
		return nil, err
	}
	if spec.SentencesFile != "" {
		pool, err := corpus.Load(spec.SentencesFile)
		if err != nil {
			return nil, err
		}
		gen.SetSentences(pool)
	}

	seed := spec.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	proportions := spec.Proportions
	if len(proportions) == 0 {
		proportions = balancedProportions()
	}
	counts := Apportion(proportions, spec.Count)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := Options{
		Complexity: spec.Complexity,
		Coherent:   spec.Coherent,
		Domain:     spec.Domain,
		Strength:   spec.Strength,
	}

	ds := &Dataset{Spec: spec}
	done := 0
	for _, name := range names {
		for i := 0; i < counts[name]; i++ {
			if spec.Pairs {
				pair, err := gen.GeneratePair(rng, name, spec.SharedSentences, opts)
				if err != nil {
					return nil, err
				}
				ds.Pairs = append(ds.Pairs, pair)
			} else {
				// Alternate valid and invalid so each rule bucket
				// carries both forms.
				at := template.Valid
				if i%2 == 1 {
					at = template.Invalid
				}
				arg, err := gen.Generate(rng, name, at, opts)
				if err != nil {
					return nil, err
				}
				ds.Arguments = append(ds.Arguments, arg)
			}
			done++
			if progress != nil {
				progress(done, spec.Count)
			}
		}
	}
	return ds, nil
}
