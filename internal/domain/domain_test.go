package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/template"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{"academic", "business", "everyday", "scientific"}, Names())
}

func TestTemplatesUnknownDomain(t *testing.T) {
	set, err := NewSet(16)
	require.NoError(t, err)

	rule, err := rules.Get("Modus Ponens")
	require.NoError(t, err)

	_, err = set.Templates("nautical", rule, template.Valid, linguistic.ComplexityBasic)
	require.ErrorIs(t, err, ErrUnknownDomain)
}

func TestTemplatesGenerateAndCache(t *testing.T) {
	set, err := NewSet(16)
	require.NoError(t, err)

	rule, err := rules.Get("Modus Ponens")
	require.NoError(t, err)

	first, err := set.Templates("scientific", rule, template.Valid, linguistic.ComplexityBasic)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.Equal(t, "scientific", first[0].Metadata().Domain)
	require.Contains(t, first[0].RequiredVariables(), "conditional")

	second, err := set.Templates("scientific", rule, template.Valid, linguistic.ComplexityBasic)
	require.NoError(t, err)
	require.Same(t, first[0], second[0], "cache should return the same templates")
}

func TestFillCoversAllRules(t *testing.T) {
	set, err := NewSet(128)
	require.NoError(t, err)

	bank := template.NewBank()
	require.NoError(t, set.Fill(bank, "business", linguistic.ComplexityIntermediate))

	stats := bank.Stats()
	require.Equal(t, len(rules.All()), stats.TotalRules)
	for _, rule := range rules.All() {
		count := stats.PerRule[rule.Name]
		require.Positive(t, count.Valid, "%s valid", rule.Name)
		require.Positive(t, count.Invalid, "%s invalid", rule.Name)
	}
}

func TestFlavoredTemplateRenders(t *testing.T) {
	set, err := NewSet(16)
	require.NoError(t, err)

	rule, err := rules.Get("Conjunction Elimination")
	require.NoError(t, err)

	templates, err := set.Templates("everyday", rule, template.Valid, linguistic.ComplexityBasic)
	require.NoError(t, err)

	out := templates[0].Render(&template.RenderContext{
		Variables: map[string]string{
			"conjunction": "the coffee is hot and the bread is fresh",
			"p":           "the coffee is hot",
		},
		Choices: map[string]string{
			"evidence":  "Plainly,",
			"inference": "So",
		},
	})
	require.Equal(t, "Plainly, the coffee is hot and the bread is fresh. So the coffee is hot.", out)
}
