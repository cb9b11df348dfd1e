package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, 100, cfg.Count)
	require.Equal(t, "balanced", cfg.Preset)
	require.InDelta(t, 0.8, cfg.Output.Splits.Train, 1e-9)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
language: es
count: 250
pairs: true
output:
  format: csv
  splits:
    train: 0.7
    validation: 0.2
    test: 0.1
eval:
  provider: openai
  model: gpt-4o-mini
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("ARGGEN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "es", cfg.Language)
	require.Equal(t, 250, cfg.Count)
	require.True(t, cfg.Pairs)
	require.Equal(t, "csv", cfg.Output.Format)
	require.InDelta(t, 0.7, cfg.Output.Splits.Train, 1e-9)
	require.Equal(t, "openai", cfg.Eval.Provider)
	require.Equal(t, "gpt-4o-mini", cfg.Eval.Model)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("ARGGEN_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ARGGEN_LANGUAGE", "es")
	t.Setenv("ARGGEN_COUNT", "30")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "es", cfg.Language)
	require.Equal(t, 30, cfg.Count)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = -1
	cfg.Language = "xx"
	cfg.Complexity = "wizardly"
	cfg.Output.Splits = Splits{Train: 0.5, Validation: 0.1, Test: 0.1}
	cfg.Output.Format = "parquet"
	cfg.Proportions = map[string]float64{"No Such Rule": 1.0}

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "count must be positive")
	require.Contains(t, err.Error(), "unknown language")
	require.Contains(t, err.Error(), "splits sum to 0.700")
	require.Contains(t, err.Error(), "parquet")
	require.Contains(t, err.Error(), "unknown rule")
}

func TestProfiles(t *testing.T) {
	names := make([]string, 0)
	for _, p := range Profiles() {
		names = append(names, p.Name)

		// Every profile must overlay into a configuration that still
		// validates.
		cfg := DefaultConfig()
		p.Apply(cfg)
		require.NoError(t, cfg.Validate(), "profile %s", p.Name)
	}
	require.ElementsMatch(t, []string{"beginner", "advanced-logic", "multilingual-demo"}, names)

	_, err := ProfileByName("expert-mode")
	require.ErrorIs(t, err, ErrUnknownProfile)
}

func TestProfileApplyOverlaysOnlySetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 250
	cfg.Proportions = map[string]float64{"Modus Ponens": 1.0}

	p, err := ProfileByName("beginner")
	require.NoError(t, err)
	p.Apply(cfg)

	require.Equal(t, "en", cfg.Language)
	require.Equal(t, "basic", cfg.Complexity)
	require.Equal(t, "everyday", cfg.Domain)
	require.Equal(t, "basic-logic", cfg.Preset)
	require.True(t, cfg.Coherent)
	require.Nil(t, cfg.Proportions, "profile preset replaces explicit proportions")
	require.Equal(t, 250, cfg.Count, "unset profile fields leave config alone")
}
