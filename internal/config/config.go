// Package config loads the arggen configuration from file, environment
// and defaults, in that order of increasing precedence for env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/peircelogic/arggen/internal/language"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
)

// Config is the full arggen configuration tree.
type Config struct {
	Language    string             `mapstructure:"language"`
	Count       int                `mapstructure:"count"`
	Complexity  string             `mapstructure:"complexity"`
	Preset      string             `mapstructure:"preset"`
	Proportions map[string]float64 `mapstructure:"proportions"`

	Pairs           bool   `mapstructure:"pairs"`
	SharedSentences bool   `mapstructure:"shared_sentences"`
	Coherent        bool   `mapstructure:"coherent"`
	Domain          string `mapstructure:"domain"`
	SentencesFile   string `mapstructure:"sentences_file"`
	Seed            uint64 `mapstructure:"seed"`

	Output  OutputConfig  `mapstructure:"output"`
	Eval    EvalConfig    `mapstructure:"eval"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Log     LogConfig     `mapstructure:"log"`

	TemplateDirs []string `mapstructure:"template_dirs"`
}

// OutputConfig controls export targets.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
	Splits Splits `mapstructure:"splits"`
	Card   bool   `mapstructure:"card"`
}

// Splits carries the train/validation/test shares.
type Splits struct {
	Train      float64 `mapstructure:"train"`
	Validation float64 `mapstructure:"validation"`
	Test       float64 `mapstructure:"test"`
}

// EvalConfig controls the evaluation harness.
type EvalConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Style    string `mapstructure:"style"`
	Workers  int    `mapstructure:"workers"`
	Retries  int    `mapstructure:"retries"`
}

// ArchiveConfig controls run history persistence.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		Count:    100,
		Preset:   "balanced",
		Output: OutputConfig{
			Dir:    "dataset",
			Format: "jsonl",
			Splits: Splits{Train: 0.8, Validation: 0.1, Test: 0.1},
			Card:   true,
		},
		Eval: EvalConfig{
			Provider: "ollama",
			Style:    "standard",
			Workers:  4,
			Retries:  3,
		},
		Archive: ArchiveConfig{
			Enabled: true,
			Path:    defaultArchivePath(),
		},
		Log: LogConfig{Level: "info"},
	}
}

func defaultArchivePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".arggen", "archive.db")
	}
	return filepath.Join(base, "arggen", "archive.db")
}

// Load reads configuration: defaults, then the config file, then
// ARGGEN_-prefixed environment variables. The file is $ARGGEN_CONFIG if
// set, otherwise ./arggen.yaml, otherwise the user config directory. A
// missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("ARGGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := os.Getenv("ARGGEN_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("arggen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if base, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(base, "arggen"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist and parse; a missing
		// default file is fine.
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("language", cfg.Language)
	v.SetDefault("count", cfg.Count)
	v.SetDefault("preset", cfg.Preset)
	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.splits.train", cfg.Output.Splits.Train)
	v.SetDefault("output.splits.validation", cfg.Output.Splits.Validation)
	v.SetDefault("output.splits.test", cfg.Output.Splits.Test)
	v.SetDefault("output.card", cfg.Output.Card)
	v.SetDefault("eval.provider", cfg.Eval.Provider)
	v.SetDefault("eval.style", cfg.Eval.Style)
	v.SetDefault("eval.workers", cfg.Eval.Workers)
	v.SetDefault("eval.retries", cfg.Eval.Retries)
	v.SetDefault("archive.enabled", cfg.Archive.Enabled)
	v.SetDefault("archive.path", cfg.Archive.Path)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.pretty", cfg.Log.Pretty)
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Count <= 0 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", c.Count))
	}
	if _, err := language.Get(c.Language); err != nil {
		errs = append(errs, err)
	}
	if c.Complexity != "" {
		if _, err := linguistic.ParseComplexity(c.Complexity); err != nil {
			errs = append(errs, err)
		}
	}

	if len(c.Proportions) > 0 {
		var sum float64
		for name, share := range c.Proportions {
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

	splits := c.Output.Splits
	sum := splits.Train + splits.Validation + splits.Test
	if sum < 0.999 || sum > 1.001 {
		errs = append(errs, fmt.Errorf("splits sum to %.3f, want 1", sum))
	}
	if splits.Train < 0 || splits.Validation < 0 || splits.Test < 0 {
		errs = append(errs, errors.New("splits must be non-negative"))
	}

	switch c.Output.Format {
	case "jsonl", "csv", "":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", c.Output.Format))
	}

	if c.Eval.Workers < 0 {
		errs = append(errs, fmt.Errorf("eval workers must be non-negative, got %d", c.Eval.Workers))
	}

	return errors.Join(errs...)
}
