package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/archive"
	"github.com/peircelogic/arggen/internal/export"
	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/logging"
)

var (
	flagGenCount      int
	flagGenLanguage   string
	flagGenComplexity string
	flagGenPreset     string
	flagGenPairs      bool
	flagGenShared     bool
	flagGenCoherent   bool
	flagGenDomain     string
	flagGenSentences  string
	flagGenStrength   bool
	flagGenNoRepeat   bool
	flagGenSeed       uint64
	flagGenOutput     string
	flagGenFormat     string
	flagGenSplits     bool
	flagGenCard       bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&flagGenCount, "count", "n", 0, "number of arguments (or pairs)")
	generateCmd.Flags().StringVarP(&flagGenLanguage, "language", "l", "", "language pack code")
	generateCmd.Flags().StringVar(&flagGenComplexity, "complexity", "", "complexity level (basic, intermediate, advanced, expert)")
	generateCmd.Flags().StringVar(&flagGenPreset, "preset", "", "rule mix preset")
	generateCmd.Flags().BoolVar(&flagGenPairs, "pairs", false, "generate matched valid/fallacy pairs")
	generateCmd.Flags().BoolVar(&flagGenShared, "shared-sentences", false, "pairs reuse one sentence sample")
	generateCmd.Flags().BoolVar(&flagGenCoherent, "coherent", false, "sample sentences by shared-domain affinity")
	generateCmd.Flags().StringVar(&flagGenDomain, "domain", "", "render through a domain-flavored template set (everyday, scientific, business, academic)")
	generateCmd.Flags().StringVar(&flagGenSentences, "sentences", "", "newline-separated sentence file replacing the builtin corpus")
	generateCmd.Flags().BoolVar(&flagGenStrength, "strength", false, "attach heuristic strength scores to each record")
	generateCmd.Flags().BoolVar(&flagGenNoRepeat, "no-repeat", false, "drop arguments already recorded in the archive")
	generateCmd.Flags().Uint64Var(&flagGenSeed, "seed", 0, "randomness seed (0 draws one)")
	generateCmd.Flags().StringVarP(&flagGenOutput, "output", "o", "", "output directory")
	generateCmd.Flags().StringVar(&flagGenFormat, "format", "", "output format (jsonl, csv)")
	generateCmd.Flags().BoolVar(&flagGenSplits, "splits", false, "write train/validation/test splits")
	generateCmd.Flags().BoolVar(&flagGenCard, "card", false, "write a dataset card README.md")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an argument dataset",
	Long: "Generate natural-language arguments and write them as a dataset.\n" +
		"Flags override the loaded configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, preset, err := buildDatasetSpec(cmd)
		if err != nil {
			return err
		}

		progress := newProgressPrinter("generating", spec.Count)
		dataset, err := generate.GenerateDataset(spec, progress.update)
		if err != nil {
			progress.fail()
			return err
		}
		progress.done()

		if flagGenNoRepeat {
			if !cfg.Archive.Enabled {
				return fmt.Errorf("--no-repeat needs the archive enabled")
			}
			dropped, err := dropRepeats(cmd.Context(), dataset)
			if err != nil {
				return err
			}
			if dropped > 0 {
				fmt.Printf("Dropped %d argument(s) already in the archive\n", dropped)
			}
		}

		outDir := cfg.Output.Dir
		if flagGenOutput != "" {
			outDir = flagGenOutput
		}
		if err := writeDataset(dataset, outDir, preset); err != nil {
			return err
		}

		if cfg.Archive.Enabled {
			if err := recordRun(cmd.Context(), dataset, preset); err != nil {
				// The dataset is already on disk; history is advisory.
				logger := logging.Component("cli")
				logger.Warn().Err(err).Msg("recording run failed")
			}
		}

		fmt.Printf("Wrote %d records to %s\n", dataset.Size(), outDir)
		return nil
	},
}

func buildDatasetSpec(cmd *cobra.Command) (generate.DatasetSpec, string, error) {
	spec := generate.DatasetSpec{
		Count:           cfg.Count,
		Language:        cfg.Language,
		Proportions:     cfg.Proportions,
		Pairs:           cfg.Pairs,
		SharedSentences: cfg.SharedSentences,
		Coherent:        cfg.Coherent,
		Domain:          cfg.Domain,
		SentencesFile:   cfg.SentencesFile,
		Seed:            cfg.Seed,
		TemplateDirs:    cfg.TemplateDirs,
	}

	if flagGenCount > 0 {
		spec.Count = flagGenCount
	}
	if flagGenLanguage != "" {
		spec.Language = flagGenLanguage
	}
	if cmd.Flags().Changed("pairs") {
		spec.Pairs = flagGenPairs
	}
	if cmd.Flags().Changed("shared-sentences") {
		spec.SharedSentences = flagGenShared
	}
	if cmd.Flags().Changed("coherent") {
		spec.Coherent = flagGenCoherent
	}
	if flagGenDomain != "" {
		spec.Domain = flagGenDomain
	}
	if flagGenSentences != "" {
		spec.SentencesFile = flagGenSentences
	}
	if flagGenStrength {
		spec.Strength = true
	}
	if flagGenSeed != 0 {
		spec.Seed = flagGenSeed
	}

	complexity := cfg.Complexity
	if flagGenComplexity != "" {
		complexity = flagGenComplexity
	}
	if complexity != "" {
		level, err := linguistic.ParseComplexity(complexity)
		if err != nil {
			return generate.DatasetSpec{}, "", err
		}
		spec.Complexity = level
	}

	preset := cfg.Preset
	if flagGenPreset != "" {
		preset = flagGenPreset
	}
	if len(spec.Proportions) == 0 && preset != "" {
		p, err := generate.PresetByName(preset)
		if err != nil {
			return generate.DatasetSpec{}, "", err
		}
		spec.Proportions = p.Proportions
	}

	return spec, preset, nil
}

func writeDataset(dataset *generate.Dataset, outDir, preset string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	format := cfg.Output.Format
	if flagGenFormat != "" {
		format = flagGenFormat
	}

	var splits *export.Splits

	switch {
	case len(dataset.Pairs) > 0:
		if err := writeFile(outDir, "pairs", format, func(f *os.File) error {
			if format == "csv" {
				return export.WritePairsCSV(f, dataset.Pairs)
			}
			return export.WritePairsJSONL(f, dataset.Pairs)
		}); err != nil {
			return err
		}

	case flagGenSplits:
		seed := dataset.Spec.Seed
		rng := rand.New(rand.NewPCG(seed, seed+1))
		ratios := export.SplitRatios{
			Train:      cfg.Output.Splits.Train,
			Validation: cfg.Output.Splits.Validation,
			Test:       cfg.Output.Splits.Test,
		}
		split, err := export.Split(rng, dataset.Arguments, ratios)
		if err != nil {
			return err
		}
		splits = &split

		parts := []struct {
			name string
			args []generate.Argument
		}{
			{"arguments_train", split.Train},
			{"arguments_validation", split.Validation},
			{"arguments_test", split.Test},
		}
		for _, part := range parts {
			args := part.args
			if err := writeFile(outDir, part.name, format, func(f *os.File) error {
				if format == "csv" {
					return export.WriteCSV(f, args)
				}
				return export.WriteJSONL(f, args)
			}); err != nil {
				return err
			}
		}

	default:
		if err := writeFile(outDir, "arguments", format, func(f *os.File) error {
			if format == "csv" {
				return export.WriteCSV(f, dataset.Arguments)
			}
			return export.WriteJSONL(f, dataset.Arguments)
		}); err != nil {
			return err
		}
	}

	if flagGenCard || cfg.Output.Card {
		f, err := os.Create(filepath.Join(outDir, "README.md"))
		if err != nil {
			return fmt.Errorf("creating dataset card: %w", err)
		}
		defer f.Close()
		return export.WriteCard(f, export.CardInfo{
			Name:      "arggen " + preset,
			Language:  dataset.Spec.Language,
			Seed:      dataset.Spec.Seed,
			Arguments: dataset.Arguments,
			Pairs:     dataset.Pairs,
			Splits:    splits,
		})
	}
	return nil
}

func writeFile(dir, stem, format string, write func(*os.File) error) error {
	ext := ".jsonl"
	if format == "csv" {
		ext = ".csv"
	}
	f, err := os.Create(filepath.Join(dir, stem+ext))
	if err != nil {
		return fmt.Errorf("creating %s%s: %w", stem, ext, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dropRepeats removes arguments whose text fingerprint already exists in
// the archive. Pairs drop when either side repeats.
func dropRepeats(ctx context.Context, dataset *generate.Dataset) (int, error) {
	a, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return 0, err
	}
	defer a.Close()

	seen := func(text string) (bool, error) {
		return a.SeenHash(ctx, archive.HashText(text))
	}

	dropped := 0
	if len(dataset.Pairs) > 0 {
		kept := dataset.Pairs[:0]
		for _, pair := range dataset.Pairs {
			validSeen, err := seen(pair.Valid.Text)
			if err != nil {
				return dropped, err
			}
			invalidSeen, err := seen(pair.Invalid.Text)
			if err != nil {
				return dropped, err
			}
			if validSeen || invalidSeen {
				dropped++
				continue
			}
			kept = append(kept, pair)
		}
		dataset.Pairs = kept
		return dropped, nil
	}

	kept := dataset.Arguments[:0]
	for _, arg := range dataset.Arguments {
		repeat, err := seen(arg.Text)
		if err != nil {
			return dropped, err
		}
		if repeat {
			dropped++
			continue
		}
		kept = append(kept, arg)
	}
	dataset.Arguments = kept
	return dropped, nil
}

func recordRun(ctx context.Context, dataset *generate.Dataset, preset string) error {
	a, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return err
	}
	defer a.Close()

	runID, err := a.RecordRun(ctx, archive.Run{
		Language: dataset.Spec.Language,
		Count:    dataset.Size(),
		Pairs:    dataset.Spec.Pairs,
		Seed:     dataset.Spec.Seed,
		Preset:   preset,
	})
	if err != nil {
		return err
	}

	hashes := make(map[string]string)
	for _, arg := range dataset.Arguments {
		hashes[archive.HashText(arg.Text)] = arg.Rule
	}
	for _, pair := range dataset.Pairs {
		hashes[archive.HashText(pair.Valid.Text)] = pair.Valid.Rule
		hashes[archive.HashText(pair.Invalid.Text)] = pair.Invalid.Rule
	}
	return a.MarkHashes(ctx, runID, hashes)
}
