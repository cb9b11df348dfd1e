package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/render"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/template"
)

var (
	flagPreviewLanguage   string
	flagPreviewComplexity string
	flagPreviewFormat     string
	flagPreviewCount      int
	flagPreviewDomain     string
	flagPreviewInvalid    bool
	flagPreviewPair       bool
	flagPreviewSeed       uint64
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&flagPreviewLanguage, "language", "l", "", "language pack code")
	previewCmd.Flags().StringVar(&flagPreviewComplexity, "complexity", "", "complexity level")
	previewCmd.Flags().StringVar(&flagPreviewFormat, "format", "standard", "output format")
	previewCmd.Flags().IntVarP(&flagPreviewCount, "count", "n", 1, "number of samples to render")
	previewCmd.Flags().StringVar(&flagPreviewDomain, "domain", "", "render through a domain-flavored template set")
	previewCmd.Flags().BoolVar(&flagPreviewInvalid, "invalid", false, "preview the fallacy instead of the valid form")
	previewCmd.Flags().BoolVar(&flagPreviewPair, "pair", false, "preview a matched pair")
	previewCmd.Flags().Uint64Var(&flagPreviewSeed, "seed", 0, "randomness seed (0 draws one)")
}

var previewCmd = &cobra.Command{
	Use:   "preview [rule]",
	Short: "Render one sample argument",
	Long: "Render a sample argument for a rule without writing a dataset.\n" +
		"With no rule, a random one is picked.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := cfg.Language
		if flagPreviewLanguage != "" {
			lang = flagPreviewLanguage
		}

		gen, err := generate.NewGenerator(lang, cfg.TemplateDirs...)
		if err != nil {
			return err
		}

		seed := flagPreviewSeed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		ruleName := ""
		if len(args) == 1 {
			ruleName = args[0]
			if _, err := rules.Get(ruleName); err != nil {
				return err
			}
		} else {
			all := rules.Names()
			ruleName = all[rng.IntN(len(all))]
		}

		var opts generate.Options
		opts.Domain = flagPreviewDomain
		if flagPreviewComplexity != "" {
			level, err := linguistic.ParseComplexity(flagPreviewComplexity)
			if err != nil {
				return err
			}
			opts.Complexity = level
		}

		format, err := render.ParseFormat(flagPreviewFormat)
		if err != nil {
			return err
		}
		renderer := render.New(format, colorEnabled())

		count := flagPreviewCount
		if count < 1 {
			count = 1
		}

		for i := 0; i < count; i++ {
			if i > 0 {
				fmt.Println()
			}
			if flagPreviewPair {
				pair, err := gen.GeneratePair(rng, ruleName, true, opts)
				if err != nil {
					return err
				}
				out, err := renderer.Pair(pair)
				if err != nil {
					return err
				}
				fmt.Println(out)
				continue
			}

			at := template.Valid
			if flagPreviewInvalid {
				at = template.Invalid
			}
			arg, err := gen.Generate(rng, ruleName, at, opts)
			if err != nil {
				return err
			}
			out, err := renderer.Argument(arg)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	},
}
