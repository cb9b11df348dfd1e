// Package cli implements the arggen command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/peircelogic/arggen/internal/config"
	"github.com/peircelogic/arggen/internal/logging"
)

var (
	cfg *config.Config

	flagLogLevel string
	flagNoColor  bool
	flagProfile  string
)

var rootCmd = &cobra.Command{
	Use:   "arggen",
	Short: "Generate synthetic logical-argument datasets",
	Long: "arggen generates natural-language arguments from formal inference rules\n" +
		"and their paired fallacies, exports them as evaluation datasets, and can\n" +
		"run those datasets against language models.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if flagProfile != "" {
			profile, err := config.ProfileByName(flagProfile)
			if err != nil {
				return err
			}
			profile.Apply(cfg)
		}

		level := cfg.Log.Level
		if flagLogLevel != "" {
			level = flagLogLevel
		}
		logging.Setup(level, cfg.Log.Pretty && hasTTY())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "apply a named configuration profile (see `arggen config profiles`)")
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func colorEnabled() bool {
	if flagNoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
