package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/wizard"
)

var flagWizardConfig string

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().StringVar(&flagWizardConfig, "config", "arggen.yaml", "where to write the configuration")
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup",
	Long:  "Walk through dataset options interactively and write them to a config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		choices, err := wizard.Run(flagWizardConfig)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s: %d %s arguments, preset %s.\n",
			flagWizardConfig, choices.Count, choices.Language, choices.Preset)
		fmt.Println("Run `arggen generate` to build the dataset.")
		return nil
	},
}
