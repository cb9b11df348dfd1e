package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configProfilesCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the named configuration profiles",
	Long: "List the profiles that --profile can apply. A profile overlays its\n" +
		"settings onto the loaded configuration; flags still override it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, p := range config.Profiles() {
			rows = append(rows, []string{
				p.Name,
				p.Description,
				p.Language,
				p.Complexity,
				p.Preset,
				p.Domain,
			})
		}
		return writeTable(os.Stdout, []string{"PROFILE", "DESCRIPTION", "LANGUAGE", "COMPLEXITY", "PRESET", "DOMAIN"}, rows)
	},
}
