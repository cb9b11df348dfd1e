package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/rules"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the supported inference rules",
	Long:  "List every inference rule with its paired fallacy, argument pattern, and sentence arity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, rule := range rules.All() {
			rows = append(rows, []string{
				rule.Name,
				rule.Counterpart,
				rule.Description,
				strconv.Itoa(rule.Sentences),
			})
		}
		return writeTable(os.Stdout, []string{"RULE", "FALLACY", "PATTERN", "SENTENCES"}, rows)
	},
}
