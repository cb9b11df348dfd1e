package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/language"
	"github.com/peircelogic/arggen/internal/template"
)

var flagTemplatesLanguage string

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesStatsCmd)
	templatesCmd.AddCommand(templatesValidateCmd)

	templatesCmd.PersistentFlags().StringVarP(&flagTemplatesLanguage, "language", "l", "", "language pack code")
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the template bank",
}

func templatesLanguage() string {
	if flagTemplatesLanguage != "" {
		return flagTemplatesLanguage
	}
	return cfg.Language
}

func loadBank() (*template.Bank, error) {
	return language.BuildBank(templatesLanguage(), cfg.TemplateDirs...)
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}

		rows := make([][]string, 0)
		for _, rule := range bank.Rules() {
			for _, at := range []template.ArgumentType{template.Valid, template.Invalid} {
				for _, tmpl := range bank.Templates(rule, at) {
					complexity := ""
					if tmpl.Metadata().Complexity.IsValid() {
						complexity = tmpl.Metadata().Complexity.String()
					}
					rows = append(rows, []string{rule, string(at), complexity, tmpl.Text()})
				}
			}
		}
		return writeTable(os.Stdout, []string{"RULE", "TYPE", "COMPLEXITY", "TEMPLATE"}, rows)
	},
}

var templatesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show template bank statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}
		stats := bank.Stats()

		names := make([]string, 0, len(stats.PerRule))
		for name := range stats.PerRule {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			count := stats.PerRule[name]
			rows = append(rows, []string{
				name,
				strconv.Itoa(count.Valid),
				strconv.Itoa(count.Invalid),
				strconv.Itoa(count.Total()),
			})
		}
		if err := writeTable(os.Stdout, []string{"RULE", "VALID", "INVALID", "TOTAL"}, rows); err != nil {
			return err
		}
		fmt.Printf("\n%d rules, %d templates\n", stats.TotalRules, stats.TotalTemplates)
		return nil
	},
}

var templatesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every registered template",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank()
		if err != nil {
			return err
		}

		problems := 0
		for _, rule := range bank.Rules() {
			for _, at := range []template.ArgumentType{template.Valid, template.Invalid} {
				for _, tmpl := range bank.Templates(rule, at) {
					if err := tmpl.Validate(); err != nil {
						problems++
						fmt.Printf("%s (%s): %v\n    %s\n", rule, at, err, tmpl.Text())
					}
				}
			}
		}
		if problems > 0 {
			return fmt.Errorf("%d invalid templates", problems)
		}
		fmt.Println("All templates are valid.")
		return nil
	},
}
