package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/export"
	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/template"
)

var (
	flagCardName   string
	flagCardOutput string
)

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringVar(&flagCardName, "name", "", "dataset name for the card title")
	cardCmd.Flags().StringVarP(&flagCardOutput, "output", "o", "README.md", "card file to write")
}

var cardCmd = &cobra.Command{
	Use:   "card <dataset.jsonl>",
	Short: "Write a dataset card for an existing dataset file",
	Long: "Read a JSONL dataset produced by generate and write a README-style\n" +
		"dataset card describing its contents.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := readCardInfo(args[0])
		if err != nil {
			return err
		}
		if flagCardName != "" {
			info.Name = flagCardName
		}

		f, err := os.Create(flagCardOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagCardOutput, err)
		}
		defer f.Close()
		if err := export.WriteCard(f, info); err != nil {
			return err
		}
		fmt.Printf("Wrote %s.\n", flagCardOutput)
		return nil
	},
}

// readCardInfo reads either an individual or a paired JSONL file; the
// record shape decides which.
func readCardInfo(path string) (export.CardInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return export.CardInfo{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var info export.CardInfo
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(strings.TrimSpace(string(text))) == 0 {
			continue
		}

		var pair export.PairRecord
		if err := json.Unmarshal(text, &pair); err == nil && pair.OptionA != "" {
			info.Pairs = append(info.Pairs, generate.Pair{
				Valid:   generate.Argument{ID: pair.ValidID, Rule: pair.Rule, Type: template.Valid, Language: pair.Language},
				Invalid: generate.Argument{ID: pair.FallacyID, Rule: pair.Rule, Type: template.Invalid, Language: pair.Language},
			})
			if info.Language == "" {
				info.Language = pair.Language
			}
			continue
		}

		var rec export.Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return export.CardInfo{}, fmt.Errorf("parsing %s line %d: %w", path, line, err)
		}
		info.Arguments = append(info.Arguments, generate.Argument{
			ID:       rec.ID,
			Rule:     rec.Rule,
			Type:     template.ArgumentType(rec.Label),
			Language: rec.Language,
			Text:     rec.Text,
			Domain:   rec.Domain,
		})
		if info.Language == "" {
			info.Language = rec.Language
		}
	}
	if err := scanner.Err(); err != nil {
		return export.CardInfo{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(info.Arguments) == 0 && len(info.Pairs) == 0 {
		return export.CardInfo{}, fmt.Errorf("%s holds no records", path)
	}
	return info, nil
}
