package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/eval"
	"github.com/peircelogic/arggen/internal/export"
)

var (
	flagEvalProvider string
	flagEvalModel    string
	flagEvalBaseURL  string
	flagEvalAPIKey   string
	flagEvalStyle    string
	flagEvalWorkers  int
	flagEvalOutput   string
	flagEvalCSV      bool
)

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&flagEvalProvider, "provider", "", "model provider (ollama, openai, hf)")
	evalCmd.Flags().StringVarP(&flagEvalModel, "model", "m", "", "model name")
	evalCmd.Flags().StringVar(&flagEvalBaseURL, "base-url", "", "provider base URL")
	evalCmd.Flags().StringVar(&flagEvalAPIKey, "api-key", "", "provider API key")
	evalCmd.Flags().StringVar(&flagEvalStyle, "style", "", "prompt style (standard, enhanced)")
	evalCmd.Flags().IntVar(&flagEvalWorkers, "workers", 0, "concurrent model calls")
	evalCmd.Flags().StringVarP(&flagEvalOutput, "output", "o", "", "write full results to this file")
	evalCmd.Flags().BoolVar(&flagEvalCSV, "csv", false, "write results as CSV instead of JSON")
}

var evalCmd = &cobra.Command{
	Use:   "eval <dataset.jsonl>",
	Short: "Evaluate a model on a generated dataset",
	Long: "Send each record to a model and score its answers. Paired files\n" +
		"ask which argument is valid (A/B); individual files ask for a\n" +
		"VALID/INVALID verdict per argument.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, singles, err := readDatasetRecords(args[0])
		if err != nil {
			return err
		}
		total := len(pairs) + len(singles)
		if total == 0 {
			return fmt.Errorf("%s holds no records", args[0])
		}

		evalCfg := cfg.Eval
		if flagEvalProvider != "" {
			evalCfg.Provider = flagEvalProvider
		}
		if flagEvalModel != "" {
			evalCfg.Model = flagEvalModel
		}
		if flagEvalBaseURL != "" {
			evalCfg.BaseURL = flagEvalBaseURL
		}
		if flagEvalAPIKey != "" {
			evalCfg.APIKey = flagEvalAPIKey
		}
		if flagEvalStyle != "" {
			evalCfg.Style = flagEvalStyle
		}
		if flagEvalWorkers > 0 {
			evalCfg.Workers = flagEvalWorkers
		}
		if evalCfg.Model == "" {
			return fmt.Errorf("a model name is required (--model)")
		}

		client, err := eval.NewClient(eval.ClientConfig{
			Provider: evalCfg.Provider,
			Model:    evalCfg.Model,
			BaseURL:  evalCfg.BaseURL,
			APIKey:   evalCfg.APIKey,
		})
		if err != nil {
			return err
		}

		progress := newProgressPrinter("evaluating", total)
		runner := eval.NewRunner(client, eval.RunnerConfig{
			Workers:  evalCfg.Workers,
			Style:    eval.PromptStyle(evalCfg.Style),
			Retries:  evalCfg.Retries,
			Progress: progress.update,
		})

		started := time.Now()
		var results []eval.Result
		if len(pairs) > 0 {
			results, err = runner.Run(cmd.Context(), pairs)
		} else {
			results, err = runner.RunArguments(cmd.Context(), singles)
		}
		if err != nil {
			progress.fail()
			return err
		}
		progress.done()

		stats := eval.Summarize(client.Name(), eval.PromptStyle(evalCfg.Style), results)
		stats.Elapsed = time.Since(started)
		if err := printEvalStats(stats); err != nil {
			return err
		}

		if flagEvalOutput != "" {
			f, err := os.Create(flagEvalOutput)
			if err != nil {
				return fmt.Errorf("creating results file: %w", err)
			}
			defer f.Close()
			if flagEvalCSV {
				return eval.WriteResultsCSV(f, results)
			}
			return eval.WriteResultsJSON(f, stats, results)
		}
		return nil
	},
}

// readDatasetRecords reads a JSONL dataset, detecting the paired format
// by the presence of option_a on each line.
func readDatasetRecords(path string) ([]export.PairRecord, []export.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var pairs []export.PairRecord
	var singles []export.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var pair export.PairRecord
		if err := json.Unmarshal(text, &pair); err != nil {
			return nil, nil, fmt.Errorf("parsing %s line %d: %w", path, line, err)
		}
		if pair.OptionA != "" {
			pairs = append(pairs, pair)
			continue
		}
		var rec export.Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return nil, nil, fmt.Errorf("parsing %s line %d: %w", path, line, err)
		}
		singles = append(singles, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return pairs, singles, nil
}

func printEvalStats(stats eval.Stats) error {
	fmt.Printf("\nModel: %s (prompt style %s)\n", stats.Model, stats.Style)
	fmt.Printf("Accuracy: %s (%s correct, %d unclear, %d errors)\n",
		percent(stats.Accuracy()), ratio(stats.Correct, stats.Total), stats.Abstains, stats.Errors)

	for _, label := range []string{"VALID", "INVALID"} {
		if typ, ok := stats.PerType[label]; ok {
			fmt.Printf("%s arguments: %s (%s)\n",
				label, percent(typ.Accuracy()), ratio(typ.Correct, typ.Total))
		}
	}

	rows := make([][]string, 0, len(stats.PerRule))
	for _, name := range stats.RuleNames() {
		rule := stats.PerRule[name]
		rows = append(rows, []string{
			name,
			percent(rule.Accuracy()),
			ratio(rule.Correct, rule.Total),
		})
	}
	return writeTable(os.Stdout, []string{"RULE", "ACCURACY", "CORRECT"}, rows)
}
