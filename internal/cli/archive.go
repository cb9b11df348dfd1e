package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/peircelogic/arggen/internal/archive"
)

var flagArchiveOlderThan time.Duration

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveStatsCmd)
	archiveCmd.AddCommand(archivePruneCmd)

	archivePruneCmd.Flags().DurationVar(&flagArchiveOlderThan, "older-than", 30*24*time.Hour, "prune runs older than this")
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and prune the run history",
}

func openArchive() (*archive.Archive, error) {
	return archive.Open(cfg.Archive.Path)
}

var archiveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Runs: %d\n", stats.Runs)
		fmt.Printf("Arguments: %d\n", stats.Arguments)
		if !stats.Oldest.IsZero() {
			fmt.Printf("Oldest run: %s\n", stats.Oldest.Format(time.RFC3339))
			fmt.Printf("Newest run: %s\n", stats.Newest.Format(time.RFC3339))
		}

		if len(stats.PerRule) > 0 {
			fmt.Println()
			names := make([]string, 0, len(stats.PerRule))
			for rule := range stats.PerRule {
				names = append(names, rule)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, rule := range names {
				rows = append(rows, []string{rule, strconv.Itoa(stats.PerRule[rule])})
			}
			return writeTable(os.Stdout, []string{"RULE", "ARGUMENTS"}, rows)
		}
		return nil
	},
}

var archivePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old runs and their fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		removed, err := a.Prune(cmd.Context(), time.Now().Add(-flagArchiveOlderThan))
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d runs.\n", removed)
		return nil
	},
}
