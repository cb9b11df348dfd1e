package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/rules"
)

// cardFrontMatter is the machine-readable header of a dataset card.
type cardFrontMatter struct {
	License      string   `yaml:"license"`
	TaskCategory []string `yaml:"task_categories"`
	Languages    []string `yaml:"language"`
	Tags         []string `yaml:"tags"`
	SizeCategory []string `yaml:"size_categories"`
}

// CardInfo collects everything the dataset card reports.
type CardInfo struct {
	Name      string
	Language  string
	Seed      uint64
	Arguments []generate.Argument
	Pairs     []generate.Pair
	Splits    *Splits
}

func sizeCategory(n int) string {
	switch {
	case n < 1000:
		return "n<1K"
	case n < 10000:
		return "1K<n<10K"
	case n < 100000:
		return "10K<n<100K"
	default:
		return "100K<n<1M"
	}
}

// WriteCard renders a README-style dataset card: YAML front matter
// between --- fences, then a markdown body with per-rule counts.
func WriteCard(w io.Writer, info CardInfo) error {
	size := len(info.Arguments) + len(info.Pairs)*2

	front := cardFrontMatter{
		License:      "mit",
		TaskCategory: []string{"text-classification"},
		Languages:    []string{info.Language},
		Tags:         []string{"logic", "reasoning", "synthetic"},
		SizeCategory: []string{sizeCategory(size)},
	}
	head, err := yaml.Marshal(front)
	if err != nil {
		return fmt.Errorf("marshaling card front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n\n")

	name := info.Name
	if name == "" {
		name = "Logical Arguments"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	b.WriteString("Synthetic natural-language arguments labeled by logical validity. ")
	b.WriteString("Each invalid argument instantiates the fallacy paired with a formal inference rule.\n\n")

	fmt.Fprintf(&b, "## Contents\n\n")
	fmt.Fprintf(&b, "- Records: %d\n", size)
	if len(info.Arguments) > 0 {
		valid, invalid := LabelCounts(info.Arguments)
		fmt.Fprintf(&b, "- Valid: %d (%s), invalid: %d (%s)\n",
			valid, formatShare(valid, len(info.Arguments)),
			invalid, formatShare(invalid, len(info.Arguments)))
	}
	if len(info.Pairs) > 0 {
		fmt.Fprintf(&b, "- Matched valid/fallacy pairs: %d\n", len(info.Pairs))
	}
	if info.Seed != 0 {
		fmt.Fprintf(&b, "- Generation seed: %d\n", info.Seed)
	}
	b.WriteString("\n")

	writeRuleTable(&b, info)

	if info.Splits != nil {
		fmt.Fprintf(&b, "## Splits\n\n")
		fmt.Fprintf(&b, "| Split | Records |\n|---|---|\n")
		fmt.Fprintf(&b, "| train | %d |\n", len(info.Splits.Train))
		fmt.Fprintf(&b, "| validation | %d |\n", len(info.Splits.Validation))
		fmt.Fprintf(&b, "| test | %d |\n", len(info.Splits.Test))
		b.WriteString("\n")
	}

	b.WriteString("## Fields\n\n")
	if len(info.Pairs) > 0 {
		b.WriteString("Paired format: `id`, `rule`, `language`, `option_a`, `option_b`, `answer` (A or B), `valid_id`, `fallacy_id`.\n")
	} else {
		b.WriteString("Individual format: `id`, `text`, `label` (valid or invalid), `rule`, `rule_displayed`, `language`, `complexity`, `domain`, `sentences`.\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func writeRuleTable(b *strings.Builder, info CardInfo) {
	counts := make(map[string]int)
	for _, arg := range info.Arguments {
		counts[arg.Rule]++
	}
	for _, pair := range info.Pairs {
		counts[pair.Valid.Rule] += 2
	}
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(b, "## Rules\n\n")
	fmt.Fprintf(b, "| Rule | Fallacy counterpart | Records |\n|---|---|---|\n")
	for _, name := range names {
		counterpart, err := rules.CounterpartOf(name)
		if err != nil {
			counterpart = ""
		}
		fmt.Fprintf(b, "| %s | %s | %d |\n", name, counterpart, counts[name])
	}
	b.WriteString("\n")
}
