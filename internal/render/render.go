// Package render formats generated arguments for terminal and file
// output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/strength"
	"github.com/peircelogic/arggen/internal/template"
)

func ruleDescription(name string) string {
	rule, err := rules.Get(name)
	if err != nil {
		return ""
	}
	return rule.Description
}

// ErrUnknownFormat marks an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an output rendering.
type Format string

// Formats. Minimal is the bare argument text; quiz hides the answer
// behind a prompt line; comparative renders a pair side by side.
const (
	FormatStandard    Format = "standard"
	FormatEducational Format = "educational"
	FormatQuiz        Format = "quiz"
	FormatComparative Format = "comparative"
	FormatDetailed    Format = "detailed"
	FormatMinimal     Format = "minimal"
	FormatJSON        Format = "json"
)

// Formats returns the recognized format names.
func Formats() []Format {
	return []Format{
		FormatStandard, FormatEducational, FormatQuiz,
		FormatComparative, FormatDetailed, FormatMinimal, FormatJSON,
	}
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// Renderer formats arguments. Color styling applies only when enabled,
// so piped output stays plain.
type Renderer struct {
	format Format
	color  bool

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	validStyle lipgloss.Style
	badStyle   lipgloss.Style
	dimStyle   lipgloss.Style
}

// New builds a renderer. color should be true only on a TTY.
func New(format Format, color bool) *Renderer {
	return &Renderer{
		format:     format,
		color:      color,
		titleStyle: lipgloss.NewStyle().Bold(true),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		validStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		badStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) label(arg generate.Argument) string {
	if arg.Type == template.Valid {
		return r.style(r.validStyle, "VALID")
	}
	return r.style(r.badStyle, "INVALID")
}

// Argument renders one argument in the configured format.
func (r *Renderer) Argument(arg generate.Argument) (string, error) {
	switch r.format {
	case FormatMinimal:
		return arg.Text, nil

	case FormatStandard:
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s]\n", r.style(r.titleStyle, arg.DisplayRule()), r.label(arg))
		b.WriteString(arg.Text)
		return b.String(), nil

	case FormatEducational:
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", r.style(r.titleStyle, arg.DisplayRule()))
		fmt.Fprintf(&b, "%s\n\n", arg.Text)
		fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "Verdict:"), r.label(arg))
		if desc := ruleDescription(arg.Rule); desc != "" {
			fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "Pattern:"), desc)
		}
		return b.String(), nil

	case FormatQuiz:
		var b strings.Builder
		b.WriteString(arg.Text)
		b.WriteString("\n\n")
		b.WriteString(r.style(r.dimStyle, "Is this argument logically valid?"))
		return b.String(), nil

	case FormatDetailed:
		var b strings.Builder
		fmt.Fprintf(&b, "%s [%s]\n", r.style(r.titleStyle, arg.DisplayRule()), r.label(arg))
		fmt.Fprintf(&b, "%s\n\n", arg.Text)
		fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "ID:"), arg.ID)
		fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "Language:"), arg.Language)
		if arg.Complexity.IsValid() {
			fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "Complexity:"), arg.Complexity)
		}
		if arg.Domain != "" {
			fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, "Domain:"), arg.Domain)
		}
		for i, sentence := range arg.Sentences {
			fmt.Fprintf(&b, "%s %s\n", r.style(r.labelStyle, fmt.Sprintf("Sentence %d:", i+1)), sentence)
		}
		report := strength.Analyze(arg.Text, arg.Type == template.Valid)
		fmt.Fprintf(&b, "%s %.2f\n", r.style(r.labelStyle, "Persuasiveness:"), report.Persuasiveness)
		return b.String(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(arg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding argument: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, r.format)
}

// Pair renders a matched pair. Formats other than comparative and json
// render the two arguments in sequence.
func (r *Renderer) Pair(pair generate.Pair) (string, error) {
	switch r.format {
	case FormatComparative:
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", r.style(r.titleStyle, pair.Valid.Rule))
		fmt.Fprintf(&b, "%s\n%s\n\n", r.style(r.labelStyle, "Argument A:"), pair.Valid.Text)
		fmt.Fprintf(&b, "%s\n%s\n\n", r.style(r.labelStyle, "Argument B:"), pair.Invalid.Text)
		fmt.Fprintf(&b, "%s A is %s (%s); B is %s (%s)\n",
			r.style(r.labelStyle, "Answer:"),
			r.style(r.validStyle, "valid"), pair.Valid.Rule,
			r.style(r.badStyle, "invalid"), pair.Invalid.DisplayRule())
		return b.String(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(pair, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding pair: %w", err)
		}
		return string(data), nil
	}

	first, err := r.Argument(pair.Valid)
	if err != nil {
		return "", err
	}
	second, err := r.Argument(pair.Invalid)
	if err != nil {
		return "", err
	}
	return first + "\n\n" + second, nil
}
