// Package wizard implements the interactive setup flow that writes an
// arggen.yaml configuration.
package wizard

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/peircelogic/arggen/internal/generate"
	"github.com/peircelogic/arggen/internal/language"
	"github.com/peircelogic/arggen/internal/linguistic"
)

// ErrNoTTY means the wizard was started without an interactive terminal.
var ErrNoTTY = errors.New("wizard requires an interactive terminal")

// Choices is what the wizard collects.
type Choices struct {
	Language   string
	Complexity string
	Count      int
	Preset     string
	Pairs      bool
	OutputDir  string
}

// Run walks the user through setup and writes the choices to path. It
// returns the choices alongside, so callers can act on them directly.
func Run(path string) (Choices, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return Choices{}, ErrNoTTY
	}

	program := tea.NewProgram(initialModel())
	final, err := program.Run()
	if err != nil {
		return Choices{}, fmt.Errorf("running wizard: %w", err)
	}

	m, ok := final.(model)
	if !ok || !m.confirmed {
		return Choices{}, errors.New("setup canceled")
	}

	choices := m.choices()
	if err := writeConfig(path, choices); err != nil {
		return Choices{}, err
	}
	return choices, nil
}

func writeConfig(path string, c Choices) error {
	doc := map[string]any{
		"language": c.Language,
		"count":    c.Count,
		"preset":   c.Preset,
		"pairs":    c.Pairs,
		"output": map[string]any{
			"dir": c.OutputDir,
		},
	}
	if c.Complexity != "" {
		doc["complexity"] = c.Complexity
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type step int

const (
	stepLanguage step = iota
	stepComplexity
	stepCount
	stepPreset
	stepPairs
	stepOutput
	stepConfirm
	stepDone
)

type model struct {
	step      step
	cursor    int
	countText string
	outputDir string
	confirmed bool

	languages    []string
	complexities []string
	presets      []string

	language   int
	complexity int
	preset     int
	pairs      bool

	titleStyle  lipgloss.Style
	activeStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	errStyle    lipgloss.Style
	inputErr    string
}

func initialModel() model {
	complexities := []string{"any"}
	for _, level := range linguistic.Complexities() {
		complexities = append(complexities, level.String())
	}

	presets := make([]string, 0)
	for _, preset := range generate.Presets() {
		presets = append(presets, preset.Name)
	}

	return model{
		languages:    language.Codes(),
		complexities: complexities,
		presets:      presets,
		countText:    "100",
		outputDir:    "dataset",
		titleStyle:   lipgloss.NewStyle().Bold(true),
		activeStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		errStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (m model) choices() Choices {
	c := Choices{
		Language:  m.languages[m.language],
		Count:     100,
		Preset:    m.presets[m.preset],
		Pairs:     m.pairs,
		OutputDir: m.outputDir,
	}
	if m.complexities[m.complexity] != "any" {
		c.Complexity = m.complexities[m.complexity]
	}
	if n, err := strconv.Atoi(m.countText); err == nil && n > 0 {
		c.Count = n
	}
	return c
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) options() []string {
	switch m.step {
	case stepLanguage:
		return m.languages
	case stepComplexity:
		return m.complexities
	case stepPreset:
		return m.presets
	case stepPairs:
		return []string{"matched pairs", "individual arguments"}
	case stepConfirm:
		return []string{"write config", "cancel"}
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 && len(m.options()) > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if opts := m.options(); len(opts) > 0 && m.cursor < len(opts)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		return m.advance()

	case "backspace":
		if m.step == stepCount && len(m.countText) > 0 {
			m.countText = m.countText[:len(m.countText)-1]
		}
		if m.step == stepOutput && len(m.outputDir) > 0 {
			m.outputDir = m.outputDir[:len(m.outputDir)-1]
		}
		return m, nil
	}

	// Text entry steps accept printable input.
	if m.step == stepCount {
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' {
				m.countText += string(r)
			}
		}
	}
	if m.step == stepOutput {
		for _, r := range key.Runes {
			if r > 31 && r != 127 {
				m.outputDir += string(r)
			}
		}
	}
	return m, nil
}

func (m model) advance() (tea.Model, tea.Cmd) {
	m.inputErr = ""

	switch m.step {
	case stepLanguage:
		m.language = m.cursor
	case stepComplexity:
		m.complexity = m.cursor
	case stepCount:
		n, err := strconv.Atoi(m.countText)
		if err != nil || n <= 0 {
			m.inputErr = "enter a positive number"
			return m, nil
		}
	case stepPreset:
		m.preset = m.cursor
	case stepPairs:
		m.pairs = m.cursor == 0
	case stepOutput:
		if m.outputDir == "" {
			m.inputErr = "enter an output directory"
			return m, nil
		}
	case stepConfirm:
		m.confirmed = m.cursor == 0
		m.step = stepDone
		return m, tea.Quit
	}

	m.step++
	m.cursor = 0
	return m, nil
}

func (m model) prompt() string {
	switch m.step {
	case stepLanguage:
		return "Language"
	case stepComplexity:
		return "Complexity"
	case stepCount:
		return "How many arguments?"
	case stepPreset:
		return "Rule mix"
	case stepPairs:
		return "Output shape"
	case stepOutput:
		return "Output directory"
	case stepConfirm:
		return "Ready?"
	}
	return ""
}

func (m model) View() string {
	if m.step == stepDone {
		return ""
	}

	out := m.titleStyle.Render("arggen setup") + "\n\n"
	out += m.prompt() + "\n"

	switch m.step {
	case stepCount:
		out += "> " + m.countText + "\n"
	case stepOutput:
		out += "> " + m.outputDir + "\n"
	default:
		for i, opt := range m.options() {
			line := "  " + opt
			if i == m.cursor {
				line = m.activeStyle.Render("> " + opt)
			}
			out += line + "\n"
		}
	}

	if m.inputErr != "" {
		out += "\n" + m.errStyle.Render(m.inputErr) + "\n"
	}
	out += "\n" + m.mutedStyle.Render("enter to select, esc to cancel") + "\n"
	return out
}
