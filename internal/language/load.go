package language

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/peircelogic/arggen/internal/linguistic"
	"github.com/peircelogic/arggen/internal/rules"
	"github.com/peircelogic/arggen/internal/template"
)

//go:embed packs/*.yaml
var packFS embed.FS

// TemplateSpec is one template entry in a pack file.
type TemplateSpec struct {
	Rule       string            `yaml:"rule"`
	Type       string            `yaml:"type"`
	Complexity string            `yaml:"complexity"`
	Domain     string            `yaml:"domain,omitempty"`
	Tags       map[string]string `yaml:"tags,omitempty"`
	Text       string            `yaml:"text"`

	// Source is the file the entry came from, or "builtin".
	Source string `yaml:"-"`
}

type packFile struct {
	Language  string         `yaml:"language"`
	Templates []TemplateSpec `yaml:"templates"`
}

// LoadBuiltinTemplates returns the template entries bundled for a language
// code, from the embedded pack files.
func LoadBuiltinTemplates(code string) ([]TemplateSpec, error) {
	entries, err := fs.ReadDir(packFS, "packs")
	if err != nil {
		return nil, fmt.Errorf("read builtin packs: %w", err)
	}

	var specs []TemplateSpec
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := packFS.ReadFile("packs/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin pack %s: %w", entry.Name(), err)
		}
		pack, err := parsePack(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin pack %s: %w", entry.Name(), err)
		}
		if pack.Language != code {
			continue
		}
		for i := range pack.Templates {
			pack.Templates[i].Source = "builtin"
		}
		specs = append(specs, pack.Templates...)
	}

	return specs, nil
}

// LoadTemplatesFromDir loads every pack file in a directory that matches
// the language code. A missing directory is not an error.
func LoadTemplatesFromDir(dir, code string) ([]TemplateSpec, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read template pack dir %s: %w", dir, err)
	}

	var specs []TemplateSpec
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template pack %s: %w", path, err)
		}
		pack, err := parsePack(data)
		if err != nil {
			return nil, fmt.Errorf("parse template pack %s: %w", path, err)
		}
		if pack.Language != code {
			continue
		}
		for i := range pack.Templates {
			pack.Templates[i].Source = path
		}
		specs = append(specs, pack.Templates...)
	}

	return specs, nil
}

func parsePack(data []byte) (*packFile, error) {
	var pack packFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, err
	}

	pack.Language = strings.TrimSpace(pack.Language)
	if pack.Language == "" {
		return nil, fmt.Errorf("pack language is required")
	}

	for i := range pack.Templates {
		spec := &pack.Templates[i]
		spec.Rule = strings.TrimSpace(spec.Rule)
		spec.Type = strings.ToLower(strings.TrimSpace(spec.Type))
		spec.Complexity = strings.ToLower(strings.TrimSpace(spec.Complexity))
		if spec.Rule == "" {
			return nil, fmt.Errorf("template %d: rule is required", i+1)
		}
		if _, err := rules.Get(spec.Rule); err != nil {
			return nil, fmt.Errorf("template %d: %w", i+1, err)
		}
		if spec.Type != string(template.Valid) && spec.Type != string(template.Invalid) {
			return nil, fmt.Errorf("template %d: type must be valid or invalid, got %q", i+1, spec.Type)
		}
		if _, err := linguistic.ParseComplexity(spec.Complexity); err != nil {
			return nil, fmt.Errorf("template %d: %w", i+1, err)
		}
		if strings.TrimSpace(spec.Text) == "" {
			return nil, fmt.Errorf("template %d: text is required", i+1)
		}
	}

	return &pack, nil
}

// BuildBank assembles a template bank for a language. User pack entries
// override builtins by (rule, type) key: a user pack that provides any
// template for a rule and type replaces the whole builtin set for that
// combination.
func BuildBank(code string, userDirs ...string) (*template.Bank, error) {
	builtin, err := LoadBuiltinTemplates(code)
	if err != nil {
		return nil, err
	}

	var user []TemplateSpec
	for _, dir := range userDirs {
		extra, err := LoadTemplatesFromDir(dir, code)
		if err != nil {
			return nil, err
		}
		user = append(user, extra...)
	}

	type bucket struct {
		rule string
		at   string
	}
	overridden := make(map[bucket]struct{}, len(user))
	for _, spec := range user {
		overridden[bucket{rule: spec.Rule, at: spec.Type}] = struct{}{}
	}

	specs := make([]TemplateSpec, 0, len(builtin)+len(user))
	for _, spec := range builtin {
		if _, ok := overridden[bucket{rule: spec.Rule, at: spec.Type}]; ok {
			continue
		}
		specs = append(specs, spec)
	}
	specs = append(specs, user...)
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no templates for %q", ErrUnknownLanguage, code)
	}

	bank := template.NewBank()
	for _, spec := range specs {
		level, err := linguistic.ParseComplexity(spec.Complexity)
		if err != nil {
			return nil, err
		}
		meta := template.Metadata{
			Complexity: level,
			Domain:     spec.Domain,
			Tags:       spec.Tags,
		}
		bank.Add(spec.Rule, template.ArgumentType(spec.Type), template.New(spec.Text, meta))
	}

	return bank, nil
}

// PackSearchPaths returns template pack directories in precedence order.
func PackSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".arggen", "templates"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "arggen", "templates"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "arggen", "templates"))
	return paths
}
