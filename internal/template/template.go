package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peircelogic/arggen/internal/linguistic"
)

// Metadata describes a template for selection and reporting. Tags carries
// arbitrary extension fields alongside the recognized ones.
type Metadata struct {
	Complexity linguistic.ComplexityLevel
	Domain     string
	Tags       map[string]string
}

// Tag returns an extension field value, or "" when unset.
func (m Metadata) Tag(key string) string {
	return m.Tags[key]
}

// Template is a parsed argument template: its component list, the metadata
// used for selection, and the precomputed set of variables it can consume.
// Templates are immutable after construction.
type Template struct {
	text       string
	components []Component
	required   map[string]struct{}
	meta       Metadata
}

// New parses source text into a template. Parsing cannot fail; malformed
// delimiter syntax stays literal.
func New(source string, meta Metadata) *Template {
	return fromComponents(source, Parse(source), meta)
}

func fromComponents(text string, components []Component, meta Metadata) *Template {
	t := &Template{
		text:       text,
		components: components,
		required:   make(map[string]struct{}),
		meta:       meta,
	}

	// Required variables are fixed at construction: every top-level
	// variable plus every variable mentioned in any variation choice or
	// conditional branch, regardless of what a render later selects.
	for _, c := range components {
		switch c.Kind {
		case KindVariable:
			t.required[c.Name] = struct{}{}
		case KindVariation:
			for _, choice := range c.Choices {
				for _, name := range scanVariables(choice) {
					t.required[name] = struct{}{}
				}
			}
		case KindConditional:
			for _, name := range scanVariables(c.Then) {
				t.required[name] = struct{}{}
			}
			for _, name := range scanVariables(c.Else) {
				t.required[name] = struct{}{}
			}
		case KindRepeated:
			for _, name := range scanVariables(c.Item) {
				if name != "item" {
					t.required[name] = struct{}{}
				}
			}
		}
	}

	return t
}

// Text returns the original template source.
func (t *Template) Text() string { return t.text }

// Metadata returns the template's metadata.
func (t *Template) Metadata() Metadata { return t.meta }

// Components returns the parsed component list. Callers must not modify it.
func (t *Template) Components() []Component { return t.components }

// RequiredVariables returns the sorted union of every variable the template
// can reference, independent of render-time choice selection.
func (t *Template) RequiredVariables() []string {
	names := make([]string, 0, len(t.required))
	for name := range t.required {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Requires reports whether the template references a variable.
func (t *Template) Requires(name string) bool {
	_, ok := t.required[name]
	return ok
}

// HasVariations reports whether any component is a variation point.
func (t *Template) HasVariations() bool {
	for _, c := range t.components {
		if c.Kind == KindVariation {
			return true
		}
	}
	return false
}

// Render walks the component list and concatenates each component's output.
//
// Rendering degrades instead of failing: a missing variable binding leaves
// its {name} placeholder in the output, an absent conditional key selects
// the else branch, and an absent or empty repeated list renders as nothing.
// The context is not mutated; output depends only on the components, the
// context, and the PRNG draws for unpinned variation points.
func (t *Template) Render(ctx *RenderContext) string {
	var out strings.Builder
	for _, c := range t.components {
		out.WriteString(t.renderComponent(c, ctx))
	}
	return out.String()
}

func (t *Template) renderComponent(c Component, ctx *RenderContext) string {
	switch c.Kind {
	case KindStatic:
		return c.Text

	case KindVariable:
		if value, ok := ctx.variable(c.Name); ok {
			return value
		}
		return "{" + c.Name + "}"

	case KindVariation:
		if len(c.Choices) == 0 {
			return ""
		}
		choice := c.Choices[0]
		if pinned, ok := ctx.pinned(c.Name); ok {
			choice = matchChoice(c.Choices, pinned)
		} else if len(c.Choices) > 1 {
			choice = c.Choices[ctx.intN(len(c.Choices))]
		}
		return resolveVariables(choice, contextVariables(ctx))

	case KindConditional:
		branch := c.Else
		if ctx.truthy(c.Name) {
			branch = c.Then
		}
		return resolveVariables(branch, contextVariables(ctx))

	case KindRepeated:
		items := ctx.list(c.Name)
		if len(items) == 0 {
			return ""
		}
		rendered := make([]string, 0, len(items))
		for _, item := range items {
			vars := map[string]string{"item": item}
			for name, value := range contextVariables(ctx) {
				if name != "item" {
					vars[name] = value
				}
			}
			rendered = append(rendered, resolveVariables(c.Item, vars))
		}
		return strings.Join(rendered, c.Separator)
	}

	return ""
}

func contextVariables(ctx *RenderContext) map[string]string {
	if ctx == nil {
		return nil
	}
	return ctx.Variables
}

// matchChoice resolves a pinned value against a choice list: an exact value
// match wins, then a decimal index, then the pinned text itself so a caller
// can force arbitrary text through a named point.
func matchChoice(choices []string, pinned string) string {
	for _, choice := range choices {
		if choice == pinned {
			return choice
		}
	}
	var index int
	if _, err := fmt.Sscanf(pinned, "%d", &index); err == nil && index >= 0 && index < len(choices) {
		return choices[index]
	}
	return pinned
}

// Validate reports structural problems that parsing tolerates: an empty
// template, a variation with no choices, an unnamed conditional or repeated
// block. Problems are aggregated, not short-circuited.
func (t *Template) Validate() error {
	var errs []error
	if len(t.components) == 0 {
		errs = append(errs, errors.New("template is empty"))
	}
	for i, c := range t.components {
		switch c.Kind {
		case KindVariation:
			if len(c.Choices) == 0 {
				errs = append(errs, fmt.Errorf("component %d: variation has no choices", i))
			}
		case KindConditional, KindRepeated:
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("component %d: %s has no context key", i, c.Kind))
			}
		case KindStatic, KindVariable:
		default:
			errs = append(errs, fmt.Errorf("component %d: unknown kind %d", i, c.Kind))
		}
	}
	return errors.Join(errs...)
}
