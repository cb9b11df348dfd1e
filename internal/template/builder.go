package template

import (
	"strings"

	"github.com/peircelogic/arggen/internal/linguistic"
)

// Builder accumulates components for a template piece by piece. Unlike
// parsing, the builder keeps each variation point's name on the component,
// so a render can pin that point by name; it also reaches the component
// kinds the mini language has no syntax for.
type Builder struct {
	components []Component
	meta       Metadata
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{meta: Metadata{Tags: make(map[string]string)}}
}

// Static appends literal text.
func (b *Builder) Static(text string) *Builder {
	b.components = append(b.components, Static(text))
	return b
}

// Text parses raw template source and appends its components, so builder
// code can mix fluent calls with mini-language fragments.
func (b *Builder) Text(source string) *Builder {
	b.components = append(b.components, Parse(source)...)
	return b
}

// Variable appends a substitution slot.
func (b *Builder) Variable(name string) *Builder {
	b.components = append(b.components, Variable(name))
	return b
}

// Variation appends a named choice point. The name survives into the built
// template so render-time preferences can address it.
func (b *Builder) Variation(name string, choices ...string) *Builder {
	b.components = append(b.components, Variation(name, choices...))
	return b
}

// Conditional appends a boolean-gated component keyed on a context variable.
func (b *Builder) Conditional(key, then, otherwise string) *Builder {
	b.components = append(b.components, Conditional(key, then, otherwise))
	return b
}

// Repeated appends a component rendering item once per element of the
// context list key.
func (b *Builder) Repeated(key, separator, item string) *Builder {
	b.components = append(b.components, Repeated(key, separator, item))
	return b
}

// Complexity sets the template's complexity level.
func (b *Builder) Complexity(level linguistic.ComplexityLevel) *Builder {
	b.meta.Complexity = level
	return b
}

// Domain sets the template's domain.
func (b *Builder) Domain(domain string) *Builder {
	b.meta.Domain = domain
	return b
}

// Tag sets an extension metadata field.
func (b *Builder) Tag(key, value string) *Builder {
	b.meta.Tags[key] = value
	return b
}

// Build assembles the template directly from the accumulated components; no
// round-trip through serialized source, so nothing the mini language cannot
// express is lost. The template's text is the canonical source for the
// expressible components.
func (b *Builder) Build() *Template {
	components := make([]Component, len(b.components))
	copy(components, b.components)

	var text strings.Builder
	for _, c := range components {
		text.WriteString(c.source())
	}

	return fromComponents(text.String(), components, b.meta)
}
