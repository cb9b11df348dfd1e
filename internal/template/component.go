// Package template implements the argument template engine: a mini
// template language with variables and variation points, parsed into a
// component list and rendered against caller-supplied bindings, plus the
// bank that organizes templates by inference rule.
package template

import "strings"

// ComponentKind identifies one kind of template component.
type ComponentKind int

// Component kinds.
const (
	KindStatic ComponentKind = iota
	KindVariable
	KindVariation
	KindConditional
	KindRepeated
)

// String returns the kind name for diagnostics.
func (k ComponentKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindVariable:
		return "variable"
	case KindVariation:
		return "variation"
	case KindConditional:
		return "conditional"
	case KindRepeated:
		return "repeated"
	}
	return "unknown"
}

// Component is one element of a parsed template.
//
// Which fields are meaningful depends on Kind: Text for static components,
// Name for variables, Name (optional) and Choices for variations, Name with
// Then/Else for conditionals, and Name with Item/Separator for repeated
// blocks. Conditional and repeated components have no source syntax and are
// only reachable through the builder.
type Component struct {
	Kind ComponentKind

	// Text is the literal content of a static component.
	Text string

	// Name is the variable name, the variation point name (empty for
	// parser-produced variations), the conditional's context key, or the
	// repeated block's list key.
	Name string

	// Choices are the alternative phrasings of a variation point. Each may
	// contain {var} placeholders but no nested variation syntax.
	Choices []string

	// Then and Else are the conditional branches, resolved for embedded
	// variables at render time.
	Then string
	Else string

	// Item is the per-element template of a repeated block; Separator joins
	// the rendered elements.
	Item      string
	Separator string
}

// Static returns a literal text component.
func Static(text string) Component {
	return Component{Kind: KindStatic, Text: text}
}

// Variable returns a substitution slot component.
func Variable(name string) Component {
	return Component{Kind: KindVariable, Name: name}
}

// Variation returns a choice point. Name may be empty; named points can be
// pinned to a specific choice at render time.
func Variation(name string, choices ...string) Component {
	return Component{Kind: KindVariation, Name: name, Choices: choices}
}

// Conditional returns a component that renders one of two raw strings
// depending on the truthiness of the context variable key.
func Conditional(key, then, otherwise string) Component {
	return Component{Kind: KindConditional, Name: key, Then: then, Else: otherwise}
}

// Repeated returns a component that renders item once per element of the
// context list key, joined by separator. Each element is bound as {item}.
func Repeated(key, separator, item string) Component {
	return Component{Kind: KindRepeated, Name: key, Separator: separator, Item: item}
}

// source renders the component back to template source where the mini
// language can express it; conditional and repeated components have no
// source form and round-trip as empty text.
func (c Component) source() string {
	switch c.Kind {
	case KindStatic:
		return c.Text
	case KindVariable:
		return "{" + c.Name + "}"
	case KindVariation:
		return "[[" + strings.Join(c.Choices, "|") + "]]"
	}
	return ""
}
