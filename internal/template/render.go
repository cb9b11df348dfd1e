package template

import "math/rand/v2"

// RenderContext carries the bindings for a single render call. Rendering
// never mutates it, so one context can back many renders.
type RenderContext struct {
	// Variables binds {name} placeholders to their substitutions.
	Variables map[string]string

	// Lists binds repeated-block keys to their elements.
	Lists map[string][]string

	// Choices pins named variation points to a specific choice, by choice
	// value or by decimal index into the choice list. Unnamed points cannot
	// be pinned.
	Choices map[string]string

	// Rand is the randomness source for variation selection. Nil falls back
	// to the shared top-level source; inject a seeded source for
	// reproducible output.
	Rand *rand.Rand
}

func (ctx *RenderContext) variable(name string) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Variables[name]
	return value, ok
}

func (ctx *RenderContext) list(key string) []string {
	if ctx == nil {
		return nil
	}
	return ctx.Lists[key]
}

func (ctx *RenderContext) pinned(name string) (string, bool) {
	if ctx == nil || name == "" {
		return "", false
	}
	choice, ok := ctx.Choices[name]
	return choice, ok
}

func (ctx *RenderContext) intN(n int) int {
	if ctx != nil && ctx.Rand != nil {
		return ctx.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// truthy reports whether a context variable gates a conditional on. Absent,
// empty, "false", and "0" values are false.
func (ctx *RenderContext) truthy(key string) bool {
	value, ok := ctx.variable(key)
	if !ok {
		return false
	}
	return value != "" && value != "false" && value != "0"
}
