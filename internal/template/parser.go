package template

import (
	"regexp"
	"strings"
)

// Template source delimiters. A variation body may not contain a closing
// bracket and a variable name may not contain braces; there is no escape
// syntax, so text that fails to match is simply literal.
var (
	variationRe = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	variableRe  = regexp.MustCompile(`\{([^{}]+)\}`)
)

// Parse turns template source into an ordered component list.
//
// The scan repeatedly takes the earliest match of a variation point
// [[a|b|c]] or a variable {name}. Text before a match becomes static
// components (itself split on any embedded variables), the variation body
// splits on | into choices, and whatever never matches stays literal —
// malformed input such as an unterminated "[[" degrades to static text
// rather than failing.
func Parse(source string) []Component {
	var components []Component

	remaining := source
	for remaining != "" {
		variation := variationRe.FindStringSubmatchIndex(remaining)
		variable := variableRe.FindStringSubmatchIndex(remaining)

		switch {
		case variation != nil && (variable == nil || variation[0] < variable[0]):
			components = appendStatic(components, remaining[:variation[0]])
			body := remaining[variation[2]:variation[3]]
			components = append(components, Variation("", strings.Split(body, "|")...))
			remaining = remaining[variation[1]:]

		case variable != nil:
			if variable[0] > 0 {
				components = append(components, Static(remaining[:variable[0]]))
			}
			components = append(components, Variable(remaining[variable[2]:variable[3]]))
			remaining = remaining[variable[1]:]

		default:
			components = append(components, Static(remaining))
			remaining = ""
		}
	}

	return components
}

// appendStatic splits text on embedded variables and appends the resulting
// static and variable components, merging adjacent static runs.
func appendStatic(components []Component, text string) []Component {
	for text != "" {
		match := variableRe.FindStringSubmatchIndex(text)
		if match == nil {
			return appendMerged(components, text)
		}
		if match[0] > 0 {
			components = appendMerged(components, text[:match[0]])
		}
		components = append(components, Variable(text[match[2]:match[3]]))
		text = text[match[1]:]
	}
	return components
}

func appendMerged(components []Component, text string) []Component {
	if text == "" {
		return components
	}
	if n := len(components); n > 0 && components[n-1].Kind == KindStatic {
		components[n-1].Text += text
		return components
	}
	return append(components, Static(text))
}

// scanVariables returns every {name} occurrence in raw text, in order.
func scanVariables(text string) []string {
	matches := variableRe.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// resolveVariables substitutes known bindings into raw text, leaving
// unknown {name} placeholders intact.
func resolveVariables(text string, variables map[string]string) string {
	return variableRe.ReplaceAllStringFunc(text, func(placeholder string) string {
		name := placeholder[1 : len(placeholder)-1]
		if value, ok := variables[name]; ok {
			return value
		}
		return placeholder
	})
}
