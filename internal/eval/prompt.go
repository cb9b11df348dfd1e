package eval

import (
	"errors"
	"fmt"

	"github.com/peircelogic/arggen/internal/export"
)

// ErrUnknownPromptStyle marks an unrecognized prompt style name.
var ErrUnknownPromptStyle = errors.New("unknown prompt style")

// PromptStyle names a prompt wording.
type PromptStyle string

// Prompt styles. Standard asks the bare question; Enhanced adds
// instructions to focus on logical structure rather than content.
const (
	PromptStandard PromptStyle = "standard"
	PromptEnhanced PromptStyle = "enhanced"
)

// PromptStyles returns the recognized styles.
func PromptStyles() []PromptStyle {
	return []PromptStyle{PromptStandard, PromptEnhanced}
}

// BuildPrompt renders the question posed for one paired record.
func BuildPrompt(style PromptStyle, rec export.PairRecord) (string, error) {
	switch style {
	case PromptStandard, "":
		return fmt.Sprintf(
			"Which of these two arguments is logically valid?\n\nArgument A: %s\n\nArgument B: %s\n\nAnswer with just the letter A or B.",
			rec.OptionA, rec.OptionB), nil

	case PromptEnhanced:
		return fmt.Sprintf(
			"You will see two arguments. Exactly one of them is logically valid: its conclusion follows necessarily from its premises. "+
				"Judge only the logical structure, not whether the premises are factually true.\n\n"+
				"Argument A: %s\n\nArgument B: %s\n\n"+
				"Which argument is logically valid? Answer with just the letter A or B.",
			rec.OptionA, rec.OptionB), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPromptStyle, style)
}

// BuildArgumentPrompt renders the question posed for one individual
// record: is this single argument valid or not.
func BuildArgumentPrompt(style PromptStyle, rec export.Record) (string, error) {
	switch style {
	case PromptStandard, "":
		return fmt.Sprintf(
			"Is the following argument logically valid?\n\nArgument: %s\n\nAnswer with just VALID or INVALID.",
			rec.Text), nil

	case PromptEnhanced:
		return fmt.Sprintf(
			"You will see one argument. It is logically valid only if its conclusion follows necessarily from its premises. "+
				"Judge only the logical structure, not whether the premises are factually true.\n\n"+
				"Argument: %s\n\n"+
				"Is this argument logically valid? Answer with just VALID or INVALID.",
			rec.Text), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPromptStyle, style)
}
