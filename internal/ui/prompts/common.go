package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text input with an optional placeholder default.
func PromptInput(message, helpText, defaultValue string) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if helpText != "" {
		input.Description(helpText)
	}
	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return inputVal, nil
}

// PromptConfirm prompts for a yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Ja").
		Negative("Nein").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD form. An empty answer yields
// the default, which may itself be empty.
func PromptDate(message, defaultDate, helpText string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date).
		Run()

	if err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptSelect prompts for a selection from a list of options.
func PromptSelect(message string, options []string) (string, error) {
	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
