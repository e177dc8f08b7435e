// Package ui provides the interactive prompts used by the new command.
package ui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// Input asks for a single line of text. A non-empty defaultValue is offered
// as the initial answer; required inputs reject blank answers.
func Input(label, defaultValue string, required bool) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	if required {
		prompt.Validate = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		}
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// Confirm asks a yes/no question and reports the answer. Aborting the prompt
// counts as no.
func Confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}

// Select asks the user to pick one of the given choices.
func Select(label string, choices []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: choices,
	}
	_, result, err := prompt.Run()
	return result, err
}

// InputList collects answers until the user submits a blank line. At least
// one answer is required when min is positive.
func InputList(label string, min int) ([]string, error) {
	var items []string
	for {
		itemLabel := label
		if len(items) > 0 || min == 0 {
			itemLabel += " (blank to finish)"
		}

		prompt := promptui.Prompt{Label: itemLabel}
		result, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		result = strings.TrimSpace(result)
		if result == "" {
			if len(items) >= min {
				return items, nil
			}
			continue
		}
		items = append(items, result)
	}
}
