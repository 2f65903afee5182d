package tui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"gitstack.dev/gitstack/internal/utils"
)

// SurveyPrompter asks the operator questions on the terminal. It satisfies
// the engine's Prompter capability.
type SurveyPrompter struct{}

// NewSurveyPrompter creates a terminal-backed prompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// Confirm asks a yes/no question with a default answer
func (p *SurveyPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	if !utils.IsInteractive() {
		return false, fmt.Errorf("cannot prompt %q: not running interactively", question)
	}

	answer := defaultValue
	prompt := &survey.Confirm{
		Message: question,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return answer, nil
}

// Choose asks the operator to pick one of options and returns its index
func (p *SurveyPrompter) Choose(question string, options []string) (int, error) {
	if !utils.IsInteractive() {
		return 0, fmt.Errorf("cannot prompt %q: not running interactively", question)
	}

	var answer survey.OptionAnswer
	prompt := &survey.Select{
		Message: question,
		Options: options,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return 0, fmt.Errorf("canceled")
	}
	return answer.Index, nil
}
