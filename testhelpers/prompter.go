package testhelpers

import (
	"fmt"
)

// ScriptedPrompter answers prompts from pre-loaded scripts and records the
// questions it was asked. An exhausted confirm script falls back to the
// prompt's default answer; an exhausted choose script is an error.
type ScriptedPrompter struct {
	Confirms  []bool
	Choices   []int
	Questions []string
}

func (p *ScriptedPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	p.Questions = append(p.Questions, question)
	if len(p.Confirms) == 0 {
		return defaultValue, nil
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Choose(question string, options []string) (int, error) {
	p.Questions = append(p.Questions, question)
	if len(p.Choices) == 0 {
		return 0, fmt.Errorf("no scripted choice for %q", question)
	}
	choice := p.Choices[0]
	p.Choices = p.Choices[1:]
	return choice, nil
}
