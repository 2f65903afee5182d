package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitstack.dev/gitstack/internal/utils"
)

// branchPickerModel is a filtered branch selection prompt
type branchPickerModel struct {
	filter   textinput.Model
	choices  []string
	filtered []string
	cursor   int
	selected string
	done     bool
	err      error
	message  string
}

func newBranchPickerModel(message string, choices []string) branchPickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 40

	m := branchPickerModel{
		filter:  ti,
		choices: choices,
		message: message,
	}
	m.updateFiltered()
	return m
}

func (m branchPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m branchPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if len(m.filtered) > 0 && m.cursor >= 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("canceled")
			m.done = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.filtered) - 1
			}
			return m, nil
		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.updateFiltered()
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m, cmd
}

func (m *branchPickerModel) updateFiltered() {
	filter := strings.ToLower(m.filter.Value())
	if filter == "" {
		m.filtered = m.choices
		return
	}
	m.filtered = nil
	for _, choice := range m.choices {
		if strings.Contains(strings.ToLower(choice), filter) {
			m.filtered = append(m.filtered, choice)
		}
	}
}

func (m branchPickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.message + "\n")
	b.WriteString(m.filter.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.filtered {
			cursor := " "
			line := choice
			if i == m.cursor {
				cursor = ">"
				line = ColorBranchName(choice, true)
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, line))
		}
	}

	b.WriteString("\n(Enter to select, Ctrl+C to cancel)")
	return lipgloss.NewStyle().Margin(1, 0).Render(b.String())
}

// PickBranch shows a filtered selector over the given branches and returns
// the chosen name.
func PickBranch(message string, branches []string) (string, error) {
	if !utils.IsInteractive() {
		return "", fmt.Errorf("cannot pick a branch: not running interactively")
	}
	if len(branches) == 0 {
		return "", fmt.Errorf("no branches to pick from")
	}

	p := tea.NewProgram(newBranchPickerModel(message, branches))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := model.(branchPickerModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.err != nil {
		return "", m.err
	}
	return m.selected, nil
}
