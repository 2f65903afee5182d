package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	branchStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	currentBranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// ColorBranchName colors a branch name, highlighting the current branch
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return currentBranchStyle.Render(branchName)
	}
	return branchStyle.Render(branchName)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// ColorWarn colors warning text
func ColorWarn(text string) string {
	return warnStyle.Render(text)
}

// ColorError colors error text
func ColorError(text string) string {
	return errorStyle.Render(text)
}

// ColorOK colors success text
func ColorOK(text string) string {
	return okStyle.Render(text)
}
