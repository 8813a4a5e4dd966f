package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the color palette used for terminal output.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676
	Muted   lipgloss.Color // #dedcd590
}

// Vitesse defines the current global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),
	Muted:   lipgloss.Color("#dedcd590"),
}

var (
	keyStyle     = lipgloss.NewStyle().Foreground(Vitesse.Primary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(Vitesse.Muted)
	addedStyle   = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	changedStyle = lipgloss.NewStyle().Foreground(Vitesse.Yellow)
	removedStyle = lipgloss.NewStyle().Foreground(Vitesse.Red)
)
