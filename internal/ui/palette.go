package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorTeal   = "#2DD4BF"
	colorAmber  = "#FBBF24"
	colorSlate  = "#64748B"
	colorRose   = "#FB7185"
	colorIndigo = "#818CF8"
)

var (
	Primary   = lipgloss.Color(colorTeal)
	Secondary = lipgloss.Color(colorIndigo)
	Warn      = lipgloss.Color(colorAmber)
	Off       = lipgloss.Color(colorRose)
	Muted     = lipgloss.Color(colorSlate)
	Palette   = []lipgloss.Color{Primary, Secondary, Warn, Off}
)
