package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/suryansh-23/dbglog/internal/ansi"
	"github.com/suryansh-23/dbglog/internal/category"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(Primary)
	disabledStyle = lipgloss.NewStyle().Foreground(Off)
	indexStyle    = lipgloss.NewStyle().Foreground(Muted)
)

// CategoryTable renders one row per declared category with its state.
// Categories missing from states are shown as unknown.
func CategoryTable(states map[category.Category]category.State) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-3s %-10s %s", "#", "CATEGORY", "STATE")))
	for _, c := range category.All() {
		b.WriteByte('\n')
		label := "unknown"
		style := indexStyle
		if s, ok := states[c]; ok {
			label = s.String()
			style = enabledStyle
			if s == category.Disabled {
				style = disabledStyle
			}
		}
		b.WriteString(indexStyle.Render(fmt.Sprintf("%-3d", int(c))))
		b.WriteString(fmt.Sprintf(" %-10s ", c))
		b.WriteString(style.Render(label))
	}
	return b.String()
}

// ColorSwatch lists every debug color rendered with its own escape code.
// With raw unset, only names are printed.
func ColorSwatch(raw bool) string {
	var b strings.Builder
	for i, c := range ansi.Colors() {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := fmt.Sprintf("%-14s", c)
		if raw {
			b.WriteString(ansi.Code(c) + name + ansi.Reset)
		} else {
			b.WriteString(name)
		}
		b.WriteString(indexStyle.Render(fmt.Sprintf(" %q", ansi.Code(c))))
	}
	return b.String()
}
