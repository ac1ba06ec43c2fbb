package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	`     ____       __       __          `,
	`    / __ \___  / /_ ___ / /__  ___ _ `,
	`   / /_/ / _ \/ __ / _ '/ / _ \/ _ '/ `,
	`  /_____/_.__/_/ /_\_, /_/\___/\_, /  `,
	`                  /___/       /___/   `,
}

// Logo renders the banner, cycling line colors through Palette.
func Logo() string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		lines[i] = lipgloss.NewStyle().Foreground(Palette[i%len(Palette)]).Render(line)
	}
	return strings.Join(lines, "\n")
}
