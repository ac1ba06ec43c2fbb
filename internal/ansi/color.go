package ansi

import (
	"errors"
	"fmt"
	"strings"
)

// Reset ends any color started by Code.
const Reset = "\033[m"

// Color is a foreground color for debug output.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	White
	Black
	Magenta
	Cyan
	Yellow
	Gray
	LightRed
	LightGreen
	LightBlue
	LightWhite
	LightMagenta
	LightCyan
	LightYellow

	ColorCount
)

var ErrUnknownColor = errors.New("unknown color")

type colorInfo struct {
	name string
	code string
}

var colors = [ColorCount]colorInfo{
	Red:          {"red", "\033[1;31m"},
	Green:        {"green", "\033[1;32m"},
	Blue:         {"blue", "\033[1;34m"},
	White:        {"white", "\033[1;37m"},
	Black:        {"black", "\033[1;30m"},
	Magenta:      {"magenta", "\033[1;35m"},
	Cyan:         {"cyan", "\033[1;36m"},
	Yellow:       {"yellow", "\033[1;33m"},
	Gray:         {"gray", "\033[1;90m"},
	LightRed:     {"light-red", "\033[1;91m"},
	LightGreen:   {"light-green", "\033[1;92m"},
	LightBlue:    {"light-blue", "\033[1;94m"},
	LightWhite:   {"light-white", "\033[1;97m"},
	LightMagenta: {"light-magenta", "\033[1;95m"},
	LightCyan:    {"light-cyan", "\033[1;96m"},
	LightYellow:  {"light-yellow", "\033[1;93m"},
}

// Code returns the bold ANSI foreground escape for c. Unknown colors render
// as white.
func Code(c Color) string {
	if c >= ColorCount {
		return colors[White].code
	}
	return colors[c].code
}

func (c Color) String() string {
	if c >= ColorCount {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colors[c].name
}

// Colors returns every supported color in declaration order.
func Colors() []Color {
	out := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseColor resolves a color name. Underscores and spaces are accepted in
// place of dashes, so "light_red" and "Light Red" both match.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for c := Color(0); c < ColorCount; c++ {
		if colors[c].name == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
