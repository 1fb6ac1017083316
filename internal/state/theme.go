package state

import (
	"fmt"
	"strings"
)

// Theme names a color palette.
type Theme string

const (
	ThemeNebula       Theme = "nebula"
	ThemeProfessional Theme = "professional"
	ThemeRetro        Theme = "retro"
	ThemeBlueprint    Theme = "blueprint"
	ThemeSunset       Theme = "sunset"
	ThemeOceanic      Theme = "oceanic"
	ThemeSakura       Theme = "sakura"
	ThemeDracula      Theme = "dracula"
	ThemeSolarized    Theme = "solarized"
	ThemeEvergreen    Theme = "evergreen"
)

// DefaultTheme is active at startup.
const DefaultTheme = ThemeNebula

// ThemeInfo pairs a theme with its menu label.
type ThemeInfo struct {
	Name  Theme
	Label string
}

// Themes lists every theme in menu order.
var Themes = []ThemeInfo{
	{Name: ThemeNebula, Label: "Nebula"},
	{Name: ThemeProfessional, Label: "Professional"},
	{Name: ThemeRetro, Label: "Retro"},
	{Name: ThemeBlueprint, Label: "Blueprint"},
	{Name: ThemeSunset, Label: "Sunset"},
	{Name: ThemeOceanic, Label: "Oceanic"},
	{Name: ThemeSakura, Label: "Sakura"},
	{Name: ThemeDracula, Label: "Dracula"},
	{Name: ThemeSolarized, Label: "Solarized"},
	{Name: ThemeEvergreen, Label: "Evergreen"},
}

func (t Theme) Valid() bool {
	for _, info := range Themes {
		if info.Name == t {
			return true
		}
	}
	return false
}

func (t Theme) Label() string {
	for _, info := range Themes {
		if info.Name == t {
			return info.Label
		}
	}
	return string(t)
}

// Scope is the style-scope token the view applies for this theme.
func (t Theme) Scope() string {
	return "theme-" + string(t)
}

// ParseTheme validates a theme name, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}
