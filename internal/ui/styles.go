package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jh3/class-schedule/internal/state"
)

// Palette is the set of colors one theme paints the dashboard with.
type Palette struct {
	Accent    lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Badge     lipgloss.Color
	Backdrop  lipgloss.Color
	Success   lipgloss.Color
}

// palettes is keyed by theme scope token ("theme-nebula").
var palettes = map[string]Palette{
	state.ThemeNebula.Scope(): {
		Accent: "#a78bfa", Primary: "#f5f3ff", Secondary: "#c4b5fd", Muted: "#8b7fb8",
		Border: "#4c3d7a", Badge: "#2e2357", Backdrop: "#1e1535", Success: "#4ade80",
	},
	state.ThemeProfessional.Scope(): {
		Accent: "#2563eb", Primary: "#e5e7eb", Secondary: "#9ca3af", Muted: "#6b7280",
		Border: "#374151", Badge: "#1f2937", Backdrop: "#111827", Success: "#22c55e",
	},
	state.ThemeRetro.Scope(): {
		Accent: "#f59e0b", Primary: "#fde68a", Secondary: "#84cc16", Muted: "#a16207",
		Border: "#78350f", Badge: "#422006", Backdrop: "#1c1403", Success: "#84cc16",
	},
	state.ThemeBlueprint.Scope(): {
		Accent: "#38bdf8", Primary: "#e0f2fe", Secondary: "#7dd3fc", Muted: "#60a5fa",
		Border: "#1d4ed8", Badge: "#1e3a8a", Backdrop: "#0b1f4d", Success: "#34d399",
	},
	state.ThemeSunset.Scope(): {
		Accent: "#fb7185", Primary: "#fff1f2", Secondary: "#fdba74", Muted: "#f97316",
		Border: "#9a3412", Badge: "#4c0519", Backdrop: "#2a0a12", Success: "#facc15",
	},
	state.ThemeOceanic.Scope(): {
		Accent: "#2dd4bf", Primary: "#ecfeff", Secondary: "#67e8f9", Muted: "#0e7490",
		Border: "#155e75", Badge: "#083344", Backdrop: "#041e26", Success: "#4ade80",
	},
	state.ThemeSakura.Scope(): {
		Accent: "#f472b6", Primary: "#fdf2f8", Secondary: "#f9a8d4", Muted: "#db2777",
		Border: "#9d174d", Badge: "#500724", Backdrop: "#2b0516", Success: "#86efac",
	},
	state.ThemeDracula.Scope(): {
		Accent: "#bd93f9", Primary: "#f8f8f2", Secondary: "#8be9fd", Muted: "#6272a4",
		Border: "#44475a", Badge: "#343746", Backdrop: "#282a36", Success: "#50fa7b",
	},
	state.ThemeSolarized.Scope(): {
		Accent: "#268bd2", Primary: "#fdf6e3", Secondary: "#93a1a1", Muted: "#657b83",
		Border: "#586e75", Badge: "#073642", Backdrop: "#002b36", Success: "#859900",
	},
	state.ThemeEvergreen.Scope(): {
		Accent: "#34d399", Primary: "#ecfdf5", Secondary: "#a7f3d0", Muted: "#059669",
		Border: "#065f46", Badge: "#022c22", Backdrop: "#011a14", Success: "#bef264",
	},
}

// PaletteFor returns the palette for a theme scope token, falling back to
// the default theme.
func PaletteFor(scope string) Palette {
	if p, ok := palettes[scope]; ok {
		return p
	}
	return palettes[state.DefaultTheme.Scope()]
}

type styles struct {
	header      lipgloss.Style
	title       lipgloss.Style
	indicator   lipgloss.Style
	column      lipgloss.Style
	columnTitle lipgloss.Style
	section     lipgloss.Style
	card        lipgloss.Style
	cardFocused lipgloss.Style
	course      lipgloss.Style
	cardTitle   lipgloss.Style
	badge       lipgloss.Style
	detail      lipgloss.Style
	icon        lipgloss.Style
	rule        lipgloss.Style
	placeholder lipgloss.Style
	menu        lipgloss.Style
	menuItem    lipgloss.Style
	menuActive  lipgloss.Style
	menuCursor  lipgloss.Style
	modal       lipgloss.Style
	modalTitle  lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	button      lipgloss.Style
	copied      lipgloss.Style
	emptyTitle  lipgloss.Style
	emptyHint   lipgloss.Style
	help        lipgloss.Style
	backdrop    lipgloss.Color
}

func newStyles(p Palette) styles {
	return styles{
		header: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Border).
			Padding(0, 1),
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		indicator: lipgloss.NewStyle().Foreground(p.Secondary),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		columnTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Align(lipgloss.Center),
		section:     lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginTop(1),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		cardFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		course:      lipgloss.NewStyle().Bold(true).Foreground(p.Muted),
		cardTitle:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		badge:       lipgloss.NewStyle().Foreground(p.Secondary).Background(p.Badge).Padding(0, 1),
		detail:      lipgloss.NewStyle().Foreground(p.Secondary),
		icon:        lipgloss.NewStyle().Foreground(p.Muted),
		rule:        lipgloss.NewStyle().Foreground(p.Border),
		placeholder: lipgloss.NewStyle().Foreground(p.Secondary).Italic(true),
		menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		menuItem:   lipgloss.NewStyle().Foreground(p.Secondary),
		menuActive: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		menuCursor: lipgloss.NewStyle().Foreground(p.Accent),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),
		modalTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1),
		label:      lipgloss.NewStyle().Bold(true).Foreground(p.Muted),
		value:      lipgloss.NewStyle().Foreground(p.Secondary),
		button:     lipgloss.NewStyle().Foreground(p.Secondary).Background(p.Badge).Padding(0, 1),
		copied:     lipgloss.NewStyle().Foreground(p.Success).Background(p.Badge).Padding(0, 1),
		emptyTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Secondary),
		emptyHint:  lipgloss.NewStyle().Foreground(p.Muted),
		help:       lipgloss.NewStyle().PaddingLeft(1),
		backdrop:   p.Backdrop,
	}
}
