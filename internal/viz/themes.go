package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/frame"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color

	// Bar colours by role.
	Default  lipgloss.Color
	Compared lipgloss.Color
	Active   lipgloss.Color
	Pivot    lipgloss.Color
	Sorted   lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"),
		Accent:     lipgloss.Color("#ffff00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Default:    lipgloss.Color("#00ffff"),
		Compared:   lipgloss.Color("#ff0055"),
		Active:     lipgloss.Color("#00ff00"),
		Pivot:      lipgloss.Color("#ffff00"),
		Sorted:     lipgloss.Color("#ff00ff"),
	}

	// ThemeClassic uses matplotlib's tab10 colours.
	ThemeClassic = Theme{
		Name:       "classic",
		Primary:    lipgloss.Color("#1f77b4"),
		Accent:     lipgloss.Color("#ff7f0e"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#eeeeee"),
		Muted:      lipgloss.Color("#7f7f7f"),
		Default:    lipgloss.Color("#1f77b4"),
		Compared:   lipgloss.Color("#d62728"),
		Active:     lipgloss.Color("#2ca02c"),
		Pivot:      lipgloss.Color("#ffbf00"),
		Sorted:     lipgloss.Color("#9467bd"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Default:    lipgloss.Color("#00aa00"),
		Compared:   lipgloss.Color("#ffff00"),
		Active:     lipgloss.Color("#88ff88"),
		Pivot:      lipgloss.Color("#ffffff"),
		Sorted:     lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Default:    lipgloss.Color("#cccccc"),
		Compared:   lipgloss.Color("#ff0000"),
		Active:     lipgloss.Color("#0088ff"),
		Pivot:      lipgloss.Color("#ffaa00"),
		Sorted:     lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Default:    lipgloss.Color("#00a8cc"),
		Compared:   lipgloss.Color("#ff4444"),
		Active:     lipgloss.Color("#00ff88"),
		Pivot:      lipgloss.Color("#ffd700"),
		Sorted:     lipgloss.Color("#e0f0ff"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Default:    lipgloss.Color("#feca57"),
		Compared:   lipgloss.Color("#ff4757"),
		Active:     lipgloss.Color("#5fd068"),
		Pivot:      lipgloss.Color("#ff9ff3"),
		Sorted:     lipgloss.Color("#ff6b6b"),
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

func (t Theme) RoleColor(r frame.Role) lipgloss.Color {
	switch r {
	case frame.Compared:
		return t.Compared
	case frame.Active:
		return t.Active
	case frame.Pivot:
		return t.Pivot
	case frame.Sorted:
		return t.Sorted
	default:
		return t.Default
	}
}

func (t Theme) RoleStyle(r frame.Role) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.RoleColor(r))
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
