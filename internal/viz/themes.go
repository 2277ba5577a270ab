package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color

	// Bar colours per highlight role.
	Neutral  lipgloss.Color
	Compare  lipgloss.Color
	Swap     lipgloss.Color
	Complete lipgloss.Color
}

// Available themes
var (
	ThemeIndigo = Theme{
		Name:       "indigo",
		Primary:    lipgloss.Color("#818cf8"),
		Secondary:  lipgloss.Color("#6366f1"),
		Accent:     lipgloss.Color("#fbbf24"),
		Background: lipgloss.Color("#030712"),
		Text:       lipgloss.Color("#f1f5f9"),
		Muted:      lipgloss.Color("#64748b"),
		Neutral:    lipgloss.Color("#334155"),
		Compare:    lipgloss.Color("#818cf8"),
		Swap:       lipgloss.Color("#fbbf24"),
		Complete:   lipgloss.Color("#34d399"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Neutral:    lipgloss.Color("#444444"),
		Compare:    lipgloss.Color("#00ffff"),
		Swap:       lipgloss.Color("#ff00ff"),
		Complete:   lipgloss.Color("#00ff00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Neutral:    lipgloss.Color("#006600"),
		Compare:    lipgloss.Color("#88ff88"),
		Swap:       lipgloss.Color("#ffff00"),
		Complete:   lipgloss.Color("#00ff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Neutral:    lipgloss.Color("#555555"),
		Compare:    lipgloss.Color("#0088ff"),
		Swap:       lipgloss.Color("#ffaa00"),
		Complete:   lipgloss.Color("#00ff00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Neutral:    lipgloss.Color("#1f4e6e"),
		Compare:    lipgloss.Color("#00a8cc"),
		Swap:       lipgloss.Color("#ffcc00"),
		Complete:   lipgloss.Color("#00ff88"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Neutral:    lipgloss.Color("#5a3d5c"),
		Compare:    lipgloss.Color("#ff9ff3"),
		Swap:       lipgloss.Color("#ffc048"),
		Complete:   lipgloss.Color("#5fd068"),
	}

	// All available themes
	Themes = []Theme{
		ThemeIndigo,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to indigo.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeIndigo
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
