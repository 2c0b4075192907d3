package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI. Success, Warning and Error double
// as the safe, suspicious and fraudulent risk colors.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// palette lists colors in Theme field order, Name excluded.
type palette [9]string

func newTheme(name string, p palette) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(p[0]),
		Secondary:  lipgloss.Color(p[1]),
		Accent:     lipgloss.Color(p[2]),
		Background: lipgloss.Color(p[3]),
		Text:       lipgloss.Color(p[4]),
		Muted:      lipgloss.Color(p[5]),
		Success:    lipgloss.Color(p[6]),
		Warning:    lipgloss.Color(p[7]),
		Error:      lipgloss.Color(p[8]),
	}
}

var (
	// emerald on slate, the dashboard's home colors
	ThemeNeon = newTheme("neon", palette{
		"#34d399", "#22d3ee", "#e879f9", "#030712", "#f3f4f6", "#6b7280", "#10b981", "#facc15", "#ef4444",
	})
	ThemeCyberpunk = newTheme("cyberpunk", palette{
		"#f472b6", "#38bdf8", "#fde047", "#0a0a0f", "#fafafa", "#71717a", "#4ade80", "#fb923c", "#f43f5e",
	})
	ThemeRetroGreen = newTheme("retro", palette{
		"#4ade80", "#22c55e", "#bbf7d0", "#052e16", "#86efac", "#166534", "#a3e635", "#fde047", "#f87171",
	})
	ThemeMinimal = newTheme("minimal", palette{
		"#f5f5f5", "#d4d4d4", "#60a5fa", "#000000", "#fafafa", "#737373", "#a3e635", "#fbbf24", "#f87171",
	})
	ThemeOcean = newTheme("ocean", palette{
		"#0ea5e9", "#06b6d4", "#fcd34d", "#0c1a2b", "#e0f2fe", "#4b7399", "#2dd4bf", "#fbbf24", "#fb7185",
	})
	ThemeSunset = newTheme("sunset", palette{
		"#fb7185", "#fdba74", "#f0abfc", "#2a1625", "#fff1f2", "#8b6b8c", "#86efac", "#fcd34d", "#e11d48",
	})

	// Themes in cycle order, default first.
	Themes = []Theme{
		ThemeNeon,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// NextTheme returns the theme after name, wrapping around.
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
