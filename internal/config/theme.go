// Package config carries the host-facing color palette: trimmed from the
// teacher's full theme system to the handful of roles this renderer
// actually paints (pane border/title, sidebar hover, status line).
package config

// ThemeColors holds the color roles the renderer consults. Compared to
// the teacher's ThemeColors, Base/Surface/Overlay/Mauve/Teal are dropped:
// this multiplexer never paints a full-screen background or a purple/cyan
// accent, only pane chrome and a status line.
type ThemeColors struct {
	Text    string `json:"text"`    // unfocused pane title
	Subtext string `json:"subtext"` // unfocused pane border
	Muted   string `json:"muted"`   // exited/disabled state; not painted by the pane view
	Blue    string `json:"blue"`    // sidebar hover highlight
	Green   string `json:"green"`   // focused pane border/title
	Yellow  string `json:"yellow"`  // status line / unknown command
	Red     string `json:"red"`     // error state; not painted by the pane view
}

// Theme names a palette.
type Theme struct {
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
}

// BuiltinThemes is a trimmed subset of the teacher's full palette list —
// one representative per popular family, all the roles above populated.
var BuiltinThemes = map[string]Theme{
	"catppuccin-mocha": {
		Name: "Catppuccin Mocha",
		Colors: ThemeColors{
			Text: "#cdd6f4", Subtext: "#a6adc8", Muted: "#6c7086",
			Blue: "#89b4fa", Green: "#a6e3a1", Yellow: "#f9e2af", Red: "#f38ba8",
		},
	},
	"tokyo-night": {
		Name: "Tokyo Night",
		Colors: ThemeColors{
			Text: "#c0caf5", Subtext: "#a9b1d6", Muted: "#565f89",
			Blue: "#7aa2f7", Green: "#9ece6a", Yellow: "#e0af68", Red: "#f7768e",
		},
	},
	"gruvbox-dark": {
		Name: "Gruvbox Dark",
		Colors: ThemeColors{
			Text: "#ebdbb2", Subtext: "#d5c4a1", Muted: "#928374",
			Blue: "#83a598", Green: "#b8bb26", Yellow: "#fabd2f", Red: "#fb4934",
		},
	},
	"nord": {
		Name: "Nord",
		Colors: ThemeColors{
			Text: "#eceff4", Subtext: "#e5e9f0", Muted: "#4c566a",
			Blue: "#81a1c1", Green: "#a3be8c", Yellow: "#ebcb8b", Red: "#bf616a",
		},
	},
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	return []string{"catppuccin-mocha", "tokyo-night", "gruvbox-dark", "nord"}
}

// GetTheme returns a theme by name, with optional per-field overrides,
// falling back to catppuccin-mocha for an unknown name.
func GetTheme(name string, overrides *ThemeColors) Theme {
	theme, ok := BuiltinThemes[name]
	if !ok {
		theme = BuiltinThemes["catppuccin-mocha"]
	}

	if overrides != nil {
		if overrides.Text != "" {
			theme.Colors.Text = overrides.Text
		}
		if overrides.Subtext != "" {
			theme.Colors.Subtext = overrides.Subtext
		}
		if overrides.Muted != "" {
			theme.Colors.Muted = overrides.Muted
		}
		if overrides.Blue != "" {
			theme.Colors.Blue = overrides.Blue
		}
		if overrides.Green != "" {
			theme.Colors.Green = overrides.Green
		}
		if overrides.Yellow != "" {
			theme.Colors.Yellow = overrides.Yellow
		}
		if overrides.Red != "" {
			theme.Colors.Red = overrides.Red
		}
	}

	return theme
}

// IsValidTheme reports whether name is a known builtin theme.
func IsValidTheme(name string) bool {
	_, ok := BuiltinThemes[name]
	return ok
}
