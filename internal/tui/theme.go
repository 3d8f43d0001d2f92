package tui

// Theme colors are hex strings so they can be blended for fades.
type Theme struct {
	Name   string
	Page   string
	Text   string
	Muted  string
	Header string
	Card   string
	Accent string
	Marker string
	Drawer string
	Border string
}

var Themes = map[string]Theme{
	"light": {
		Name:   "Light",
		Page:   "#ffffff",
		Text:   "#000000",
		Muted:  "#4b5563",
		Header: "#e5e7eb",
		Card:   "#f3f4f6",
		Accent: "#111827",
		Marker: "#000000",
		Drawer: "#ffffff",
		Border: "#d1d5db",
	},
	"dark": {
		Name:   "Dark",
		Page:   "#0f1115",
		Text:   "#f5f5f5",
		Muted:  "#9ca3af",
		Header: "#1f2937",
		Card:   "#1b1f27",
		Accent: "#f472b6",
		Marker: "#ffffff",
		Drawer: "#161a21",
		Border: "#374151",
	},
}

// ThemeByName falls back to the light theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["light"]
}
