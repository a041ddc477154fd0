// Package theme holds the static color tables. Lookup is pure; per-month
// overrides are resolved by the app layer, not here.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colors is one calendar theme.
type Colors struct {
	BG        string
	Surface   string
	Text      string
	TextMuted string
	Accent    string
	Sunday    string
	Saturday  string
	Holiday   string
}

// DefaultID is used whenever a theme id cannot be resolved.
const DefaultID = "dark"

// Calendar is the calendar-image theme table.
var Calendar = map[string]Colors{
	"dark": {
		BG: "#1f2937", Surface: "#374151", Text: "#ffffff", TextMuted: "#9ca3af",
		Accent: "#3b82f6", Sunday: "#f87171", Saturday: "#60a5fa", Holiday: "#f87171",
	},
	"light": {
		BG: "#ffffff", Surface: "#f3f4f6", Text: "#1f2937", TextMuted: "#6b7280",
		Accent: "#3b82f6", Sunday: "#dc2626", Saturday: "#2563eb", Holiday: "#dc2626",
	},
	"cafe": {
		BG: "#3d2c29", Surface: "#5c4742", Text: "#f5f0eb", TextMuted: "#c4b5a8",
		Accent: "#d4a574", Sunday: "#e57373", Saturday: "#7db8c9", Holiday: "#e57373",
	},
	"nature": {
		BG: "#2d3b2d", Surface: "#3d4d3d", Text: "#e8f0e8", TextMuted: "#a8c0a8",
		Accent: "#7cb97c", Sunday: "#e57373", Saturday: "#7db8c9", Holiday: "#e57373",
	},
	"ocean": {
		BG: "#1a3a4a", Surface: "#2a4a5a", Text: "#e0f0f8", TextMuted: "#90c0d8",
		Accent: "#4da6c9", Sunday: "#e57373", Saturday: "#7db8c9", Holiday: "#e57373",
	},
	"sunset": {
		BG: "#4a2a2a", Surface: "#5a3a3a", Text: "#f8e8e0", TextMuted: "#d8b0a0",
		Accent: "#e8a070", Sunday: "#e57373", Saturday: "#7db8c9", Holiday: "#e57373",
	},
}

// AppColors is the (smaller) shell theme used by the interactive UI.
type AppColors struct {
	BG        string
	Surface   string
	Text      string
	TextMuted string
	Accent    string
}

var App = map[string]AppColors{
	"dark":  {BG: "#111827", Surface: "#1f2937", Text: "#ffffff", TextMuted: "#9ca3af", Accent: "#3b82f6"},
	"light": {BG: "#f9fafb", Surface: "#ffffff", Text: "#111827", TextMuted: "#6b7280", Accent: "#3b82f6"},
}

// Names maps theme ids to their translation keys.
var Names = map[string]string{
	"dark":   "themes.dark",
	"light":  "themes.light",
	"cafe":   "themes.cafe",
	"nature": "themes.nature",
	"ocean":  "themes.ocean",
	"sunset": "themes.sunset",
}

// Lookup resolves a calendar theme id, falling back to the default for
// anything unknown.
func Lookup(id string) Colors {
	if c, ok := Calendar[id]; ok {
		return c
	}
	return Calendar[DefaultID]
}

// IsValid reports whether id names a calendar theme.
func IsValid(id string) bool {
	_, ok := Calendar[id]
	return ok
}

// RGBA parses a #rrggbb hex color. Invalid input yields opaque black; a
// render must never fail over a bad color string.
func RGBA(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// WithAlpha parses a #rrggbb hex color and applies an alpha in [0,1],
// mirroring the "#rrggbbaa" suffix notation of the web renderer.
func WithAlpha(hex string, alpha float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{A: uint8(alpha * 0xff)}
	}
	r, g, b := c.RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*0xff + 0.5)}
}
