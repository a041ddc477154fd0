// Package settings defines the persisted singleton settings record and its
// versioned migration chain.
package settings

import "time"

// Settings is the app-wide configuration. Loaded once at startup,
// default-filled for missing fields, patched on every change.
type Settings struct {
	Language      string       `json:"language"`
	Country       string       `json:"country"`
	WeekStartsOn  time.Weekday `json:"weekStartsOn"`
	AppTheme      string       `json:"appTheme"`
	CalendarTheme string       `json:"calendarTheme"`
	GridStyle     string       `json:"gridStyle"` // "rounded" or "lined"
	ShowHolidays  bool         `json:"showHolidays"`
	ShowRokuyo    bool         `json:"showRokuyo"`
	UseWareki     bool         `json:"useWareki"`
	ShopName      string       `json:"shopName"`
	// ShopLogo and BackgroundImage are image file paths; the renderer
	// silently omits a layer whose image cannot be loaded.
	ShopLogo          string  `json:"shopLogo,omitempty"`
	BackgroundImage   string  `json:"backgroundImage,omitempty"`
	BackgroundOpacity float64 `json:"backgroundOpacity"`
}

// GridStyleLined is the hairline-border rendering mode.
const (
	GridStyleRounded = "rounded"
	GridStyleLined   = "lined"
)

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		Language:          "ja",
		Country:           "JP",
		WeekStartsOn:      time.Sunday,
		AppTheme:          "dark",
		CalendarTheme:     "dark",
		GridStyle:         GridStyleRounded,
		ShowHolidays:      true,
		ShowRokuyo:        false,
		UseWareki:         false,
		ShopName:          "",
		BackgroundOpacity: 0.15,
	}
}

// Patch is a partial settings mutation; nil fields keep the stored value.
type Patch struct {
	Language          *string
	Country           *string
	WeekStartsOn      *time.Weekday
	AppTheme          *string
	CalendarTheme     *string
	GridStyle         *string
	ShowHolidays      *bool
	ShowRokuyo        *bool
	UseWareki         *bool
	ShopName          *string
	ShopLogo          *string
	BackgroundImage   *string
	BackgroundOpacity *float64
}

// Apply merges p on top of s.
func (s Settings) Apply(p Patch) Settings {
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Country != nil {
		s.Country = *p.Country
	}
	if p.WeekStartsOn != nil {
		s.WeekStartsOn = *p.WeekStartsOn
	}
	if p.AppTheme != nil {
		s.AppTheme = *p.AppTheme
	}
	if p.CalendarTheme != nil {
		s.CalendarTheme = *p.CalendarTheme
	}
	if p.GridStyle != nil {
		s.GridStyle = *p.GridStyle
	}
	if p.ShowHolidays != nil {
		s.ShowHolidays = *p.ShowHolidays
	}
	if p.ShowRokuyo != nil {
		s.ShowRokuyo = *p.ShowRokuyo
	}
	if p.UseWareki != nil {
		s.UseWareki = *p.UseWareki
	}
	if p.ShopName != nil {
		s.ShopName = *p.ShopName
	}
	if p.ShopLogo != nil {
		s.ShopLogo = *p.ShopLogo
	}
	if p.BackgroundImage != nil {
		s.BackgroundImage = *p.BackgroundImage
	}
	if p.BackgroundOpacity != nil {
		s.BackgroundOpacity = *p.BackgroundOpacity
	}
	return s
}
