// Package calendar renders the month grid for the terminal UI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	cal "shopcal/pkg/calendar"
	"shopcal/pkg/entry"
	"shopcal/pkg/theme"
)

// Day describes metadata used when rendering one grid cell.
type Day struct {
	Day        int
	Weekday    time.Weekday
	InMonth    bool
	Marker     string // single-cell stamp marker, "" for none
	IsToday    bool
	IsHoliday  bool
	IsSelected bool
}

// Markers maps stamp keys to single-cell grid markers.
var Markers = map[string]string{
	"closed":    "-",
	"available": "o",
	"few":       "^",
	"reserved":  "x",
	"full":      "*",
}

// Options controls the styling of the rendered grid.
type Options struct {
	HeaderStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	DayStyle      lipgloss.Style
	SundayStyle   lipgloss.Style
	SaturdayStyle lipgloss.Style
	HolidayStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	// WeekdayLabels holds the 7 column headers, already rotated to the
	// configured week start. Empty skips the header row.
	WeekdayLabels []string
}

// DefaultOptions derives grid styling from a calendar theme.
func DefaultOptions(c theme.Colors) Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextMuted)).Bold(true),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextMuted)).Faint(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		SundayStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Sunday)),
		SaturdayStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Saturday)),
		HolidayStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Holiday)),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color(c.Accent)).Foreground(lipgloss.Color(c.BG)),
	}
}

// Build joins the month grid with its entries into renderable cells.
// isHoliday may be nil when holidays are disabled.
func Build(days []cal.Day, entries map[string]entry.Entry, isHoliday func(time.Time) bool, selected string) []Day {
	cells := make([]Day, 0, len(days))
	for _, d := range days {
		cell := Day{
			Day:        d.Day,
			Weekday:    d.Date.Weekday(),
			InMonth:    d.IsCurrentMonth,
			IsToday:    d.IsToday,
			IsSelected: d.DateString == selected,
		}
		if e, ok := entries[d.DateString]; ok {
			cell.Marker = Markers[e.Stamp]
		}
		if isHoliday != nil && d.IsCurrentMonth {
			cell.IsHoliday = isHoliday(d.Date)
		}
		cells = append(cells, cell)
	}
	return cells
}

// Render produces a multi-line month grid. Cells must be a multiple of seven
// long and ordered the way calendar.Days returns them.
func Render(cells []Day, opts Options) string {
	var lines []string

	if len(opts.WeekdayLabels) == 7 {
		var hs []string
		for _, l := range opts.WeekdayLabels {
			hs = append(hs, opts.HeaderStyle.Width(3).Align(lipgloss.Right).Render(l))
		}
		lines = append(lines, strings.Join(hs, " "))
	}

	for row := 0; row*7+6 < len(cells); row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			rendered = append(rendered, renderDay(cells[row*7+col], opts))
		}
		lines = append(lines, strings.Join(rendered, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(d Day, opts Options) string {
	marker := d.Marker
	if marker == "" {
		marker = " "
	}
	text := fmt.Sprintf("%2d%s", d.Day, marker)

	style := opts.DayStyle
	if !d.InMonth {
		style = opts.MutedStyle
	} else {
		switch {
		case d.IsHoliday:
			style = opts.HolidayStyle
		case d.Weekday == time.Sunday:
			style = opts.SundayStyle
		case d.Weekday == time.Saturday:
			style = opts.SaturdayStyle
		}
	}
	if d.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if d.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
