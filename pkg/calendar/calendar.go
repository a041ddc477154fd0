package calendar

import (
	"fmt"
	"time"
)

// ISODate is the layout for the date keys used across the store.
const ISODate = "2006-01-02"

// Day describes a single cell of the month grid.
type Day struct {
	Date           time.Time
	DateString     string // YYYY-MM-DD
	Day            int
	IsCurrentMonth bool
	IsToday        bool
}

// Days returns the grid for the given month: full weeks covering the month,
// padded with leading and trailing days from the adjacent months. The result
// length is always a multiple of 7 (35 or 42) and is chronological, starting
// at the week containing the 1st.
func Days(year int, month time.Month, weekStartsOn time.Weekday) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	lead := int(first.Weekday()-weekStartsOn+7) % 7
	trail := 6 - int(last.Weekday()-weekStartsOn+7)%7

	start := first.AddDate(0, 0, -lead)
	end := last.AddDate(0, 0, trail)

	now := time.Now()
	days := make([]Day, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:           d,
			DateString:     d.Format(ISODate),
			Day:            d.Day(),
			IsCurrentMonth: d.Month() == month,
			IsToday:        sameDay(d, now),
		})
	}
	return days
}

// WeekdayHeader is one column header of the grid. DayOfWeek is the stable
// Sunday-indexed weekday, independent of display order, used for weekend
// color lookups.
type WeekdayHeader struct {
	LabelKey  string
	DayOfWeek time.Weekday
}

var weekdayHeaders = []WeekdayHeader{
	{LabelKey: "weekdays.sun", DayOfWeek: time.Sunday},
	{LabelKey: "weekdays.mon", DayOfWeek: time.Monday},
	{LabelKey: "weekdays.tue", DayOfWeek: time.Tuesday},
	{LabelKey: "weekdays.wed", DayOfWeek: time.Wednesday},
	{LabelKey: "weekdays.thu", DayOfWeek: time.Thursday},
	{LabelKey: "weekdays.fri", DayOfWeek: time.Friday},
	{LabelKey: "weekdays.sat", DayOfWeek: time.Saturday},
}

// WeekdayHeaders returns the 7 column headers rotated so the list starts at
// weekStartsOn.
func WeekdayHeaders(weekStartsOn time.Weekday) []WeekdayHeader {
	out := make([]WeekdayHeader, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, weekdayHeaders[(int(weekStartsOn)+i)%7])
	}
	return out
}

// MonthKey formats the key used by the comment and theme maps, e.g. "2025-06".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// DaysInMonth returns the day count of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
