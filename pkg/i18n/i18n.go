// Package i18n holds the locale tables for the calendar. The render engine
// and CLI consume locales through T(key) lookups; month names are exposed as
// an ordered list because western header layouts need the array, not a
// format string.
package i18n

// Locale is a static translation table for one language.
type Locale struct {
	Language   string
	strings    map[string]string
	monthNames []string
}

// T resolves a translation key. Unknown keys resolve to the key itself so a
// missing entry shows up in the UI instead of vanishing.
func (l *Locale) T(key string) string {
	if v, ok := l.strings[key]; ok {
		return v
	}
	return key
}

// MonthNames returns the ordered month-name list, or nil for languages that
// use a year/month suffix convention instead.
func (l *Locale) MonthNames() []string {
	return l.monthNames
}

// UsesMonthNames reports whether the locale renders "MonthName Year" headers
// rather than the CJK "Year年 Month月" style.
func (l *Locale) UsesMonthNames() bool {
	return len(l.monthNames) == 12 && l.strings["calendar.yearSuffix"] == ""
}

var ja = &Locale{
	Language: "ja",
	strings: map[string]string{
		"weekdays.sun": "日",
		"weekdays.mon": "月",
		"weekdays.tue": "火",
		"weekdays.wed": "水",
		"weekdays.thu": "木",
		"weekdays.fri": "金",
		"weekdays.sat": "土",

		"calendar.yearSuffix":  "年",
		"calendar.monthSuffix": "月",

		"quickInput.closed":    "休",
		"quickInput.available": "◯",
		"quickInput.few":       "△",
		"quickInput.reserved":  "✕",
		"quickInput.full":      "満",

		"themes.dark":   "ダーク",
		"themes.light":  "ライト",
		"themes.cafe":   "カフェ",
		"themes.nature": "ナチュラル",
		"themes.ocean":  "オーシャン",
		"themes.sunset": "サンセット",
	},
}

var en = &Locale{
	Language: "en",
	strings: map[string]string{
		"weekdays.sun": "Sun",
		"weekdays.mon": "Mon",
		"weekdays.tue": "Tue",
		"weekdays.wed": "Wed",
		"weekdays.thu": "Thu",
		"weekdays.fri": "Fri",
		"weekdays.sat": "Sat",

		"calendar.yearSuffix":  "",
		"calendar.monthSuffix": "",

		"quickInput.closed":    "Closed",
		"quickInput.available": "Open",
		"quickInput.few":       "Few",
		"quickInput.reserved":  "Booked",
		"quickInput.full":      "Full",

		"themes.dark":   "Dark",
		"themes.light":  "Light",
		"themes.cafe":   "Cafe",
		"themes.nature": "Nature",
		"themes.ocean":  "Ocean",
		"themes.sunset": "Sunset",
	},
	monthNames: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
}

// ForLanguage returns the locale for a language code, falling back to
// English for anything unknown.
func ForLanguage(lang string) *Locale {
	if lang == "ja" {
		return ja
	}
	return en
}
