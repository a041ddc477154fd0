package holiday

import "time"

// Japanese national holidays under the current (post-2019) law: fixed dates,
// happy-monday holidays, the two equinoxes, plus the substitute-holiday rule
// (a holiday falling on Sunday pushes to the next non-holiday weekday) and
// the citizens'-holiday rule (a workday sandwiched between two holidays is
// itself a holiday).

func japaneseHoliday(date time.Time) (string, bool) {
	if name, ok := baseJapaneseHoliday(date); ok {
		return name, true
	}

	// Substitute holiday: walk back over consecutive holidays to a Sunday.
	d := date.AddDate(0, 0, -1)
	for {
		if _, ok := baseJapaneseHoliday(d); !ok {
			break
		}
		if d.Weekday() == time.Sunday {
			return "振替休日", true
		}
		d = d.AddDate(0, 0, -1)
	}

	// Citizens' holiday: a single day between two holidays (Silver Week).
	if date.Weekday() != time.Sunday {
		_, prev := baseJapaneseHoliday(date.AddDate(0, 0, -1))
		_, next := baseJapaneseHoliday(date.AddDate(0, 0, 1))
		if prev && next {
			return "国民の休日", true
		}
	}

	return "", false
}

func baseJapaneseHoliday(date time.Time) (string, bool) {
	y, m, d := date.Year(), date.Month(), date.Day()

	switch m {
	case time.January:
		if d == 1 {
			return "元日", true
		}
		if isNthMonday(date, 2) {
			return "成人の日", true
		}
	case time.February:
		if d == 11 {
			return "建国記念の日", true
		}
		if d == 23 && y >= 2020 {
			return "天皇誕生日", true
		}
	case time.March:
		if d == vernalEquinoxDay(y) {
			return "春分の日", true
		}
	case time.April:
		if d == 29 {
			return "昭和の日", true
		}
	case time.May:
		switch d {
		case 3:
			return "憲法記念日", true
		case 4:
			return "みどりの日", true
		case 5:
			return "こどもの日", true
		}
	case time.July:
		if isNthMonday(date, 3) {
			return "海の日", true
		}
	case time.August:
		if d == 11 && y >= 2016 {
			return "山の日", true
		}
	case time.September:
		if isNthMonday(date, 3) {
			return "敬老の日", true
		}
		if d == autumnalEquinoxDay(y) {
			return "秋分の日", true
		}
	case time.October:
		if isNthMonday(date, 2) {
			return "スポーツの日", true
		}
	case time.November:
		if d == 3 {
			return "文化の日", true
		}
		if d == 23 {
			return "勤労感謝の日", true
		}
	}
	return "", false
}

func isNthMonday(date time.Time, n int) bool {
	return date.Weekday() == time.Monday && (date.Day()-1)/7 == n-1
}

// Equinox day approximations, valid for 1980-2099.
func vernalEquinoxDay(year int) int {
	return int(20.8431+0.242194*float64(year-1980)) - (year-1980)/4
}

func autumnalEquinoxDay(year int) int {
	return int(23.2488+0.242194*float64(year-1980)) - (year-1980)/4
}
