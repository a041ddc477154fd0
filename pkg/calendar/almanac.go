package calendar

import (
	"fmt"
	"time"

	lunar "github.com/6tail/lunar-go/calendar"
)

// Rokuyo follows the old lunar calendar: the cycle starts over at the first
// of each lunar month, offset by the month number.
var rokuyoNames = [6]string{"大安", "赤口", "先勝", "友引", "先負", "仏滅"}

// Rokuyo returns the rokuyo name for the given date.
func Rokuyo(date time.Time) string {
	l := lunar.NewSolarFromDate(date).GetLunar()
	month := l.GetMonth()
	if month < 0 {
		// Leap lunar months are reported negative and share the
		// numbering of the month they repeat.
		month = -month
	}
	return rokuyoNames[(month+l.GetDay())%6]
}

type era struct {
	name  string
	start time.Time
}

var eras = []era{
	{"令和", time.Date(2019, time.May, 1, 0, 0, 0, 0, time.Local)},
	{"平成", time.Date(1989, time.January, 8, 0, 0, 0, 0, time.Local)},
	{"昭和", time.Date(1926, time.December, 25, 0, 0, 0, 0, time.Local)},
}

// WarekiYear returns the era-based year label for the given date, e.g.
// "令和7" for 2025. The first year of an era is written 元.
func WarekiYear(date time.Time) string {
	for _, e := range eras {
		if date.Before(e.start) {
			continue
		}
		n := date.Year() - e.start.Year() + 1
		if n == 1 {
			return e.name + "元"
		}
		return fmt.Sprintf("%s%d", e.name, n)
	}
	return fmt.Sprintf("%d", date.Year())
}
