package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"shopcal/pkg/calendar"
)

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// MonthGrid prints a compact month overview: days with an entry are bold,
// Sundays underlined, padding days blank. The column order honors
// weekStartsOn.
func (pp *PrettyPrint) MonthGrid(year int, month time.Month, marked map[string]bool, weekStartsOn time.Weekday) {
	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%04d-%02d", year, int(month))
	mid := (gridWidth - len(m)) / 2
	_, _ = tf.Fprintf(color.Output, "%s%s%s\n",
		strings.Repeat(" ", mid), m, strings.Repeat(" ", gridWidth-mid-len(m)))

	faint := color.New(color.Faint, color.FgWhite)
	bold := color.New(color.Bold, color.FgHiWhite)
	sunday := color.New(color.Faint, color.Underline)
	sundayBold := color.New(color.Bold, color.Underline)

	for i, d := range calendar.Days(year, month, weekStartsOn) {
		switch {
		case !d.IsCurrentMonth:
			fmt.Fprint(color.Output, "   ")
		default:
			printer := faint
			if marked[d.DateString] {
				printer = bold
			}
			if d.Date.Weekday() == time.Sunday {
				printer = sunday
				if marked[d.DateString] {
					printer = sundayBold
				}
			}
			_, _ = printer.Fprintf(color.Output, "%2d ", d.Day)
		}
		if i%7 == 6 {
			fmt.Fprint(color.Output, "\n")
		}
	}
	fmt.Fprint(color.Output, "\n")
}
