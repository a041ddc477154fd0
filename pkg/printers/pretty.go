// Package printers formats calendar data for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"shopcal/pkg/entry"
	"shopcal/pkg/i18n"
	"shopcal/pkg/stamp"
)

const maxTextWidth = 40

type PrettyPrint struct {
	Locale *i18n.Locale
}

func (pp *PrettyPrint) t(key string) string {
	if pp.Locale != nil {
		return pp.Locale.T(key)
	}
	return i18n.ForLanguage("en").T(key)
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Month prints the entries of one month as a table. Empty months print a
// faint placeholder so the caller does not have to special-case them.
func (pp *PrettyPrint) Month(title string, entries []entry.Entry) {
	pp.Title(title)

	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = maxTextWidth
	table.AddRow("DATE", "STAMP", "TIME", "TEXT")
	for _, e := range entries {
		table.AddRow(e.Date, pp.stampLabel(e.Stamp), timeRange(e), pp.Stamped(clip(e.Text)))
	}
	fmt.Fprintln(color.Output, table)
	pp.NewLine()
}

// Entry prints one record in full.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	table := uitable.New()
	table.AddRow("date:", e.Date)
	if e.Stamp != "" {
		table.AddRow("stamp:", pp.stampLabel(e.Stamp))
	}
	if tr := timeRange(e); tr != "" {
		table.AddRow("time:", tr)
	}
	if e.Text != "" {
		table.AddRow("text:", pp.Stamped(e.Text))
	}
	fmt.Fprintln(color.Output, table)
}

// Stamped renders tagged text with each recognized stamp tag in its table
// color. Plain text passes through untouched.
func (pp *PrettyPrint) Stamped(text string) string {
	var b strings.Builder
	for _, seg := range stamp.ParseStampedText(text, pp.t) {
		if seg.Type == stamp.StampSegment {
			b.WriteString(stampColor(seg.Style.Key).Sprintf("[%s]", seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func (pp *PrettyPrint) stampLabel(key string) string {
	st := stamp.ByKey(key)
	if st == nil {
		return ""
	}
	return stampColor(st.Key).Sprint(stamp.Label(st.Key, pp.t))
}

func stampColor(key string) *color.Color {
	switch key {
	case "available":
		return color.New(color.FgGreen)
	case "few":
		return color.New(color.FgYellow)
	case "reserved":
		return color.New(color.FgRed)
	case "full":
		return color.New(color.FgMagenta)
	}
	return color.New(color.Faint)
}

func timeRange(e entry.Entry) string {
	if e.TimeFrom == "" && e.TimeTo == "" {
		return ""
	}
	return e.TimeFrom + "-" + e.TimeTo
}

func clip(s string) string {
	return truncate.StringWithTail(s, maxTextWidth, "…")
}
