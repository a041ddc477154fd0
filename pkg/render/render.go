// Package render draws a month calendar to a raster canvas. The layout is a
// fixed 500x500 logical design; the draw-time scale factor multiplies every
// coordinate, so a 2x export is the 1x layout at doubled pixel density.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/fogleman/gg"

	"shopcal/pkg/calendar"
	"shopcal/pkg/entry"
	"shopcal/pkg/holiday"
	"shopcal/pkg/i18n"
	"shopcal/pkg/settings"
	"shopcal/pkg/stamp"
	"shopcal/pkg/theme"
	"shopcal/pkg/timeutil"
)

const (
	baseSize            = 500
	canvasPadding       = 12
	headerHeight        = 32
	weekdayHeaderHeight = 28
	cellGap             = 4
	cellRadius          = 4
)

// SizeStep maps a maximum rune count to a font size for day text.
type SizeStep struct {
	MaxRunes int
	Size     float64
}

// DefaultTextSizeSteps shrinks day text as it grows: short notes render
// large, long ones drop a size so more of them fits in the cell.
var DefaultTextSizeSteps = []SizeStep{
	{MaxRunes: 4, Size: 9},
	{MaxRunes: 8, Size: 8},
	{MaxRunes: math.MaxInt32, Size: 7},
}

// Input carries everything one month render needs.
type Input struct {
	Year     int
	Month    time.Month
	Entries  []entry.Entry
	Comment  string
	ThemeID  string
	Settings settings.Settings
	Locale   *i18n.Locale
	Holidays *holiday.Service
	Selected string

	// Font file paths. Empty paths fall back to the built-in bitmap face.
	FontPath     string
	BoldFontPath string
}

// Renderer draws one month. It is not safe for concurrent use.
type Renderer struct {
	in      Input
	colors  theme.Colors
	entries map[string]entry.Entry
	faces   *faceSet

	// ShowSelection toggles the selection highlight layer. Snapshot turns
	// it off for the duration of an export draw.
	ShowSelection bool

	TextSizeSteps []SizeStep
}

// New resolves the theme and builds a renderer. A nil locale or holiday
// service is derived from the settings.
func New(in Input) *Renderer {
	if in.Locale == nil {
		in.Locale = i18n.ForLanguage(in.Settings.Language)
	}
	if in.Holidays == nil {
		in.Holidays = holiday.New(in.Settings.Country)
	}
	m := make(map[string]entry.Entry, len(in.Entries))
	for _, e := range in.Entries {
		m[e.Date] = e
	}
	return &Renderer{
		in:            in,
		colors:        theme.Lookup(in.ThemeID),
		entries:       m,
		faces:         loadFaces(in.FontPath, in.BoldFontPath),
		ShowSelection: true,
		TextSizeSteps: DefaultTextSizeSteps,
	}
}

// Render draws the month at the given scale factor. Scale 1 yields a
// 500x500 image, scale 2 a 1000x1000 one.
func (r *Renderer) Render(scale float64) image.Image {
	if scale <= 0 {
		scale = 1
	}
	px := int(math.Round(baseSize * scale))
	dc := gg.NewContext(px, px)
	dc.Scale(scale, scale)

	dc.SetColor(theme.RGBA(r.colors.BG))
	dc.DrawRectangle(0, 0, baseSize, baseSize)
	dc.Fill()

	r.drawBackgroundImage(dc)
	r.drawHeader(dc)
	r.drawWeekdayHeaders(dc)

	days := calendar.Days(r.in.Year, r.in.Month, r.in.Settings.WeekStartsOn)
	g := gridGeometry(len(days) / 7)
	for i, d := range days {
		r.drawCell(dc, g.cellRect(i), d)
	}

	if r.ShowSelection && r.in.Selected != "" {
		for i, d := range days {
			if d.DateString == r.in.Selected {
				r.drawSelection(dc, g.cellRect(i))
				break
			}
		}
	}
	return dc.Image()
}

// PNG renders at scale and writes the encoded image to w.
func (r *Renderer) PNG(w io.Writer, scale float64) error {
	return png.Encode(w, r.Render(scale))
}

// Snapshot renders for export: the selection highlight is hidden for the
// duration of the draw and restored afterwards.
func (r *Renderer) Snapshot(scale float64) image.Image {
	prev := r.ShowSelection
	r.ShowSelection = false
	defer func() { r.ShowSelection = prev }()
	return r.Render(scale)
}

type rect struct{ x, y, w, h float64 }

type geometry struct {
	top float64
	cw  float64
	ch  float64
}

func gridGeometry(rows int) geometry {
	top := float64(canvasPadding + headerHeight + weekdayHeaderHeight)
	return geometry{
		top: top,
		cw:  (baseSize - 2*canvasPadding - 6*cellGap) / 7.0,
		ch:  (baseSize - top - canvasPadding - float64(rows-1)*cellGap) / float64(rows),
	}
}

func (g geometry) cellRect(i int) rect {
	row, col := i/7, i%7
	return rect{
		x: canvasPadding + float64(col)*(g.cw+cellGap),
		y: g.top + float64(row)*(g.ch+cellGap),
		w: g.cw,
		h: g.ch,
	}
}

func (r *Renderer) drawBackgroundImage(dc *gg.Context) {
	path := r.in.Settings.BackgroundImage
	opacity := r.in.Settings.BackgroundOpacity
	if path == "" || opacity <= 0 {
		return
	}
	img, err := gg.LoadImage(path)
	if err != nil {
		// A missing image drops the layer, never the render.
		return
	}
	dc.DrawImage(fade(cover(img, baseSize, baseSize), opacity), 0, 0)
}

func (r *Renderer) drawHeader(dc *gg.Context) {
	cy := canvasPadding + headerHeight/2.0

	dc.SetFontFace(r.faces.face(16, true))
	dc.SetColor(theme.RGBA(r.colors.Text))
	dc.DrawStringAnchored(r.title(), canvasPadding, cy, 0, 0.35)

	right := float64(baseSize - canvasPadding)
	if name := r.in.Settings.ShopName; name != "" {
		dc.SetFontFace(r.faces.face(10, false))
		dc.SetColor(theme.RGBA(r.colors.TextMuted))
		dc.DrawStringAnchored(name, right, cy, 1, 0.35)
		w, _ := dc.MeasureString(name)
		right -= w + 6
	}
	if logo := r.in.Settings.ShopLogo; logo != "" {
		if img, err := gg.LoadImage(logo); err == nil {
			dc.DrawImage(cover(img, 20, 20), int(right-20), int(cy-10))
		}
	}
	if r.in.Comment != "" {
		dc.SetFontFace(r.faces.face(8, false))
		dc.SetColor(theme.RGBA(r.colors.TextMuted))
		comment := truncate(dc, r.in.Comment, baseSize/3.0)
		dc.DrawStringAnchored(comment, baseSize/2.0, cy, 0.5, 0.35)
	}
}

// title formats the header: "Jun 2025" for month-name locales, "2025年6月"
// otherwise, with the wareki era year substituted when enabled.
func (r *Renderer) title() string {
	loc := r.in.Locale
	if loc.UsesMonthNames() {
		return fmt.Sprintf("%s %d", loc.MonthNames()[r.in.Month-1], r.in.Year)
	}
	year := strconv.Itoa(r.in.Year)
	if r.in.Settings.UseWareki {
		year = calendar.WarekiYear(time.Date(r.in.Year, r.in.Month, 1, 0, 0, 0, 0, time.Local))
	}
	return year + loc.T("calendar.yearSuffix") +
		strconv.Itoa(int(r.in.Month)) + loc.T("calendar.monthSuffix")
}

func (r *Renderer) drawWeekdayHeaders(dc *gg.Context) {
	headers := calendar.WeekdayHeaders(r.in.Settings.WeekStartsOn)
	g := gridGeometry(5)
	cy := canvasPadding + headerHeight + weekdayHeaderHeight/2.0
	dc.SetFontFace(r.faces.face(10, false))
	for i, h := range headers {
		cx := canvasPadding + float64(i)*(g.cw+cellGap) + g.cw/2
		dc.SetColor(theme.RGBA(r.weekdayColor(h.DayOfWeek)))
		dc.DrawStringAnchored(r.in.Locale.T(h.LabelKey), cx, cy, 0.5, 0.35)
	}
}

func (r *Renderer) weekdayColor(dow time.Weekday) string {
	switch dow {
	case time.Sunday:
		return r.colors.Sunday
	case time.Saturday:
		return r.colors.Saturday
	}
	return r.colors.Text
}

func (r *Renderer) drawCell(dc *gg.Context, c rect, d calendar.Day) {
	if r.in.Settings.GridStyle == settings.GridStyleLined {
		alpha := 0.25
		if !d.IsCurrentMonth {
			alpha = 0.125
		}
		dc.SetColor(theme.WithAlpha(r.colors.Surface, alpha))
		dc.DrawRectangle(c.x, c.y, c.w, c.h)
		dc.Fill()
		dc.SetColor(theme.WithAlpha(r.colors.TextMuted, 0.375))
		dc.SetLineWidth(1)
		dc.DrawRectangle(c.x, c.y, c.w, c.h)
		dc.Stroke()
	} else {
		alpha := 1.0
		if !d.IsCurrentMonth {
			alpha = 0.5
		}
		dc.SetColor(theme.WithAlpha(r.colors.Surface, alpha))
		dc.DrawRoundedRectangle(c.x, c.y, c.w, c.h, cellRadius)
		dc.Fill()
	}

	if d.IsToday {
		dc.SetColor(theme.WithAlpha(r.colors.Accent, 0.8))
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(c.x+0.5, c.y+0.5, c.w-1, c.h-1, cellRadius)
		dc.Stroke()
	}

	holidayName := ""
	if r.in.Settings.ShowHolidays && d.IsCurrentMonth {
		holidayName = r.in.Holidays.Name(d.Date)
	}

	dc.SetFontFace(r.faces.face(12, true))
	dc.SetColor(theme.RGBA(r.dayNumberColor(d, holidayName != "")))
	dc.DrawStringAnchored(strconv.Itoa(d.Day), c.x+c.w-4, c.y+4, 1, 1)

	if r.in.Settings.ShowRokuyo && d.IsCurrentMonth {
		dc.SetFontFace(r.faces.face(6, false))
		dc.SetColor(theme.RGBA(r.colors.TextMuted))
		dc.DrawStringAnchored(calendar.Rokuyo(d.Date), c.x+c.w-4, c.y+17, 1, 1)
	}

	e, ok := r.entries[d.DateString]
	if !ok {
		return
	}

	if st := stamp.ByKey(e.Stamp); st != nil {
		r.drawStampBadge(dc, c, st)
	}

	textTop := c.y + 22
	if e.TimeFrom != "" || e.TimeTo != "" {
		col := timeutil.Color(e.TimeFrom)
		if col == "" {
			col = timeutil.Color(e.TimeTo)
		}
		if col == "" {
			col = r.colors.Text
		}
		dc.SetFontFace(r.faces.face(9, false))
		dc.SetColor(theme.RGBA(col))
		dc.DrawStringAnchored(e.TimeFrom+"-"+e.TimeTo, c.x+4, c.y+22, 0, 1)
		textTop = c.y + 36
	}

	if e.Text != "" {
		r.drawDayText(dc, c, textTop, e.Text)
	}
}

func (r *Renderer) dayNumberColor(d calendar.Day, isHoliday bool) string {
	if !d.IsCurrentMonth {
		return r.colors.TextMuted
	}
	if isHoliday {
		return r.colors.Holiday
	}
	switch d.Date.Weekday() {
	case time.Sunday:
		return r.colors.Sunday
	case time.Saturday:
		return r.colors.Saturday
	}
	return r.colors.Text
}

// drawStampBadge draws the stamp marker in the cell's top left corner.
// Glyph stamps keep a fixed 14x12 badge; text stamps widen to fit the
// localized label.
func (r *Renderer) drawStampBadge(dc *gg.Context, c rect, st *stamp.Style) {
	x, y := c.x+4, c.y+4
	w, h := 14.0, 12.0

	label := ""
	switch st.Key {
	case "available", "few", "reserved":
	default:
		label = stamp.Label(st.Key, r.in.Locale.T)
		dc.SetFontFace(r.faces.face(8, false))
		if lw, _ := dc.MeasureString(label); lw+6 > w {
			w = lw + 6
		}
	}

	dc.SetColor(theme.RGBA(st.BgColor))
	dc.DrawRoundedRectangle(x, y, w, h, 2)
	dc.Fill()

	dc.SetColor(theme.RGBA(st.TextColor))
	cx, cy := x+w/2, y+h/2
	switch st.Key {
	case "available":
		dc.SetLineWidth(1.5)
		dc.DrawCircle(cx, cy, 3.5)
		dc.Stroke()
	case "few":
		dc.SetLineWidth(1.5)
		dc.MoveTo(cx, cy-3.5)
		dc.LineTo(cx-3.5, cy+3)
		dc.LineTo(cx+3.5, cy+3)
		dc.ClosePath()
		dc.Stroke()
	case "reserved":
		dc.SetLineWidth(1.5)
		dc.DrawLine(cx-3, cy-3, cx+3, cy+3)
		dc.DrawLine(cx-3, cy+3, cx+3, cy-3)
		dc.Stroke()
	default:
		dc.DrawStringAnchored(label, cx, cy, 0.5, 0.35)
	}
}

// drawDayText wraps the free text at character granularity, CJK style.
// Legacy bracketed stamp tags embedded in the text flow inline in their
// stamp color. Overflowing lines are clipped at the cell bottom.
func (r *Renderer) drawDayText(dc *gg.Context, c rect, top float64, text string) {
	type colored struct {
		r   rune
		col string
	}
	var chars []colored
	for _, seg := range stamp.ParseStampedText(text, r.in.Locale.T) {
		col := r.colors.Text
		if seg.Type == stamp.StampSegment {
			col = seg.Style.BgColor
		}
		for _, ru := range seg.Text {
			chars = append(chars, colored{r: ru, col: col})
		}
	}
	if len(chars) == 0 {
		return
	}

	size := r.textSize(len(chars))
	dc.SetFontFace(r.faces.face(size, false))
	lineHeight := size + 2
	left := c.x + 4
	rightEdge := c.x + c.w - 4
	bottom := c.y + c.h - 2

	x, y := left, top
	for _, ch := range chars {
		if ch.r == '\n' {
			x, y = left, y+lineHeight
			continue
		}
		s := string(ch.r)
		w, _ := dc.MeasureString(s)
		if x+w > rightEdge {
			x, y = left, y+lineHeight
		}
		if y+lineHeight > bottom {
			return
		}
		dc.SetColor(theme.RGBA(ch.col))
		dc.DrawStringAnchored(s, x, y, 0, 1)
		x += w
	}
}

func (r *Renderer) textSize(runes int) float64 {
	for _, step := range r.TextSizeSteps {
		if runes <= step.MaxRunes {
			return step.Size
		}
	}
	return DefaultTextSizeSteps[len(DefaultTextSizeSteps)-1].Size
}

func (r *Renderer) drawSelection(dc *gg.Context, c rect) {
	dc.SetColor(theme.RGBA(r.colors.Accent))
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(c.x+1, c.y+1, c.w-2, c.h-2, cellRadius)
	dc.Stroke()
}

func truncate(dc *gg.Context, s string, maxW float64) string {
	if w, _ := dc.MeasureString(s); w <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if w, _ := dc.MeasureString(string(runes) + "…"); w <= maxW {
			return string(runes) + "…"
		}
	}
	return ""
}
