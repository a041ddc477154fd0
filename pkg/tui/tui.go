// Package tui hosts the Bubble Tea program for the interactive planner: a
// month grid with vim-style navigation, quick stamp keys, and inline text
// editing for the selected day.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"shopcal/pkg/app"
	"shopcal/pkg/calendar"
	"shopcal/pkg/entry"
	"shopcal/pkg/stamp"
	"shopcal/pkg/theme"
	"shopcal/pkg/timeutil"
	uical "shopcal/pkg/ui/calendar"
)

type mode int

const (
	modeGrid mode = iota
	modeEdit
	modeComment
)

// Model is the top-level Bubble Tea model.
type Model struct {
	svc  *app.Service
	mode mode

	input  textinput.Model
	status string
	width  int
	height int
}

// New creates the UI model backed by the Service.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "text"
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.VirtualCursor = true
	return &Model{svc: svc, input: ti}
}

// Run launches the program.
func Run(svc *app.Service) error {
	// A failed Initialize degrades to an empty UI; the status line
	// surfaces the storage error after startup.
	_ = svc.Initialize(context.Background())
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	if m.svc.SelectedDate() == "" {
		v := m.svc.View()
		now := time.Now()
		if v.Year == now.Year() && v.Month == now.Month() {
			m.svc.SetSelectedDate(now.Format(calendar.ISODate))
		} else {
			m.svc.SetSelectedDate(firstOf(v))
		}
	}
	if err := m.svc.InitError(); err != nil {
		m.status = err.Error()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyPressMsg:
		if m.mode == modeGrid {
			return m.handleGridKey(msg)
		}
		return m.handleInputKey(msg)
	}
	return m, nil
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "h", "left":
		m.moveSelection(-1)
	case "l", "right":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-7)
	case "j", "down":
		m.moveSelection(7)
	case "p", "[":
		m.svc.PrevMonth()
		m.clampSelection()
	case "n", "]":
		m.svc.NextMonth()
		m.clampSelection()
	case "t":
		m.svc.GoToToday()
		m.svc.SetSelectedDate(time.Now().Format(calendar.ISODate))
	case "1", "2", "3", "4", "5":
		m.applyStamp(stamp.Styles[int(msg.String()[0]-'1')].Key)
	case "0":
		m.applyStamp("")
	case "f":
		if err := m.svc.CopyFromPreviousMonth(context.Background()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "copied weekly pattern from previous month"
		}
	case "enter", "i":
		m.mode = modeEdit
		m.input.Placeholder = "text"
		m.input.SetValue(m.svc.EntryText(m.svc.SelectedDate()))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case "c":
		v := m.svc.View()
		m.mode = modeComment
		m.input.Placeholder = "month comment"
		m.input.SetValue(m.svc.Comment(v.Year, v.Month))
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeGrid
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		ctx := context.Background()
		var err error
		if m.mode == modeComment {
			v := m.svc.View()
			err = m.svc.UpdateComment(ctx, v.Year, v.Month, text)
		} else {
			u := entry.Update{Text: &text}
			// An embedded "10:00-18:00" also fills the time fields.
			if from, to, ok := timeutil.ParseRange(text); ok {
				u.TimeFrom, u.TimeTo = entry.Set(from), entry.Set(to)
			}
			err = m.svc.UpdateEntry(ctx, m.svc.SelectedDate(), u)
		}
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved"
		}
		m.mode = modeGrid
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveSelection shifts the selected date by days, following it across month
// boundaries.
func (m *Model) moveSelection(days int) {
	d, err := time.ParseInLocation(calendar.ISODate, m.svc.SelectedDate(), time.Local)
	if err != nil {
		m.clampSelection()
		return
	}
	d = d.AddDate(0, 0, days)
	m.svc.SetView(d.Year(), d.Month())
	m.svc.SetSelectedDate(d.Format(calendar.ISODate))
}

// clampSelection keeps the selection inside the displayed month after a
// month jump.
func (m *Model) clampSelection() {
	v := m.svc.View()
	d, err := time.ParseInLocation(calendar.ISODate, m.svc.SelectedDate(), time.Local)
	if err != nil || d.Year() != v.Year || d.Month() != v.Month {
		m.svc.SetSelectedDate(firstOf(v))
	}
}

func (m *Model) applyStamp(key string) {
	date := m.svc.SelectedDate()
	if err := m.svc.UpdateEntry(context.Background(), date, entry.Update{Stamp: entry.Set(key)}); err != nil {
		m.status = err.Error()
		return
	}
	if key == "" {
		m.status = date + ": stamp cleared"
	} else {
		m.status = date + ": " + stamp.Label(key, m.svc.Locale().T)
	}
}

func (m *Model) View() string {
	v := m.svc.View()
	colors := theme.Lookup(m.svc.CalendarTheme(v.Year, v.Month))
	opts := uical.DefaultOptions(colors)

	loc := m.svc.Locale()
	for _, h := range calendar.WeekdayHeaders(m.svc.Settings().WeekStartsOn) {
		opts.WeekdayLabels = append(opts.WeekdayLabels, loc.T(h.LabelKey))
	}

	entries := map[string]entry.Entry{}
	for _, e := range m.svc.Entries() {
		entries[e.Date] = e
	}

	var isHoliday func(time.Time) bool
	if m.svc.Settings().ShowHolidays {
		isHoliday = m.svc.Holidays().IsHoliday
	}

	days := calendar.Days(v.Year, v.Month, m.svc.Settings().WeekStartsOn)
	grid := uical.Render(uical.Build(days, entries, isHoliday, m.svc.SelectedDate()), opts)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Text)).Render(m.title(v))
	if comment := m.svc.Comment(v.Year, v.Month); comment != "" {
		title += lipgloss.NewStyle().Foreground(lipgloss.Color(colors.TextMuted)).Render("  " + comment)
	}

	sections := []string{title, "", grid, "", m.detail(colors)}

	if m.mode != modeGrid {
		sections = append(sections, "", m.input.View())
	}
	if m.status != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(lipgloss.Color(colors.TextMuted)).Render(m.status))
	}
	sections = append(sections, "", footer(colors))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

// detail shows the selected day's record under the grid.
func (m *Model) detail(colors theme.Colors) string {
	date := m.svc.SelectedDate()
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.TextMuted))
	line := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Text)).Bold(true).Render(date)

	if d, err := time.ParseInLocation(calendar.ISODate, date, time.Local); err == nil {
		if m.svc.Settings().ShowHolidays {
			if name := m.svc.Holidays().Name(d); name != "" {
				line += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Holiday)).Render(name)
			}
		}
		if m.svc.Settings().ShowRokuyo {
			line += "  " + muted.Render(calendar.Rokuyo(d))
		}
	}

	e, ok := m.svc.Entry(date)
	if !ok {
		return line + "\n" + muted.Render(" no entry")
	}

	var parts []string
	if st := stamp.ByKey(e.Stamp); st != nil {
		parts = append(parts, lipgloss.NewStyle().
			Background(lipgloss.Color(st.BgColor)).
			Foreground(lipgloss.Color(st.TextColor)).
			Padding(0, 1).
			Render(stamp.Label(st.Key, m.svc.Locale().T)))
	}
	if e.TimeFrom != "" || e.TimeTo != "" {
		tr := e.TimeFrom + "-" + e.TimeTo
		col := timeutil.Color(e.TimeFrom)
		if col == "" {
			col = colors.Text
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(tr))
	}
	if e.Text != "" {
		parts = append(parts, e.Text)
	}
	if len(parts) == 0 {
		return line + "\n" + muted.Render(" no entry")
	}
	return line + "\n " + strings.Join(parts, "  ")
}

func (m *Model) title(v app.View) string {
	loc := m.svc.Locale()
	if loc.UsesMonthNames() {
		return fmt.Sprintf("%s %d", loc.MonthNames()[v.Month-1], v.Year)
	}
	year := fmt.Sprintf("%d", v.Year)
	if m.svc.Settings().UseWareki {
		year = calendar.WarekiYear(time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.Local))
	}
	return year + loc.T("calendar.yearSuffix") + fmt.Sprintf("%d", int(v.Month)) + loc.T("calendar.monthSuffix")
}

func footer(colors theme.Colors) string {
	help := "arrows move · n/p month · t today · 1-5 stamp · 0 clear · enter edit · c comment · f fill · q quit"
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors.TextMuted)).Faint(true).Render(help)
}

func firstOf(v app.View) string {
	return time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.Local).Format(calendar.ISODate)
}
