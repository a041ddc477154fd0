// Package app holds the application state: the visible month, the loaded
// entries, settings, comments and themes. It is an explicit object with an
// Initialize lifecycle so UIs and CLIs share one state implementation and
// tests can construct and reset it freely.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"shopcal/pkg/calendar"
	"shopcal/pkg/entry"
	"shopcal/pkg/holiday"
	"shopcal/pkg/i18n"
	"shopcal/pkg/settings"
	"shopcal/pkg/store"
	"shopcal/pkg/theme"
)

// View is the displayed year/month.
type View struct {
	Year  int
	Month time.Month
}

// The wareki era floor: navigation never goes before Reiwa 1 (May 2019).
var viewFloor = View{Year: 2019, Month: time.May}

// Service is the single-writer application state. Callers are expected to
// await each mutation before issuing the next one for the same date; no
// internal per-key queueing is provided.
type Service struct {
	Persistence store.Persistence

	view     View
	entries  []entry.Entry
	comments map[string]string
	themes   map[string]string
	settings settings.Settings

	selected    string
	initialized bool
	initErr     error

	holidays *holiday.Service
	locale   *i18n.Locale
}

// New builds an uninitialized service around a persistence layer.
func New(p store.Persistence) *Service {
	now := time.Now()
	return &Service{
		Persistence: p,
		view:        View{Year: now.Year(), Month: now.Month()},
		comments:    map[string]string{},
		themes:      map[string]string{},
		settings:    settings.Defaults(),
		holidays:    holiday.New(settings.Defaults().Country),
		locale:      i18n.ForLanguage(settings.Defaults().Language),
	}
}

// Initialize loads all four key spaces. On storage failure the service
// still marks itself initialized with empty data and records the error, so
// the UI renders degraded instead of freezing; the error is also returned
// for a user-visible alert.
func (s *Service) Initialize(ctx context.Context) error {
	if s.initialized {
		return s.initErr
	}
	s.initialized = true

	entries, err := s.Persistence.Entries(ctx)
	if err != nil {
		s.initErr = fmt.Errorf("initializing storage: %w", err)
		return s.initErr
	}
	comments, err := s.Persistence.Comments(ctx)
	if err != nil {
		s.initErr = fmt.Errorf("initializing storage: %w", err)
		return s.initErr
	}
	themes, err := s.Persistence.Themes(ctx)
	if err != nil {
		s.initErr = fmt.Errorf("initializing storage: %w", err)
		return s.initErr
	}
	loaded, err := s.Persistence.Settings(ctx)
	if err != nil {
		s.initErr = fmt.Errorf("initializing storage: %w", err)
		return s.initErr
	}

	s.entries = entries
	s.comments = comments
	s.themes = themes
	s.settings = loaded
	s.locale = i18n.ForLanguage(loaded.Language)
	s.holidays.Init(loaded.Country)
	return nil
}

// Initialized reports whether Initialize has run (successfully or not).
func (s *Service) Initialized() bool { return s.initialized }

// InitError returns the initialization failure, if any.
func (s *Service) InitError() error { return s.initErr }

// View returns the displayed month.
func (s *Service) View() View { return s.view }

// SetView jumps to a month.
func (s *Service) SetView(year int, month time.Month) {
	s.view = View{Year: year, Month: month}
}

// PrevMonth steps back one month, bounded by the Reiwa floor.
func (s *Service) PrevMonth() {
	v := s.view
	if v.Year < viewFloor.Year ||
		(v.Year == viewFloor.Year && v.Month <= viewFloor.Month) {
		return
	}
	if v.Month == time.January {
		s.view = View{Year: v.Year - 1, Month: time.December}
	} else {
		s.view = View{Year: v.Year, Month: v.Month - 1}
	}
}

// NextMonth steps forward one month.
func (s *Service) NextMonth() {
	v := s.view
	if v.Month == time.December {
		s.view = View{Year: v.Year + 1, Month: time.January}
	} else {
		s.view = View{Year: v.Year, Month: v.Month + 1}
	}
}

// GoToToday jumps to the current month.
func (s *Service) GoToToday() {
	now := time.Now()
	s.view = View{Year: now.Year(), Month: now.Month()}
}

// SelectedDate returns the selected date key, or "".
func (s *Service) SelectedDate() string { return s.selected }

// SetSelectedDate moves the selection; pass "" to clear.
func (s *Service) SetSelectedDate(date string) { s.selected = date }

// Entry returns the stored record for a date.
func (s *Service) Entry(date string) (entry.Entry, bool) {
	for _, e := range s.entries {
		if e.Date == date {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// EntryText returns the free text for a date, "" when there is no record,
// so it can bind straight to display.
func (s *Service) EntryText(date string) string {
	e, _ := s.Entry(date)
	return e.Text
}

// Entries returns a snapshot of all loaded entries, sorted by date.
func (s *Service) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// UpdateEntry merges a partial update into the record for date, creating it
// on first write. The merged record is persisted before memory is touched,
// so a resolved call means storage and memory agree.
func (s *Service) UpdateEntry(ctx context.Context, date string, u entry.Update) error {
	existing, _ := s.Entry(date)
	existing.Date = date
	merged := existing.Merge(u)

	if err := s.Persistence.SaveEntry(ctx, merged); err != nil {
		return err
	}

	for i := range s.entries {
		if s.entries[i].Date == date {
			s.entries[i] = merged
			return nil
		}
	}
	s.entries = append(s.entries, merged)
	sort.Slice(s.entries, func(i, j int) bool { return s.entries[i].Date < s.entries[j].Date })
	return nil
}

// CopyFromPreviousMonth infers the weekly pattern of the previous month and
// applies it to the current one: for each weekday, the most frequent
// non-empty text wins and is written to every matching day. Ties break
// toward the text seen earliest in date order, deterministically. Weekdays
// with no prior data leave the current month untouched.
func (s *Service) CopyFromPreviousMonth(ctx context.Context) error {
	v := s.view
	prev := View{Year: v.Year, Month: v.Month - 1}
	if v.Month == time.January {
		prev = View{Year: v.Year - 1, Month: time.December}
	}
	prefix := calendar.MonthKey(prev.Year, prev.Month) + "-"

	type tally struct {
		count int
		order int // first-seen rank, for the deterministic tie-break
	}
	counts := [7]map[string]*tally{}
	seen := 0
	for _, e := range s.Entries() { // sorted by date
		if len(e.Date) < len(prefix) || e.Date[:len(prefix)] != prefix || e.Text == "" {
			continue
		}
		d, err := time.ParseInLocation(calendar.ISODate, e.Date, time.Local)
		if err != nil {
			continue
		}
		dow := d.Weekday()
		if counts[dow] == nil {
			counts[dow] = map[string]*tally{}
		}
		if t, ok := counts[dow][e.Text]; ok {
			t.count++
		} else {
			counts[dow][e.Text] = &tally{count: 1, order: seen}
		}
		seen++
	}
	if seen == 0 {
		return nil
	}

	var defaults [7]string
	for dow := range counts {
		best := ""
		var bestTally *tally
		for text, t := range counts[dow] {
			if bestTally == nil || t.count > bestTally.count ||
				(t.count == bestTally.count && t.order < bestTally.order) {
				best, bestTally = text, t
			}
		}
		defaults[dow] = best
	}

	last := calendar.DaysInMonth(v.Year, v.Month)
	for day := 1; day <= last; day++ {
		d := time.Date(v.Year, v.Month, day, 0, 0, 0, 0, time.Local)
		text := defaults[d.Weekday()]
		if text == "" {
			continue
		}
		if err := s.UpdateEntry(ctx, d.Format(calendar.ISODate), entry.TextUpdate(text)); err != nil {
			return err
		}
	}
	return nil
}

// Settings returns the current settings.
func (s *Service) Settings() settings.Settings { return s.settings }

// UpdateSettings applies a partial patch, persists, and re-wires the locale
// and holiday service when language or country changed.
func (s *Service) UpdateSettings(ctx context.Context, p settings.Patch) error {
	next := s.settings.Apply(p)
	if err := s.Persistence.SaveSettings(ctx, next); err != nil {
		return err
	}
	s.settings = next
	s.locale = i18n.ForLanguage(next.Language)
	s.holidays.Init(next.Country)
	return nil
}

// Comment returns the month comment, "" when unset.
func (s *Service) Comment(year int, month time.Month) string {
	return s.comments[calendar.MonthKey(year, month)]
}

// UpdateComment sets or clears the month comment. Clearing deletes the key
// to keep the map minimal.
func (s *Service) UpdateComment(ctx context.Context, year int, month time.Month, comment string) error {
	key := calendar.MonthKey(year, month)
	next := make(map[string]string, len(s.comments))
	for k, v := range s.comments {
		next[k] = v
	}
	if strings.TrimSpace(comment) != "" {
		next[key] = comment
	} else {
		delete(next, key)
	}
	if err := s.Persistence.SaveComments(ctx, next); err != nil {
		return err
	}
	s.comments = next
	return nil
}

// CalendarTheme resolves the theme for a month: the per-month override wins
// over the global default.
func (s *Service) CalendarTheme(year int, month time.Month) string {
	if id, ok := s.themes[calendar.MonthKey(year, month)]; ok {
		return id
	}
	return s.settings.CalendarTheme
}

// UpdateCalendarTheme sets the per-month theme override.
func (s *Service) UpdateCalendarTheme(ctx context.Context, year int, month time.Month, id string) error {
	if !theme.IsValid(id) {
		return errors.New("app: unknown theme " + id)
	}
	next := make(map[string]string, len(s.themes)+1)
	for k, v := range s.themes {
		next[k] = v
	}
	next[calendar.MonthKey(year, month)] = id
	if err := s.Persistence.SaveThemes(ctx, next); err != nil {
		return err
	}
	s.themes = next
	return nil
}

// Locale returns the active locale.
func (s *Service) Locale() *i18n.Locale { return s.locale }

// Holidays returns the holiday service for the configured country.
func (s *Service) Holidays() *holiday.Service { return s.holidays }
