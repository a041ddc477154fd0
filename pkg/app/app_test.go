package app

import (
	"context"
	"testing"
	"time"

	"shopcal/pkg/entry"
	"shopcal/pkg/settings"
	"shopcal/pkg/store"
)

func testService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	s := New(p)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestUpdateEntryMerges(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	if err := s.UpdateEntry(ctx, "2025-06-15", entry.TextUpdate("A")); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateEntry(ctx, "2025-06-15", entry.Update{Stamp: entry.Set("closed")}); err != nil {
		t.Fatal(err)
	}

	e, ok := s.Entry("2025-06-15")
	if !ok {
		t.Fatal("entry missing after update")
	}
	if e.Text != "A" || e.Stamp != "closed" {
		t.Fatalf("partial update clobbered fields: %+v", e)
	}

	// Storage agrees with memory.
	stored, err := s.Persistence.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0] != e {
		t.Fatalf("storage and memory disagree: %+v vs %+v", stored, e)
	}
}

func TestEntryTextDegradesToEmpty(t *testing.T) {
	s := testService(t)
	if got := s.EntryText("2030-01-01"); got != "" {
		t.Fatalf("missing entry should read as empty text, got %q", got)
	}
}

func TestCopyFromPreviousMonthMajority(t *testing.T) {
	ctx := context.Background()
	s := testService(t)
	s.SetView(2025, time.June)

	// May 2025 Mondays: 5, 12, 19, 26.
	for _, d := range []struct{ date, text string }{
		{"2025-05-05", "A"},
		{"2025-05-12", "A"},
		{"2025-05-19", "B"},
	} {
		if err := s.UpdateEntry(ctx, d.date, entry.TextUpdate(d.text)); err != nil {
			t.Fatal(err)
		}
	}
	// A pre-existing Tuesday entry in June must survive: no prior-month
	// Tuesdays exist.
	if err := s.UpdateEntry(ctx, "2025-06-03", entry.TextUpdate("keep me")); err != nil {
		t.Fatal(err)
	}

	if err := s.CopyFromPreviousMonth(ctx); err != nil {
		t.Fatal(err)
	}

	// June 2025 Mondays: 2, 9, 16, 23, 30 — all get the majority "A".
	for _, date := range []string{"2025-06-02", "2025-06-09", "2025-06-16", "2025-06-23", "2025-06-30"} {
		if got := s.EntryText(date); got != "A" {
			t.Fatalf("%s = %q, want A", date, got)
		}
	}
	if got := s.EntryText("2025-06-03"); got != "keep me" {
		t.Fatalf("untouched weekday overwritten: %q", got)
	}
	if got := s.EntryText("2025-06-04"); got != "" {
		t.Fatalf("weekday with no pattern should stay empty, got %q", got)
	}
}

func TestCopyFromPreviousMonthTieBreak(t *testing.T) {
	ctx := context.Background()
	s := testService(t)
	s.SetView(2025, time.June)

	// Two texts with equal counts on Fridays; "X" appears first in date
	// order and must win deterministically.
	for _, d := range []struct{ date, text string }{
		{"2025-05-02", "X"},
		{"2025-05-09", "Y"},
		{"2025-05-16", "X"},
		{"2025-05-23", "Y"},
	} {
		if err := s.UpdateEntry(ctx, d.date, entry.TextUpdate(d.text)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.CopyFromPreviousMonth(ctx); err != nil {
		t.Fatal(err)
	}
	if got := s.EntryText("2025-06-06"); got != "X" {
		t.Fatalf("tie should break to first-seen, got %q", got)
	}
}

func TestCopyFromPreviousMonthEmptyPrior(t *testing.T) {
	ctx := context.Background()
	s := testService(t)
	s.SetView(2025, time.June)
	if err := s.CopyFromPreviousMonth(ctx); err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("no prior data should mean no writes: %+v", s.Entries())
	}
}

func TestThemeResolutionPrecedence(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	if got := s.CalendarTheme(2025, time.June); got != s.Settings().CalendarTheme {
		t.Fatalf("no override should fall back to settings, got %q", got)
	}
	if err := s.UpdateCalendarTheme(ctx, 2025, time.June, "sunset"); err != nil {
		t.Fatal(err)
	}
	if got := s.CalendarTheme(2025, time.June); got != "sunset" {
		t.Fatalf("override should win, got %q", got)
	}
	if got := s.CalendarTheme(2025, time.July); got != s.Settings().CalendarTheme {
		t.Fatalf("other months unaffected, got %q", got)
	}
	if err := s.UpdateCalendarTheme(ctx, 2025, time.June, "bogus"); err == nil {
		t.Fatal("unknown theme id should be rejected")
	}
}

func TestCommentDeleteOnClear(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	if err := s.UpdateComment(ctx, 2025, time.June, "sale!"); err != nil {
		t.Fatal(err)
	}
	if got := s.Comment(2025, time.June); got != "sale!" {
		t.Fatalf("comment not stored: %q", got)
	}
	if err := s.UpdateComment(ctx, 2025, time.June, "   "); err != nil {
		t.Fatal(err)
	}
	if got := s.Comment(2025, time.June); got != "" {
		t.Fatalf("blank comment should delete the key, got %q", got)
	}
	stored, err := s.Persistence.Comments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := stored["2025-06"]; ok {
		t.Fatalf("cleared comment still persisted: %+v", stored)
	}
}

func TestMonthNavigationFloor(t *testing.T) {
	s := testService(t)
	s.SetView(2019, time.June)
	s.PrevMonth()
	if s.View() != (View{Year: 2019, Month: time.May}) {
		t.Fatalf("should reach the floor: %+v", s.View())
	}
	s.PrevMonth()
	if s.View() != (View{Year: 2019, Month: time.May}) {
		t.Fatalf("navigation should stop at 2019-05: %+v", s.View())
	}

	s.SetView(2025, time.December)
	s.NextMonth()
	if s.View() != (View{Year: 2026, Month: time.January}) {
		t.Fatalf("year rollover broken: %+v", s.View())
	}
	s.SetView(2026, time.January)
	s.PrevMonth()
	if s.View() != (View{Year: 2025, Month: time.December}) {
		t.Fatalf("backward rollover broken: %+v", s.View())
	}
}

func TestUpdateSettingsRewiresLocaleAndHolidays(t *testing.T) {
	ctx := context.Background()
	s := testService(t)

	lang := "en"
	country := "US"
	if err := s.UpdateSettings(ctx, settings.Patch{Language: &lang, Country: &country}); err != nil {
		t.Fatal(err)
	}
	if s.Locale().Language != "en" {
		t.Fatalf("locale not swapped: %q", s.Locale().Language)
	}
	if s.Holidays().Country() != "US" {
		t.Fatalf("holiday country not switched: %q", s.Holidays().Country())
	}
	// Persisted too.
	stored, err := s.Persistence.Settings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Language != "en" || stored.Country != "US" {
		t.Fatalf("settings not persisted: %+v", stored)
	}
}
