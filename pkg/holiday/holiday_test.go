package holiday

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestJapaneseFixedHolidays(t *testing.T) {
	s := New("JP")
	cases := []struct {
		d    time.Time
		name string
	}{
		{date(2025, time.January, 1), "元日"},
		{date(2025, time.February, 11), "建国記念の日"},
		{date(2025, time.May, 3), "憲法記念日"},
		{date(2025, time.May, 5), "こどもの日"},
		{date(2025, time.November, 3), "文化の日"},
	}
	for _, tc := range cases {
		if !s.IsHoliday(tc.d) {
			t.Fatalf("%v should be a holiday", tc.d)
		}
		if got := s.Name(tc.d); got != tc.name {
			t.Fatalf("Name(%v) = %q, want %q", tc.d, got, tc.name)
		}
	}
}

func TestJapaneseHappyMondays(t *testing.T) {
	s := New("JP")
	// 2025-01-13 is the second Monday of January.
	if got := s.Name(date(2025, time.January, 13)); got != "成人の日" {
		t.Fatalf("2025-01-13 = %q, want 成人の日", got)
	}
	// 2025-07-21 is the third Monday of July.
	if got := s.Name(date(2025, time.July, 21)); got != "海の日" {
		t.Fatalf("2025-07-21 = %q, want 海の日", got)
	}
	if s.IsHoliday(date(2025, time.January, 6)) {
		t.Fatal("first Monday of January is not a holiday")
	}
}

func TestJapaneseEquinoxes(t *testing.T) {
	s := New("JP")
	if got := s.Name(date(2025, time.March, 20)); got != "春分の日" {
		t.Fatalf("2025-03-20 = %q, want 春分の日", got)
	}
	if got := s.Name(date(2025, time.September, 23)); got != "秋分の日" {
		t.Fatalf("2025-09-23 = %q, want 秋分の日", got)
	}
}

func TestJapaneseSubstituteHoliday(t *testing.T) {
	s := New("JP")
	// 2025-05-04 (みどりの日) is a Sunday, so 2025-05-06 substitutes
	// (05-05 is already こどもの日).
	if got := s.Name(date(2025, time.May, 6)); got != "振替休日" {
		t.Fatalf("2025-05-06 = %q, want 振替休日", got)
	}
	if s.IsHoliday(date(2025, time.May, 7)) {
		t.Fatal("2025-05-07 is a regular day")
	}
}

func TestOrdinaryDays(t *testing.T) {
	s := New("JP")
	for _, d := range []time.Time{
		date(2025, time.June, 15),
		date(2025, time.April, 1),
		date(2025, time.December, 25),
	} {
		if s.IsHoliday(d) {
			t.Fatalf("%v should not be a holiday", d)
		}
		if s.Name(d) != "" {
			t.Fatalf("Name(%v) should be empty", d)
		}
	}
}

func TestInitIsNoOpForSameCountry(t *testing.T) {
	s := New("US")
	before := s.cal
	s.Init("US")
	if s.cal != before {
		t.Fatal("re-init with same country rebuilt the calendar")
	}
	s.Init("JP")
	if s.Country() != "JP" {
		t.Fatalf("country switch failed: %q", s.Country())
	}
}

func TestUnknownCountryHasNoHolidays(t *testing.T) {
	s := New("ZZ")
	if s.IsHoliday(date(2025, time.January, 1)) {
		t.Fatal("unknown country should report no holidays")
	}
}

func TestUSHolidays(t *testing.T) {
	s := New("US")
	if !s.IsHoliday(date(2025, time.July, 4)) {
		t.Fatal("2025-07-04 should be a US holiday")
	}
	if s.Name(date(2025, time.July, 4)) == "" {
		t.Fatal("US holiday should carry a name")
	}
}
