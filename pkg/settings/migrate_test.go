package settings

import (
	"testing"
	"time"
)

func TestMigrateLegacyThemeSplit(t *testing.T) {
	s := Migrate([]byte(`{"theme":"cafe","language":"en"}`))
	if s.CalendarTheme != "cafe" {
		t.Fatalf("legacy theme should become calendarTheme, got %q", s.CalendarTheme)
	}
	if s.AppTheme != "dark" {
		t.Fatalf("non-shell legacy theme should keep default appTheme, got %q", s.AppTheme)
	}
	if s.Language != "en" {
		t.Fatalf("unrelated fields should survive, got %q", s.Language)
	}
}

func TestMigrateLegacyShellTheme(t *testing.T) {
	s := Migrate([]byte(`{"theme":"light"}`))
	if s.AppTheme != "light" || s.CalendarTheme != "light" {
		t.Fatalf("light legacy theme should drive both: %+v", s)
	}
}

func TestMigrateCurrentShapePassesThrough(t *testing.T) {
	s := Migrate([]byte(`{"appTheme":"light","calendarTheme":"ocean","weekStartsOn":1,"showRokuyo":true}`))
	if s.AppTheme != "light" || s.CalendarTheme != "ocean" {
		t.Fatalf("current fields mangled: %+v", s)
	}
	if s.WeekStartsOn != time.Monday || !s.ShowRokuyo {
		t.Fatalf("current fields mangled: %+v", s)
	}
	// Missing fields are default-filled.
	if !s.ShowHolidays || s.Country != "JP" {
		t.Fatalf("defaults not filled: %+v", s)
	}
}

func TestMigrateGarbage(t *testing.T) {
	for _, payload := range []string{"", "null", "[]", "not json", `"str"`} {
		s := Migrate([]byte(payload))
		if s != Defaults() {
			t.Fatalf("Migrate(%q) should yield defaults, got %+v", payload, s)
		}
	}
}

func TestMigrateNormalizes(t *testing.T) {
	s := Migrate([]byte(`{"language":"fr","weekStartsOn":3,"gridStyle":"dotted","backgroundOpacity":4}`))
	d := Defaults()
	if s.Language != d.Language || s.WeekStartsOn != d.WeekStartsOn ||
		s.GridStyle != d.GridStyle || s.BackgroundOpacity != d.BackgroundOpacity {
		t.Fatalf("invalid values should normalize to defaults: %+v", s)
	}
}

func TestExtractLegacyComments(t *testing.T) {
	got := ExtractLegacyComments([]byte(`{"calendarComments":{"2025-06":"summer sale"}}`))
	if got["2025-06"] != "summer sale" {
		t.Fatalf("legacy comments not extracted: %+v", got)
	}
	if ExtractLegacyComments([]byte(`{}`)) != nil {
		t.Fatal("no legacy comments should yield nil")
	}
}

func TestApplyPatch(t *testing.T) {
	s := Defaults()
	name := "Cafe Hinata"
	ws := time.Monday
	s = s.Apply(Patch{ShopName: &name, WeekStartsOn: &ws})
	if s.ShopName != name || s.WeekStartsOn != time.Monday {
		t.Fatalf("patch not applied: %+v", s)
	}
	if s.CalendarTheme != "dark" {
		t.Fatalf("unpatched fields changed: %+v", s)
	}
}
