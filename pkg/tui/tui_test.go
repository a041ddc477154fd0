package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"shopcal/pkg/app"
	"shopcal/pkg/store"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	p, err := store.Load(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	svc := app.New(p)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}
	svc.SetView(2025, time.June)
	svc.SetSelectedDate("2025-06-15")
	m := New(svc)
	m.Init()
	return m
}

func press(m *Model, key string) *Model {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		msg = tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	}
	next, _ := m.Update(msg)
	return next.(*Model)
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
		m = next.(*Model)
	}
	return m
}

func TestGridNavigation(t *testing.T) {
	m := testModel(t)

	m = press(m, "l")
	if got := m.svc.SelectedDate(); got != "2025-06-16" {
		t.Fatalf("right should advance a day: %q", got)
	}
	m = press(m, "j")
	if got := m.svc.SelectedDate(); got != "2025-06-23" {
		t.Fatalf("down should advance a week: %q", got)
	}
	m = press(m, "k")
	m = press(m, "h")
	if got := m.svc.SelectedDate(); got != "2025-06-15" {
		t.Fatalf("navigation should be reversible: %q", got)
	}
}

func TestSelectionCrossesMonthBoundary(t *testing.T) {
	m := testModel(t)
	m.svc.SetSelectedDate("2025-06-30")

	m = press(m, "l")
	if got := m.svc.SelectedDate(); got != "2025-07-01" {
		t.Fatalf("selection should follow into July: %q", got)
	}
	if v := m.svc.View(); v.Month != time.July {
		t.Fatalf("view should follow the selection: %+v", v)
	}
}

func TestMonthJumpClampsSelection(t *testing.T) {
	m := testModel(t)
	m = press(m, "n")
	if v := m.svc.View(); v.Month != time.July {
		t.Fatalf("n should advance the month: %+v", v)
	}
	if got := m.svc.SelectedDate(); got != "2025-07-01" {
		t.Fatalf("selection should clamp into the new month: %q", got)
	}
}

func TestStampQuickKeys(t *testing.T) {
	m := testModel(t)

	m = press(m, "1")
	e, ok := m.svc.Entry("2025-06-15")
	if !ok || e.Stamp != "closed" {
		t.Fatalf("key 1 should stamp closed: %+v", e)
	}

	m = press(m, "2")
	if e, _ := m.svc.Entry("2025-06-15"); e.Stamp != "available" {
		t.Fatalf("key 2 should stamp available: %+v", e)
	}

	m = press(m, "0")
	if e, _ := m.svc.Entry("2025-06-15"); e.Stamp != "" {
		t.Fatalf("key 0 should clear the stamp: %+v", e)
	}
}

func TestEditSavesTextAndTimeRange(t *testing.T) {
	m := testModel(t)

	m = press(m, "enter")
	if m.mode != modeEdit {
		t.Fatalf("enter should open the editor, mode=%d", m.mode)
	}
	m = typeText(m, "10:00-18:00 live")
	m = press(m, "enter")
	if m.mode != modeGrid {
		t.Fatal("enter should close the editor")
	}

	e, ok := m.svc.Entry("2025-06-15")
	if !ok {
		t.Fatal("edit should create the entry")
	}
	if e.Text != "10:00-18:00 live" {
		t.Fatalf("text not saved: %q", e.Text)
	}
	if e.TimeFrom != "10:00" || e.TimeTo != "18:00" {
		t.Fatalf("embedded range should fill time fields: %+v", e)
	}
}

func TestEditEscapeDiscards(t *testing.T) {
	m := testModel(t)
	m = press(m, "enter")
	m = typeText(m, "scratch")
	m = press(m, "esc")
	if _, ok := m.svc.Entry("2025-06-15"); ok {
		t.Fatal("esc should discard the edit")
	}
}

func TestCommentEditing(t *testing.T) {
	m := testModel(t)
	m = press(m, "c")
	if m.mode != modeComment {
		t.Fatalf("c should open the comment editor, mode=%d", m.mode)
	}
	m = typeText(m, "sale week")
	m = press(m, "enter")
	if got := m.svc.Comment(2025, time.June); got != "sale week" {
		t.Fatalf("comment not saved: %q", got)
	}
}

func TestViewShowsMonthAndSelection(t *testing.T) {
	m := testModel(t)
	view := m.View()
	if !strings.Contains(view, "2025") {
		t.Fatalf("view should show the year:\n%s", view)
	}
	if !strings.Contains(view, "2025-06-15") {
		t.Fatalf("view should show the selected date:\n%s", view)
	}
}
