package entry

import "testing"

func TestMergePreservesUnsetFields(t *testing.T) {
	e := Entry{Date: "2025-06-15"}
	e = e.Merge(Update{Text: Set("A")})
	e = e.Merge(Update{Stamp: Set("closed")})

	if e.Text != "A" || e.Stamp != "closed" {
		t.Fatalf("partial updates clobbered fields: %+v", e)
	}
	if e.TimeFrom != "" || e.TimeTo != "" || e.Symbol != "" {
		t.Fatalf("untouched fields changed: %+v", e)
	}
}

func TestMergeCanClear(t *testing.T) {
	e := Entry{Date: "2025-06-15", Text: "A", Stamp: "closed"}
	e = e.Merge(Update{Stamp: Set("")})
	if e.Stamp != "" {
		t.Fatalf("explicit empty update should clear, got %q", e.Stamp)
	}
	if e.Text != "A" {
		t.Fatalf("text should survive, got %q", e.Text)
	}
}

func TestIsZero(t *testing.T) {
	if !(Entry{Date: "2025-06-15"}).IsZero() {
		t.Fatal("date-only entry should be zero")
	}
	if (Entry{Date: "2025-06-15", TimeTo: "18:00"}).IsZero() {
		t.Fatal("entry with a time should not be zero")
	}
}
