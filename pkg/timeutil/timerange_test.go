package timeutil

import "testing"

func TestOptions(t *testing.T) {
	if len(Options) != 48 {
		t.Fatalf("want 48 options, got %d", len(Options))
	}
	if Options[0] != "00:00" || Options[1] != "00:30" || Options[47] != "23:30" {
		t.Fatalf("option boundaries wrong: %q %q %q", Options[0], Options[1], Options[47])
	}
}

func TestColorBands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"05:00", "#f59e0b"},
		{"09:59", "#f59e0b"},
		{"10:00", "#84cc16"},
		{"12:00", "#22c55e"},
		{"17:30", "#f97316"},
		{"21:00", "#8b5cf6"},
		{"03:00", "#8b5cf6"},
		{"", ""},
		{"junk", ""},
	}
	for _, tc := range cases {
		if got := Color(tc.in); got != tc.want {
			t.Fatalf("Color(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		text     string
		from, to string
		ok       bool
	}{
		{"10:00-18:00 meeting", "10:00", "18:00", true},
		{"10:00-", "10:00", "", true},
		{"open -18:00", "", "18:00", true},
		{"no range", "", "", false},
		{"a-b", "", "", false}, // a bare dash is not a range
	}
	for _, tc := range cases {
		from, to, ok := ParseRange(tc.text)
		if from != tc.from || to != tc.to || ok != tc.ok {
			t.Fatalf("ParseRange(%q) = %q,%q,%v want %q,%q,%v",
				tc.text, from, to, ok, tc.from, tc.to, tc.ok)
		}
	}
}

func TestUpsertRange(t *testing.T) {
	cases := []struct {
		text, from, to, want string
	}{
		// replace first match in place
		{"10:00-18:00 meeting", "09:00", "17:00", "09:00-17:00 meeting"},
		// partial ranges survive
		{"10:00-18:00", "11:00", "", "11:00-"},
		// append when absent
		{"meeting", "10:00", "18:00", "meeting 10:00-18:00"},
		{"", "10:00", "18:00", "10:00-18:00"},
		// remove and trim when both ends cleared
		{"10:00-18:00 meeting", "", "", "meeting"},
		{"meeting 10:00-18:00", "", "", "meeting"},
		// clearing with no range present is a no-op
		{"meeting", "", "", "meeting"},
		// only the first range is touched
		{"10:00-12:00 13:00-15:00", "09:00", "10:00", "09:00-10:00 13:00-15:00"},
	}
	for _, tc := range cases {
		if got := UpsertRange(tc.text, tc.from, tc.to); got != tc.want {
			t.Fatalf("UpsertRange(%q, %q, %q) = %q, want %q",
				tc.text, tc.from, tc.to, got, tc.want)
		}
	}
}
