package entry

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	cases := []Entry{
		{Text: "meeting", Stamp: "available", TimeFrom: "10:00", TimeTo: "12:00", Symbol: "★"},
		{Text: "closed all day", Stamp: "closed"},
		{},
		{Text: "日本語のテキスト", TimeTo: "18:00"},
	}
	for _, want := range cases {
		got := Entry{}.Merge(Deserialize(Serialize(want)))
		if got != want {
			t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
		}
	}
}

func TestDeserializePlainText(t *testing.T) {
	u := Deserialize("plain text")
	if u.Text == nil || *u.Text != "plain text" {
		t.Fatalf("plain text fallback wrong: %+v", u)
	}
	if u.Stamp != nil || u.TimeFrom != nil || u.TimeTo != nil || u.Symbol != nil {
		t.Fatalf("plain text should only set text: %+v", u)
	}
}

func TestDeserializeMalformedJSON(t *testing.T) {
	for _, s := range []string{"{not json", "null", "[1,2]", "42", ""} {
		u := Deserialize(s)
		if u.Text == nil || *u.Text != s {
			t.Fatalf("Deserialize(%q) should degrade to text, got %+v", s, u)
		}
	}
}

func TestDeserializeDefaultsAbsentKeys(t *testing.T) {
	u := Deserialize(`{"text":"hello"}`)
	e := Entry{Stamp: "closed", TimeFrom: "09:00"}.Merge(u)
	// A structured paste replaces the whole record, absent keys included.
	if e.Stamp != "" || e.TimeFrom != "" {
		t.Fatalf("absent keys should default on paste: %+v", e)
	}
	if e.Text != "hello" {
		t.Fatalf("text lost: %+v", e)
	}
}
