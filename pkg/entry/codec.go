package entry

import (
	"encoding/json"
	"strings"
)

// wire is the clipboard payload for entry copy/paste. All keys are always
// present so the format is self-describing and order stable.
type wire struct {
	Symbol   string `json:"symbol"`
	Stamp    string `json:"stamp"`
	TimeFrom string `json:"timeFrom"`
	TimeTo   string `json:"timeTo"`
	Text     string `json:"text"`
}

// Serialize encodes an entry for the clipboard. The date is deliberately
// omitted; a pasted entry lands on whatever day the user targets.
func Serialize(e Entry) string {
	b, _ := json.Marshal(wire{
		Symbol:   e.Symbol,
		Stamp:    e.Stamp,
		TimeFrom: e.TimeFrom,
		TimeTo:   e.TimeTo,
		Text:     e.Text,
	})
	return string(b)
}

// Deserialize decodes a clipboard payload into a full-field update. Absent
// keys default. Anything that is not a JSON object is treated as legacy
// plain text and becomes the text field, so pasting pre-structured-scheme
// content still works. Never fails.
func Deserialize(s string) Update {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") {
		var w wire
		if err := json.Unmarshal([]byte(trimmed), &w); err == nil {
			return Update{
				Symbol:   &w.Symbol,
				Stamp:    &w.Stamp,
				TimeFrom: &w.TimeFrom,
				TimeTo:   &w.TimeTo,
				Text:     &w.Text,
			}
		}
	}
	return Update{Text: &s}
}
