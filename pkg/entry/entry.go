package entry

// Entry is the per-day record. Date is the unique key (YYYY-MM-DD). An entry
// exists in storage only once at least one field is non-default; empty cells
// have no record at all.
type Entry struct {
	Date     string `json:"date"`
	Text     string `json:"text"`
	Stamp    string `json:"stamp,omitempty"`
	TimeFrom string `json:"timeFrom,omitempty"`
	TimeTo   string `json:"timeTo,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
}

// IsZero reports whether the entry carries no content beyond its date.
func (e Entry) IsZero() bool {
	return e.Text == "" && e.Stamp == "" && e.TimeFrom == "" && e.TimeTo == "" && e.Symbol == ""
}

// Update is a partial entry mutation. Nil fields keep the stored value;
// non-nil fields overwrite it, so callers can clear a field by pointing at
// an empty string.
type Update struct {
	Text     *string
	Stamp    *string
	TimeFrom *string
	TimeTo   *string
	Symbol   *string
}

// Merge applies u on top of e and returns the merged record. Fields absent
// from the update retain the existing value.
func (e Entry) Merge(u Update) Entry {
	if u.Text != nil {
		e.Text = *u.Text
	}
	if u.Stamp != nil {
		e.Stamp = *u.Stamp
	}
	if u.TimeFrom != nil {
		e.TimeFrom = *u.TimeFrom
	}
	if u.TimeTo != nil {
		e.TimeTo = *u.TimeTo
	}
	if u.Symbol != nil {
		e.Symbol = *u.Symbol
	}
	return e
}

// Set is a convenience for building updates field by field.
func Set(s string) *string { return &s }

// TextUpdate builds an update that only replaces the free text.
func TextUpdate(text string) Update {
	return Update{Text: &text}
}
