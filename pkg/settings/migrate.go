package settings

import "encoding/json"

// The stored settings record went through three shapes:
//
//	v1: a single "theme" field drove both the app shell and the calendar
//	    image, and per-month comments lived inside the settings record.
//	v2: "theme" split into "appTheme" and "calendarTheme".
//	v3: "calendarComments" moved to its own key space (the value is carried
//	    out of the record here and persisted separately by the store).
//
// Each migration is total and pure over the raw map so the chain can be
// composed and tested in isolation. Unknown fields pass through untouched,
// which keeps the schema forward compatible.

type raw = map[string]json.RawMessage

var migrations = []func(raw) raw{migrateV1, migrateV2}

// migrateV1 splits the legacy single theme field.
func migrateV1(m raw) raw {
	legacy, ok := m["theme"]
	if !ok {
		return m
	}
	if _, has := m["calendarTheme"]; !has {
		m["calendarTheme"] = legacy
	}
	if _, has := m["appTheme"]; !has {
		// The old single theme was only ever "light" or "dark" in
		// practice; anything else keeps the default shell theme.
		var id string
		if json.Unmarshal(legacy, &id) == nil && (id == "light" || id == "dark") {
			m["appTheme"], _ = json.Marshal(id)
		}
	}
	delete(m, "theme")
	return m
}

// migrateV2 lifts embedded month comments out of the record. The store
// persists them under their own key; here they are only detached.
func migrateV2(m raw) raw {
	delete(m, "calendarComments")
	return m
}

// Migrate decodes a stored settings payload of any historical shape into
// the current Settings, default-filling missing fields. A payload that is
// not a JSON object yields the defaults; loading never fails hard.
func Migrate(data []byte) Settings {
	defaults := Defaults()
	if len(data) == 0 {
		return defaults
	}

	var m raw
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return defaults
	}
	for _, step := range migrations {
		m = step(m)
	}

	merged, err := json.Marshal(m)
	if err != nil {
		return defaults
	}
	s := defaults
	if err := json.Unmarshal(merged, &s); err != nil {
		return defaults
	}
	return normalize(s)
}

// ExtractLegacyComments pulls the pre-v3 embedded comment map out of a raw
// settings payload, for one-time carry-over into the comments key space.
func ExtractLegacyComments(data []byte) map[string]string {
	var probe struct {
		CalendarComments map[string]string `json:"calendarComments"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil
	}
	return probe.CalendarComments
}

func normalize(s Settings) Settings {
	if s.Language != "ja" && s.Language != "en" {
		s.Language = Defaults().Language
	}
	if s.WeekStartsOn != 0 && s.WeekStartsOn != 1 {
		s.WeekStartsOn = Defaults().WeekStartsOn
	}
	if s.GridStyle != GridStyleRounded && s.GridStyle != GridStyleLined {
		s.GridStyle = GridStyleRounded
	}
	if s.AppTheme != "light" && s.AppTheme != "dark" {
		s.AppTheme = Defaults().AppTheme
	}
	if s.BackgroundOpacity < 0 || s.BackgroundOpacity > 1 {
		s.BackgroundOpacity = Defaults().BackgroundOpacity
	}
	if s.Country == "" {
		s.Country = Defaults().Country
	}
	return s
}
