// Package stamp defines the fixed stamp table and the legacy tagged-text
// scheme, where a stamp is written as a bracketed label prefix inside a
// day's free text (for example "[休]10:00-18:00").
package stamp

import "regexp"

// Style is one entry of the stamp table: a stable key plus its fixed
// background/foreground color pair.
type Style struct {
	Key       string
	BgColor   string
	TextColor string
}

// Styles is the immutable stamp table. Keys are stable identifiers stored on
// entries; labels are resolved per locale at display time.
var Styles = []Style{
	{Key: "closed", BgColor: "#4b5563", TextColor: "#ffffff"},
	{Key: "available", BgColor: "#16a34a", TextColor: "#ffffff"},
	{Key: "few", BgColor: "#ca8a04", TextColor: "#ffffff"},
	{Key: "reserved", BgColor: "#dc2626", TextColor: "#ffffff"},
	{Key: "full", BgColor: "#9333ea", TextColor: "#ffffff"},
}

// ByKey resolves a stamp key against the table. Returns nil for unknown or
// empty keys.
func ByKey(key string) *Style {
	if key == "" {
		return nil
	}
	for i := range Styles {
		if Styles[i].Key == key {
			return &Styles[i]
		}
	}
	return nil
}

// Label returns the localized display label of a stamp key.
func Label(key string, t func(string) string) string {
	return t("quickInput." + key)
}

// ByLabel resolves the localized inner text of a tag back to its style.
// Returns nil when the text matches no stamp label.
func ByLabel(label string, t func(string) string) *Style {
	for i := range Styles {
		if Label(Styles[i].Key, t) == label {
			return &Styles[i]
		}
	}
	return nil
}

// FormatTag renders a stamp key in the legacy bracketed form, e.g.
// "closed" -> "[休]" under the ja locale.
func FormatTag(key string, t func(string) string) string {
	return "[" + Label(key, t) + "]"
}

// SegmentType discriminates parsed segments.
type SegmentType int

const (
	TextSegment SegmentType = iota
	StampSegment
)

// Segment is one parsed unit of tagged text: either literal text or a
// recognized stamp tag.
type Segment struct {
	Type  SegmentType
	Style *Style // set for StampSegment
	Text  string
}

var tagPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// ParseStampedText splits tagged text into stamp and text segments. Unknown
// tags degrade to literal text; the function never fails.
func ParseStampedText(text string, t func(string) string) []Segment {
	var segments []Segment
	last := 0

	for _, m := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		inner := text[m[2]:m[3]]

		if start > last {
			segments = append(segments, Segment{Type: TextSegment, Text: text[last:start]})
		}

		if style := ByLabel(inner, t); style != nil {
			segments = append(segments, Segment{Type: StampSegment, Style: style, Text: inner})
		} else {
			segments = append(segments, Segment{Type: TextSegment, Text: text[start:end]})
		}
		last = end
	}

	if last < len(text) {
		segments = append(segments, Segment{Type: TextSegment, Text: text[last:]})
	}
	return segments
}
