package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Options lists the selectable times in half-hour steps, "00:00" .. "23:30".
var Options = buildOptions()

func buildOptions() []string {
	out := make([]string, 0, 48)
	for i := 0; i < 48; i++ {
		out = append(out, fmt.Sprintf("%02d:%02d", i/2, (i%2)*30))
	}
	return out
}

// Color returns the display color band for a time of day, or "" for
// unparseable input.
func Color(t string) string {
	hourStr, _, ok := strings.Cut(t, ":")
	if !ok {
		return ""
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return ""
	}
	switch {
	case hour >= 5 && hour < 10:
		return "#f59e0b" // morning
	case hour >= 10 && hour < 12:
		return "#84cc16" // late morning
	case hour >= 12 && hour < 17:
		return "#22c55e" // afternoon
	case hour >= 17 && hour < 21:
		return "#f97316" // evening
	case hour >= 21 || hour < 5:
		return "#8b5cf6" // night
	}
	return ""
}

// rangePattern recognizes at most one time range embedded in free text.
// Both ends are optional so "10:00-" and "-18:00" are valid partial ranges.
var rangePattern = regexp.MustCompile(`(\d{1,2}:\d{2})?-(\d{1,2}:\d{2})?`)

// ParseRange extracts the first embedded time range from text. ok is false
// when the text contains none.
func ParseRange(text string) (from, to string, ok bool) {
	loc := findRange(text)
	if loc == nil {
		return "", "", false
	}
	m := rangePattern.FindStringSubmatch(text[loc[0]:loc[1]])
	return m[1], m[2], true
}

// UpsertRange rewrites the embedded time range of text in place: the first
// match is replaced, a missing range is appended, and when both ends are
// empty the matched span is removed and the result trimmed. This is narrow
// text surgery, not a parser; only the first range is touched.
func UpsertRange(text, from, to string) string {
	if from == "" && to == "" {
		loc := findRange(text)
		if loc == nil {
			return text
		}
		return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	}

	replacement := from + "-" + to
	if loc := findRange(text); loc != nil {
		return text[:loc[0]] + replacement + text[loc[1]:]
	}
	if strings.TrimSpace(text) == "" {
		return replacement
	}
	return text + " " + replacement
}

// findRange locates the first non-degenerate range match (a bare "-" inside
// normal prose is not a range).
func findRange(text string) []int {
	for _, loc := range rangePattern.FindAllStringIndex(text, -1) {
		if text[loc[0]:loc[1]] != "-" {
			return loc
		}
	}
	return nil
}
