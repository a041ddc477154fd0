package stamp

import (
	"testing"

	"shopcal/pkg/i18n"
)

func TestParseStampedTextKnownTag(t *testing.T) {
	loc := i18n.ForLanguage("en")
	segs := ParseStampedText("[Closed]10:00-18:00", loc.T)

	if len(segs) != 2 {
		t.Fatalf("want 2 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Type != StampSegment || segs[0].Style == nil || segs[0].Style.Key != "closed" {
		t.Fatalf("first segment is not the closed stamp: %+v", segs[0])
	}
	if segs[1].Type != TextSegment || segs[1].Text != "10:00-18:00" {
		t.Fatalf("second segment wrong: %+v", segs[1])
	}
}

func TestParseStampedTextUnknownTag(t *testing.T) {
	loc := i18n.ForLanguage("en")
	segs := ParseStampedText("[Unknown]foo", loc.T)

	if len(segs) != 2 {
		t.Fatalf("want 2 segments, got %d: %+v", len(segs), segs)
	}
	if segs[0].Type != TextSegment || segs[0].Text != "[Unknown]" {
		t.Fatalf("unknown tag should stay literal: %+v", segs[0])
	}
	if segs[1].Text != "foo" {
		t.Fatalf("trailing text wrong: %+v", segs[1])
	}
}

func TestParseStampedTextMixed(t *testing.T) {
	loc := i18n.ForLanguage("ja")
	segs := ParseStampedText("朝[休]昼[満]夜", loc.T)

	wantTypes := []SegmentType{TextSegment, StampSegment, TextSegment, StampSegment, TextSegment}
	if len(segs) != len(wantTypes) {
		t.Fatalf("want %d segments, got %d: %+v", len(wantTypes), len(segs), segs)
	}
	for i, typ := range wantTypes {
		if segs[i].Type != typ {
			t.Fatalf("segment %d type %v, want %v", i, segs[i].Type, typ)
		}
	}
	if segs[1].Style.Key != "closed" || segs[3].Style.Key != "full" {
		t.Fatalf("stamp keys wrong: %+v / %+v", segs[1], segs[3])
	}
}

func TestParseStampedTextPlain(t *testing.T) {
	loc := i18n.ForLanguage("en")
	segs := ParseStampedText("no tags here", loc.T)
	if len(segs) != 1 || segs[0].Type != TextSegment || segs[0].Text != "no tags here" {
		t.Fatalf("plain text should be a single text segment: %+v", segs)
	}
	if got := ParseStampedText("", loc.T); got != nil {
		t.Fatalf("empty text should yield no segments, got %+v", got)
	}
}

func TestFormatTagRoundTrip(t *testing.T) {
	for _, lang := range []string{"ja", "en"} {
		loc := i18n.ForLanguage(lang)
		for _, s := range Styles {
			tag := FormatTag(s.Key, loc.T)
			segs := ParseStampedText(tag, loc.T)
			if len(segs) != 1 || segs[0].Type != StampSegment || segs[0].Style.Key != s.Key {
				t.Fatalf("%s: tag %q did not parse back to %q: %+v", lang, tag, s.Key, segs)
			}
		}
	}
}

func TestByKey(t *testing.T) {
	if s := ByKey("closed"); s == nil || s.BgColor != "#4b5563" {
		t.Fatalf("closed style wrong: %+v", s)
	}
	if s := ByKey(""); s != nil {
		t.Fatalf("empty key should resolve to nil, got %+v", s)
	}
	if s := ByKey("bogus"); s != nil {
		t.Fatalf("unknown key should resolve to nil, got %+v", s)
	}
}
