package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
	"time"

	"shopcal/pkg/entry"
	"shopcal/pkg/settings"
)

func testInput() Input {
	return Input{
		Year:  2025,
		Month: time.June,
		Entries: []entry.Entry{
			{Date: "2025-06-02", Text: "休", Stamp: "closed"},
			{Date: "2025-06-15", Text: "live", Stamp: "available", TimeFrom: "18:00", TimeTo: "21:00"},
			{Date: "2025-06-20", Text: "[休]10:00-12:00 staff meeting"},
		},
		Comment:  "summer menu starts",
		ThemeID:  "dark",
		Settings: settings.Defaults(),
	}
}

func encode(t *testing.T, r *Renderer, scale float64) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := r.PNG(&buf, scale); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRenderDimensions(t *testing.T) {
	r := New(testInput())
	if b := r.Render(1).Bounds(); b.Dx() != 500 || b.Dy() != 500 {
		t.Fatalf("scale 1 should be 500x500, got %v", b)
	}
	if b := r.Render(2).Bounds(); b.Dx() != 1000 || b.Dy() != 1000 {
		t.Fatalf("scale 2 should be 1000x1000, got %v", b)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := encode(t, New(testInput()), 1)
	b := encode(t, New(testInput()), 1)
	if !bytes.Equal(a, b) {
		t.Fatal("two renders of identical input should be pixel-identical")
	}
}

func TestSelectionLayer(t *testing.T) {
	in := testInput()
	in.Selected = "2025-06-15"
	selected := New(in)
	plain := New(testInput())

	if bytes.Equal(encode(t, selected, 1), encode(t, plain, 1)) {
		t.Fatal("selection highlight should change the output")
	}

	// Snapshot hides the selection and restores the flag afterwards.
	var snap, base bytes.Buffer
	if err := png.Encode(&snap, selected.Snapshot(1)); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&base, plain.Snapshot(1)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(snap.Bytes(), base.Bytes()) {
		t.Fatal("snapshot should not include the selection highlight")
	}
	if !selected.ShowSelection {
		t.Fatal("Snapshot should restore ShowSelection")
	}
}

func TestThemeFallback(t *testing.T) {
	in := testInput()
	in.ThemeID = "no-such-theme"
	img := New(in).Render(1)

	// Dark theme background: #1f2937.
	c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if c.R != 0x1f || c.G != 0x29 || c.B != 0x37 {
		t.Fatalf("unknown theme should fall back to dark, corner pixel %+v", c)
	}
}

func TestGridStylesDiffer(t *testing.T) {
	lined := testInput()
	lined.Settings.GridStyle = settings.GridStyleLined
	if bytes.Equal(encode(t, New(testInput()), 1), encode(t, New(lined), 1)) {
		t.Fatal("lined and rounded grids should render differently")
	}
}

func TestRokuyoAndWarekiToggles(t *testing.T) {
	plain := encode(t, New(testInput()), 1)

	rokuyo := testInput()
	rokuyo.Settings.ShowRokuyo = true
	if bytes.Equal(plain, encode(t, New(rokuyo), 1)) {
		t.Fatal("rokuyo toggle should change the output")
	}

	wareki := testInput()
	wareki.Settings.UseWareki = true
	if bytes.Equal(plain, encode(t, New(wareki), 1)) {
		t.Fatal("wareki toggle should change the header")
	}
}

func TestMissingBackgroundImageIsSkipped(t *testing.T) {
	in := testInput()
	in.Settings.BackgroundImage = "/no/such/file.png"
	base := testInput()
	if !bytes.Equal(encode(t, New(in), 1), encode(t, New(base), 1)) {
		t.Fatal("an unloadable background image should drop the layer silently")
	}
}
