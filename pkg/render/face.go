package render

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// faceSet caches sized faces of a configured font file. When no file is
// configured, or it cannot be parsed, every lookup falls back to the built-in
// 7x13 bitmap face so a render always produces output.
type faceSet struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	cache map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func loadFaces(regularPath, boldPath string) *faceSet {
	fs := &faceSet{cache: map[faceKey]font.Face{}}
	fs.regular = parseFont(regularPath)
	fs.bold = parseFont(boldPath)
	if fs.bold == nil {
		fs.bold = fs.regular
	}
	return fs
}

func parseFont(path string) *opentype.Font {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil
	}
	return f
}

func (fs *faceSet) face(size float64, bold bool) font.Face {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if f, ok := fs.cache[key]; ok {
		return f
	}

	src := fs.regular
	if bold {
		src = fs.bold
	}
	var f font.Face = basicfont.Face7x13
	if src != nil {
		if sized, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}); err == nil {
			f = sized
		}
	}
	fs.cache[key] = f
	return f
}
