// Package export turns a rendered month into shareable artifacts: a PNG
// file, a clipboard image, or a handoff to the platform opener.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.design/x/clipboard"

	"shopcal/pkg/render"
)

// DefaultScale is the export pixel density: twice the on-screen layout.
const DefaultScale = 2

// ErrNotSupported means the platform has no share mechanism. Callers fall
// back to the clipboard.
var ErrNotSupported = errors.New("export: sharing not supported on this platform")

// ErrCanceled means the user aborted the share. Not an error condition for
// the UI; callers treat it as a silent no-op.
var ErrCanceled = errors.New("export: share canceled")

// Filename returns the base name for an exported month, without extension,
// e.g. "calendar-2025-06".
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("calendar-%04d-%02d", year, int(month))
}

// Bitmap renders the month for export: selection hidden, default 2x density
// when scale is zero.
func Bitmap(r *render.Renderer, scale float64) image.Image {
	if scale <= 0 {
		scale = DefaultScale
	}
	return r.Snapshot(scale)
}

// Download writes the exported PNG into dir and returns the written path.
func Download(r *render.Renderer, dir string, year int, month time.Month, scale float64) (string, error) {
	path := filepath.Join(dir, Filename(year, month)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, Bitmap(r, scale)); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

var (
	clipOnce sync.Once
	clipErr  error
)

// CopyToClipboard places the image on the system clipboard as PNG data.
func CopyToClipboard(img image.Image) error {
	clipOnce.Do(func() { clipErr = clipboard.Init() })
	if clipErr != nil {
		return fmt.Errorf("export: clipboard unavailable: %w", clipErr)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Share hands the exported file to the platform opener so the user can pick
// a target application. ErrNotSupported when no opener exists; ErrCanceled
// when ctx is canceled mid-share.
func Share(ctx context.Context, path string) error {
	opener := ""
	for _, c := range openers() {
		if _, err := lookPath(c); err == nil {
			opener = c
			break
		}
	}
	if opener == "" {
		return ErrNotSupported
	}
	if err := exec.CommandContext(ctx, opener, path).Run(); err != nil {
		if ctx.Err() != nil {
			return ErrCanceled
		}
		return err
	}
	return nil
}

func openers() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"explorer"}
	default:
		return []string{"xdg-open"}
	}
}
