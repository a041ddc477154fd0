package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"shopcal/pkg/export"
	"shopcal/pkg/store"
)

// Share renders the month and hands the image to the platform opener. When
// the platform has no opener the image lands on the clipboard instead; a
// canceled share is a silent no-op.
type Share struct {
	Year  int
	Month time.Month

	ThemeID      string
	Scale        float64
	FontPath     string
	BoldFontPath string

	Persistence store.Persistence
}

func (n *Share) Do(ctx context.Context) error {
	r, err := build(ctx, n.Persistence, n.Year, n.Month, n.ThemeID, n.FontPath, n.BoldFontPath)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "shopcal-share-")
	if err != nil {
		return err
	}
	path, err := export.Download(r, dir, n.Year, n.Month, n.Scale)
	if err != nil {
		return err
	}

	switch err := export.Share(ctx, path); {
	case errors.Is(err, export.ErrCanceled):
		return nil
	case errors.Is(err, export.ErrNotSupported):
		if err := export.CopyToClipboard(export.Bitmap(r, n.Scale)); err != nil {
			return err
		}
		fmt.Println("sharing unavailable, image copied to clipboard")
		return nil
	default:
		return err
	}
}
