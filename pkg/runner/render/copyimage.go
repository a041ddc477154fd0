package render

import (
	"context"
	"fmt"
	"time"

	"shopcal/pkg/export"
	"shopcal/pkg/store"
)

// CopyImage renders the month and places it on the system clipboard.
type CopyImage struct {
	Year  int
	Month time.Month

	ThemeID      string
	Scale        float64
	FontPath     string
	BoldFontPath string

	Persistence store.Persistence
}

func (n *CopyImage) Do(ctx context.Context) error {
	r, err := build(ctx, n.Persistence, n.Year, n.Month, n.ThemeID, n.FontPath, n.BoldFontPath)
	if err != nil {
		return err
	}
	if err := export.CopyToClipboard(export.Bitmap(r, n.Scale)); err != nil {
		return err
	}
	fmt.Printf("copied %s to clipboard\n", export.Filename(n.Year, n.Month))
	return nil
}
