package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopcal/pkg/app"
	"shopcal/pkg/export"
	imgrender "shopcal/pkg/render"
	"shopcal/pkg/store"
)

// Render writes the month image to disk.
type Render struct {
	Year  int
	Month time.Month

	ThemeID      string // override; empty uses the stored theme
	Scale        float64
	OutputDir    string
	FontPath     string
	BoldFontPath string

	Persistence store.Persistence
}

func (n *Render) Do(ctx context.Context) error {
	r, err := build(ctx, n.Persistence, n.Year, n.Month, n.ThemeID, n.FontPath, n.BoldFontPath)
	if err != nil {
		return err
	}
	path, err := export.Download(r, n.OutputDir, n.Year, n.Month, n.Scale)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// build assembles a renderer from stored state. Shared by the render, share
// and copy-image runners.
func build(ctx context.Context, p store.Persistence, year int, month time.Month, themeID, fontPath, boldFontPath string) (*imgrender.Renderer, error) {
	if p == nil {
		return nil, errors.New("can not render, no persistence")
	}
	svc := app.New(p)
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	if themeID == "" {
		themeID = svc.CalendarTheme(year, month)
	}
	return imgrender.New(imgrender.Input{
		Year:         year,
		Month:        month,
		Entries:      svc.Entries(),
		Comment:      svc.Comment(year, month),
		ThemeID:      themeID,
		Settings:     svc.Settings(),
		Locale:       svc.Locale(),
		Holidays:     svc.Holidays(),
		FontPath:     fontPath,
		BoldFontPath: boldFontPath,
	}), nil
}
