// Package config holds the runners for the persisted settings record.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"shopcal/pkg/app"
	"shopcal/pkg/settings"
	"shopcal/pkg/store"
)

// Show prints the current settings.
type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	s, err := n.Persistence.Settings(ctx)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("language:", s.Language)
	table.AddRow("country:", s.Country)
	table.AddRow("week starts on:", s.WeekStartsOn.String())
	table.AddRow("app theme:", s.AppTheme)
	table.AddRow("calendar theme:", s.CalendarTheme)
	table.AddRow("grid style:", s.GridStyle)
	table.AddRow("show holidays:", fmt.Sprint(s.ShowHolidays))
	table.AddRow("show rokuyo:", fmt.Sprint(s.ShowRokuyo))
	table.AddRow("use wareki:", fmt.Sprint(s.UseWareki))
	if s.ShopName != "" {
		table.AddRow("shop name:", s.ShopName)
	}
	if s.ShopLogo != "" {
		table.AddRow("shop logo:", s.ShopLogo)
	}
	if s.BackgroundImage != "" {
		table.AddRow("background:", s.BackgroundImage)
		table.AddRow("background opacity:", fmt.Sprintf("%.2f", s.BackgroundOpacity))
	}
	fmt.Fprintln(color.Output, table)
	return nil
}

// Set applies a partial settings patch.
type Set struct {
	Patch settings.Patch

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	svc := app.New(n.Persistence)
	if err := svc.Initialize(ctx); err != nil {
		return err
	}
	if err := svc.UpdateSettings(ctx, n.Patch); err != nil {
		return err
	}
	show := Show{Persistence: n.Persistence}
	return show.Do(ctx)
}
