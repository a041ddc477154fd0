// Package themes holds the runners for calendar theme selection.
package themes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"

	"shopcal/pkg/app"
	"shopcal/pkg/settings"
	"shopcal/pkg/store"
	"shopcal/pkg/theme"
)

// List prints the available calendar themes, marking the active one for the
// given month.
type List struct {
	Year  int
	Month time.Month

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	svc := app.New(n.Persistence)
	if err := svc.Initialize(ctx); err != nil {
		return err
	}
	active := svc.CalendarTheme(n.Year, n.Month)

	ids := make([]string, 0, len(theme.Calendar))
	for id := range theme.Calendar {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bold := color.New(color.Bold)
	for _, id := range ids {
		name := svc.Locale().T(theme.Names[id])
		if id == active {
			_, _ = bold.Fprintf(color.Output, "* %s (%s)\n", id, name)
		} else {
			fmt.Fprintf(color.Output, "  %s (%s)\n", id, name)
		}
	}
	return nil
}

// Set stores a theme: per-month when Month is set, the global default
// otherwise.
type Set struct {
	ID       string
	Year     int
	Month    time.Month
	PerMonth bool

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	if !theme.IsValid(n.ID) {
		return fmt.Errorf("unknown theme %q", n.ID)
	}
	svc := app.New(n.Persistence)
	if err := svc.Initialize(ctx); err != nil {
		return err
	}
	if n.PerMonth {
		return svc.UpdateCalendarTheme(ctx, n.Year, n.Month, n.ID)
	}
	id := n.ID
	return svc.UpdateSettings(ctx, settings.Patch{CalendarTheme: &id})
}
