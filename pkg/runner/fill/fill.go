package fill

import (
	"context"
	"errors"
	"time"

	"shopcal/pkg/app"
	"shopcal/pkg/printers"
	"shopcal/pkg/store"
)

// Fill copies the previous month's weekly pattern into the target month.
type Fill struct {
	Year  int
	Month time.Month

	Persistence store.Persistence
}

func (n *Fill) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	svc := app.New(n.Persistence)
	if err := svc.Initialize(ctx); err != nil {
		return err
	}
	svc.SetView(n.Year, n.Month)
	if err := svc.CopyFromPreviousMonth(ctx); err != nil {
		return err
	}

	prefix := time.Date(n.Year, n.Month, 1, 0, 0, 0, 0, time.Local).Format("2006-01")
	marked := map[string]bool{}
	for _, e := range svc.Entries() {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			marked[e.Date] = true
		}
	}
	pp := printers.PrettyPrint{Locale: svc.Locale()}
	pp.MonthGrid(n.Year, n.Month, marked, svc.Settings().WeekStartsOn)
	return nil
}
