// Package day holds the runners for single-day entry operations.
package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"shopcal/pkg/app"
	"shopcal/pkg/entry"
	"shopcal/pkg/printers"
	"shopcal/pkg/store"
	"shopcal/pkg/timeutil"
)

// Set writes a partial update to one day.
type Set struct {
	Date     string
	Text     *string
	Stamp    *string
	TimeFrom *string
	TimeTo   *string

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	svc, err := service(ctx, n.Persistence)
	if err != nil {
		return err
	}

	u := entry.Update{Stamp: n.Stamp, TimeFrom: n.TimeFrom, TimeTo: n.TimeTo}
	if n.Text != nil {
		u.Text = n.Text
		// An embedded "10:00-18:00" also fills the time fields unless
		// they were given explicitly.
		if from, to, ok := timeutil.ParseRange(*n.Text); ok && n.TimeFrom == nil && n.TimeTo == nil {
			u.TimeFrom, u.TimeTo = entry.Set(from), entry.Set(to)
		}
	}

	if err := svc.UpdateEntry(ctx, n.Date, u); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Locale: svc.Locale()}
	e, _ := svc.Entry(n.Date)
	pp.Entry(e)
	return nil
}

// Get prints one day, or the whole month when the date's month has the
// focus.
type Get struct {
	Date  string
	Month bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	svc, err := service(ctx, n.Persistence)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Locale: svc.Locale()}

	if !n.Month {
		e, ok := svc.Entry(n.Date)
		if !ok {
			return fmt.Errorf("no entry for %s", n.Date)
		}
		pp.Entry(e)
		return nil
	}

	d, err := time.ParseInLocation("2006-01-02", n.Date, time.Local)
	if err != nil {
		return err
	}
	prefix := d.Format("2006-01")
	var month []entry.Entry
	marked := map[string]bool{}
	for _, e := range svc.Entries() {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			month = append(month, e)
			marked[e.Date] = true
		}
	}
	pp.MonthGrid(d.Year(), d.Month(), marked, svc.Settings().WeekStartsOn)
	pp.Month(prefix, month)
	return nil
}

// Copy places one day's record on the clipboard as JSON.
type Copy struct {
	Date string

	Persistence store.Persistence
}

func (n *Copy) Do(ctx context.Context) error {
	svc, err := service(ctx, n.Persistence)
	if err != nil {
		return err
	}
	e, ok := svc.Entry(n.Date)
	if !ok {
		return fmt.Errorf("no entry for %s", n.Date)
	}
	if err := clipboard.WriteAll(entry.Serialize(e)); err != nil {
		return err
	}
	fmt.Printf("copied %s\n", n.Date)
	return nil
}

// Paste applies the clipboard payload to one day. Non-JSON clipboard
// content pastes as plain text.
type Paste struct {
	Date string

	Persistence store.Persistence
}

func (n *Paste) Do(ctx context.Context) error {
	svc, err := service(ctx, n.Persistence)
	if err != nil {
		return err
	}
	payload, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	if err := svc.UpdateEntry(ctx, n.Date, entry.Deserialize(payload)); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Locale: svc.Locale()}
	e, _ := svc.Entry(n.Date)
	pp.Entry(e)
	return nil
}

func service(ctx context.Context, p store.Persistence) (*app.Service, error) {
	if p == nil {
		return nil, errors.New("no persistence")
	}
	svc := app.New(p)
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
