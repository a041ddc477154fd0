package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopcal/pkg/app"
	"shopcal/pkg/store"
)

// Comment shows, sets, or clears the month comment.
type Comment struct {
	Year  int
	Month time.Month
	Text  string
	Set   bool
	Clear bool

	Persistence store.Persistence
}

func (n *Comment) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("no persistence")
	}
	svc := app.New(n.Persistence)
	if err := svc.Initialize(ctx); err != nil {
		return err
	}

	switch {
	case n.Clear:
		return svc.UpdateComment(ctx, n.Year, n.Month, "")
	case n.Set:
		return svc.UpdateComment(ctx, n.Year, n.Month, n.Text)
	default:
		if c := svc.Comment(n.Year, n.Month); c != "" {
			fmt.Println(c)
		}
		return nil
	}
}
