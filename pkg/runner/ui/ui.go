package ui

import (
	"context"

	"shopcal/pkg/app"
	"shopcal/pkg/store"
	"shopcal/pkg/tui"
)

// UI launches the interactive terminal planner.
type UI struct {
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	return tui.Run(app.New(d.Persistence))
}
