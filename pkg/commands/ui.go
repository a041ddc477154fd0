package commands

import (
	"github.com/spf13/cobra"

	"shopcal/pkg/runner/ui"
	"shopcal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive planner",
		Example: `
shopcal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
