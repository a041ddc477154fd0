package commands

import (
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/themes"
	"shopcal/pkg/store"
	"shopcal/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "list the calendar themes",
		Example: `
shopcal theme
shopcal theme set ocean
shopcal theme set sunset --month 2025-12
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := themes.List{Year: year, Month: month, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddOutputArg(cmd, oo)

	addThemeSet(cmd)

	topLevel.AddCommand(cmd)
}

func addThemeSet(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	ids := make([]string, 0, len(theme.Calendar))
	for id := range theme.Calendar {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cmd := &cobra.Command{
		Use:       "set [id]",
		Short:     "set the calendar theme",
		Long:      "Set the default calendar theme, or a single month's theme with --month.\nWithout an id an interactive picker opens.",
		ValidArgs: ids,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.Resolve()
			if err != nil {
				return err
			}
			id := ""
			if len(args) > 0 {
				id = args[0]
			} else {
				prompt := promptui.Select{Label: "Theme", Items: ids, HideHelp: true}
				_, id, err = prompt.Run()
				if err != nil {
					return err
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := themes.Set{
				ID:          id,
				Year:        year,
				Month:       month,
				PerMonth:    cmd.Flags().Changed("month"),
				Persistence: p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
