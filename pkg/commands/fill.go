package commands

import (
	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/fill"
	"shopcal/pkg/store"
)

func addFill(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "copy the previous month's weekly pattern into the month",
		Long: "For each weekday, the most frequent entry text of the previous\n" +
			"month is written to every matching day. Weekdays without prior\n" +
			"entries are left untouched.",
		Example: `
shopcal fill --month 2025-07
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
			s := fill.Fill{Year: year, Month: month, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
