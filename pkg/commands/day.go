package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/day"
	"shopcal/pkg/stamp"
	"shopcal/pkg/store"
)

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Work with single-day entries",
		Example: `
shopcal day set 10:00-18:00 cake fair --stamp available
shopcal day get --month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDaySet(cmd)
	addDayGet(cmd)
	addDayCopy(cmd)
	addDayPaste(cmd)

	topLevel.AddCommand(cmd)
}

func addDaySet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var stampKey, from, to string

	stampKeys := make([]string, 0, len(stamp.Styles))
	for _, s := range stamp.Styles {
		stampKeys = append(stampKeys, s.Key)
	}

	cmd := &cobra.Command{
		Use:   "set [text]",
		Short: "set a day's text, stamp, or time range",
		Example: `
shopcal day set 10:00-18:00 --date 2025-06-15
shopcal day set --stamp closed
shopcal day set "" --stamp ""
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := day.Set{Date: date, Persistence: p}
			if len(args) > 0 {
				text := strings.Join(args, " ")
				s.Text = &text
			}
			if cmd.Flags().Changed("stamp") {
				s.Stamp = &stampKey
			}
			if cmd.Flags().Changed("from") {
				s.TimeFrom = &from
			}
			if cmd.Flags().Changed("to") {
				s.TimeTo = &to
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&stampKey, "stamp", "",
		"Stamp key, one of: "+strings.Join(stampKeys, ", ")+". Empty clears.")
	cmd.Flags().StringVar(&from, "from", "", "Opening time, e.g. 10:00.")
	cmd.Flags().StringVar(&to, "to", "", "Closing time, e.g. 18:00.")
	_ = cmd.RegisterFlagCompletionFunc("stamp", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return stampKeys, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddDateArg(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDayGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var month bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "show a day, or the whole month",
		Example: `
shopcal day get --date 2025-06-15
shopcal day get --month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Get{Date: date, Month: month, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&month, "month", false, "Show the full month of the date.")
	options.AddDateArg(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDayCopy(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "copy a day's entry to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Copy{Date: date, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddDateArg(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDayPaste(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "paste the clipboard onto a day",
		Long: "Apply the clipboard to a day. A payload copied with 'day copy'\n" +
			"restores every field; any other clipboard text becomes the day's text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.Resolve()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := day.Paste{Date: date, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddDateArg(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
