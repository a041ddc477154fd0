package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/config"
	"shopcal/pkg/settings"
	"shopcal/pkg/store"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "show the stored settings",
		Example: `
shopcal config
shopcal config set --language en --country US
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := config.Show{Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	addConfigSet(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigSet(topLevel *cobra.Command) {
	var (
		language, country, weekStart   string
		appTheme, calTheme, gridStyle  string
		shopName, shopLogo, background string
		holidays, rokuyo, wareki       bool
		backgroundOpacity              float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "change settings",
		Example: `
shopcal config set --language ja --country JP
shopcal config set --week-start monday --grid-style lined
shopcal config set --shop-name "Cafe Hinata" --rokuyo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch settings.Patch

			set := func(name string, apply func()) {
				if cmd.Flags().Changed(name) {
					apply()
				}
			}
			set("language", func() { patch.Language = &language })
			set("country", func() { patch.Country = &country })
			set("app-theme", func() { patch.AppTheme = &appTheme })
			set("calendar-theme", func() { patch.CalendarTheme = &calTheme })
			set("grid-style", func() { patch.GridStyle = &gridStyle })
			set("shop-name", func() { patch.ShopName = &shopName })
			set("shop-logo", func() { patch.ShopLogo = &shopLogo })
			set("background", func() { patch.BackgroundImage = &background })
			set("background-opacity", func() { patch.BackgroundOpacity = &backgroundOpacity })
			set("holidays", func() { patch.ShowHolidays = &holidays })
			set("rokuyo", func() { patch.ShowRokuyo = &rokuyo })
			set("wareki", func() { patch.UseWareki = &wareki })

			if cmd.Flags().Changed("week-start") {
				d, err := parseWeekday(weekStart)
				if err != nil {
					return err
				}
				patch.WeekStartsOn = &d
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := config.Set{Patch: patch, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "UI language, 'ja' or 'en'.")
	cmd.Flags().StringVar(&country, "country", "", "ISO country code for holidays, e.g. JP, US, GB.")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week, e.g. sunday or monday.")
	cmd.Flags().StringVar(&appTheme, "app-theme", "", "Shell theme, 'dark' or 'light'.")
	cmd.Flags().StringVar(&calTheme, "calendar-theme", "", "Default calendar theme id.")
	cmd.Flags().StringVar(&gridStyle, "grid-style", "", "Cell style, 'rounded' or 'lined'.")
	cmd.Flags().StringVar(&shopName, "shop-name", "", "Shop name shown on the image header.")
	cmd.Flags().StringVar(&shopLogo, "shop-logo", "", "Path to a logo image.")
	cmd.Flags().StringVar(&background, "background", "", "Path to a background image.")
	cmd.Flags().Float64Var(&backgroundOpacity, "background-opacity", 0.15, "Background image opacity, 0 to 1.")
	cmd.Flags().BoolVar(&holidays, "holidays", true, "Color public holidays.")
	cmd.Flags().BoolVar(&rokuyo, "rokuyo", false, "Show rokuyo day labels.")
	cmd.Flags().BoolVar(&wareki, "wareki", false, "Use the Japanese era year in headers.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.String()[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}
