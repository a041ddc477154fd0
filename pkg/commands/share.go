package commands

import (
	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/render"
	"shopcal/pkg/store"
)

func addShare(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "share",
		Short: "render the month and open it for sharing",
		Long: "Render the month image and hand it to the platform opener.\n" +
			"When no opener is available the image is copied to the clipboard instead.",
		Example: `
shopcal share
shopcal share --month 2025-06
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
			s := render.Share{
				Year:         year,
				Month:        month,
				ThemeID:      ro.Theme,
				Scale:        ro.Scale,
				FontPath:     ro.Font,
				BoldFontPath: ro.BoldFont,
				Persistence:  p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddRenderArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCopyImage(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "copy-image",
		Short: "render the month and copy it to the clipboard",
		Example: `
shopcal copy-image --month 2025-06
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
			s := render.CopyImage{
				Year:         year,
				Month:        month,
				ThemeID:      ro.Theme,
				Scale:        ro.Scale,
				FontPath:     ro.Font,
				BoldFontPath: ro.BoldFont,
				Persistence:  p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddRenderArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
