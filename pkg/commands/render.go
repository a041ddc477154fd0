package commands

import (
	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/render"
	"shopcal/pkg/store"
)

func addRender(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "render the month to a PNG image",
		Example: `
shopcal render
shopcal render --month 2025-06 --theme ocean -o ~/Pictures
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
			s := render.Render{
				Year:         year,
				Month:        month,
				ThemeID:      ro.Theme,
				Scale:        ro.Scale,
				OutputDir:    ro.OutputDir,
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
