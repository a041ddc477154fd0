package options

import "github.com/spf13/cobra"

// RenderOptions controls image output.
type RenderOptions struct {
	Theme     string
	Scale     float64
	OutputDir string
	Font      string
	BoldFont  string
}

func AddRenderArgs(cmd *cobra.Command, ro *RenderOptions) {
	cmd.Flags().StringVar(&ro.Theme, "theme", "",
		"Calendar theme override. Defaults to the stored per-month theme.")
	cmd.Flags().Float64Var(&ro.Scale, "scale", 2,
		"Pixel density of the exported image.")
	cmd.Flags().StringVarP(&ro.OutputDir, "output", "o", ".",
		"Directory to write the image into.")
	cmd.Flags().StringVar(&ro.Font, "font", "",
		"Path to a TTF/OTF font for text rendering.")
	cmd.Flags().StringVar(&ro.BoldFont, "bold-font", "",
		"Path to the bold variant of the font.")
}
