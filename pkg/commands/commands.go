package commands

import (
	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "shopcal",
		Short: "Monthly planner for small shops, rendered to shareable calendar images.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addRender(topLevel)
	addShare(topLevel)
	addCopyImage(topLevel)
	addDay(topLevel)
	addFill(topLevel)
	addComment(topLevel)
	addTheme(topLevel)
	addConfig(topLevel)
	addBackup(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
