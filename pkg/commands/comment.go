package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/comment"
	"shopcal/pkg/store"
)

func addComment(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	var clear bool

	cmd := &cobra.Command{
		Use:   "comment [text]",
		Short: "show or set the month comment",
		Example: `
shopcal comment
shopcal comment summer menu starts --month 2025-07
shopcal comment --clear
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
			s := comment.Comment{
				Year:        year,
				Month:       month,
				Text:        strings.Join(args, " "),
				Set:         len(args) > 0,
				Clear:       clear,
				Persistence: p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the month comment.")
	options.AddMonthArg(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
