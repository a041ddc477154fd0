package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"shopcal/pkg/commands/options"
	"shopcal/pkg/runner/backup"
	"shopcal/pkg/store"
)

func addBackup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import all data",
		Example: `
shopcal backup export -o shopcal.json
shopcal backup import shopcal.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBackupExport(cmd)
	addBackupImport(cmd)

	topLevel.AddCommand(cmd)
}

func addBackupExport(topLevel *cobra.Command) {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write all data to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Export{Output: output, Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"File to write. '-' or empty prints to stdout.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addBackupImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "replace all data with a backup file",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := backup.Import{Input: args[0], Persistence: p}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
