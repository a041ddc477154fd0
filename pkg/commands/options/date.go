package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// DateOptions selects the day a command operates on.
type DateOptions struct {
	Date string
}

func AddDateArg(cmd *cobra.Command, do *DateOptions) {
	cmd.Flags().StringVarP(&do.Date, "date", "d", "",
		"Date to operate on as YYYY-MM-DD. Defaults to today.")
}

// Resolve parses the flag, defaulting to today.
func (do *DateOptions) Resolve() (string, error) {
	if do.Date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", do.Date, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", do.Date)
	}
	return do.Date, nil
}
