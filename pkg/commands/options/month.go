package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions selects the month a command operates on.
type MonthOptions struct {
	Month string
}

func AddMonthArg(cmd *cobra.Command, mo *MonthOptions) {
	cmd.Flags().StringVarP(&mo.Month, "month", "m", "",
		"Month to operate on as YYYY-MM. Defaults to the current month.")
}

// Resolve parses the flag, defaulting to the current month.
func (mo *MonthOptions) Resolve() (int, time.Month, error) {
	if mo.Month == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation("2006-01", mo.Month, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", mo.Month)
	}
	return t.Year(), t.Month(), nil
}
