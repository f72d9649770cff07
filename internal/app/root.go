package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// DefaultDays is the look-back window used when --days is omitted.
const DefaultDays = 14

// ErrInvalidDays is returned when --days is zero or negative.
var ErrInvalidDays = errors.New("days must be a positive integer")

var (
	reportDays int

	// RootCmd is the root command for recentapps
	RootCmd = &cobra.Command{
		Use:   "recentapps",
		Short: "List macOS applications added in the last few days",
		Long: `recentapps lists application bundles whose Spotlight "date added"
attribute falls within a look-back window (14 days by default).

Scanned locations:
  • /Applications
  • /Applications/Utilities
  • ~/Applications

Bundles without a date-added attribute are skipped. The report is printed
and also written to latest_installs.txt next to the recentapps binary,
replacing the previous report.`,
		Example: `  # Apps added in the last two weeks
  recentapps

  # Apps added in the last 30 days
  recentapps --days 30

  # Short form
  recentapps -d 3`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}
)

func init() {
	RootCmd.Flags().IntVarP(&reportDays, "days", "d", DefaultDays, "number of days to look back")

	// Flag parsing failures (e.g. --days abc) are usage errors too.
	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// usageError wraps errors caused by bad command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// IsUsageError reports whether err came from bad command-line input rather
// than from producing the report.
func IsUsageError(err error) bool {
	var ue *usageError
	return errors.Is(err, ErrInvalidDays) || errors.As(err, &ue)
}

// validateDays rejects a non-positive look-back window.
func validateDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("invalid --days %d: %w", days, ErrInvalidDays)
	}
	return nil
}
