package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/service"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			report := service.RunDoctor(e.store.State(), timeNow())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(out, "Negative values: %d\n", report.NegativeValues)
			fmt.Fprintf(out, "Invalid workout types: %d\n", report.InvalidTypes)
			fmt.Fprintf(out, "Future entries: %d\n", report.FutureEntries)
			fmt.Fprintf(out, "Blank names: %d\n", report.BlankNames)
			if report.NegativeStreak {
				fmt.Fprintln(out, "Streak is negative")
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
