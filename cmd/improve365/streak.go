package improve365

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/scheduler"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show or change the current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\n", e.store.State().CurrentStreak)
			return nil
		})
	},
}

var streakSetCmd = &cobra.Command{
	Use:   "set <days>",
	Short: "Set the streak explicitly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid streak %q", args[0])
		}
		if days < 0 {
			return fmt.Errorf("streak must be >= 0")
		}
		return withStore(cmd.Context(), func(e *env) error {
			if err := e.store.UpdateStreak(cmd.Context(), days); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set streak to %d\n", days)
			return nil
		})
	},
}

var streakRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute the streak from logged entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			days, err := scheduler.RecomputeStreak(cmd.Context(), e.store, timeNow())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\n", days)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
	streakCmd.AddCommand(streakSetCmd, streakRecomputeCmd)
}
