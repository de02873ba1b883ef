package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show nutrition and workout statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			s := e.store.State()
			now := timeNow()
			n := service.NutritionStatistics(s.NutritionEntries, now)
			w := service.WorkoutStatistics(s.WorkoutEntries, now)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Nutrition entries: %d (today %d)\n", n.TotalEntries, n.TodayEntries)
			fmt.Fprintf(out, "Total: %d kcal | P %dg | C %dg | F %dg\n", n.TotalCalories, n.TotalProtein, n.TotalCarbs, n.TotalFat)
			fmt.Fprintf(out, "Avg calories/entry: %d\n", n.AvgCalories)
			fmt.Fprintf(out, "Workouts: %d (today %d) | strength %d | cardio %d\n", w.TotalWorkouts, w.TodayWorkouts, w.Strength, w.Cardio)
			fmt.Fprintf(out, "Total duration: %d min | avg %d min\n", w.TotalDuration, w.AvgDuration)
			return nil
		})
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show today's recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			s := e.store.State()
			items := service.ActivityFeed(s.NutritionEntries, s.WorkoutEntries, timeNow())
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activity today")
				return nil
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", it.Time, it.Kind, it.Text)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, feedCmd)
}
