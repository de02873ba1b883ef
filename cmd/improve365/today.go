package improve365

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, workouts and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			status := service.TodaySummary(e.store.State(), timeNow())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Streak: %d day(s)\n", status.CurrentStreak)
			progressLine(out, "Calories", status.Calories, status.Goals.Calories, "kcal", status.CaloriesProgress)
			progressLine(out, "Protein", status.Protein, status.Goals.Protein, "g", status.ProteinProgress)
			fmt.Fprintf(out, "Macros: P %dg | C %dg | F %dg\n", status.Protein, status.Carbs, status.Fat)
			progressLine(out, "Workout", status.WorkoutMinutes, status.Goals.WorkoutDuration, "min", status.WorkoutProgress)
			fmt.Fprintf(out, "Remaining: %d kcal | P %dg | C %dg | F %dg | %d min\n",
				status.RemainingCalories, status.RemainingProtein, status.RemainingCarbs, status.RemainingFat, status.RemainingMinutes)
			fmt.Fprintf(out, "Entries: %d meal(s), %d workout(s)\n", status.NutritionCount, status.WorkoutCount)
			return nil
		})
	},
}

// progressLine colors the ratio green once the goal is met, yellow past half.
func progressLine(w io.Writer, label string, actual, goal int, unit string, progress float64) {
	c := color.New(color.FgRed)
	switch {
	case progress >= 1:
		c = color.New(color.FgGreen)
	case progress >= 0.5:
		c = color.New(color.FgYellow)
	}
	fmt.Fprintf(w, "%s: %d / %d %s ", label, actual, goal, unit)
	c.Fprintf(w, "(%.0f%%)", progress*100)
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
