package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily nutrition and activity goals",
}

var (
	goalCalories int
	goalProtein  int
	goalCarbs    int
	goalFat      int
	goalSteps    int
	goalWorkout  int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update one or more daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in service.GoalsInput
		flags := cmd.Flags()
		if flags.Changed("calories") {
			in.Calories = &goalCalories
		}
		if flags.Changed("protein") {
			in.Protein = &goalProtein
		}
		if flags.Changed("carbs") {
			in.Carbs = &goalCarbs
		}
		if flags.Changed("fat") {
			in.Fat = &goalFat
		}
		if flags.Changed("steps") {
			in.Steps = &goalSteps
		}
		if flags.Changed("workout-minutes") {
			in.WorkoutDuration = &goalWorkout
		}
		if in == (service.GoalsInput{}) {
			return fmt.Errorf("set at least one flag")
		}
		patch, err := service.ValidateGoals(in)
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			if err := e.store.UpdateGoals(cmd.Context(), patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated goals")
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			g := e.store.State().Goals
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\nProtein: %dg\nCarbs: %dg\nFat: %dg\nSteps: %d\nWorkout: %d min\n",
				g.Calories, g.Protein, g.Carbs, g.Fat, g.Steps, g.WorkoutDuration)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Daily protein target grams")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Daily carbs target grams")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Daily fat target grams")
	goalSetCmd.Flags().IntVar(&goalSteps, "steps", 0, "Daily step target")
	goalSetCmd.Flags().IntVar(&goalWorkout, "workout-minutes", 0, "Daily workout minutes target")
}
