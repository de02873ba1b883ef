package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"exercise"},
	Short:   "Log and review workouts",
}

var (
	workoutExercise string
	workoutType     string
	workoutSets     int
	workoutReps     int
	workoutWeight   int
	workoutDuration int
	workoutDistance float64
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a strength or cardio workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := service.ValidateWorkoutInput(model.WorkoutInput{
			Exercise: workoutExercise,
			Type:     model.WorkoutType(workoutType),
			Sets:     workoutSets,
			Reps:     workoutReps,
			Weight:   workoutWeight,
			Duration: workoutDuration,
			Distance: workoutDistance,
		})
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			entry, err := e.store.AddWorkout(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout entry %d\n", entry.ID)
			return nil
		})
	},
}

var (
	workoutListPeriod string
	workoutListType   string
	workoutListSearch string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := service.ParsePeriod(workoutListPeriod)
		if err != nil {
			return err
		}
		typ, err := service.ParseWorkoutTypeFilter(workoutListType)
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			entries := service.FilterWorkouts(e.store.State().WorkoutEntries, service.WorkoutFilter{
				Period: period,
				Type:   typ,
				Search: workoutListSearch,
			}, timeNow())
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTYPE\tEXERCISE\tDETAIL")
			for _, w := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n", w.ID, w.Date.Local().Format("2006-01-02 15:04"), w.Type, w.Exercise, workoutDetail(w))
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			if err := e.store.DeleteWorkout(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout entry %d\n", id)
			return nil
		})
	},
}

func workoutDetail(w model.WorkoutEntry) string {
	if w.Type == model.WorkoutStrength {
		return fmt.Sprintf("%dx%d %dkg", w.Sets, w.Reps, w.Weight)
	}
	return fmt.Sprintf("%d min, %gkm", w.Duration, w.Distance)
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutExercise, "exercise", "", "Exercise name")
	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type: strength|cardio")
	workoutAddCmd.Flags().IntVar(&workoutSets, "sets", 0, "Sets (strength)")
	workoutAddCmd.Flags().IntVar(&workoutReps, "reps", 0, "Reps per set (strength)")
	workoutAddCmd.Flags().IntVar(&workoutWeight, "weight", 0, "Weight kg (strength)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "duration", 0, "Duration minutes (cardio)")
	workoutAddCmd.Flags().Float64Var(&workoutDistance, "distance", 0, "Distance km (cardio)")
	_ = workoutAddCmd.MarkFlagRequired("exercise")
	_ = workoutAddCmd.MarkFlagRequired("type")

	workoutListCmd.Flags().StringVar(&workoutListPeriod, "period", "all", "Period: all|today|week|month")
	workoutListCmd.Flags().StringVar(&workoutListType, "type", "all", "Type: all|strength|cardio")
	workoutListCmd.Flags().StringVar(&workoutListSearch, "search", "", "Case-insensitive exercise search")
}
