package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

var nutritionCmd = &cobra.Command{
	Use:     "nutrition",
	Aliases: []string{"meal"},
	Short:   "Log and review meals",
}

var (
	nutritionMeal     string
	nutritionCalories int
	nutritionProtein  int
	nutritionCarbs    int
	nutritionFat      int
)

var nutritionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a nutrition entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := service.ValidateNutritionInput(model.NutritionInput{
			Meal:     nutritionMeal,
			Calories: nutritionCalories,
			Protein:  nutritionProtein,
			Carbs:    nutritionCarbs,
			Fat:      nutritionFat,
		})
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			entry, err := e.store.AddNutrition(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added nutrition entry %d\n", entry.ID)
			return nil
		})
	},
}

var (
	nutritionListPeriod string
	nutritionListSearch string
)

var nutritionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nutrition entries, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := service.ParsePeriod(nutritionListPeriod)
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			now := timeNow()
			entries := service.FilterNutrition(e.store.State().NutritionEntries, service.NutritionFilter{
				Period: period,
				Search: nutritionListSearch,
			}, now)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMEAL\tKCAL\tP\tC\tF")
			for _, n := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%d\t%d\t%d\n", n.ID, n.Date.Local().Format("2006-01-02 15:04"), n.Meal, n.Calories, n.Protein, n.Carbs, n.Fat)
			}
			return nil
		})
	},
}

var nutritionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a nutrition entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			if err := e.store.DeleteNutrition(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted nutrition entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(nutritionCmd)
	nutritionCmd.AddCommand(nutritionAddCmd, nutritionListCmd, nutritionDeleteCmd)

	nutritionAddCmd.Flags().StringVar(&nutritionMeal, "meal", "", "Meal name")
	nutritionAddCmd.Flags().IntVar(&nutritionCalories, "calories", 0, "Calories (kcal)")
	nutritionAddCmd.Flags().IntVar(&nutritionProtein, "protein", 0, "Protein grams")
	nutritionAddCmd.Flags().IntVar(&nutritionCarbs, "carbs", 0, "Carbs grams")
	nutritionAddCmd.Flags().IntVar(&nutritionFat, "fat", 0, "Fat grams")
	_ = nutritionAddCmd.MarkFlagRequired("meal")
	_ = nutritionAddCmd.MarkFlagRequired("calories")

	nutritionListCmd.Flags().StringVar(&nutritionListPeriod, "period", "all", "Period: all|today|week|month")
	nutritionListCmd.Flags().StringVar(&nutritionListSearch, "search", "", "Case-insensitive meal search")
}
