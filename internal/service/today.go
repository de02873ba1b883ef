package service

import (
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

func TodayNutrition(entries []model.NutritionEntry, now time.Time) []model.NutritionEntry {
	out := make([]model.NutritionEntry, 0)
	for _, e := range entries {
		if sameDay(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

func TodayWorkouts(entries []model.WorkoutEntry, now time.Time) []model.WorkoutEntry {
	out := make([]model.WorkoutEntry, 0)
	for _, e := range entries {
		if sameDay(e.Date, now) {
			out = append(out, e)
		}
	}
	return out
}

func TodayCalories(entries []model.NutritionEntry, now time.Time) int {
	return sumNutrition(entries, now, func(e model.NutritionEntry) int { return e.Calories })
}

func TodayProtein(entries []model.NutritionEntry, now time.Time) int {
	return sumNutrition(entries, now, func(e model.NutritionEntry) int { return e.Protein })
}

func TodayCarbs(entries []model.NutritionEntry, now time.Time) int {
	return sumNutrition(entries, now, func(e model.NutritionEntry) int { return e.Carbs })
}

func TodayFat(entries []model.NutritionEntry, now time.Time) int {
	return sumNutrition(entries, now, func(e model.NutritionEntry) int { return e.Fat })
}

func TodayWorkoutDuration(entries []model.WorkoutEntry, now time.Time) int {
	total := 0
	for _, e := range entries {
		if sameDay(e.Date, now) {
			total += e.Duration
		}
	}
	return total
}

func sumNutrition(entries []model.NutritionEntry, now time.Time, field func(model.NutritionEntry) int) int {
	total := 0
	for _, e := range entries {
		if sameDay(e.Date, now) {
			total += field(e)
		}
	}
	return total
}

type TodayStatus struct {
	Date               string      `json:"date"`
	Calories           int         `json:"calories"`
	Protein            int         `json:"protein"`
	Carbs              int         `json:"carbs"`
	Fat                int         `json:"fat"`
	WorkoutMinutes     int         `json:"workout_minutes"`
	NutritionCount     int         `json:"nutrition_count"`
	WorkoutCount       int         `json:"workout_count"`
	Goals              model.Goals `json:"goals"`
	RemainingCalories  int         `json:"remaining_calories"`
	RemainingProtein   int         `json:"remaining_protein"`
	RemainingCarbs     int         `json:"remaining_carbs"`
	RemainingFat       int         `json:"remaining_fat"`
	RemainingMinutes   int         `json:"remaining_workout_minutes"`
	CaloriesProgress   float64     `json:"calories_progress"`
	ProteinProgress    float64     `json:"protein_progress"`
	WorkoutProgress    float64     `json:"workout_progress"`
	CaloriesWithinGoal bool        `json:"calories_within_goal"`
	CurrentStreak      int         `json:"current_streak"`
}

// TodaySummary totals today's entries against the current goals.
func TodaySummary(s model.State, now time.Time) *TodayStatus {
	nutrition := TodayNutrition(s.NutritionEntries, now)
	workouts := TodayWorkouts(s.WorkoutEntries, now)

	status := &TodayStatus{
		Date:           beginningOfDay(now).Format("2006-01-02"),
		Calories:       TodayCalories(nutrition, now),
		Protein:        TodayProtein(nutrition, now),
		Carbs:          TodayCarbs(nutrition, now),
		Fat:            TodayFat(nutrition, now),
		WorkoutMinutes: TodayWorkoutDuration(workouts, now),
		NutritionCount: len(nutrition),
		WorkoutCount:   len(workouts),
		Goals:          s.Goals,
		CurrentStreak:  s.CurrentStreak,
	}
	status.RemainingCalories = s.Goals.Calories - status.Calories
	status.RemainingProtein = s.Goals.Protein - status.Protein
	status.RemainingCarbs = s.Goals.Carbs - status.Carbs
	status.RemainingFat = s.Goals.Fat - status.Fat
	status.RemainingMinutes = s.Goals.WorkoutDuration - status.WorkoutMinutes
	status.CaloriesProgress = Progress(float64(status.Calories), float64(s.Goals.Calories))
	status.ProteinProgress = Progress(float64(status.Protein), float64(s.Goals.Protein))
	status.WorkoutProgress = Progress(float64(status.WorkoutMinutes), float64(s.Goals.WorkoutDuration))
	status.CaloriesWithinGoal = AdherenceWithin(float64(status.Calories), float64(s.Goals.Calories), DefaultAdherenceTolerance)
	return status
}
