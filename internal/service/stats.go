package service

import (
	"math"
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

type NutritionStats struct {
	TotalEntries  int `json:"total_entries"`
	TotalCalories int `json:"total_calories"`
	TotalProtein  int `json:"total_protein"`
	TotalCarbs    int `json:"total_carbs"`
	TotalFat      int `json:"total_fat"`
	AvgCalories   int `json:"avg_calories"`
	TodayEntries  int `json:"today_entries"`
}

type WorkoutStats struct {
	TotalWorkouts int `json:"total_workouts"`
	TotalDuration int `json:"total_duration"`
	AvgDuration   int `json:"avg_duration"`
	TodayWorkouts int `json:"today_workouts"`
	Strength      int `json:"strength"`
	Cardio        int `json:"cardio"`
}

func NutritionStatistics(entries []model.NutritionEntry, now time.Time) NutritionStats {
	var st NutritionStats
	st.TotalEntries = len(entries)
	for _, e := range entries {
		st.TotalCalories += e.Calories
		st.TotalProtein += e.Protein
		st.TotalCarbs += e.Carbs
		st.TotalFat += e.Fat
		if sameDay(e.Date, now) {
			st.TodayEntries++
		}
	}
	st.AvgCalories = roundedAverage(st.TotalCalories, st.TotalEntries)
	return st
}

func WorkoutStatistics(entries []model.WorkoutEntry, now time.Time) WorkoutStats {
	var st WorkoutStats
	st.TotalWorkouts = len(entries)
	for _, e := range entries {
		st.TotalDuration += e.Duration
		if sameDay(e.Date, now) {
			st.TodayWorkouts++
		}
		switch e.Type {
		case model.WorkoutStrength:
			st.Strength++
		case model.WorkoutCardio:
			st.Cardio++
		}
	}
	st.AvgDuration = roundedAverage(st.TotalDuration, st.TotalWorkouts)
	return st
}

// roundedAverage rounds half up, matching the dashboard figures.
func roundedAverage(total, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Floor(float64(total)/float64(n) + 0.5))
}
