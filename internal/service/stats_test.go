package service_test

import (
	"testing"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

func TestNutritionStatistics(t *testing.T) {
	t.Parallel()
	entries := []model.NutritionEntry{
		{ID: 3, Date: at(0, 8), Calories: 300, Protein: 10, Carbs: 50, Fat: 3},
		{ID: 2, Date: at(0, 12), Calories: 451, Protein: 20},
		{ID: 1, Date: at(3, 12), Calories: 0, Fat: 7},
	}
	got := service.NutritionStatistics(entries, now)
	want := service.NutritionStats{
		TotalEntries:  3,
		TotalCalories: 751,
		TotalProtein:  30,
		TotalCarbs:    50,
		TotalFat:      10,
		AvgCalories:   250,
		TodayEntries:  2,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if empty := service.NutritionStatistics(nil, now); empty != (service.NutritionStats{}) {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestWorkoutStatistics(t *testing.T) {
	t.Parallel()
	got := service.WorkoutStatistics(workoutFixtures(), now)
	want := service.WorkoutStats{
		TotalWorkouts: 10,
		TotalDuration: 285,
		AvgDuration:   29,
		TodayWorkouts: 1,
		Strength:      2,
		Cardio:        6,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestAverageRoundsHalfUp(t *testing.T) {
	t.Parallel()
	entries := []model.WorkoutEntry{
		{ID: 1, Date: at(1, 8), Duration: 10},
		{ID: 2, Date: at(1, 9), Duration: 15},
	}
	if got := service.WorkoutStatistics(entries, now).AvgDuration; got != 13 {
		t.Fatalf("expected 12.5 to round to 13, got %d", got)
	}
}
