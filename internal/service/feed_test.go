package service_test

import (
	"testing"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

func TestActivityFeedTextsAndOrder(t *testing.T) {
	t.Parallel()
	nutrition := []model.NutritionEntry{
		{ID: 1, Date: at(0, 8), Meal: "Oatmeal", Calories: 350},
		{ID: 2, Date: at(1, 23), Meal: "Late snack", Calories: 200},
	}
	workouts := []model.WorkoutEntry{
		{ID: 3, Date: at(0, 10), Exercise: "Bench Press", Type: model.WorkoutStrength, Sets: 3, Reps: 10, Weight: 60},
		{ID: 4, Date: at(0, 7), Exercise: "Run", Type: model.WorkoutCardio, Duration: 30, Distance: 5},
		{ID: 5, Date: at(0, 11), Exercise: "Swim", Type: model.WorkoutCardio, Duration: 20, Distance: 0.75},
	}

	got := service.ActivityFeed(nutrition, workouts, now)
	want := []string{
		"Swim: 20 min, 0.75km",
		"Bench Press: 3x10 60kg",
		"Oatmeal: 350 kcal",
		"Run: 30 min, 5km",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), got)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], got[i].Text)
		}
	}
	if got[0].Kind != service.FeedWorkout || got[2].Kind != service.FeedNutrition || got[2].Time != "08:00" {
		t.Fatalf("unexpected item metadata: %+v", got)
	}
}

func TestActivityFeedKeepsSixMostRecent(t *testing.T) {
	t.Parallel()
	var nutrition []model.NutritionEntry
	for h := 6; h < 15; h++ {
		nutrition = append(nutrition, model.NutritionEntry{ID: int64(h), Date: at(0, h), Meal: "Snack", Calories: h})
	}
	got := service.ActivityFeed(nutrition, nil, now)
	if len(got) != service.FeedLimit {
		t.Fatalf("expected %d items, got %d", service.FeedLimit, len(got))
	}
	if got[0].ID != 14 || got[5].ID != 9 {
		t.Fatalf("expected ids 14..9, got first=%d last=%d", got[0].ID, got[5].ID)
	}
	if empty := service.ActivityFeed(nil, nil, now); len(empty) != 0 {
		t.Fatalf("expected empty feed, got %+v", empty)
	}
}
