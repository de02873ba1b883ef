package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

// FeedLimit is the number of items shown in the activity feed.
const FeedLimit = 6

type FeedKind string

const (
	FeedNutrition FeedKind = "nutrition"
	FeedWorkout   FeedKind = "workout"
)

type FeedItem struct {
	Kind FeedKind  `json:"type"`
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
	Time string    `json:"time"`
}

// ActivityFeed merges today's entries, newest first by full timestamp, and
// keeps the first FeedLimit.
func ActivityFeed(nutrition []model.NutritionEntry, workouts []model.WorkoutEntry, now time.Time) []FeedItem {
	items := make([]FeedItem, 0)
	for _, e := range TodayNutrition(nutrition, now) {
		items = append(items, FeedItem{
			Kind: FeedNutrition,
			ID:   e.ID,
			Text: fmt.Sprintf("%s: %d kcal", e.Meal, e.Calories),
			At:   e.Date,
		})
	}
	for _, e := range TodayWorkouts(workouts, now) {
		text, ok := workoutFeedText(e)
		if !ok {
			continue
		}
		items = append(items, FeedItem{Kind: FeedWorkout, ID: e.ID, Text: text, At: e.Date})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].At.Equal(items[j].At) {
			return items[i].At.After(items[j].At)
		}
		return items[i].ID > items[j].ID
	})
	if len(items) > FeedLimit {
		items = items[:FeedLimit]
	}
	for i := range items {
		items[i].Time = items[i].At.In(now.Location()).Format("15:04")
	}
	return items
}

func workoutFeedText(e model.WorkoutEntry) (string, bool) {
	switch e.Type {
	case model.WorkoutStrength:
		return fmt.Sprintf("%s: %dx%d %dkg", e.Exercise, e.Sets, e.Reps, e.Weight), true
	case model.WorkoutCardio:
		return fmt.Sprintf("%s: %d min, %skm", e.Exercise, e.Duration, strconv.FormatFloat(e.Distance, 'f', -1, 64)), true
	}
	return "", false
}
