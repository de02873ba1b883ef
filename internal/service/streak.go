package service

import (
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

// ComputeStreak counts consecutive calendar days with at least one entry,
// ending today. If today has no entry yet the run may end yesterday.
func ComputeStreak(nutrition []model.NutritionEntry, workouts []model.WorkoutEntry, now time.Time) int {
	days := map[string]bool{}
	mark := func(t time.Time) {
		days[t.In(now.Location()).Format("2006-01-02")] = true
	}
	for _, e := range nutrition {
		mark(e.Date)
	}
	for _, e := range workouts {
		mark(e.Date)
	}

	day := beginningOfDay(now)
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
