package service

import (
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

type DoctorReport struct {
	DuplicateIDs   int  `json:"duplicate_ids"`
	NegativeValues int  `json:"negative_values"`
	InvalidTypes   int  `json:"invalid_types"`
	FutureEntries  int  `json:"future_entries"`
	BlankNames     int  `json:"blank_names"`
	NegativeStreak bool `json:"negative_streak"`
}

func (r DoctorReport) Healthy() bool {
	return r.DuplicateIDs == 0 && r.NegativeValues == 0 && r.InvalidTypes == 0 &&
		r.FutureEntries == 0 && r.BlankNames == 0 && !r.NegativeStreak
}

// RunDoctor inspects a loaded state for rows that could not have been
// produced by the validated add paths, e.g. after a hand-edited blob.
func RunDoctor(s model.State, now time.Time) DoctorReport {
	var r DoctorReport
	seen := make(map[int64]struct{}, len(s.NutritionEntries)+len(s.WorkoutEntries))
	track := func(id int64) {
		if _, ok := seen[id]; ok {
			r.DuplicateIDs++
			return
		}
		seen[id] = struct{}{}
	}
	// Anything dated after the end of today is in the future.
	cutoff := beginningOfDay(now).AddDate(0, 0, 1)

	for _, e := range s.NutritionEntries {
		track(e.ID)
		if e.Calories < 0 || e.Protein < 0 || e.Carbs < 0 || e.Fat < 0 {
			r.NegativeValues++
		}
		if normalizeName(e.Meal) == "" {
			r.BlankNames++
		}
		if !e.Date.Before(cutoff) {
			r.FutureEntries++
		}
	}
	for _, e := range s.WorkoutEntries {
		track(e.ID)
		if e.Sets < 0 || e.Reps < 0 || e.Weight < 0 || e.Duration < 0 || e.Distance < 0 {
			r.NegativeValues++
		}
		if !e.Type.Valid() {
			r.InvalidTypes++
		}
		if normalizeName(e.Exercise) == "" {
			r.BlankNames++
		}
		if !e.Date.Before(cutoff) {
			r.FutureEntries++
		}
	}
	r.NegativeStreak = s.CurrentStreak < 0
	return r
}
