package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/perihassanzadeh/improve365/internal/model"
)

type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod accepts all, today, week or month. Empty means all.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(normalizeName(raw)); p {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return p, nil
	}
	return "", invalid("period", fmt.Sprintf("invalid period %q (expected all|today|week|month)", raw))
}

// Since returns the earliest instant inside the period. ok is false for PeriodAll.
func (p Period) Since(now time.Time) (since time.Time, ok bool) {
	switch p {
	case PeriodToday:
		return beginningOfDay(now), true
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, 0, -30), true
	}
	return time.Time{}, false
}

type WorkoutTypeFilter string

const (
	TypeAll      WorkoutTypeFilter = "all"
	TypeStrength WorkoutTypeFilter = WorkoutTypeFilter(model.WorkoutStrength)
	TypeCardio   WorkoutTypeFilter = WorkoutTypeFilter(model.WorkoutCardio)
)

func ParseWorkoutTypeFilter(raw string) (WorkoutTypeFilter, error) {
	switch f := WorkoutTypeFilter(normalizeName(raw)); f {
	case "":
		return TypeAll, nil
	case TypeAll, TypeStrength, TypeCardio:
		return f, nil
	}
	return "", invalid("type", fmt.Sprintf("invalid workout type %q (expected all|strength|cardio)", raw))
}

type NutritionFilter struct {
	Period Period
	Search string
}

type WorkoutFilter struct {
	Period Period
	Type   WorkoutTypeFilter
	Search string
}

// FilterNutrition keeps entries matching every predicate in f. Order is preserved.
func FilterNutrition(entries []model.NutritionEntry, f NutritionFilter, now time.Time) []model.NutritionEntry {
	since, bounded := f.Period.Since(now)
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.NutritionEntry, 0, len(entries))
	for _, e := range entries {
		if bounded && e.Date.Before(since) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Meal), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilterWorkouts(entries []model.WorkoutEntry, f WorkoutFilter, now time.Time) []model.WorkoutEntry {
	since, bounded := f.Period.Since(now)
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.WorkoutEntry, 0, len(entries))
	for _, e := range entries {
		if bounded && e.Date.Before(since) {
			continue
		}
		if f.Type != "" && f.Type != TypeAll && string(e.Type) != string(f.Type) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Exercise), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
