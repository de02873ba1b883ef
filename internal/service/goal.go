package service

import "github.com/perihassanzadeh/improve365/internal/model"

// DefaultAdherenceTolerance is the band around a goal that still counts as on target.
const DefaultAdherenceTolerance = 0.10

type GoalsInput struct {
	Calories        *int
	Protein         *int
	Carbs           *int
	Fat             *int
	Steps           *int
	WorkoutDuration *int
}

// ValidateGoals checks every goal that is set and returns the patch to dispatch.
func ValidateGoals(in GoalsInput) (model.GoalsPatch, error) {
	fields := []struct {
		name  string
		value *int
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
		{"steps", in.Steps},
		{"workoutDuration", in.WorkoutDuration},
	}
	set := 0
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		set++
		if err := validateNonNegativeInt(f.name, *f.value); err != nil {
			return model.GoalsPatch{}, err
		}
	}
	if set == 0 {
		return model.GoalsPatch{}, invalid("goals", "at least one goal is required")
	}
	return model.GoalsPatch{
		Calories:        in.Calories,
		Protein:         in.Protein,
		Carbs:           in.Carbs,
		Fat:             in.Fat,
		Steps:           in.Steps,
		WorkoutDuration: in.WorkoutDuration,
	}, nil
}

// Progress is actual/target capped at 1. A zero target counts as met.
func Progress(actual, target float64) float64 {
	if target <= 0 {
		return 1
	}
	p := actual / target
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

func AdherenceWithin(actual float64, target float64, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	lower := target * (1 - tolerance)
	upper := target * (1 + tolerance)
	return actual >= lower && actual <= upper
}
