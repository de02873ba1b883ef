package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/perihassanzadeh/improve365/internal/model"
)

var ErrValidation = errors.New("validation error")

// ValidationError reports a rejected field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func ValidateNutritionInput(in model.NutritionInput) (model.NutritionInput, error) {
	in.Meal = strings.TrimSpace(in.Meal)
	if in.Meal == "" {
		return in, invalid("meal", "meal is required")
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
	} {
		if err := validateNonNegativeInt(f.name, f.value); err != nil {
			return in, err
		}
	}
	return in, nil
}

// ValidateWorkoutInput checks in and zeroes the fields that do not apply to
// its type.
func ValidateWorkoutInput(in model.WorkoutInput) (model.WorkoutInput, error) {
	in.Exercise = strings.TrimSpace(in.Exercise)
	if in.Exercise == "" {
		return in, invalid("exercise", "exercise is required")
	}
	in.Type = model.WorkoutType(normalizeName(string(in.Type)))
	if !in.Type.Valid() {
		return in, invalid("type", fmt.Sprintf("invalid workout type %q (expected strength|cardio)", in.Type))
	}
	switch in.Type {
	case model.WorkoutStrength:
		in.Duration = 0
		in.Distance = 0
	case model.WorkoutCardio:
		in.Sets, in.Reps, in.Weight = 0, 0, 0
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"sets", in.Sets},
		{"reps", in.Reps},
		{"weight", in.Weight},
		{"duration", in.Duration},
	} {
		if err := validateNonNegativeInt(f.name, f.value); err != nil {
			return in, err
		}
	}
	if err := validateNonNegativeFloat("distance", in.Distance); err != nil {
		return in, err
	}
	return in, nil
}

// ValidateUserPatch cleans a caller-supplied profile update. JoinDate is
// dropped: it is set only by init through the app_config row.
func ValidateUserPatch(p model.UserPatch) (model.UserPatch, error) {
	p.JoinDate = nil
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return p, invalid("name", "name must not be empty")
		}
		p.Name = &name
	}
	if p.Weight != nil {
		if err := validateNonNegativeFloat("weight", *p.Weight); err != nil {
			return p, err
		}
	}
	if p.Height != nil {
		if err := validateNonNegativeFloat("height", *p.Height); err != nil {
			return p, err
		}
	}
	return p, nil
}

// ParseNutritionPayload turns loosely typed input (decoded JSON, form values)
// into a validated entry input. Numbers may arrive as strings; unparseable
// optional numbers become 0.
func ParseNutritionPayload(raw map[string]any) (model.NutritionInput, error) {
	if isBlank(raw["calories"]) {
		return model.NutritionInput{}, invalid("calories", "calories is required")
	}
	in := model.NutritionInput{
		Meal:     coerceString(raw["meal"]),
		Calories: CoerceInt(raw["calories"]),
		Protein:  CoerceInt(raw["protein"]),
		Carbs:    CoerceInt(raw["carbs"]),
		Fat:      CoerceInt(raw["fat"]),
	}
	return ValidateNutritionInput(in)
}

func ParseWorkoutPayload(raw map[string]any) (model.WorkoutInput, error) {
	in := model.WorkoutInput{
		Exercise: coerceString(raw["exercise"]),
		Type:     model.WorkoutType(coerceString(raw["type"])),
		Sets:     CoerceInt(raw["sets"]),
		Reps:     CoerceInt(raw["reps"]),
		Weight:   CoerceInt(raw["weight"]),
		Duration: CoerceInt(raw["duration"]),
		Distance: CoerceFloat(raw["distance"]),
	}
	return ValidateWorkoutInput(in)
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// CoerceInt reads the leading integer of v. Fractions are truncated and
// anything without a leading number is 0.
func CoerceInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return int(math.Trunc(n))
	case string:
		m := intPrefix.FindString(strings.TrimSpace(n))
		if m == "" {
			return 0
		}
		i, err := strconv.Atoi(m)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}

// CoerceFloat reads the leading decimal number of v, or 0.
func CoerceFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case string:
		m := floatPrefix.FindString(strings.TrimSpace(n))
		if m == "" {
			return 0
		}
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func isBlank(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	}
	return false
}
