package service_test

import (
	"errors"
	"testing"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

func TestCoerceInt(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want int
	}{
		{350, 350},
		{int64(12), 12},
		{350.9, 350},
		{"350", 350},
		{" 42g", 42},
		{"-5", -5},
		{"abc", 0},
		{"", 0},
		{nil, 0},
		{true, 0},
	}
	for _, tc := range cases {
		if got := service.CoerceInt(tc.in); got != tc.want {
			t.Fatalf("CoerceInt(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCoerceFloat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want float64
	}{
		{5, 5},
		{5.25, 5.25},
		{"5.2km", 5.2},
		{".5", 0.5},
		{"km", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := service.CoerceFloat(tc.in); got != tc.want {
			t.Fatalf("CoerceFloat(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseNutritionPayload(t *testing.T) {
	t.Parallel()
	in, err := service.ParseNutritionPayload(map[string]any{
		"meal":     " Oatmeal ",
		"calories": "350",
		"protein":  12.0,
		"carbs":    "",
	})
	if err != nil {
		t.Fatalf("parse nutrition: %v", err)
	}
	want := model.NutritionInput{Meal: "Oatmeal", Calories: 350, Protein: 12}
	if in != want {
		t.Fatalf("expected %+v, got %+v", want, in)
	}

	rejects := []map[string]any{
		{"meal": "Soup"},
		{"meal": "Soup", "calories": "  "},
		{"meal": "", "calories": 100},
		{"meal": "Soup", "calories": -1},
		{"meal": "Soup", "calories": 100, "fat": "-3"},
	}
	for _, raw := range rejects {
		if _, err := service.ParseNutritionPayload(raw); !errors.Is(err, service.ErrValidation) {
			t.Fatalf("expected validation error for %v, got %v", raw, err)
		}
	}
}

func TestParseWorkoutPayloadZeroesOtherVariant(t *testing.T) {
	t.Parallel()
	strength, err := service.ParseWorkoutPayload(map[string]any{
		"exercise": "Bench Press",
		"type":     "Strength",
		"sets":     "3",
		"reps":     10.0,
		"weight":   "60",
		"duration": 45,
		"distance": "2",
	})
	if err != nil {
		t.Fatalf("parse strength: %v", err)
	}
	want := model.WorkoutInput{Exercise: "Bench Press", Type: model.WorkoutStrength, Sets: 3, Reps: 10, Weight: 60}
	if strength != want {
		t.Fatalf("expected %+v, got %+v", want, strength)
	}

	cardio, err := service.ParseWorkoutPayload(map[string]any{
		"exercise": "Run",
		"type":     "cardio",
		"sets":     4,
		"duration": "30",
		"distance": "5.5",
	})
	if err != nil {
		t.Fatalf("parse cardio: %v", err)
	}
	if cardio.Sets != 0 || cardio.Duration != 30 || cardio.Distance != 5.5 {
		t.Fatalf("unexpected cardio input: %+v", cardio)
	}

	var vErr *service.ValidationError
	_, err = service.ParseWorkoutPayload(map[string]any{"exercise": "Yoga", "type": "flexibility"})
	if !errors.As(err, &vErr) || vErr.Field != "type" {
		t.Fatalf("expected type validation error, got %v", err)
	}
	_, err = service.ParseWorkoutPayload(map[string]any{"type": "cardio"})
	if !errors.As(err, &vErr) || vErr.Field != "exercise" {
		t.Fatalf("expected exercise validation error, got %v", err)
	}
}

func TestValidateUserPatch(t *testing.T) {
	t.Parallel()
	name := "  Sam "
	p, err := service.ValidateUserPatch(model.UserPatch{Name: &name})
	if err != nil || *p.Name != "Sam" {
		t.Fatalf("expected trimmed name, got %v %v", p.Name, err)
	}
	blank := " "
	if _, err := service.ValidateUserPatch(model.UserPatch{Name: &blank}); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	weight := -70.0
	if _, err := service.ValidateUserPatch(model.UserPatch{Weight: &weight}); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("expected validation error for negative weight, got %v", err)
	}
}

func TestValidateUserPatchDropsJoinDate(t *testing.T) {
	t.Parallel()
	name := "Sam"
	joined := "1999-01-01"
	p, err := service.ValidateUserPatch(model.UserPatch{Name: &name, JoinDate: &joined})
	if err != nil {
		t.Fatalf("validate user patch: %v", err)
	}
	if p.JoinDate != nil {
		t.Fatalf("expected joinDate to be dropped, got %q", *p.JoinDate)
	}
	if p.Name == nil || *p.Name != "Sam" {
		t.Fatalf("expected name to be kept, got %v", p.Name)
	}
}
