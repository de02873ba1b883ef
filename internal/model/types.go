package model

import "time"

type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
)

func (t WorkoutType) Valid() bool {
	return t == WorkoutStrength || t == WorkoutCardio
}

const DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=Jane"

type NutritionEntry struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Meal     string    `json:"meal"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fat      int       `json:"fat"`
}

type WorkoutEntry struct {
	ID       int64       `json:"id"`
	Date     time.Time   `json:"date"`
	Exercise string      `json:"exercise"`
	Type     WorkoutType `json:"type"`
	Sets     int         `json:"sets"`
	Reps     int         `json:"reps"`
	Weight   int         `json:"weight"`
	Duration int         `json:"duration"`
	Distance float64     `json:"distance"`
}

// NutritionInput is the caller-supplied payload for a new nutrition entry.
// The store stamps ID and Date.
type NutritionInput struct {
	Meal     string
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

type WorkoutInput struct {
	Exercise string
	Type     WorkoutType
	Sets     int
	Reps     int
	Weight   int
	Duration int
	Distance float64
}

type User struct {
	Name       string  `json:"name"`
	ProfilePic string  `json:"profilePic"`
	JoinDate   string  `json:"joinDate"`
	Weight     float64 `json:"weight,omitempty"`
	Height     float64 `json:"height,omitempty"`
}

// UserPatch is a shallow-merge update; nil fields are left untouched.
type UserPatch struct {
	Name       *string  `json:"name,omitempty"`
	ProfilePic *string  `json:"profilePic,omitempty"`
	JoinDate   *string  `json:"joinDate,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Height     *float64 `json:"height,omitempty"`
}

type Goals struct {
	Calories        int `json:"calories"`
	Protein         int `json:"protein"`
	Carbs           int `json:"carbs"`
	Fat             int `json:"fat"`
	Steps           int `json:"steps"`
	WorkoutDuration int `json:"workoutDuration"`
}

type GoalsPatch struct {
	Calories        *int `json:"calories,omitempty"`
	Protein         *int `json:"protein,omitempty"`
	Carbs           *int `json:"carbs,omitempty"`
	Fat             *int `json:"fat,omitempty"`
	Steps           *int `json:"steps,omitempty"`
	WorkoutDuration *int `json:"workoutDuration,omitempty"`
}

// State is the root aggregate persisted as a single blob.
type State struct {
	NutritionEntries []NutritionEntry `json:"nutritionEntries"`
	WorkoutEntries   []WorkoutEntry   `json:"workoutEntries"`
	User             User             `json:"user"`
	CurrentStreak    int              `json:"currentStreak"`
	Goals            Goals            `json:"goals"`
	Loading          bool             `json:"loading"`
	Error            *string          `json:"error"`
}

func DefaultGoals() Goals {
	return Goals{
		Calories:        2200,
		Protein:         150,
		Carbs:           250,
		Fat:             80,
		Steps:           10000,
		WorkoutDuration: 60,
	}
}

func DefaultState() State {
	return State{
		NutritionEntries: []NutritionEntry{},
		WorkoutEntries:   []WorkoutEntry{},
		User:             User{ProfilePic: DefaultAvatarURL},
		Goals:            DefaultGoals(),
	}
}

// Clone returns a copy that shares no slices or pointers with s.
func (s State) Clone() State {
	out := s
	out.NutritionEntries = append(make([]NutritionEntry, 0, len(s.NutritionEntries)), s.NutritionEntries...)
	out.WorkoutEntries = append(make([]WorkoutEntry, 0, len(s.WorkoutEntries)), s.WorkoutEntries...)
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	return out
}
