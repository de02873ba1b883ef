package store

import "github.com/perihassanzadeh/improve365/internal/model"

type ActionType string

const (
	ActionAddNutrition    ActionType = "ADD_NUTRITION"
	ActionAddWorkout      ActionType = "ADD_WORKOUT"
	ActionDeleteNutrition ActionType = "DELETE_NUTRITION"
	ActionDeleteWorkout   ActionType = "DELETE_WORKOUT"
	ActionUpdateUser      ActionType = "UPDATE_USER"
	ActionUpdateStreak    ActionType = "UPDATE_STREAK"
	ActionUpdateGoals     ActionType = "UPDATE_GOALS"
	ActionLoadData        ActionType = "LOAD_DATA"
	ActionSetLoading      ActionType = "SET_LOADING"
	ActionSetError        ActionType = "SET_ERROR"
	ActionClearError      ActionType = "CLEAR_ERROR"
)

// transient actions only touch the loading/error slots. They are committed
// even when the state write fails.
func (t ActionType) transient() bool {
	switch t {
	case ActionSetLoading, ActionSetError, ActionClearError:
		return true
	}
	return false
}

// Action is a single state transition. Payload type depends on Type:
// model.NutritionEntry, model.WorkoutEntry, int64 (delete id), model.UserPatch,
// model.GoalsPatch, int (streak), model.State, bool (loading), string (error).
type Action struct {
	Type    ActionType
	Payload any
}

func AddNutritionAction(e model.NutritionEntry) Action {
	return Action{Type: ActionAddNutrition, Payload: e}
}

func AddWorkoutAction(e model.WorkoutEntry) Action {
	return Action{Type: ActionAddWorkout, Payload: e}
}

func DeleteNutritionAction(id int64) Action {
	return Action{Type: ActionDeleteNutrition, Payload: id}
}

func DeleteWorkoutAction(id int64) Action {
	return Action{Type: ActionDeleteWorkout, Payload: id}
}

func UpdateUserAction(p model.UserPatch) Action {
	return Action{Type: ActionUpdateUser, Payload: p}
}

func UpdateGoalsAction(p model.GoalsPatch) Action {
	return Action{Type: ActionUpdateGoals, Payload: p}
}

func UpdateStreakAction(v int) Action {
	return Action{Type: ActionUpdateStreak, Payload: v}
}

func LoadDataAction(s model.State) Action {
	return Action{Type: ActionLoadData, Payload: s}
}

func SetLoadingAction(v bool) Action {
	return Action{Type: ActionSetLoading, Payload: v}
}

func SetErrorAction(msg string) Action {
	return Action{Type: ActionSetError, Payload: msg}
}

func ClearErrorAction() Action {
	return Action{Type: ActionClearError}
}

// Reduce returns the state that results from applying a to s. It never
// modifies s; unknown actions and mistyped payloads return s unchanged.
func Reduce(s model.State, a Action) model.State {
	switch a.Type {
	case ActionAddNutrition:
		e, ok := a.Payload.(model.NutritionEntry)
		if !ok {
			return s
		}
		next := s.Clone()
		next.NutritionEntries = append([]model.NutritionEntry{e}, next.NutritionEntries...)
		return next

	case ActionAddWorkout:
		e, ok := a.Payload.(model.WorkoutEntry)
		if !ok {
			return s
		}
		next := s.Clone()
		next.WorkoutEntries = append([]model.WorkoutEntry{e}, next.WorkoutEntries...)
		return next

	case ActionDeleteNutrition:
		id, ok := a.Payload.(int64)
		if !ok {
			return s
		}
		next := s.Clone()
		kept := next.NutritionEntries[:0]
		for _, e := range next.NutritionEntries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		next.NutritionEntries = kept
		return next

	case ActionDeleteWorkout:
		id, ok := a.Payload.(int64)
		if !ok {
			return s
		}
		next := s.Clone()
		kept := next.WorkoutEntries[:0]
		for _, e := range next.WorkoutEntries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		next.WorkoutEntries = kept
		return next

	case ActionUpdateUser:
		p, ok := a.Payload.(model.UserPatch)
		if !ok {
			return s
		}
		next := s.Clone()
		next.User = mergeUser(next.User, p)
		return next

	case ActionUpdateGoals:
		p, ok := a.Payload.(model.GoalsPatch)
		if !ok {
			return s
		}
		next := s.Clone()
		next.Goals = mergeGoals(next.Goals, p)
		return next

	case ActionUpdateStreak:
		v, ok := a.Payload.(int)
		if !ok {
			return s
		}
		next := s.Clone()
		next.CurrentStreak = v
		return next

	case ActionLoadData:
		loaded, ok := a.Payload.(model.State)
		if !ok {
			return s
		}
		return normalize(loaded.Clone())

	case ActionSetLoading:
		v, ok := a.Payload.(bool)
		if !ok {
			return s
		}
		next := s.Clone()
		next.Loading = v
		return next

	case ActionSetError:
		msg, ok := a.Payload.(string)
		if !ok {
			return s
		}
		next := s.Clone()
		next.Error = &msg
		return next

	case ActionClearError:
		next := s.Clone()
		next.Error = nil
		return next
	}
	return s
}

func mergeUser(u model.User, p model.UserPatch) model.User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.ProfilePic != nil {
		u.ProfilePic = *p.ProfilePic
	}
	// joinDate is written once, at account creation.
	if p.JoinDate != nil && u.JoinDate == "" {
		u.JoinDate = *p.JoinDate
	}
	if p.Weight != nil {
		u.Weight = *p.Weight
	}
	if p.Height != nil {
		u.Height = *p.Height
	}
	return u
}

func mergeGoals(g model.Goals, p model.GoalsPatch) model.Goals {
	if p.Calories != nil {
		g.Calories = *p.Calories
	}
	if p.Protein != nil {
		g.Protein = *p.Protein
	}
	if p.Carbs != nil {
		g.Carbs = *p.Carbs
	}
	if p.Fat != nil {
		g.Fat = *p.Fat
	}
	if p.Steps != nil {
		g.Steps = *p.Steps
	}
	if p.WorkoutDuration != nil {
		g.WorkoutDuration = *p.WorkoutDuration
	}
	return g
}

func normalize(s model.State) model.State {
	if s.NutritionEntries == nil {
		s.NutritionEntries = []model.NutritionEntry{}
	}
	if s.WorkoutEntries == nil {
		s.WorkoutEntries = []model.WorkoutEntry{}
	}
	return s
}
