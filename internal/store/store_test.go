package store_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
	"github.com/perihassanzadeh/improve365/internal/storage"
	"github.com/perihassanzadeh/improve365/internal/store"
)

var fixedNow = time.Date(2026, 2, 20, 12, 0, 0, 0, time.Local)

func frozenClock() time.Time { return fixedNow }

// flakyKV fails any write whose blob matches failWhen.
type flakyKV struct {
	*storage.MemoryKV
	mu       sync.Mutex
	failWhen func(blob string) bool
}

func newFlakyKV() *flakyKV {
	return &flakyKV{MemoryKV: storage.NewMemoryKV()}
}

func (f *flakyKV) setFailWhen(fn func(string) bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWhen = fn
}

func (f *flakyKV) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	fail := f.failWhen != nil && f.failWhen(string(value))
	f.mu.Unlock()
	if fail {
		return errors.New("disk full")
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func newTestStore(t *testing.T, kv storage.KV) *store.Store {
	t.Helper()
	st := store.New(kv, store.WithClock(frozenClock), store.WithDelays(0, 0))
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return st
}

func TestDeleteMissingIDIsNoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())
	for _, meal := range []string{"Oatmeal", "Salad", "Steak"} {
		if _, err := st.AddNutrition(ctx, model.NutritionInput{Meal: meal, Calories: 100}); err != nil {
			t.Fatalf("add %s: %v", meal, err)
		}
	}
	before := st.State().NutritionEntries

	if err := st.DeleteNutrition(ctx, 42); err != nil {
		t.Fatalf("delete missing id: %v", err)
	}
	if diff := cmp.Diff(before, st.State().NutritionEntries); diff != "" {
		t.Fatalf("collection changed after deleting missing id (-want +got):\n%s", diff)
	}
	if err := st.DeleteWorkout(ctx, 42); err != nil {
		t.Fatalf("delete missing workout id: %v", err)
	}
}

func TestDeleteRemovesOnlyMatchingEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())
	first, _ := st.AddWorkout(ctx, model.WorkoutInput{Exercise: "Run", Type: model.WorkoutCardio, Duration: 30})
	second, _ := st.AddWorkout(ctx, model.WorkoutInput{Exercise: "Squat", Type: model.WorkoutStrength, Sets: 3})

	if err := st.DeleteWorkout(ctx, first.ID); err != nil {
		t.Fatalf("delete workout: %v", err)
	}
	got := st.State().WorkoutEntries
	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("expected only %d to remain, got %+v", second.ID, got)
	}
}

func TestIDsUniqueUnderFrozenClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())

	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		var id int64
		if i%2 == 0 {
			e, err := st.AddNutrition(ctx, model.NutritionInput{Meal: "Snack", Calories: 10})
			if err != nil {
				t.Fatalf("add nutrition: %v", err)
			}
			id = e.ID
		} else {
			e, err := st.AddWorkout(ctx, model.WorkoutInput{Exercise: "Row", Type: model.WorkoutCardio})
			if err != nil {
				t.Fatalf("add workout: %v", err)
			}
			id = e.ID
		}
		if seen[id] {
			t.Fatalf("duplicate id %d after %d adds", id, i)
		}
		seen[id] = true
	}
}

func TestIDsContinueAfterReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	st := newTestStore(t, kv)
	a, _ := st.AddNutrition(ctx, model.NutritionInput{Meal: "A"})
	b, _ := st.AddNutrition(ctx, model.NutritionInput{Meal: "B"})

	reloaded := newTestStore(t, kv)
	c, err := reloaded.AddNutrition(ctx, model.NutritionInput{Meal: "C"})
	if err != nil {
		t.Fatalf("add after reload: %v", err)
	}
	if c.ID == a.ID || c.ID == b.ID || c.ID <= b.ID {
		t.Fatalf("expected id greater than %d, got %d", b.ID, c.ID)
	}
}

func TestEntriesPrependedAndStamped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())
	st.AddNutrition(ctx, model.NutritionInput{Meal: "Breakfast", Calories: 300})
	st.AddNutrition(ctx, model.NutritionInput{Meal: "Lunch", Calories: 600})

	got := st.State().NutritionEntries
	if len(got) != 2 || got[0].Meal != "Lunch" || got[1].Meal != "Breakfast" {
		t.Fatalf("expected most recent first, got %+v", got)
	}
	if !got[0].Date.Equal(fixedNow) {
		t.Fatalf("expected date stamped from clock, got %s", got[0].Date)
	}
}

func TestScenarioSameDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())
	if _, err := st.AddNutrition(ctx, model.NutritionInput{Meal: "Oatmeal", Calories: 350}); err != nil {
		t.Fatalf("add nutrition: %v", err)
	}
	if _, err := st.AddWorkout(ctx, model.WorkoutInput{Exercise: "Bench Press", Type: model.WorkoutStrength, Sets: 3, Reps: 10, Weight: 60}); err != nil {
		t.Fatalf("add workout: %v", err)
	}

	s := st.State()
	if got := service.TodayCalories(s.NutritionEntries, fixedNow); got != 350 {
		t.Fatalf("expected 350 calories today, got %d", got)
	}
	if got := service.TodayWorkoutDuration(s.WorkoutEntries, fixedNow); got != 0 {
		t.Fatalf("expected 0 workout minutes today, got %d", got)
	}
	if n := len(service.TodayNutrition(s.NutritionEntries, fixedNow)); n != 1 {
		t.Fatalf("expected 1 nutrition entry today, got %d", n)
	}
	if n := len(service.TodayWorkouts(s.WorkoutEntries, fixedNow)); n != 1 {
		t.Fatalf("expected 1 workout entry today, got %d", n)
	}
}

func TestUpdateUserAndGoalsMerge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t, storage.NewMemoryKV())

	name := "Sam"
	joined := "2026-01-01"
	if err := st.UpdateUser(ctx, model.UserPatch{Name: &name, JoinDate: &joined}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	later := "2026-05-05"
	if err := st.UpdateUser(ctx, model.UserPatch{JoinDate: &later}); err != nil {
		t.Fatalf("update user again: %v", err)
	}
	u := st.State().User
	if u.Name != "Sam" || u.JoinDate != "2026-01-01" || u.ProfilePic != model.DefaultAvatarURL {
		t.Fatalf("unexpected user after merge: %+v", u)
	}

	protein := 180
	if err := st.UpdateGoals(ctx, model.GoalsPatch{Protein: &protein}); err != nil {
		t.Fatalf("update goals: %v", err)
	}
	g := st.State().Goals
	want := model.DefaultGoals()
	want.Protein = 180
	if g != want {
		t.Fatalf("expected %+v, got %+v", want, g)
	}

	if err := st.UpdateStreak(ctx, 7); err != nil {
		t.Fatalf("update streak: %v", err)
	}
	if st.State().CurrentStreak != 7 {
		t.Fatalf("expected streak 7")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	st := newTestStore(t, kv)
	st.AddNutrition(ctx, model.NutritionInput{Meal: "Oatmeal", Calories: 350, Protein: 12, Carbs: 60, Fat: 6})
	st.AddWorkout(ctx, model.WorkoutInput{Exercise: "Run", Type: model.WorkoutCardio, Duration: 30, Distance: 5.2})
	steps := 12000
	st.UpdateGoals(ctx, model.GoalsPatch{Steps: &steps})
	st.UpdateStreak(ctx, 3)

	want := st.State()
	raw, err := store.EncodeState(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := store.DecodeState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	if err := st.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	reloaded := newTestStore(t, kv)
	if diff := cmp.Diff(want, reloaded.State()); diff != "" {
		t.Fatalf("reloaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFallsBackOnCorruptBlob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, store.StateKey, []byte(`{"nutritionEntries": [`)); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	st := newTestStore(t, kv)
	if diff := cmp.Diff(model.DefaultState(), st.State()); diff != "" {
		t.Fatalf("expected default state (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsDefaultsForMissingKeysAndResetsLoading(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	blob := `{"currentStreak": 4, "loading": true, "goals": {"calories": 1800}}`
	if err := kv.Set(ctx, store.StateKey, []byte(blob)); err != nil {
		t.Fatalf("seed blob: %v", err)
	}
	s := newTestStore(t, kv).State()
	if s.CurrentStreak != 4 || s.Loading {
		t.Fatalf("unexpected state: streak=%d loading=%v", s.CurrentStreak, s.Loading)
	}
	if s.Goals.Calories != 1800 || s.Goals.Protein != 150 {
		t.Fatalf("expected merged goals, got %+v", s.Goals)
	}
	if s.NutritionEntries == nil || s.WorkoutEntries == nil {
		t.Fatalf("expected empty, non-nil collections")
	}
}

func TestFailedWriteLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFlakyKV()
	st := newTestStore(t, kv)
	kv.setFailWhen(func(blob string) bool { return strings.Contains(blob, "Pizza") })

	if _, err := st.AddNutrition(ctx, model.NutritionInput{Meal: "Pizza", Calories: 800}); err == nil {
		t.Fatalf("expected write failure")
	}
	if n := len(st.State().NutritionEntries); n != 0 {
		t.Fatalf("expected no entries after failed write, got %d", n)
	}
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	t.Parallel()
	in := model.DefaultState()
	in.NutritionEntries = []model.NutritionEntry{{ID: 1, Meal: "A"}, {ID: 2, Meal: "B"}}
	snapshot := in.Clone()

	_ = store.Reduce(in, store.DeleteNutritionAction(1))
	_ = store.Reduce(in, store.AddNutritionAction(model.NutritionEntry{ID: 3, Meal: "C"}))
	_ = store.Reduce(in, store.SetErrorAction("boom"))

	if diff := cmp.Diff(snapshot, in); diff != "" {
		t.Fatalf("reduce mutated its input (-want +got):\n%s", diff)
	}
}

func TestReduceIgnoresMistypedPayload(t *testing.T) {
	t.Parallel()
	in := model.DefaultState()
	out := store.Reduce(in, store.Action{Type: store.ActionUpdateStreak, Payload: "seven"})
	if out.CurrentStreak != in.CurrentStreak {
		t.Fatalf("expected unchanged streak")
	}
	out = store.Reduce(in, store.Action{Type: "UNKNOWN"})
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("unknown action changed state:\n%s", diff)
	}
}
