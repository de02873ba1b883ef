// Package store owns the application state: every mutation goes through
// Dispatch, which reduces, writes the full state blob, then commits.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/storage"
)

const (
	DefaultAddDelay    = 500 * time.Millisecond
	DefaultDeleteDelay = 300 * time.Millisecond
)

type Store struct {
	mu    sync.Mutex
	state model.State

	kv     storage.KV
	key    string
	ids    *IDSource
	now    func() time.Time
	logger *zap.Logger

	ops         *semaphore.Weighted
	addDelay    time.Duration
	deleteDelay time.Duration
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithDelays(add, del time.Duration) Option {
	return func(s *Store) {
		s.addDelay = add
		s.deleteDelay = del
	}
}

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New builds a store holding the default state. Call Load before use.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		state:       model.DefaultState(),
		kv:          kv,
		key:         StateKey,
		now:         time.Now,
		logger:      zap.NewNop(),
		ops:         semaphore.NewWeighted(1),
		addDelay:    DefaultAddDelay,
		deleteDelay: DefaultDeleteDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = NewIDSource(s.now)
	return s
}

// Load reads the saved blob once. An unreadable blob is logged and replaced
// by the default state; only backend read errors are returned.
func (s *Store) Load(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	loaded := model.DefaultState()
	if found {
		decoded, err := DecodeState(raw)
		if err != nil {
			s.logger.Warn("saved state unreadable, using defaults", zap.String("key", s.key), zap.Error(err))
		} else {
			loaded = decoded
		}
	}
	// No operation can still be in flight from a previous process.
	loaded.Loading = false
	s.ids.Seed(maxEntryID(loaded))

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(ctx, LoadDataAction(loaded))
}

// Close flushes the current state to storage. The KV itself is owned by the caller.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx, s.state)
}

// State returns a copy of the current state.
func (s *Store) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(ctx, a)
}

func (s *Store) dispatchLocked(ctx context.Context, a Action) error {
	next := Reduce(s.state, a)
	if err := s.persistLocked(ctx, next); err != nil {
		if !a.Type.transient() {
			return fmt.Errorf("%s: %w", a.Type, err)
		}
		s.logger.Warn("state write failed", zap.String("action", string(a.Type)), zap.Error(err))
	}
	s.state = next
	return nil
}

func (s *Store) persistLocked(ctx context.Context, st model.State) error {
	raw, err := EncodeState(st)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// AddNutrition stamps an id and the current time onto in and prepends the
// entry. The store does not validate in.
func (s *Store) AddNutrition(ctx context.Context, in model.NutritionInput) (model.NutritionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := model.NutritionEntry{
		ID:       s.ids.Next(),
		Date:     s.now(),
		Meal:     in.Meal,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
	}
	if err := s.dispatchLocked(ctx, AddNutritionAction(entry)); err != nil {
		return model.NutritionEntry{}, err
	}
	return entry, nil
}

func (s *Store) AddWorkout(ctx context.Context, in model.WorkoutInput) (model.WorkoutEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := model.WorkoutEntry{
		ID:       s.ids.Next(),
		Date:     s.now(),
		Exercise: in.Exercise,
		Type:     in.Type,
		Sets:     in.Sets,
		Reps:     in.Reps,
		Weight:   in.Weight,
		Duration: in.Duration,
		Distance: in.Distance,
	}
	if err := s.dispatchLocked(ctx, AddWorkoutAction(entry)); err != nil {
		return model.WorkoutEntry{}, err
	}
	return entry, nil
}

// DeleteNutrition removes the entry with id; a missing id is not an error.
func (s *Store) DeleteNutrition(ctx context.Context, id int64) error {
	return s.Dispatch(ctx, DeleteNutritionAction(id))
}

func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	return s.Dispatch(ctx, DeleteWorkoutAction(id))
}

func (s *Store) UpdateUser(ctx context.Context, p model.UserPatch) error {
	return s.Dispatch(ctx, UpdateUserAction(p))
}

func (s *Store) UpdateGoals(ctx context.Context, p model.GoalsPatch) error {
	return s.Dispatch(ctx, UpdateGoalsAction(p))
}

func (s *Store) UpdateStreak(ctx context.Context, v int) error {
	return s.Dispatch(ctx, UpdateStreakAction(v))
}

func (s *Store) ClearError(ctx context.Context) error {
	return s.Dispatch(ctx, ClearErrorAction())
}
