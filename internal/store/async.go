package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/model"
)

var ErrMutationFailed = errors.New("mutation failed")

type Operation string

const (
	OpAddNutrition    Operation = "add_nutrition"
	OpAddWorkout      Operation = "add_workout"
	OpDeleteNutrition Operation = "delete_nutrition"
	OpDeleteWorkout   Operation = "delete_workout"
)

var failureMessages = map[Operation]string{
	OpAddNutrition:    "Failed to add nutrition entry. Please try again.",
	OpAddWorkout:      "Failed to add workout entry. Please try again.",
	OpDeleteNutrition: "Failed to delete nutrition entry. Please try again.",
	OpDeleteWorkout:   "Failed to delete workout entry. Please try again.",
}

// FailureMessage is the user-facing text stored in the error slot when op fails.
func FailureMessage(op Operation) string {
	return failureMessages[op]
}

// MutationError is returned by the async operations. It matches both
// ErrMutationFailed and the underlying cause under errors.Is.
type MutationError struct {
	Op      Operation
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *MutationError) Unwrap() []error {
	return []error{ErrMutationFailed, e.Err}
}

func (s *Store) AddNutritionAsync(ctx context.Context, in model.NutritionInput) (model.NutritionEntry, error) {
	var entry model.NutritionEntry
	err := s.runAsync(ctx, OpAddNutrition, s.addDelay, func(ctx context.Context) error {
		var err error
		entry, err = s.AddNutrition(ctx, in)
		return err
	})
	return entry, err
}

func (s *Store) AddWorkoutAsync(ctx context.Context, in model.WorkoutInput) (model.WorkoutEntry, error) {
	var entry model.WorkoutEntry
	err := s.runAsync(ctx, OpAddWorkout, s.addDelay, func(ctx context.Context) error {
		var err error
		entry, err = s.AddWorkout(ctx, in)
		return err
	})
	return entry, err
}

func (s *Store) DeleteNutritionAsync(ctx context.Context, id int64) error {
	return s.runAsync(ctx, OpDeleteNutrition, s.deleteDelay, func(ctx context.Context) error {
		return s.DeleteNutrition(ctx, id)
	})
}

func (s *Store) DeleteWorkoutAsync(ctx context.Context, id int64) error {
	return s.runAsync(ctx, OpDeleteWorkout, s.deleteDelay, func(ctx context.Context) error {
		return s.DeleteWorkout(ctx, id)
	})
}

// runAsync wraps fn with the loading/error protocol. Calls are serialized:
// a second call waits until the first has cleared the loading flag.
func (s *Store) runAsync(ctx context.Context, op Operation, delay time.Duration, fn func(context.Context) error) error {
	// Slot updates must land even if ctx is cancelled mid-operation.
	bg := context.WithoutCancel(ctx)

	if err := s.ops.Acquire(ctx, 1); err != nil {
		// Never entered Pending: leave the shared slots to the call in flight.
		s.logger.Warn("store operation abandoned while queued", zap.String("op", string(op)), zap.Error(err))
		return &MutationError{Op: op, Message: FailureMessage(op), Err: err}
	}
	defer s.ops.Release(1)

	_ = s.Dispatch(bg, SetLoadingAction(true))
	_ = s.Dispatch(bg, ClearErrorAction())
	defer func() { _ = s.Dispatch(bg, SetLoadingAction(false)) }()

	if err := wait(ctx, delay); err != nil {
		return s.fail(bg, op, err)
	}
	if err := fn(ctx); err != nil {
		return s.fail(bg, op, err)
	}
	return nil
}

func (s *Store) fail(ctx context.Context, op Operation, cause error) error {
	msg := FailureMessage(op)
	s.logger.Error("store operation failed", zap.String("op", string(op)), zap.Error(cause))
	_ = s.Dispatch(ctx, SetErrorAction(msg))
	return &MutationError{Op: op, Message: msg, Err: cause}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
