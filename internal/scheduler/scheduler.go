package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/service"
	"github.com/perihassanzadeh/improve365/internal/store"
)

// Scheduler runs the periodic streak recomputation.
type Scheduler struct {
	cron   *cron.Cron
	store  *store.Store
	spec   string
	now    func() time.Time
	logger *zap.Logger
}

// NewScheduler creates a scheduler that recomputes the streak on spec, a
// standard 5-field cron expression. An empty spec schedules nothing.
func NewScheduler(spec string, st *store.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(),
		store:  st,
		spec:   strings.TrimSpace(spec),
		now:    time.Now,
		logger: logger,
	}
}

// Start schedules the job and starts the cron loop.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.logger.Info("streak job disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.recomputeStreak); err != nil {
		return fmt.Errorf("schedule streak job %q: %w", s.spec, err)
	}
	s.logger.Info("starting scheduler", zap.String("streak_cron", s.spec))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) recomputeStreak() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := RecomputeStreak(ctx, s.store, s.now()); err != nil {
		s.logger.Error("failed to recompute streak", zap.Error(err))
	}
}

// RecomputeStreak derives the streak from the stored entries and writes it
// back when it changed.
func RecomputeStreak(ctx context.Context, st *store.Store, now time.Time) (int, error) {
	state := st.State()
	streak := service.ComputeStreak(state.NutritionEntries, state.WorkoutEntries, now)
	if streak == state.CurrentStreak {
		return streak, nil
	}
	if err := st.UpdateStreak(ctx, streak); err != nil {
		return 0, fmt.Errorf("update streak: %w", err)
	}
	return streak, nil
}
