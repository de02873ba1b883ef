package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/identity"
	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
	"github.com/perihassanzadeh/improve365/internal/store"
)

// TrackerHandler exposes the store and its derived views over HTTP.
type TrackerHandler struct {
	store    *store.Store
	identity identity.Provider
	now      func() time.Time
	logger   *zap.Logger
}

// NewTrackerHandler constructs the HTTP handler adapter. provider may be nil.
func NewTrackerHandler(st *store.Store, provider identity.Provider, now func() time.Time, logger *zap.Logger) *TrackerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &TrackerHandler{store: st, identity: provider, now: now, logger: logger}
}

func (h *TrackerHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State())
}

func (h *TrackerHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, service.TodaySummary(h.store.State(), h.now()))
}

func (h *TrackerHandler) Feed(c *gin.Context) {
	s := h.store.State()
	c.JSON(http.StatusOK, gin.H{"items": service.ActivityFeed(s.NutritionEntries, s.WorkoutEntries, h.now())})
}

func (h *TrackerHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, identity.ResolveCurrent(c.Request.Context(), h.identity, h.logger))
}

func (h *TrackerHandler) Stats(c *gin.Context) {
	s := h.store.State()
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"nutrition": service.NutritionStatistics(s.NutritionEntries, now),
		"workouts":  service.WorkoutStatistics(s.WorkoutEntries, now),
		"streak":    s.CurrentStreak,
	})
}

func (h *TrackerHandler) ListNutrition(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		h.fail(c, err)
		return
	}
	entries := service.FilterNutrition(h.store.State().NutritionEntries, service.NutritionFilter{
		Period: period,
		Search: c.Query("search"),
	}, h.now())
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) ListWorkouts(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"))
	if err != nil {
		h.fail(c, err)
		return
	}
	typ, err := service.ParseWorkoutTypeFilter(c.Query("type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	entries := service.FilterWorkouts(h.store.State().WorkoutEntries, service.WorkoutFilter{
		Period: period,
		Type:   typ,
		Search: c.Query("search"),
	}, h.now())
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *TrackerHandler) AddNutrition(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.logger.Warn("invalid nutrition payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, err := service.ParseNutritionPayload(raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	entry, err := h.store.AddNutritionAsync(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) AddWorkout(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.logger.Warn("invalid workout payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	in, err := service.ParseWorkoutPayload(raw)
	if err != nil {
		h.fail(c, err)
		return
	}
	entry, err := h.store.AddWorkoutAsync(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) DeleteNutrition(c *gin.Context) {
	id, ok := h.entryID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteNutritionAsync(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) DeleteWorkout(c *gin.Context) {
	id, ok := h.entryID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteWorkoutAsync(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) UpdateGoals(c *gin.Context) {
	var p model.GoalsPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	patch, err := service.ValidateGoals(service.GoalsInput(p))
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.store.UpdateGoals(c.Request.Context(), patch); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.State().Goals)
}

func (h *TrackerHandler) UpdateUser(c *gin.Context) {
	var p model.UserPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	patch, err := service.ValidateUserPatch(p)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.store.UpdateUser(c.Request.Context(), patch); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.State().User)
}

type streakRequest struct {
	Streak *int `json:"streak"`
}

func (h *TrackerHandler) UpdateStreak(c *gin.Context) {
	var req streakRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Streak == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "streak is required"})
		return
	}
	if *req.Streak < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "streak must be >= 0"})
		return
	}
	if err := h.store.UpdateStreak(c.Request.Context(), *req.Streak); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": *req.Streak})
}

func (h *TrackerHandler) ClearError(c *gin.Context) {
	if err := h.store.ClearError(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *TrackerHandler) fail(c *gin.Context, err error) {
	var mErr *store.MutationError
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &mErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": mErr.Message})
	default:
		h.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
