package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/server/handlers"
)

const requestIDHeader = "X-Request-ID"

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.TrackerHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/state", handler.State)
	api.GET("/today", handler.Today)
	api.GET("/feed", handler.Feed)
	api.GET("/profile", handler.Profile)
	api.GET("/stats", handler.Stats)
	api.GET("/nutrition", handler.ListNutrition)
	api.POST("/nutrition", handler.AddNutrition)
	api.DELETE("/nutrition/:id", handler.DeleteNutrition)
	api.GET("/workouts", handler.ListWorkouts)
	api.POST("/workouts", handler.AddWorkout)
	api.DELETE("/workouts/:id", handler.DeleteWorkout)
	api.PATCH("/goals", handler.UpdateGoals)
	api.PATCH("/user", handler.UpdateUser)
	api.PUT("/streak", handler.UpdateStreak)
	api.DELETE("/error", handler.ClearError)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requestID reuses the caller's request id or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
