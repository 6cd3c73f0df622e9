package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kindredhq/kindred-backend/internal/delivery/http/handler"
	"github.com/kindredhq/kindred-backend/internal/delivery/http/middleware"
	"github.com/kindredhq/kindred-backend/internal/domain"
)

type Router struct {
	matchHandler   *handler.MatchHandler
	runHandler     *handler.RunHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	matchHandler *handler.MatchHandler,
	runHandler *handler.RunHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		matchHandler:   matchHandler,
		runHandler:     runHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("matchstatus", validMatchStatus)
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireService())
	{
		runs := v1.Group("/runs")
		{
			runs.POST("", r.runHandler.TriggerRun)
			runs.GET("", r.runHandler.ListRuns)
			runs.GET("/:id", r.runHandler.GetRun)
		}

		matches := v1.Group("/matches")
		{
			matches.GET("/user/:user_id", r.matchHandler.GetUserMatches)
		}

		v1.GET("/compatibility/:user_a/:user_b", r.matchHandler.GetCompatibility)
	}

	return router
}

func validMatchStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case domain.MatchStatusPending, domain.MatchStatusAccepted,
		domain.MatchStatusDeclined, domain.MatchStatusExpired:
		return true
	}
	return false
}
