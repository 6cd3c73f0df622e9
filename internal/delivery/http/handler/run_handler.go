package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
	"github.com/kindredhq/kindred-backend/internal/usecase/generation"
	"go.uber.org/zap"
)

type RunHandler struct {
	generator *generation.Generator
	runRepo   repository.RunRepository
	log       *zap.Logger
}

func NewRunHandler(generator *generation.Generator, runRepo repository.RunRepository, log *zap.Logger) *RunHandler {
	return &RunHandler{
		generator: generator,
		runRepo:   runRepo,
		log:       log,
	}
}

// TriggerRun handles POST /runs. The batch executes in the background;
// telemetry is available through the run endpoints.
func (h *RunHandler) TriggerRun(c *gin.Context) {
	go func() {
		run, err := h.generator.Run(context.Background())
		if err != nil {
			if errors.Is(err, domain.ErrRunInProgress) {
				h.log.Warn("triggered run skipped, another run holds the lock")
				return
			}
			h.log.Error("triggered generation run failed", zap.Error(err))
			return
		}
		h.log.Info("triggered generation run finished",
			zap.String("run_id", run.ID.String()),
			zap.String("status", run.Status))
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GetRun handles GET /runs/:id.
func (h *RunHandler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid run id"})
		return
	}

	run, err := h.runRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get run"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ListRuns handles GET /runs.
func (h *RunHandler) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	runs, err := h.runRepo.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
