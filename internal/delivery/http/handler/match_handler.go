package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"github.com/kindredhq/kindred-backend/internal/repository"
	"github.com/kindredhq/kindred-backend/internal/usecase/generation"
)

type MatchHandler struct {
	matchRepo repository.MatchRepository
	generator *generation.Generator
}

func NewMatchHandler(matchRepo repository.MatchRepository, generator *generation.Generator) *MatchHandler {
	return &MatchHandler{
		matchRepo: matchRepo,
		generator: generator,
	}
}

// MatchListQuery filters GET /matches/user/:user_id.
type MatchListQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
	Status string `form:"status" binding:"omitempty,matchstatus"`
}

// GetUserMatches handles GET /matches/user/:user_id.
func (h *MatchHandler) GetUserMatches(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var query MatchListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	matches, err := h.matchRepo.GetUserMatches(c.Request.Context(), userID, query.Limit, query.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get matches"})
		return
	}

	if query.Status != "" {
		filtered := matches[:0]
		for _, m := range matches {
			if m.Status == query.Status {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// GetCompatibility handles GET /compatibility/:user_a/:user_b. It scores
// the pair on the fly without persisting anything.
func (h *MatchHandler) GetCompatibility(c *gin.Context) {
	userAID, errA := strconv.Atoi(c.Param("user_a"))
	userBID, errB := strconv.Atoi(c.Param("user_b"))
	if errA != nil || errB != nil || userAID <= 0 || userBID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ids"})
		return
	}
	if userAID == userBID {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot score a user against themselves"})
		return
	}

	result, err := h.generator.Preview(c.Request.Context(), userAID, userBID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to score pair"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overall":    result.Overall,
		"dimensions": result.Dimensions,
		"confidence": result.Confidence,
		"breakdown":  result.Breakdown,
	})
}
