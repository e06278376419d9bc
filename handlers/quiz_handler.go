package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"flatquiz/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	queryService   *services.QueryService
	scoringService *services.ScoringService
}

func NewQuizHandler(queryService *services.QueryService, scoringService *services.ScoringService) *QuizHandler {
	return &QuizHandler{
		queryService:   queryService,
		scoringService: scoringService,
	}
}

func (h *QuizHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.queryService.ListPublic())
}

func (h *QuizHandler) SubmitAnswers(c *gin.Context) {
	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.scoringService.Submit(c.Request.Context(), req.Answers)
	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) GetRecentResults(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.scoringService.Recent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, services.ErrHistoryDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}

	c.JSON(http.StatusOK, records)
}
