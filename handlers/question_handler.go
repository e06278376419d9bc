package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"flatquiz/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	queryService    *services.QueryService
	questionService *services.QuestionService
}

func NewQuestionHandler(queryService *services.QueryService, questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		queryService:    queryService,
		questionService: questionService,
	}
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.queryService.LoadAllAdmin())
}

func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		return
	}

	question, err := h.queryService.GetQuestion(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		return
	}

	var req services.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.UpdateQuestion(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := questionID(c)
	if !ok {
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}

func questionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	case errors.Is(err, services.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save question"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
