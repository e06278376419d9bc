package handlers

import (
	"net/http"

	"flatquiz/models"

	"github.com/gin-gonic/gin"
)

type storeChecker interface {
	Load() ([]models.Question, error)
}

type HealthHandler struct {
	store storeChecker
}

func NewHealthHandler(store storeChecker) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports whether the questions file can be read. A corrupt file is
// served as empty everywhere else, so this is where it shows up.
func (h *HealthHandler) Health(c *gin.Context) {
	questions, err := h.store.Load()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "questions": len(questions)})
}
