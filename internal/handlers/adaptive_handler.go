package handlers

import (
	"context"
	"errors"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/service"

	"github.com/gin-gonic/gin"
)

type AdaptiveHandler struct {
	Adaptive *service.AdaptiveService
}

func NewAdaptiveHandler(adaptive *service.AdaptiveService) *AdaptiveHandler {
	return &AdaptiveHandler{Adaptive: adaptive}
}

// Start opens a new adaptive session and returns the first batch. The
// session only exists if the first batch generated successfully.
func (h *AdaptiveHandler) Start(c *gin.Context) {
	var req struct {
		SelectedTopics []string `json:"selected_topics" binding:"required,min=1,max=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	batch, err := h.Adaptive.Start(context.Background(), middleware.Username(c), req.SelectedTopics)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate questions. Please try again.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": batch})
}

func (h *AdaptiveHandler) Submit(c *gin.Context) {
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	out, err := h.Adaptive.Submit(context.Background(), c.Param("token"), middleware.Username(c), req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This session does not belong to you."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Set("events", out.Events())
	c.JSON(http.StatusOK, out)
}

// Stop abandons a session. Nothing is stored; the history page only
// shows completed quizzes.
func (h *AdaptiveHandler) Stop(c *gin.Context) {
	err := h.Adaptive.Stop(context.Background(), c.Param("token"), middleware.Username(c))
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This session does not belong to you."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz stopped."})
}
