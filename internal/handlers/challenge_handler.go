package handlers

import (
	"context"
	"errors"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	Challenges *service.ChallengeService
}

func NewChallengeHandler(challenges *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{Challenges: challenges}
}

func (h *ChallengeHandler) Create(c *gin.Context) {
	var req struct {
		Opponent   string `json:"opponent" binding:"required"`
		Topic      string `json:"topic" binding:"required"`
		Difficulty string `json:"difficulty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	challenge, err := h.Challenges.Create(context.Background(), middleware.Username(c), req.Opponent, req.Topic, req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Your challenge has been sent to " + req.Opponent + "!",
		"challenge": challenge,
	})
}

// Pending lists challenges still waiting for the caller's side.
func (h *ChallengeHandler) Pending(c *gin.Context) {
	pending, err := h.Challenges.PendingFor(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": pending})
}

func (h *ChallengeHandler) Quiz(c *gin.Context) {
	quiz, err := h.Challenges.QuizForAttempt(context.Background(), c.Param("id"), middleware.Username(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not part of this challenge."})
		case errors.Is(err, service.ErrSideAlreadyPlayed):
			c.JSON(http.StatusConflict, gin.H{"error": "You have already completed this challenge."})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "Challenge not found"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

func (h *ChallengeHandler) SubmitAttempt(c *gin.Context) {
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	attempt, challenge, err := h.Challenges.SubmitAttempt(context.Background(), c.Param("id"), middleware.Username(c), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not part of this challenge."})
		case errors.Is(err, service.ErrSideAlreadyPlayed):
			c.JSON(http.StatusConflict, gin.H{"error": "You have already completed this challenge."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Challenge submitted!",
		"attempt":   attempt,
		"challenge": challenge,
	})
}

// Results returns every challenge the caller has played a side of, with
// the head-to-head outcome once both sides are in.
func (h *ChallengeHandler) Results(c *gin.Context) {
	results, err := h.Challenges.ResultsFor(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
