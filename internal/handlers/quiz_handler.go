package handlers

import (
	"context"
	"errors"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quizzes *service.QuizService
}

func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	listings, err := h.Quizzes.ListForUser(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": listings})
}

// GetQuiz returns a quiz with its answers stripped so the client can
// render the attempt form. A quiz the caller already took is refused.
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Quizzes.GetForAttempt(context.Background(), c.Param("id"), middleware.Username(c))
	if err != nil {
		if errors.Is(err, service.ErrAlreadyAttempted) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already attempted this quiz."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

type attemptRequest struct {
	// Answers holds the selected choice text per question, null for
	// questions left unanswered.
	Answers []*string `json:"answers" binding:"required"`
}

func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	var req attemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	attempt, err := h.Quizzes.SubmitAttempt(context.Background(), c.Param("id"), middleware.Username(c), req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyAttempted) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already attempted this quiz."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your responses have been submitted successfully!",
		"attempt": attempt,
	})
}
