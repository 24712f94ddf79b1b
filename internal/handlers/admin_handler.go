package handlers

import (
	"context"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/models"
	"aiquizzer/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Users   *service.UserService
	Quizzes *service.QuizService
}

func NewAdminHandler(users *service.UserService, quizzes *service.QuizService) *AdminHandler {
	return &AdminHandler{Users: users, Quizzes: quizzes}
}

// ListUsers shows all users. Admins view only; approval is the super
// admin's call.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.ListAll(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GenerateQuiz returns an LLM draft for curation. The draft is not
// stored; the admin edits it client-side and saves through SaveQuiz.
func (h *AdminHandler) GenerateQuiz(c *gin.Context) {
	var req struct {
		Topic      string `json:"topic" binding:"required"`
		Difficulty string `json:"difficulty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	sets, err := h.Quizzes.GenerateDraft(context.Background(), req.Topic, req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate MCQs. Please try again.", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz_data": sets})
}

func (h *AdminHandler) SaveQuiz(c *gin.Context) {
	var req service.SaveQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	quiz, err := h.Quizzes.SaveQuiz(context.Background(), middleware.Username(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Quiz saved successfully!", "quiz": quiz})
}

// PendingAdmins lists admin requests by approval status, pending by
// default.
func (h *AdminHandler) PendingAdmins(c *gin.Context) {
	users, err := h.Users.ListByStatus(context.Background(), c.DefaultQuery("status", models.StatusPending))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type approvalRequest struct {
	UserIDs []string `json:"user_ids" binding:"required"`
}

func (h *AdminHandler) Approve(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if err := h.Users.Approve(context.Background(), req.UserIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selected users have been approved as admins!"})
}

func (h *AdminHandler) Decline(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if err := h.Users.Decline(context.Background(), req.UserIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selected users have been declined."})
}
